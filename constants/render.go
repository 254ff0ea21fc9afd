package constants

// Compositor palette density breakpoints
const (
	// AliveDensityFaint..AliveDensityDense split Alive glyph palettes
	AliveDensityFaint  = 0.3
	AliveDensityMedium = 0.5
	AliveDensityDense  = 0.7

	DecliningDensityFaint  = 0.2
	DecliningDensityMedium = 0.6
	DecliningDensityDense  = 0.85

	DyingDensityFaint = 0.6
)

// PlotAspect scales plot x to terminal columns in narrow mode (cells are ~2:1)
const PlotAspect = 2.0

// FallbackGlyph replaces wide runes that cannot fit a narrow cell
const FallbackGlyph = '*'
