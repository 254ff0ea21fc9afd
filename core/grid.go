package core

// Blank is the rune of an unpainted cell
const Blank = ' '

// Cell is a single glyph with its resolved foreground color
type Cell struct {
	Rune  rune
	Color RGB
}

// BlankCell is the cleared state of every grid cell
var BlankCell = Cell{Rune: Blank, Color: RGBWhite}

// Grid is a row-major 2D array of cells sized to the display
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a blank grid; negative dimensions are treated as zero
func NewGrid(width, height int) *Grid {
	g := &Grid{}
	g.Resize(width, height)
	return g
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Resize reallocates the grid to the new dimensions and clears it
func (g *Grid) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	g.width = width
	g.height = height
	if cap(g.cells) >= width*height {
		g.cells = g.cells[:width*height]
	} else {
		g.cells = make([]Cell, width*height)
	}
	g.Clear()
}

// Clear resets every cell to blank
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = BlankCell
	}
}

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at the given position
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	return g.cells[y*g.width+x], true
}

// Set writes the cell at the given position, returns false when out of bounds
func (g *Grid) Set(x, y int, cell Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.width+x] = cell
	return true
}

// IsBlank reports whether an in-bounds cell is still unpainted
func (g *Grid) IsBlank(x, y int) bool {
	c, ok := g.Get(x, y)
	return ok && c.Rune == Blank
}

// Row returns the cells of line y, nil when out of range
func (g *Grid) Row(y int) []Cell {
	if y < 0 || y >= g.height {
		return nil
	}
	return g.cells[y*g.width : (y+1)*g.width]
}

// Painted counts non-blank cells
func (g *Grid) Painted() int {
	n := 0
	for _, c := range g.cells {
		if c.Rune != Blank {
			n++
		}
	}
	return n
}
