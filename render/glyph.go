package render

import (
	"math/rand/v2"

	"github.com/lixenwraith/fireworks/constants"
	"github.com/lixenwraith/fireworks/firework"
)

// glyphPalette holds the candidate runes of one stage/density band for both
// cell modes. Spaces are intentional: they thin out sparse trails.
type glyphPalette struct {
	narrow []rune
	wide   []rune
}

func palette(narrow, wide string) glyphPalette {
	return glyphPalette{narrow: []rune(narrow), wide: []rune(wide)}
}

// Palettes ordered faint to dense
var (
	alivePalettes = [4]glyphPalette{
		palette("`'. ", "。，”“』 『￥"),
		palette(`/\|()1{}[]?`, "一二三二三五十十已于上下义天"),
		palette("oahkbdpqwmZO0QLCJUYXzcvunxrjft*", "时中自字木月日目火田左右点以"),
		palette("$@B%8&WM#", "𰻞"),
	}

	decliningPalettes = [4]glyphPalette{
		palette("` '. ", "？。， 『』 ||"),
		palette(`-_ +~<> i!lI;:,"^`, "（）【】*￥|十一二三六"),
		palette(`/\| ()1{}[ ]?`, "人中亿入上下火土"),
		palette("xrjft*", "繁荣昌盛国泰民安龍龖龠龜耋"),
	}

	dyingPalettes = [2]glyphPalette{
		palette(".  ,`.    ^,' . ", "。 『 』 、： |。，— ……"),
		palette(` /\| ( )  1{} [  ]?i !l I;: ,"^ `, "|￥人 上十入乙小 下"),
	}
)

// Glyph picks a random rune for a trail cell of the given stage and density.
// Dead particles have no glyph.
func Glyph(stage firework.LifeStage, density float64, wide bool, rng *rand.Rand) (rune, bool) {
	var p glyphPalette
	switch stage {
	case firework.StageAlive:
		p = alivePalettes[band(density,
			constants.AliveDensityFaint, constants.AliveDensityMedium, constants.AliveDensityDense)]
	case firework.StageDeclining:
		p = decliningPalettes[band(density,
			constants.DecliningDensityFaint, constants.DecliningDensityMedium, constants.DecliningDensityDense)]
	case firework.StageDying:
		p = dyingPalettes[band(density, constants.DyingDensityFaint)]
	default:
		return 0, false
	}

	runes := p.narrow
	if wide {
		runes = p.wide
	}
	return runes[rng.IntN(len(runes))], true
}

// band returns the index of the first breakpoint density falls below, or
// len(breakpoints) when it is above all of them
func band(density float64, breakpoints ...float64) int {
	for i, b := range breakpoints {
		if density < b {
			return i
		}
	}
	return len(breakpoints)
}
