package generator

import (
	"github.com/amterp/swatch/internal/colormath"
	"github.com/amterp/swatch/internal/model"
)

// hueOffsets are the angular offsets each harmony applies to the base hue,
// cycled by slot index.
var hueOffsets = map[model.Harmony][]float64{
	model.HarmonyComplementary:      {0, 180},
	model.HarmonyAnalogous:          {0, 30, -30, 60, -60},
	model.HarmonyTriadic:            {0, 120, 240},
	model.HarmonySplitComplementary: {0, 150, 210},
	model.HarmonyTetradic:           {0, 90, 180, 270},
	model.HarmonyMonochromatic:      {0},
}

// span is an inclusive range in percent.
type span struct {
	Min, Max float64
}

func (s span) has(v float64) bool {
	return v >= s.Min && v <= s.Max
}

func (s span) mid() float64 {
	return (s.Min + s.Max) / 2
}

// band is the saturation/lightness window a theme samples from.
type band struct {
	S, L span
}

// contains reports whether hex reads back inside the band.
func (b band) contains(hex string) bool {
	hsl, err := colormath.HexToHSL(hex)
	if err != nil {
		return false
	}
	return b.S.has(hsl.S) && b.L.has(hsl.L)
}

var fullBand = band{S: span{0, 100}, L: span{0, 100}}

var themeBands = map[model.Theme]band{
	model.ThemePastel:  {S: span{20, 50}, L: span{70, 90}},
	model.ThemeVibrant: {S: span{70, 100}, L: span{40, 60}},
	model.ThemeDark:    {S: span{30, 70}, L: span{10, 30}},
	model.ThemeLight:   {S: span{20, 60}, L: span{80, 95}},
	model.ThemeMuted:   {S: span{10, 30}, L: span{40, 70}},
}

// Offsets returns the hue offsets for a harmony, nil for none or unknown.
func Offsets(h model.Harmony) []float64 {
	offsets, ok := hueOffsets[h]
	if !ok {
		return nil
	}
	out := make([]float64, len(offsets))
	copy(out, offsets)
	return out
}

// Ranges returns the saturation and lightness bounds for a theme as
// (sMin, sMax, lMin, lMax). Unknown or empty themes get the full range.
func Ranges(t model.Theme) (sMin, sMax, lMin, lMax float64) {
	b := bandFor(t)
	return b.S.Min, b.S.Max, b.L.Min, b.L.Max
}

func bandFor(t model.Theme) band {
	if b, ok := themeBands[t]; ok {
		return b
	}
	return fullBand
}
