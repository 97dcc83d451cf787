// Package colormath converts between hex, RGB and HSL color notations.
//
// All hex output is canonical: a leading '#' followed by six uppercase digits.
// HSL uses degrees for hue and percentages for saturation and lightness.
package colormath

import (
	"math"
	"regexp"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/lucasb-eyer/go-colorful"
)

var hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// HSL is a color in hue/saturation/lightness form.
// H is in [0,360), S and L are in [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// RGB is a color as 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// IsHexColor reports whether value parses as a hex color.
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(strings.TrimSpace(value))
}

// Normalize returns the canonical #RRGGBB form of a hex color.
// Accepts an optional leading '#' and the 3-digit short form.
func Normalize(hex string) (string, error) {
	trimmed := strings.TrimSpace(hex)
	if !hexColorRegex.MatchString(trimmed) {
		return "", swerr.InvalidColor(hex)
	}

	digits := strings.TrimPrefix(trimmed, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	return "#" + strings.ToUpper(digits), nil
}

// parse converts a hex string to a colorful.Color.
func parse(hex string) (colorful.Color, error) {
	n, err := Normalize(hex)
	if err != nil {
		return colorful.Color{}, err
	}
	c, err := colorful.Hex(n)
	if err != nil {
		return colorful.Color{}, swerr.InvalidColor(hex)
	}
	return c, nil
}

// format renders a colorful.Color as canonical hex.
func format(c colorful.Color) string {
	return strings.ToUpper(c.Clamped().Hex())
}

// HexToHSL converts a hex color to HSL.
func HexToHSL(hex string) (HSL, error) {
	c, err := parse(hex)
	if err != nil {
		return HSL{}, err
	}
	h, s, l := c.Hsl()
	return HSL{H: wrapHue(h), S: s * 100, L: l * 100}, nil
}

// HSLToHex converts HSL to hex. Hue wraps into [0,360);
// saturation and lightness are clamped to [0,100].
func HSLToHex(hsl HSL) string {
	h := wrapHue(hsl.H)
	s := clamp(hsl.S, 0, 100) / 100
	l := clamp(hsl.L, 0, 100) / 100
	return format(colorful.Hsl(h, s, l))
}

// HexToRGB converts a hex color to 8-bit channels.
func HexToRGB(hex string) (RGB, error) {
	c, err := parse(hex)
	if err != nil {
		return RGB{}, err
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// RGBToHex converts 8-bit channels to hex.
func RGBToHex(rgb RGB) string {
	c := colorful.Color{
		R: float64(rgb.R) / 255,
		G: float64(rgb.G) / 255,
		B: float64(rgb.B) / 255,
	}
	return format(c)
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// math.Mod(-0.0000001, 360) + 360 can round to exactly 360
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
