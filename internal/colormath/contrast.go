package colormath

import "math"

const (
	Black = "#000000"
	White = "#FFFFFF"
)

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1,21].
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	lightest := math.Max(la, lb)
	darkest := math.Min(la, lb)
	return (lightest + 0.05) / (darkest + 0.05), nil
}

// RelativeLuminance returns the WCAG relative luminance of a color.
func RelativeLuminance(hex string) (float64, error) {
	c, err := parse(hex)
	if err != nil {
		return 0, err
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// TextColor picks black or white, whichever reads better on the background.
// Malformed backgrounds get black.
func TextColor(background string) string {
	onBlack, err := ContrastRatio(Black, background)
	if err != nil {
		return Black
	}
	onWhite, _ := ContrastRatio(White, background)
	if onWhite > onBlack {
		return White
	}
	return Black
}
