package model

import (
	"fmt"
	"strings"
)

// Harmony names a hue relationship between generated colors.
// The zero value means no harmony: hues are independent.
type Harmony string

const (
	HarmonyNone               Harmony = ""
	HarmonyComplementary      Harmony = "complementary"
	HarmonyAnalogous          Harmony = "analogous"
	HarmonyTriadic            Harmony = "triadic"
	HarmonySplitComplementary Harmony = "split-complementary"
	HarmonyTetradic           Harmony = "tetradic"
	HarmonyMonochromatic      Harmony = "monochromatic"
)

// Harmonies lists every selectable harmony in menu order.
var Harmonies = []Harmony{
	HarmonyComplementary,
	HarmonyAnalogous,
	HarmonyTriadic,
	HarmonySplitComplementary,
	HarmonyTetradic,
	HarmonyMonochromatic,
}

// Theme names a saturation/lightness band for generated colors.
// The zero value means no theme: the full range is used.
type Theme string

const (
	ThemeNone    Theme = ""
	ThemePastel  Theme = "pastel"
	ThemeVibrant Theme = "vibrant"
	ThemeDark    Theme = "dark"
	ThemeLight   Theme = "light"
	ThemeMuted   Theme = "muted"
)

// Themes lists every selectable theme in menu order.
var Themes = []Theme{
	ThemePastel,
	ThemeVibrant,
	ThemeDark,
	ThemeLight,
	ThemeMuted,
}

// noneValue is accepted by the parsers as an explicit "clear the selection".
const noneValue = "none"

// ParseHarmony accepts a harmony name case-insensitively.
// Empty and "none" return HarmonyNone.
func ParseHarmony(s string) (Harmony, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == noneValue {
		return HarmonyNone, nil
	}
	for _, h := range Harmonies {
		if string(h) == v {
			return h, nil
		}
	}
	return HarmonyNone, fmt.Errorf("unknown harmony %q (valid: %s)", s, strings.Join(HarmonyNames(), ", "))
}

// ParseTheme accepts a theme name case-insensitively.
// Empty and "none" return ThemeNone.
func ParseTheme(s string) (Theme, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" || v == noneValue {
		return ThemeNone, nil
	}
	for _, t := range Themes {
		if string(t) == v {
			return t, nil
		}
	}
	return ThemeNone, fmt.Errorf("unknown theme %q (valid: %s)", s, strings.Join(ThemeNames(), ", "))
}

// HarmonyNames returns the harmony names as strings.
func HarmonyNames() []string {
	names := make([]string, len(Harmonies))
	for i, h := range Harmonies {
		names[i] = string(h)
	}
	return names
}

// ThemeNames returns the theme names as strings.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = string(t)
	}
	return names
}

// Label returns the name for display, "none" for the zero value.
func (h Harmony) Label() string {
	if h == HarmonyNone {
		return noneValue
	}
	return string(h)
}

// Label returns the name for display, "none" for the zero value.
func (t Theme) Label() string {
	if t == ThemeNone {
		return noneValue
	}
	return string(t)
}
