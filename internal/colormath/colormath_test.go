package colormath

import (
	"math"
	"math/rand"
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
)

func TestIsHexColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "empty", value: "", want: false},
		{name: "whitespace", value: "   ", want: false},
		{name: "missing_hash", value: "AABBCC", want: true},
		{name: "short_hex", value: "#ABC", want: true},
		{name: "four_digits", value: "#ABCD", want: false},
		{name: "long_hex", value: "#AABBCCDD", want: false},
		{name: "invalid_char", value: "#AABBCG", want: false},
		{name: "lowercase_hex", value: "#aabbcc", want: true},
		{name: "uppercase_hex", value: "#AABBCC", want: true},
		{name: "trimmed_hex", value: "  #AABBCC  ", want: true},
		{name: "double_hash", value: "##AABBCC", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsHexColor(test.value); got != test.want {
				t.Fatalf("IsHexColor(%q) = %t, want %t", test.value, got, test.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#a1b2c3", "#A1B2C3"},
		{"A1B2C3", "#A1B2C3"},
		{"#abc", "#AABBCC"},
		{"fff", "#FFFFFF"},
		{" #000000 ", "#000000"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.input)
		if err != nil {
			t.Errorf("Normalize(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHexToHSL_Invalid(t *testing.T) {
	for _, input := range []string{"", "#12345", "#GGGGGG", "red", "#1234567"} {
		_, err := HexToHSL(input)
		if err == nil {
			t.Errorf("HexToHSL(%q) expected error", input)
			continue
		}
		if !swerr.IsInvalidColor(err) {
			t.Errorf("HexToHSL(%q) error = %v, want InvalidColorError", input, err)
		}
	}
}

func TestHexToHSL_KnownValues(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#FF0000", HSL{H: 0, S: 100, L: 50}},
		{"#00FF00", HSL{H: 120, S: 100, L: 50}},
		{"#0000FF", HSL{H: 240, S: 100, L: 50}},
		{"#FFFFFF", HSL{H: 0, S: 0, L: 100}},
		{"#000000", HSL{H: 0, S: 0, L: 0}},
		{"#808080", HSL{H: 0, S: 0, L: 50.2}},
	}
	for _, tt := range tests {
		got, err := HexToHSL(tt.hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q) unexpected error: %v", tt.hex, err)
		}
		if !near(got.H, tt.want.H, 0.5) || !near(got.S, tt.want.S, 0.5) || !near(got.L, tt.want.L, 0.5) {
			t.Errorf("HexToHSL(%q) = %+v, want %+v", tt.hex, got, tt.want)
		}
	}
}

func TestHSLToHex_KnownValues(t *testing.T) {
	tests := []struct {
		hsl  HSL
		want string
	}{
		{HSL{H: 0, S: 100, L: 50}, "#FF0000"},
		{HSL{H: 120, S: 100, L: 50}, "#00FF00"},
		{HSL{H: 240, S: 100, L: 50}, "#0000FF"},
		{HSL{H: 0, S: 0, L: 100}, "#FFFFFF"},
		{HSL{H: 0, S: 0, L: 0}, "#000000"},
	}
	for _, tt := range tests {
		if got := HSLToHex(tt.hsl); got != tt.want {
			t.Errorf("HSLToHex(%+v) = %q, want %q", tt.hsl, got, tt.want)
		}
	}
}

func TestHSLToHex_ClampsAndWraps(t *testing.T) {
	tests := []struct {
		name string
		in   HSL
		same HSL
	}{
		{"hue above range", HSL{H: 480, S: 100, L: 50}, HSL{H: 120, S: 100, L: 50}},
		{"negative hue", HSL{H: -120, S: 100, L: 50}, HSL{H: 240, S: 100, L: 50}},
		{"hue exactly 360", HSL{H: 360, S: 100, L: 50}, HSL{H: 0, S: 100, L: 50}},
		{"saturation above range", HSL{H: 10, S: 250, L: 50}, HSL{H: 10, S: 100, L: 50}},
		{"negative lightness", HSL{H: 10, S: 50, L: -20}, HSL{H: 10, S: 50, L: 0}},
		{"lightness above range", HSL{H: 10, S: 50, L: 101}, HSL{H: 10, S: 50, L: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := HSLToHex(tt.in), HSLToHex(tt.same); got != want {
				t.Errorf("HSLToHex(%+v) = %q, want %q", tt.in, got, want)
			}
		})
	}
}

func TestRoundTrip_WithinOnePerChannel(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		orig := RGB{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		hex := RGBToHex(orig)

		hsl, err := HexToHSL(hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q) unexpected error: %v", hex, err)
		}
		back, err := HexToRGB(HSLToHex(hsl))
		if err != nil {
			t.Fatalf("HexToRGB unexpected error: %v", err)
		}

		if absDiff(orig.R, back.R) > 1 || absDiff(orig.G, back.G) > 1 || absDiff(orig.B, back.B) > 1 {
			t.Fatalf("round trip of %s drifted: %+v -> %+v", hex, orig, back)
		}
	}
}

func TestHexToHSL_HueAlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		hex := RGBToHex(RGB{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))})
		hsl, err := HexToHSL(hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q) unexpected error: %v", hex, err)
		}
		if hsl.H < 0 || hsl.H >= 360 {
			t.Fatalf("HexToHSL(%q) hue %v out of [0,360)", hex, hsl.H)
		}
		if hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
			t.Fatalf("HexToHSL(%q) = %+v out of range", hex, hsl)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	if got := RGBToHex(RGB{R: 0xA1, G: 0xB2, B: 0xC3}); got != "#A1B2C3" {
		t.Errorf("RGBToHex = %q, want %q", got, "#A1B2C3")
	}
}

func TestHexToRGB(t *testing.T) {
	got, err := HexToRGB("#a1b2c3")
	if err != nil {
		t.Fatalf("HexToRGB unexpected error: %v", err)
	}
	if got != (RGB{R: 0xA1, G: 0xB2, B: 0xC3}) {
		t.Errorf("HexToRGB = %+v", got)
	}
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
