package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
)

var (
	hslPattern = regexp.MustCompile(`^hsl\(\s*(-?[\d.]+)\s*,\s*([\d.]+)%?\s*,\s*([\d.]+)%?\s*\)$`)
	rgbPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
)

func registerConvert(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("convert")
	cmd.SetDescription("Show a color as hex, HSL and RGB")

	ctx.ConvertColor, _ = ra.NewString("color").
		SetUsage(`Color as "#A1B2C3", "hsl(210, 40%, 50%)" or "rgb(161, 178, 195)"`).
		Register(cmd)

	ctx.ConvertUsed, _ = parent.RegisterCmd(cmd)
}

func runConvert(arg string, jsonOutput bool) {
	out, err := convertColor(arg)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(out); err != nil {
			Fatal(err)
		}
		return
	}

	const labelWidth = 5
	fmt.Printf("%s %s\n\n", ColorSwatch(out.Hex), RenderBold(out.Hex))
	fmt.Println(LabelValue("HSL", fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", out.HSL.H, out.HSL.S, out.HSL.L), labelWidth))
	fmt.Println(LabelValue("RGB", fmt.Sprintf("rgb(%d, %d, %d)", out.RGB.R, out.RGB.G, out.RGB.B), labelWidth))
	fmt.Println(LabelValue("Text", out.TextColor, labelWidth))
}

// convertColor parses hex, hsl() or rgb() notation and returns every representation.
func convertColor(arg string) (ConvertOutput, error) {
	hex, err := parseColorNotation(arg)
	if err != nil {
		return ConvertOutput{}, err
	}

	hsl, err := colormath.HexToHSL(hex)
	if err != nil {
		return ConvertOutput{}, err
	}
	rgb, err := colormath.HexToRGB(hex)
	if err != nil {
		return ConvertOutput{}, err
	}
	return ConvertOutput{
		Hex:       hex,
		HSL:       hsl,
		RGB:       rgb,
		TextColor: colormath.TextColor(hex),
	}, nil
}

func parseColorNotation(arg string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(arg))

	if m := hslPattern.FindStringSubmatch(value); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if s > 100 || l > 100 {
			return "", swerr.InvalidColor(arg)
		}
		return colormath.HSLToHex(colormath.HSL{H: h, S: s, L: l}), nil
	}

	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		var channels [3]uint8
		for i := range channels {
			n, err := strconv.Atoi(m[i+1])
			if err != nil || n > 255 {
				return "", swerr.InvalidColor(arg)
			}
			channels[i] = uint8(n)
		}
		return colormath.RGBToHex(colormath.RGB{R: channels[0], G: channels[1], B: channels[2]}), nil
	}

	return colormath.Normalize(arg)
}
