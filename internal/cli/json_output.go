package cli

import (
	"encoding/json"
	"fmt"

	"github.com/amterp/swatch/internal/colormath"
	"github.com/amterp/swatch/internal/model"
)

// paletteJson represents a palette with all fields for JSON output.
// This exists so that output always carries every field (model.Palette omits empties)
// and never the internal file version.
//
// SYNC WARNING: This struct must stay in sync with model.Palette fields.
// If you add fields to model.Palette, add them here too. See TestPaletteJsonFieldSync.
type paletteJson struct {
	ID              string        `json:"id"`
	Colors          []model.Color `json:"colors"`
	Name            string        `json:"name"`
	Alias           string        `json:"alias"`
	Harmony         model.Harmony `json:"harmony"`
	Theme           model.Theme   `json:"theme"`
	CreatedAtMillis int64         `json:"created_at_millis"`
}

func paletteToJson(p *model.Palette) paletteJson {
	colors := p.Colors
	if colors == nil {
		colors = []model.Color{}
	}
	return paletteJson{
		ID:              p.ID,
		Colors:          colors,
		Name:            p.Name,
		Alias:           p.Alias,
		Harmony:         p.Harmony,
		Theme:           p.Theme,
		CreatedAtMillis: p.CreatedAtMillis,
	}
}

// PaletteOutput wraps a single palette for JSON output.
type PaletteOutput struct {
	Palette paletteJson `json:"palette"`
}

// NewPaletteOutput creates a PaletteOutput from a model.Palette.
func NewPaletteOutput(p *model.Palette) PaletteOutput {
	return PaletteOutput{Palette: paletteToJson(p)}
}

// PalettesOutput wraps a list of palettes for JSON output.
type PalettesOutput struct {
	Palettes []paletteJson `json:"palettes"`
}

// NewPalettesOutput creates a PalettesOutput.
// Always returns an empty array (not null) when there are no palettes.
func NewPalettesOutput(palettes []*model.Palette) PalettesOutput {
	result := make([]paletteJson, 0, len(palettes))
	for _, p := range palettes {
		result = append(result, paletteToJson(p))
	}
	return PalettesOutput{Palettes: result}
}

// ConvertOutput is every representation of one color.
type ConvertOutput struct {
	Hex       string        `json:"hex"`
	HSL       colormath.HSL `json:"hsl"`
	RGB       colormath.RGB `json:"rgb"`
	TextColor string        `json:"text_color"`
}

// InitOutput reports where the data directory was created.
type InitOutput struct {
	DataRoot           string `json:"data_root"`
	AlreadyInitialized bool   `json:"already_initialized"`
}

// ExportOutput reports where an export was written.
type ExportOutput struct {
	Path   string `json:"path"`
	Format string `json:"format"`
}

// printJson marshals the value as indented JSON and prints it to stdout.
func printJson(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// warnJsonNotSupported prints a warning to stderr when --json is used on an unsupported command.
func warnJsonNotSupported(command string) {
	PrintWarning("--json is not supported for '%s' (flag ignored)", command)
}
