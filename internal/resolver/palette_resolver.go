package resolver

import (
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
)

// PaletteResolver handles saved palette ID and alias resolution.
type PaletteResolver struct {
	palettes store.PaletteStore
}

// NewPaletteResolver creates a new palette resolver.
func NewPaletteResolver(palettes store.PaletteStore) *PaletteResolver {
	return &PaletteResolver{palettes: palettes}
}

// Resolve finds a palette by ID or alias.
// Tries exact ID match first (faster), then falls back to alias lookup.
func (r *PaletteResolver) Resolve(idOrAlias string) (*model.Palette, error) {
	p, err := r.palettes.Get(idOrAlias)
	if err == nil {
		return p, nil
	}
	// Storage failures on the id lookup are real errors, not a cue to try aliases
	if !swerr.IsNotFound(err) {
		return nil, err
	}

	p, err = r.palettes.FindByAlias(idOrAlias)
	if err == nil {
		return p, nil
	}

	if swerr.IsNotFound(err) {
		return nil, swerr.PaletteNotFound(idOrAlias)
	}
	return nil, err
}
