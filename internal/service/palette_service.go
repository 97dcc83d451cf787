package service

import (
	"fmt"
	"strings"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/export"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/resolver"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

// PaletteService handles saved palette operations.
type PaletteService struct {
	palettes     store.PaletteStore
	aliasService *AliasService
	resolver     *resolver.PaletteResolver
	now          func() int64
}

// NewPaletteService creates a new palette service.
func NewPaletteService(palettes store.PaletteStore, aliasService *AliasService) *PaletteService {
	return &PaletteService{
		palettes:     palettes,
		aliasService: aliasService,
		resolver:     resolver.NewPaletteResolver(palettes),
		now:          util.NowMillis,
	}
}

// SaveInput contains the input for saving a palette.
type SaveInput struct {
	Palette model.Palette
	// Name is optional; empty keeps the palette's existing name.
	Name string
}

// Save persists a snapshot of the palette keyed by its id.
// A previously saved palette with the same id is overwritten.
func (s *PaletteService) Save(input SaveInput) (*model.Palette, error) {
	p := input.Palette.Clone()
	if p.ID == "" {
		return nil, swerr.InvalidField("id", "cannot be empty")
	}
	for i, c := range p.Colors {
		hex, err := colormath.Normalize(c.Hex)
		if err != nil {
			return nil, err
		}
		p.Colors[i].Hex = hex
	}

	name := strings.TrimSpace(input.Name)
	if name != "" {
		p.Name = name
	}

	// Keep the alias across re-saves unless the name changed
	if p.Alias == "" || name != "" {
		aliasSource := p.Name
		if aliasSource == "" {
			aliasSource = defaultAlias
		}
		alias, err := s.aliasService.GenerateAlias(aliasSource, p.ID)
		if err != nil {
			return nil, err
		}
		p.Alias = alias
	}

	if p.CreatedAtMillis == 0 {
		p.CreatedAtMillis = s.now()
	}

	if err := s.palettes.Save(&p); err != nil {
		return nil, fmt.Errorf("saving palette %s: %w", p.ID, err)
	}
	return &p, nil
}

// Get resolves a saved palette by id or alias.
func (s *PaletteService) Get(idOrAlias string) (*model.Palette, error) {
	return s.resolver.Resolve(idOrAlias)
}

// List returns all saved palettes, newest first.
func (s *PaletteService) List() ([]*model.Palette, error) {
	return s.palettes.List()
}

// Delete removes a saved palette by id or alias.
func (s *PaletteService) Delete(idOrAlias string) (*model.Palette, error) {
	p, err := s.resolver.Resolve(idOrAlias)
	if err != nil {
		return nil, err
	}
	if err := s.palettes.Delete(p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

// Export renders a palette in the named format.
func (s *PaletteService) Export(p model.Palette, format string) (export.Document, error) {
	f, err := export.ParseFormat(format)
	if err != nil {
		return export.Document{}, err
	}
	return export.Export(p, f)
}
