package store

import (
	"sort"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

func validateForSave(p *model.Palette) error {
	if p == nil {
		return swerr.InvalidField("palette", "is nil")
	}
	if p.ID == "" {
		return swerr.InvalidField("id", "cannot be empty")
	}
	// ids become file names
	if !validID(p.ID) {
		return swerr.InvalidField("id", "may only contain letters, digits, '-' and '_'")
	}
	for _, c := range p.Colors {
		if !colormath.IsHexColor(c.Hex) {
			return swerr.InvalidColor(c.Hex)
		}
	}
	return nil
}

func validID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func sortNewestFirst(palettes []*model.Palette) {
	sort.SliceStable(palettes, func(i, j int) bool {
		if palettes[i].CreatedAtMillis != palettes[j].CreatedAtMillis {
			return palettes[i].CreatedAtMillis > palettes[j].CreatedAtMillis
		}
		return palettes[i].ID < palettes[j].ID
	})
}
