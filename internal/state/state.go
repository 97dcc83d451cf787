// Package state holds the current palette and the transitions that change it.
//
// Transitions never modify the palette they are given; each returns a new value.
package state

import (
	"fmt"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/generator"
	"github.com/amterp/swatch/internal/model"
)

// IDFunc mints palette ids.
type IDFunc func() string

// Machine applies transitions using a generator and an id source.
type Machine struct {
	gen   *generator.Generator
	newID IDFunc
}

// NewMachine creates a Machine.
func NewMachine(gen *generator.Generator, newID IDFunc) *Machine {
	return &Machine{gen: gen, newID: newID}
}

// Initial creates a fresh palette with nothing locked.
func (m *Machine) Initial(count int, harmony model.Harmony, theme model.Theme) (model.Palette, error) {
	colors, err := m.gen.Generate(generator.Options{Count: count, Harmony: harmony, Theme: theme})
	if err != nil {
		return model.Palette{}, err
	}
	return model.Palette{ID: m.newID(), Colors: colors, Harmony: harmony, Theme: theme}, nil
}

// Regenerate returns a palette with a new id and fresh colors in every unlocked slot.
// The palette size is kept unless count is positive.
func (m *Machine) Regenerate(p model.Palette, count int, harmony model.Harmony, theme model.Theme) (model.Palette, error) {
	if count <= 0 {
		count = len(p.Colors)
	}
	colors, err := m.gen.Generate(generator.Options{
		Count:    count,
		Harmony:  harmony,
		Theme:    theme,
		Previous: p.Colors,
	})
	if err != nil {
		return model.Palette{}, err
	}
	return model.Palette{ID: m.newID(), Colors: colors, Harmony: harmony, Theme: theme}, nil
}

// ToggleLock flips the lock on every color whose hex matches.
// No match returns the palette unchanged.
func ToggleLock(p model.Palette, hex string) model.Palette {
	target, err := colormath.Normalize(hex)
	if err != nil {
		return p.Clone()
	}
	out := p.Clone()
	for i := range out.Colors {
		if sameHex(out.Colors[i].Hex, target) {
			out.Colors[i].Locked = !out.Colors[i].Locked
		}
	}
	return out
}

// HasColor reports whether any color in p matches hex.
func HasColor(p model.Palette, hex string) bool {
	target, err := colormath.Normalize(hex)
	if err != nil {
		return false
	}
	for _, c := range p.Colors {
		if sameHex(c.Hex, target) {
			return true
		}
	}
	return false
}

// SetColor replaces every color whose hex matches target with c.
// No match returns the palette unchanged.
func SetColor(p model.Palette, target string, c model.Color) (model.Palette, error) {
	replacement, err := normalizeColor(c)
	if err != nil {
		return model.Palette{}, err
	}
	out := p.Clone()
	normalized, err := colormath.Normalize(target)
	if err != nil {
		return out, nil
	}
	for i := range out.Colors {
		if sameHex(out.Colors[i].Hex, normalized) {
			out.Colors[i] = replacement
		}
	}
	return out, nil
}

// ToggleLockAt flips the lock on a single slot.
func ToggleLockAt(p model.Palette, slot int) (model.Palette, error) {
	if !p.HasSlot(slot) {
		return model.Palette{}, slotError(slot, len(p.Colors))
	}
	out := p.Clone()
	out.Colors[slot].Locked = !out.Colors[slot].Locked
	return out, nil
}

// SetColorAt replaces a single slot.
func SetColorAt(p model.Palette, slot int, c model.Color) (model.Palette, error) {
	if !p.HasSlot(slot) {
		return model.Palette{}, slotError(slot, len(p.Colors))
	}
	replacement, err := normalizeColor(c)
	if err != nil {
		return model.Palette{}, err
	}
	out := p.Clone()
	out.Colors[slot] = replacement
	return out, nil
}

func normalizeColor(c model.Color) (model.Color, error) {
	hex, err := colormath.Normalize(c.Hex)
	if err != nil {
		return model.Color{}, err
	}
	return model.Color{Hex: hex, Locked: c.Locked}, nil
}

// sameHex compares a stored hex with a normalized one.
func sameHex(stored, normalized string) bool {
	n, err := colormath.Normalize(stored)
	return err == nil && n == normalized
}

func slotError(slot, size int) error {
	if size == 0 {
		return swerr.InvalidField("slot", "palette is empty")
	}
	// Slots are shown 1-based to users.
	return swerr.InvalidField("slot", fmt.Sprintf("must be between 1 and %d, got %d", size, slot+1))
}
