package model

import (
	"strings"
)

const (
	// DefaultCount is the number of colors in a palette when none is requested.
	DefaultCount = 5
	// MaxCount is the largest palette the generator will produce.
	MaxCount = 10
)

// Color is one slot of a palette.
type Color struct {
	Hex    string `json:"hex" yaml:"hex"`
	Locked bool   `json:"locked" yaml:"locked"`
}

// Palette is an ordered set of colors with an identity.
// Stored as <data>/palettes/<id>.json by the file store.
// Schema changes require a version bump. See internal/version/version.go.
type Palette struct {
	Version         int     `json:"_v,omitempty" yaml:"-"`
	ID              string  `json:"id" yaml:"id"`
	Colors          []Color `json:"colors" yaml:"colors"`
	Name            string  `json:"name,omitempty" yaml:"name,omitempty"`
	Alias           string  `json:"alias,omitempty" yaml:"alias,omitempty"`
	Harmony         Harmony `json:"harmony,omitempty" yaml:"harmony,omitempty"`
	Theme           Theme   `json:"theme,omitempty" yaml:"theme,omitempty"`
	CreatedAtMillis int64   `json:"created_at_millis,omitempty" yaml:"created_at_millis,omitempty"`
}

// Clone returns a deep copy so callers can mutate colors freely.
func (p Palette) Clone() Palette {
	out := p
	if p.Colors != nil {
		out.Colors = make([]Color, len(p.Colors))
		copy(out.Colors, p.Colors)
	}
	return out
}

// Hexes returns the hex value of each color in slot order.
func (p Palette) Hexes() []string {
	hexes := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexes[i] = c.Hex
	}
	return hexes
}

// LockedCount returns how many slots are locked.
func (p Palette) LockedCount() int {
	n := 0
	for _, c := range p.Colors {
		if c.Locked {
			n++
		}
	}
	return n
}

// DisplayName returns the name, falling back to the alias and then the id.
func (p Palette) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	if p.Alias != "" {
		return p.Alias
	}
	return p.ID
}

// HasSlot reports whether slot is a valid index into the palette.
func (p Palette) HasSlot(slot int) bool {
	return slot >= 0 && slot < len(p.Colors)
}
