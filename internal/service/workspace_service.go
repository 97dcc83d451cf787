package service

import (
	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/state"
	"github.com/amterp/swatch/internal/store"
)

// Defaults are the generation options used when a command doesn't set them.
type Defaults struct {
	Count   int
	Harmony model.Harmony
	Theme   model.Theme
}

// WorkspaceService applies palette transitions to the working palette that
// persists between CLI invocations.
type WorkspaceService struct {
	working  store.WorkingStore
	machine  *state.Machine
	defaults Defaults
}

// NewWorkspaceService creates a new workspace service.
func NewWorkspaceService(working store.WorkingStore, machine *state.Machine, defaults Defaults) *WorkspaceService {
	return &WorkspaceService{
		working:  working,
		machine:  machine,
		defaults: defaults,
	}
}

// Current returns the working palette, generating and storing one if none exists yet.
func (s *WorkspaceService) Current() (*model.Palette, error) {
	p, err := s.working.Load()
	if err == nil {
		return p, nil
	}
	if !swerr.IsNotFound(err) {
		return nil, err
	}

	initial, err := s.machine.Initial(s.defaults.Count, s.defaults.Harmony, s.defaults.Theme)
	if err != nil {
		return nil, err
	}
	if err := s.working.Save(&initial); err != nil {
		return nil, err
	}
	return &initial, nil
}

// GenerateInput contains the input for regenerating the working palette.
// Nil pointers fall back to the palette's previous options, then the defaults.
type GenerateInput struct {
	Count   int
	Harmony *model.Harmony
	Theme   *model.Theme
}

// Generate replaces every unlocked color of the working palette.
func (s *WorkspaceService) Generate(input GenerateInput) (*model.Palette, error) {
	current, err := s.Current()
	if err != nil {
		return nil, err
	}

	harmony := s.defaults.Harmony
	theme := s.defaults.Theme
	if current.Harmony != model.HarmonyNone {
		harmony = current.Harmony
	}
	if current.Theme != model.ThemeNone {
		theme = current.Theme
	}
	if input.Harmony != nil {
		harmony = *input.Harmony
	}
	if input.Theme != nil {
		theme = *input.Theme
	}

	next, err := s.machine.Regenerate(*current, input.Count, harmony, theme)
	if err != nil {
		return nil, err
	}
	return s.store(next)
}

// ToggleLock flips the lock on one slot (0-based).
func (s *WorkspaceService) ToggleLock(slot int) (*model.Palette, error) {
	current, err := s.Current()
	if err != nil {
		return nil, err
	}
	next, err := state.ToggleLockAt(*current, slot)
	if err != nil {
		return nil, err
	}
	return s.store(next)
}

// ToggleLockHex flips the lock on every color matching hex.
func (s *WorkspaceService) ToggleLockHex(hex string) (*model.Palette, error) {
	normalized, err := colormath.Normalize(hex)
	if err != nil {
		return nil, err
	}
	current, err := s.Current()
	if err != nil {
		return nil, err
	}
	if !state.HasColor(*current, normalized) {
		return nil, swerr.ColorNotFound(normalized)
	}
	return s.store(state.ToggleLock(*current, normalized))
}

// SetColor replaces the color in one slot (0-based), keeping its lock.
func (s *WorkspaceService) SetColor(slot int, hex string) (*model.Palette, error) {
	current, err := s.Current()
	if err != nil {
		return nil, err
	}
	if !current.HasSlot(slot) {
		_, err := state.SetColorAt(*current, slot, model.Color{Hex: hex})
		return nil, err
	}
	next, err := state.SetColorAt(*current, slot, model.Color{Hex: hex, Locked: current.Colors[slot].Locked})
	if err != nil {
		return nil, err
	}
	return s.store(next)
}

// Replace makes p the working palette, e.g. after loading a saved one.
func (s *WorkspaceService) Replace(p model.Palette) (*model.Palette, error) {
	return s.store(p)
}

func (s *WorkspaceService) store(p model.Palette) (*model.Palette, error) {
	if err := s.working.Save(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
