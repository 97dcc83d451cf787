package state

import (
	"sync"
	"time"

	"github.com/amterp/swatch/internal/model"
)

// GeneratingFor is how long the generating flag stays set after a regenerate.
const GeneratingFor = 500 * time.Millisecond

// Snapshot is a point-in-time view of a session.
type Snapshot struct {
	Palette    model.Palette `json:"palette"`
	Harmony    model.Harmony `json:"harmony"`
	Theme      model.Theme   `json:"theme"`
	Generating bool          `json:"generating"`
}

// ChangeFunc is called after every successful transition, outside the session lock.
type ChangeFunc func(Snapshot)

// Session serializes transitions on a single current palette.
type Session struct {
	mu              sync.Mutex
	machine         *Machine
	palette         model.Palette
	harmony         model.Harmony
	theme           model.Theme
	generatingUntil time.Time
	now             func() time.Time
	listeners       []ChangeFunc
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		s.now = now
	}
}

// WithSelection sets the initially selected harmony and theme.
func WithSelection(harmony model.Harmony, theme model.Theme) SessionOption {
	return func(s *Session) {
		s.harmony = harmony
		s.theme = theme
	}
}

// NewSession creates a session starting from initial.
func NewSession(machine *Machine, initial model.Palette, opts ...SessionOption) *Session {
	s := &Session{
		machine: machine,
		palette: initial.Clone(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnChange registers a listener for state changes.
func (s *Session) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Palette returns a copy of the current palette.
func (s *Session) Palette() model.Palette {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.palette.Clone()
}

// Regenerate replaces unlocked colors. A positive count resizes the palette.
// A nil harmony or theme keeps the current selection; a non-nil one becomes
// the selection for later regenerates.
func (s *Session) Regenerate(count int, harmony *model.Harmony, theme *model.Theme) (Snapshot, error) {
	return s.applyErr(func() error {
		h, t := s.harmony, s.theme
		if harmony != nil {
			h = *harmony
		}
		if theme != nil {
			t = *theme
		}
		next, err := s.machine.Regenerate(s.palette, count, h, t)
		if err != nil {
			return err
		}
		s.palette = next
		s.harmony, s.theme = h, t
		s.generatingUntil = s.now().Add(GeneratingFor)
		return nil
	})
}

// ToggleLock flips the lock on every color matching hex.
func (s *Session) ToggleLock(hex string) Snapshot {
	return s.apply(func() error {
		s.palette = ToggleLock(s.palette, hex)
		return nil
	})
}

// SetColor replaces every color matching target.
func (s *Session) SetColor(target string, c model.Color) (Snapshot, error) {
	return s.applyErr(func() error {
		next, err := SetColor(s.palette, target, c)
		if err != nil {
			return err
		}
		s.palette = next
		return nil
	})
}

// ToggleLockAt flips the lock on one slot.
func (s *Session) ToggleLockAt(slot int) (Snapshot, error) {
	return s.applyErr(func() error {
		next, err := ToggleLockAt(s.palette, slot)
		if err != nil {
			return err
		}
		s.palette = next
		return nil
	})
}

// SetColorAt replaces one slot, keeping its lock state.
func (s *Session) SetColorAt(slot int, hex string) (Snapshot, error) {
	return s.applyErr(func() error {
		if !s.palette.HasSlot(slot) {
			return slotError(slot, len(s.palette.Colors))
		}
		next, err := SetColorAt(s.palette, slot, model.Color{Hex: hex, Locked: s.palette.Colors[slot].Locked})
		if err != nil {
			return err
		}
		s.palette = next
		return nil
	})
}

// Replace makes p the current palette, e.g. after loading a saved one.
func (s *Session) Replace(p model.Palette) Snapshot {
	return s.apply(func() error {
		s.palette = p.Clone()
		if p.Harmony != model.HarmonyNone || p.Theme != model.ThemeNone {
			s.harmony = p.Harmony
			s.theme = p.Theme
		}
		return nil
	})
}

// Annotate updates the name and alias of the current palette without changing its colors.
func (s *Session) Annotate(name, alias string, createdAtMillis int64) Snapshot {
	return s.apply(func() error {
		next := s.palette.Clone()
		next.Name = name
		next.Alias = alias
		next.CreatedAtMillis = createdAtMillis
		s.palette = next
		return nil
	})
}

func (s *Session) apply(fn func() error) Snapshot {
	snap, _ := s.applyErr(fn)
	return snap
}

func (s *Session) applyErr(fn func() error) (Snapshot, error) {
	s.mu.Lock()
	if err := fn(); err != nil {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, err
	}
	snap := s.snapshotLocked()
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
	return snap, nil
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Palette:    s.palette.Clone(),
		Harmony:    s.harmony,
		Theme:      s.theme,
		Generating: s.now().Before(s.generatingUntil),
	}
}
