package prompt

import (
	"errors"
	"testing"

	"github.com/amterp/swatch/internal/model"
)

type scriptedPrompter struct {
	answers []string
	seen    []string
	current []string
}

func (s *scriptedPrompter) Select(title string, options []string, current string) (string, error) {
	s.seen = append(s.seen, title)
	s.current = append(s.current, current)
	if options[0] != "none" {
		return "", errors.New("none should be offered first")
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

func (s *scriptedPrompter) Input(string, string) (string, error) { return "", nil }
func (s *scriptedPrompter) Confirm(string, bool) (bool, error)   { return false, nil }

func TestPickOptions(t *testing.T) {
	p := &scriptedPrompter{answers: []string{"triadic", "none"}}

	h, th, err := PickOptions(p, model.HarmonyNone, model.ThemeDark)
	if err != nil {
		t.Fatalf("PickOptions failed: %v", err)
	}
	if h != model.HarmonyTriadic {
		t.Errorf("Expected triadic, got %q", h)
	}
	if th != model.ThemeNone {
		t.Errorf("Expected theme cleared, got %q", th)
	}
	if len(p.seen) != 2 || p.seen[0] != "Harmony" || p.seen[1] != "Theme" {
		t.Errorf("Unexpected prompts %v", p.seen)
	}
	if p.current[0] != "none" || p.current[1] != "dark" {
		t.Errorf("Expected current selections to be preselected, got %v", p.current)
	}
}

func TestPickOptions_NonInteractive(t *testing.T) {
	h, th, err := PickOptions(&NoopPrompter{}, model.HarmonyAnalogous, model.ThemeMuted)
	if !errors.Is(err, ErrNonInteractive) {
		t.Fatalf("Expected ErrNonInteractive, got %v", err)
	}
	if h != model.HarmonyAnalogous || th != model.ThemeMuted {
		t.Error("Selection should be unchanged on error")
	}
}
