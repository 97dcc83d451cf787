package prompt

import (
	"errors"

	"github.com/amterp/swatch/internal/model"
)

// ErrNonInteractive is returned when prompting in non-interactive mode.
var ErrNonInteractive = errors.New("cannot prompt in non-interactive mode")

// Prompter defines the interface for interactive user prompts.
type Prompter interface {
	// Select presents options and returns the selected value.
	Select(title string, options []string, current string) (string, error)

	// Input prompts for text input.
	Input(title string, defaultValue string) (string, error)

	// Confirm prompts for yes/no.
	Confirm(title string, defaultValue bool) (bool, error)
}

// NoopPrompter returns errors for all prompts (non-interactive mode).
type NoopPrompter struct{}

func (p *NoopPrompter) Select(title string, options []string, current string) (string, error) {
	return "", ErrNonInteractive
}

func (p *NoopPrompter) Input(title string, defaultValue string) (string, error) {
	return "", ErrNonInteractive
}

func (p *NoopPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, ErrNonInteractive
}

// PickOptions asks for a harmony and a theme, offering "none" first so a
// selection can be cleared.
func PickOptions(p Prompter, harmony model.Harmony, theme model.Theme) (model.Harmony, model.Theme, error) {
	h, err := p.Select("Harmony", withNone(model.HarmonyNames()), harmony.Label())
	if err != nil {
		return harmony, theme, err
	}
	pickedHarmony, err := model.ParseHarmony(h)
	if err != nil {
		return harmony, theme, err
	}

	t, err := p.Select("Theme", withNone(model.ThemeNames()), theme.Label())
	if err != nil {
		return harmony, theme, err
	}
	pickedTheme, err := model.ParseTheme(t)
	if err != nil {
		return harmony, theme, err
	}
	return pickedHarmony, pickedTheme, nil
}

func withNone(names []string) []string {
	return append([]string{"none"}, names...)
}
