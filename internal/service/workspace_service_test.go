package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/generator"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/state"
	"github.com/amterp/swatch/internal/store"
)

func newTestWorkspace(t *testing.T, defaults Defaults) (*WorkspaceService, *store.FileWorkingStore) {
	t.Helper()
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	machine := state.NewMachine(generator.New(rand.New(rand.NewSource(7))), newID)
	working := store.NewWorkingStore(config.NewPaths(t.TempDir()))
	return NewWorkspaceService(working, machine, defaults), working
}

func TestWorkspaceService_CurrentCreatesInitialPalette(t *testing.T) {
	svc, working := newTestWorkspace(t, Defaults{Count: 5, Theme: model.ThemePastel})

	p, err := svc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if len(p.Colors) != 5 {
		t.Errorf("Expected 5 colors, got %d", len(p.Colors))
	}
	if p.LockedCount() != 0 {
		t.Error("Initial palette should have nothing locked")
	}
	if p.Theme != model.ThemePastel {
		t.Errorf("Expected pastel theme, got %q", p.Theme)
	}

	stored, err := working.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if stored.ID != p.ID {
		t.Errorf("Expected stored id %s, got %s", p.ID, stored.ID)
	}

	again, _ := svc.Current()
	if again.ID != p.ID {
		t.Error("Current should return the stored palette on later calls")
	}
}

func TestWorkspaceService_GenerateKeepsLocks(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5})

	p, err := svc.ToggleLock(1)
	if err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	locked := p.Colors[1]

	next, err := svc.Generate(GenerateInput{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if next.ID == p.ID {
		t.Error("Generate should assign a new id")
	}
	if next.Colors[1] != locked {
		t.Errorf("Locked color changed: %v -> %v", locked, next.Colors[1])
	}
}

func TestWorkspaceService_GenerateOptions(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5, Harmony: model.HarmonyTriadic})

	harmony := model.HarmonyComplementary
	p, err := svc.Generate(GenerateInput{Count: 3, Harmony: &harmony})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(p.Colors) != 3 {
		t.Errorf("Expected 3 colors, got %d", len(p.Colors))
	}
	if p.Harmony != model.HarmonyComplementary {
		t.Errorf("Expected complementary, got %q", p.Harmony)
	}

	// Harmony sticks to the palette when not given again
	next, err := svc.Generate(GenerateInput{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if next.Harmony != model.HarmonyComplementary {
		t.Errorf("Expected sticky harmony, got %q", next.Harmony)
	}
	if len(next.Colors) != 3 {
		t.Errorf("Expected size to be kept, got %d", len(next.Colors))
	}

	if _, err := svc.Generate(GenerateInput{Count: model.MaxCount + 1}); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestWorkspaceService_SetColor(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5})

	if _, err := svc.ToggleLock(0); err != nil {
		t.Fatalf("ToggleLock failed: %v", err)
	}
	p, err := svc.SetColor(0, "abc")
	if err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}
	if p.Colors[0].Hex != "#AABBCC" {
		t.Errorf("Expected #AABBCC, got %s", p.Colors[0].Hex)
	}
	if !p.Colors[0].Locked {
		t.Error("SetColor should keep the lock")
	}

	if _, err := svc.SetColor(0, "not-a-color"); !swerr.IsInvalidColor(err) {
		t.Errorf("Expected invalid color error, got %v", err)
	}
	if _, err := svc.SetColor(9, "#000000"); !swerr.IsValidationError(err) {
		t.Errorf("Expected validation error for bad slot, got %v", err)
	}
}

func TestWorkspaceService_ToggleLockHex(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5})

	if _, err := svc.SetColor(2, "#123456"); err != nil {
		t.Fatalf("SetColor failed: %v", err)
	}
	p, err := svc.ToggleLockHex("123456")
	if err != nil {
		t.Fatalf("ToggleLockHex failed: %v", err)
	}
	if !p.Colors[2].Locked {
		t.Error("Expected slot 3 to be locked")
	}

	if _, err := svc.ToggleLockHex("#FEDCBA"); !swerr.IsNotFound(err) {
		t.Errorf("Expected not found, got %v", err)
	}
	if _, err := svc.ToggleLockHex("zzz"); !swerr.IsInvalidColor(err) {
		t.Errorf("Expected invalid color, got %v", err)
	}
}

func TestWorkspaceService_ToggleLockHex_HandEditedLowercase(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5})

	edited := model.Palette{ID: "edited", Colors: []model.Color{{Hex: "#a1b2c3"}, {Hex: "#000000"}}}
	if _, err := svc.Replace(edited); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	p, err := svc.ToggleLockHex("#A1B2C3")
	if err != nil {
		t.Fatalf("ToggleLockHex failed: %v", err)
	}
	if !p.Colors[0].Locked || p.Colors[1].Locked {
		t.Errorf("Expected only the first color locked, got %+v", p.Colors)
	}
}

func TestWorkspaceService_Replace(t *testing.T) {
	svc, _ := newTestWorkspace(t, Defaults{Count: 5})

	loaded := model.Palette{ID: "saved1", Name: "Saved", Colors: []model.Color{{Hex: "#000000", Locked: true}}}
	if _, err := svc.Replace(loaded); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	current, err := svc.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}
	if current.ID != "saved1" || current.Name != "Saved" {
		t.Errorf("Expected loaded palette, got %+v", current)
	}
}
