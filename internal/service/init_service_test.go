package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/swatch/internal/store"
)

func TestInitService_Initialize(t *testing.T) {
	dir := t.TempDir()
	globalStore := store.NewGlobalStoreAt(filepath.Join(dir, "global", "config.toml"))
	svc := NewInitService(nil, globalStore)

	result, err := svc.Initialize(dir, "")
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if result.AlreadyInitialized {
		t.Error("Fresh directory should not be already initialized")
	}

	want := filepath.Join(dir, ".swatch")
	if result.DataRoot != want {
		t.Errorf("Expected data root %s, got %s", want, result.DataRoot)
	}
	if _, err := os.Stat(filepath.Join(want, "palettes")); err != nil {
		t.Errorf("palettes dir not created: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "global", "config.toml")); err != nil {
		t.Errorf("global config not created: %v", err)
	}

	again, err := svc.Initialize(dir, "")
	if err != nil {
		t.Fatalf("second Initialize failed: %v", err)
	}
	if !again.AlreadyInitialized {
		t.Error("Second Initialize should report already initialized")
	}
}

func TestInitService_CustomLocation(t *testing.T) {
	dir := t.TempDir()
	svc := NewInitService(nil, nil)

	custom := filepath.Join(dir, "elsewhere", "colors")
	result, err := svc.Initialize(dir, custom)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if result.DataRoot != custom {
		t.Errorf("Expected %s, got %s", custom, result.DataRoot)
	}
	if _, err := os.Stat(filepath.Join(custom, "palettes")); err != nil {
		t.Errorf("palettes dir not created: %v", err)
	}
}
