package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amterp/swatch/internal/model"
)

func TestFileGlobalStore_MissingFileIsEmpty(t *testing.T) {
	s := NewGlobalStoreAt(filepath.Join(t.TempDir(), "config.toml"))
	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Count != 0 || cfg.Store != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestFileGlobalStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	s := NewGlobalStoreAt(path)

	cfg := &model.GlobalConfig{DefaultHarmony: "analogous", DefaultTheme: "dark", Count: 6, Store: "sqlite", Port: 7000}
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `swatch_schema = "global/1"`) {
		t.Errorf("schema not stamped:\n%s", data)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DefaultHarmony != "analogous" || loaded.Count != 6 || loaded.Port != 7000 {
		t.Errorf("unexpected config: %+v", loaded)
	}
}

func TestFileGlobalStore_SchemaValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing", "count = 5\n", "no schema version"},
		{"future", "swatch_schema = \"global/9\"\n", "requires swatch"},
		{"garbage", "swatch_schema = \"board/1\"\n", "invalid schema version"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := NewGlobalStoreAt(path).Load()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestFileGlobalStore_EnsureExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	s := NewGlobalStoreAt(path)
	if err := s.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not created: %v", err)
	}
}
