package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/export"
)

func TestWriteDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	doc := export.Document{Filename: "palette-abc.json", Body: []byte("{}\n")}

	path, err := WriteDocument(dir, doc)
	if err != nil {
		t.Fatalf("WriteDocument failed: %v", err)
	}
	if path != filepath.Join(dir, "palette-abc.json") {
		t.Errorf("Unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "{}\n" {
		t.Errorf("Unexpected content %q", data)
	}
}

func TestListPaletteFiles_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	palettes := filepath.Join(dir, "palettes")
	os.MkdirAll(filepath.Join(palettes, "sub"), 0755)
	os.WriteFile(filepath.Join(palettes, "a.json"), []byte("{}"), 0644)
	os.WriteFile(filepath.Join(palettes, "notes.txt"), []byte("x"), 0644)

	ids, err := listPaletteFiles(config.NewPaths(dir))
	if err != nil {
		t.Fatalf("listPaletteFiles failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("Expected [a], got %v", ids)
	}
}
