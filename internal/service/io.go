package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/export"
)

// readJSONMap reads a JSON object without binding it to a struct.
func readJSONMap(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// writeJSONMap writes a map to an indented JSON file.
func writeJSONMap(path string, data map[string]any) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(output, '\n'), 0644)
}

// listPaletteFiles returns the ids of all palette files in the palettes directory.
func listPaletteFiles(paths *config.Paths) ([]string, error) {
	entries, err := os.ReadDir(paths.PalettesDir())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// WriteDocument writes an exported document into dir under its suggested
// filename and returns the full path.
func WriteDocument(dir string, doc export.Document) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, doc.Filename)
	if err := os.WriteFile(path, doc.Body, 0644); err != nil {
		return "", err
	}
	return path, nil
}
