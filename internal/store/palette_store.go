package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FilePaletteStore implements PaletteStore with one JSON file per palette.
type FilePaletteStore struct {
	paths *config.Paths
}

// NewPaletteStore creates a new file-backed palette store.
func NewPaletteStore(paths *config.Paths) *FilePaletteStore {
	return &FilePaletteStore{paths: paths}
}

// Save writes a palette to disk, replacing any previous snapshot with the same id.
func (s *FilePaletteStore) Save(p *model.Palette) error {
	if err := validateForSave(p); err != nil {
		return err
	}

	if err := os.MkdirAll(s.paths.PalettesDir(), 0755); err != nil {
		return swerr.Storage("save", fmt.Errorf("failed to create palettes directory: %w", err))
	}

	p.Version = version.CurrentPaletteVersion
	if err := writePaletteFile(s.paths.PalettePath(p.ID), p); err != nil {
		return swerr.Storage("save", err)
	}
	return nil
}

// Get reads a palette by id.
func (s *FilePaletteStore) Get(id string) (*model.Palette, error) {
	if !validID(id) {
		return nil, swerr.PaletteNotFound(id)
	}
	path := s.paths.PalettePath(id)
	p, err := readPaletteFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, swerr.PaletteNotFound(id)
		}
		return nil, swerr.Storage("load", fmt.Errorf("failed to read palette %s: %w", id, err))
	}
	return p, nil
}

// Delete removes a palette file.
func (s *FilePaletteStore) Delete(id string) error {
	if !validID(id) {
		return swerr.PaletteNotFound(id)
	}
	if err := os.Remove(s.paths.PalettePath(id)); err != nil {
		if os.IsNotExist(err) {
			return swerr.PaletteNotFound(id)
		}
		return swerr.Storage("delete", fmt.Errorf("failed to delete palette %s: %w", id, err))
	}
	return nil
}

// List returns all saved palettes, newest first.
// Malformed palette files are logged and skipped.
func (s *FilePaletteStore) List() ([]*model.Palette, error) {
	dir := s.paths.PalettesDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*model.Palette{}, nil
		}
		return nil, swerr.Storage("list", fmt.Errorf("failed to read palettes directory: %w", err))
	}

	palettes := []*model.Palette{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		p, err := readPaletteFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping malformed palette file")
			continue
		}
		palettes = append(palettes, p)
	}

	sortNewestFirst(palettes)
	return palettes, nil
}

// FindByAlias searches for a palette by alias.
func (s *FilePaletteStore) FindByAlias(alias string) (*model.Palette, error) {
	palettes, err := s.List()
	if err != nil {
		return nil, err
	}
	for _, p := range palettes {
		if p.Alias == alias {
			return p, nil
		}
	}
	return nil, swerr.PaletteNotFound(alias)
}

// Close is a no-op for the file store.
func (s *FilePaletteStore) Close() error {
	return nil
}

func readPaletteFile(path string) (*model.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p model.Palette
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if p.Version == 0 {
		return nil, version.MissingPaletteVersion(path)
	}
	if p.Version != version.CurrentPaletteVersion {
		return nil, version.InvalidPaletteVersion(path, p.Version)
	}
	return &p, nil
}

func writePaletteFile(path string, p *model.Palette) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write palette file: %w", err)
	}
	return nil
}
