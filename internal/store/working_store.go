package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/version"
)

// FileWorkingStore keeps the CLI's working palette in <data>/current.json.
type FileWorkingStore struct {
	paths *config.Paths
}

// NewWorkingStore creates a new working palette store.
func NewWorkingStore(paths *config.Paths) *FileWorkingStore {
	return &FileWorkingStore{paths: paths}
}

// Load reads the working palette.
func (s *FileWorkingStore) Load() (*model.Palette, error) {
	p, err := readPaletteFile(s.paths.CurrentPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &swerr.NotFoundError{Resource: "working palette", ID: config.CurrentFileName}
		}
		return nil, swerr.Storage("load", err)
	}
	return p, nil
}

// Save writes the working palette.
func (s *FileWorkingStore) Save(p *model.Palette) error {
	path := s.paths.CurrentPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return swerr.Storage("save", fmt.Errorf("failed to create data directory: %w", err))
	}
	p.Version = version.CurrentPaletteVersion
	if err := writePaletteFile(path, p); err != nil {
		return swerr.Storage("save", err)
	}
	return nil
}
