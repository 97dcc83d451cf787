package store

import "github.com/amterp/swatch/internal/model"

// PaletteStore handles saved palette persistence.
// Failures to read or write the backend are returned as StorageError.
type PaletteStore interface {
	Save(p *model.Palette) error // Overwrites an existing palette with the same id
	Get(id string) (*model.Palette, error)
	List() ([]*model.Palette, error) // Newest first
	Delete(id string) error
	FindByAlias(alias string) (*model.Palette, error)
	Close() error
}

// WorkingStore keeps the palette a CLI session is editing between invocations.
type WorkingStore interface {
	Load() (*model.Palette, error) // NotFound if nothing has been generated yet
	Save(p *model.Palette) error
}

// GlobalStore handles global config persistence.
type GlobalStore interface {
	Load() (*model.GlobalConfig, error)
	Save(config *model.GlobalConfig) error
	EnsureExists() error
}
