package store

import (
	"fmt"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
)

// Open returns the palette store for a backend name.
func Open(backend string, paths *config.Paths) (PaletteStore, error) {
	switch backend {
	case "", model.StoreFile:
		return NewPaletteStore(paths), nil
	case model.StoreSQLite:
		return NewSQLitePaletteStore(paths.DatabasePath())
	default:
		return nil, fmt.Errorf("unsupported store %q", backend)
	}
}
