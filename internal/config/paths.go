package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultSwatchDir = ".swatch"
	PalettesDir      = "palettes"
	CurrentFileName  = "current.json"
	DatabaseFileName = "swatch.db"
	ConfigFileName   = "config.toml"
	GlobalConfigDir  = ".config/swatch"
	GlobalDataDir    = "data"
)

// Paths provides path resolution for swatch data files.
type Paths struct {
	dataRoot string
}

// NewPaths creates a Paths resolver rooted at a data directory
// (typically <project>/.swatch).
func NewPaths(dataRoot string) *Paths {
	return &Paths{dataRoot: dataRoot}
}

// DataRoot returns the root directory for swatch data.
func (p *Paths) DataRoot() string {
	return p.dataRoot
}

// PalettesDir returns the directory holding one JSON file per saved palette.
func (p *Paths) PalettesDir() string {
	return filepath.Join(p.dataRoot, PalettesDir)
}

// PalettePath returns the file path for a saved palette.
func (p *Paths) PalettePath(id string) string {
	return filepath.Join(p.PalettesDir(), id+".json")
}

// CurrentPath returns the working palette file used by the CLI.
func (p *Paths) CurrentPath() string {
	return filepath.Join(p.dataRoot, CurrentFileName)
}

// DatabasePath returns the SQLite database file.
func (p *Paths) DatabasePath() string {
	return filepath.Join(p.dataRoot, DatabaseFileName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ConfigFileName)
}

// GlobalConfigDirPath returns the directory for global config.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}

// DefaultDataRoot is where palettes live when no project directory is found.
func DefaultDataRoot() string {
	dir := GlobalConfigDirPath()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalDataDir)
}
