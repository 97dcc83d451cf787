package model

// Storage backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// DefaultPort is where `swatch serve` listens when nothing else is configured.
const DefaultPort = 5260

// GlobalConfig represents the user's global swatch configuration.
// Stored at ~/.config/swatch/config.toml
// Schema changes require a version bump. See internal/version/version.go.
type GlobalConfig struct {
	SwatchSchema   string `toml:"swatch_schema"`
	DefaultHarmony string `toml:"default_harmony,omitempty"`
	DefaultTheme   string `toml:"default_theme,omitempty"`
	Count          int    `toml:"count,omitempty"`
	Store          string `toml:"store,omitempty"`    // "file" or "sqlite"
	DataDir        string `toml:"data_dir,omitempty"` // Overrides discovery
	Port           int    `toml:"port,omitempty"`
}

// GetCount returns the configured palette size, or the default.
func (g *GlobalConfig) GetCount() int {
	if g == nil || g.Count <= 0 {
		return DefaultCount
	}
	return g.Count
}

// GetStore returns the configured backend, defaulting to the file store.
func (g *GlobalConfig) GetStore() string {
	if g == nil || g.Store == "" {
		return StoreFile
	}
	return g.Store
}

// GetPort returns the configured server port, or the default.
func (g *GlobalConfig) GetPort() int {
	if g == nil || g.Port <= 0 {
		return DefaultPort
	}
	return g.Port
}
