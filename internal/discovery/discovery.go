package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/swatch/internal/config"
)

// Source records where the data directory came from.
type Source string

const (
	SourceOverride Source = "override" // SWATCH_DATA_DIR or data_dir in config
	SourceProject  Source = "project"  // .swatch/ found walking up from cwd
	SourceGlobal   Source = "global"   // ~/.config/swatch/data fallback
)

// Result contains the resolved data directory.
type Result struct {
	DataRoot    string // Absolute path to the swatch data directory
	ProjectRoot string // Directory containing .swatch/, empty unless Source is project
	Source      Source
}

// Resolve picks the data directory.
// Priority:
// 1. Explicit override (env or global config)
// 2. Nearest .swatch/ walking up from cwd
// 3. Global data directory
func Resolve(override string) (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return ResolveFrom(cwd, override, config.DefaultDataRoot())
}

// ResolveFrom is Resolve with an explicit start directory and fallback.
func ResolveFrom(startDir, override, fallback string) (*Result, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve data dir %s: %w", override, err)
		}
		return &Result{DataRoot: abs, Source: SourceOverride}, nil
	}

	found, err := DiscoverProjectFrom(startDir)
	if err != nil {
		return nil, err
	}
	if found != nil {
		return found, nil
	}

	if fallback == "" {
		return nil, fmt.Errorf("cannot determine data directory: no %s found and home directory unavailable", config.DefaultSwatchDir)
	}
	return &Result{DataRoot: fallback, Source: SourceGlobal}, nil
}

// DiscoverProjectFrom walks up from startDir looking for a .swatch/ directory.
// Returns nil if none is found.
func DiscoverProjectFrom(startDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, config.DefaultSwatchDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return &Result{
				DataRoot:    candidate,
				ProjectRoot: dir,
				Source:      SourceProject,
			}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}
