package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/git"
	"github.com/amterp/swatch/internal/store"
)

// InitResult describes what Initialize did.
type InitResult struct {
	DataRoot           string
	AlreadyInitialized bool
}

// InitService handles project initialization.
type InitService struct {
	gitClient   *git.Client
	globalStore store.GlobalStore
}

// NewInitService creates a new init service.
func NewInitService(gitClient *git.Client, globalStore store.GlobalStore) *InitService {
	return &InitService{
		gitClient:   gitClient,
		globalStore: globalStore,
	}
}

// Initialize creates a .swatch data directory.
// Inside a git repository it goes at the repository root, otherwise in dir.
// If location is non-empty it is used as-is.
func (s *InitService) Initialize(dir, location string) (*InitResult, error) {
	dataRoot := location
	if dataRoot == "" {
		root := dir
		if s.gitClient != nil {
			if repoRoot, err := s.gitClient.RepoRoot(); err == nil {
				root = repoRoot
			}
		}
		dataRoot = filepath.Join(root, config.DefaultSwatchDir)
	}

	abs, err := filepath.Abs(dataRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dataRoot, err)
	}
	paths := config.NewPaths(abs)

	result := &InitResult{DataRoot: abs}
	if _, err := os.Stat(paths.PalettesDir()); err == nil {
		result.AlreadyInitialized = true
	} else if err := os.MkdirAll(paths.PalettesDir(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if s.globalStore != nil {
		if err := s.globalStore.EnsureExists(); err != nil {
			return nil, fmt.Errorf("failed to create global config: %w", err)
		}
	}
	return result, nil
}
