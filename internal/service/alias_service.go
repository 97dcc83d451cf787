package service

import (
	"fmt"
	"strings"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/internal/util"
)

const (
	// slugThreshold is the max character length we aim for when building the
	// initial slug. We'll include at least minSlugWords, then keep adding
	// words while the joined result stays within this budget.
	slugThreshold = 24
	minSlugWords  = 2

	defaultAlias = "palette"
)

// AliasService handles alias generation and collision detection.
type AliasService struct {
	palettes store.PaletteStore
}

// NewAliasService creates a new alias service.
func NewAliasService(palettes store.PaletteStore) *AliasService {
	return &AliasService{palettes: palettes}
}

// GenerateAlias creates a unique alias from a palette name.
// ownerID is the palette being saved; its own current alias never counts as a collision.
func (s *AliasService) GenerateAlias(name, ownerID string) (string, error) {
	words := util.SlugWords(name)
	if len(words) == 0 {
		words = []string{defaultAlias}
	}

	initialCount := wordsForThreshold(words)
	base := strings.Join(words[:initialCount], "-")

	available, err := s.IsAliasAvailable(base, ownerID)
	if err != nil {
		return "", err
	}
	if available {
		return base, nil
	}

	// Collision: try adding one more name word at a time
	for i := initialCount; i < len(words); i++ {
		candidate := strings.Join(words[:i+1], "-")
		available, err := s.IsAliasAvailable(candidate, ownerID)
		if err != nil {
			return "", err
		}
		if available {
			return candidate, nil
		}
	}

	// All words exhausted: fall back to numeric suffix on the base slug
	for i := 2; i <= 1000; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		available, err := s.IsAliasAvailable(candidate, ownerID)
		if err != nil {
			return "", err
		}
		if available {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("could not generate unique alias for %q", name)
}

// wordsForThreshold returns how many words to include in the initial slug.
// Always includes at least minSlugWords (if available), then adds words while
// the joined length stays within slugThreshold.
func wordsForThreshold(words []string) int {
	count := min(minSlugWords, len(words))

	for i := count; i < len(words); i++ {
		if joinedLen(words[:i+1]) > slugThreshold {
			break
		}
		count = i + 1
	}

	return count
}

// joinedLen returns the length of words joined by hyphens, without allocating.
func joinedLen(words []string) int {
	if len(words) == 0 {
		return 0
	}
	n := len(words) - 1 // hyphens
	for _, w := range words {
		n += len(w)
	}
	return n
}

// IsAliasAvailable reports whether no palette other than ownerID uses alias.
func (s *AliasService) IsAliasAvailable(alias, ownerID string) (bool, error) {
	p, err := s.palettes.FindByAlias(alias)
	if err != nil {
		if swerr.IsNotFound(err) {
			return true, nil
		}
		return false, err
	}
	return ownerID != "" && p.ID == ownerID, nil
}
