package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

// TestPalette returns a five-color palette with sensible test defaults.
func TestPalette(id, alias string) *model.Palette {
	return &model.Palette{
		Version: 1,
		ID:      id,
		Alias:   alias,
		Name:    alias,
		Colors: []model.Color{
			{Hex: "#A1B2C3"},
			{Hex: "#112233"},
			{Hex: "#FFEEDD", Locked: true},
			{Hex: "#336699"},
			{Hex: "#CC5500"},
		},
		CreatedAtMillis: 1704307200000,
	}
}

// TempSwatchDir creates a temporary project with a .swatch directory.
// Returns the project root; the data dir is <root>/.swatch.
func TempSwatchDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".swatch", "palettes"), 0755); err != nil {
		t.Fatalf("failed to create .swatch dir: %v", err)
	}
	return dir
}

// MemoryPaletteStore is an in-memory palette store for tests.
type MemoryPaletteStore struct {
	mu       sync.Mutex
	palettes map[string]*model.Palette
	// Fail, when set, is returned from every operation.
	Fail error
}

// NewMemoryPaletteStore creates an empty in-memory store.
func NewMemoryPaletteStore() *MemoryPaletteStore {
	return &MemoryPaletteStore{palettes: make(map[string]*model.Palette)}
}

// Put stores a palette without validation.
func (m *MemoryPaletteStore) Put(p *model.Palette) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := p.Clone()
	m.palettes[p.ID] = &cp
}

func (m *MemoryPaletteStore) Save(p *model.Palette) error {
	if m.Fail != nil {
		return m.Fail
	}
	p.Version = 1
	m.Put(p)
	return nil
}

func (m *MemoryPaletteStore) Get(id string) (*model.Palette, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.palettes[id]
	if !ok {
		return nil, swerr.PaletteNotFound(id)
	}
	cp := p.Clone()
	return &cp, nil
}

func (m *MemoryPaletteStore) List() ([]*model.Palette, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []*model.Palette{}
	for _, p := range m.palettes {
		cp := p.Clone()
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAtMillis != out[j].CreatedAtMillis {
			return out[i].CreatedAtMillis > out[j].CreatedAtMillis
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *MemoryPaletteStore) Delete(id string) error {
	if m.Fail != nil {
		return m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.palettes[id]; !ok {
		return swerr.PaletteNotFound(id)
	}
	delete(m.palettes, id)
	return nil
}

func (m *MemoryPaletteStore) FindByAlias(alias string) (*model.Palette, error) {
	if m.Fail != nil {
		return nil, m.Fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.palettes {
		if p.Alias == alias {
			cp := p.Clone()
			return &cp, nil
		}
	}
	return nil, swerr.PaletteNotFound(alias)
}

func (m *MemoryPaletteStore) Close() error {
	return nil
}
