package service

import (
	"errors"
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/testutil"
)

func storeWithAliases(aliases ...string) *testutil.MemoryPaletteStore {
	mem := testutil.NewMemoryPaletteStore()
	for i, alias := range aliases {
		mem.Put(&model.Palette{ID: "p" + string(rune('a'+i)), Alias: alias})
	}
	return mem
}

func TestAliasService_GenerateAlias_Basic(t *testing.T) {
	service := NewAliasService(storeWithAliases())

	alias, err := service.GenerateAlias("Warm Sunset", "")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "warm-sunset" {
		t.Errorf("Expected 'warm-sunset', got %q", alias)
	}
}

func TestAliasService_GenerateAlias_Collision(t *testing.T) {
	service := NewAliasService(storeWithAliases("ocean-blue"))

	alias, err := service.GenerateAlias("Ocean Blue", "")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "ocean-blue-2" {
		t.Errorf("Expected 'ocean-blue-2', got %q", alias)
	}
}

func TestAliasService_GenerateAlias_MultipleCollisions(t *testing.T) {
	service := NewAliasService(storeWithAliases("ocean-blue", "ocean-blue-2", "ocean-blue-3"))

	alias, err := service.GenerateAlias("Ocean Blue", "")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "ocean-blue-4" {
		t.Errorf("Expected 'ocean-blue-4', got %q", alias)
	}
}

func TestAliasService_GenerateAlias_LongNameGrowsOnCollision(t *testing.T) {
	service := NewAliasService(storeWithAliases("deep-forest-moss-after"))

	alias, err := service.GenerateAlias("Deep forest moss after rain at dusk", "")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "deep-forest-moss-after-rain" {
		t.Errorf("Expected one more word on collision, got %q", alias)
	}
}

func TestAliasService_GenerateAlias_OwnAliasIsNotCollision(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Put(&model.Palette{ID: "mine", Alias: "ocean-blue"})
	service := NewAliasService(mem)

	alias, err := service.GenerateAlias("Ocean Blue", "mine")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "ocean-blue" {
		t.Errorf("Re-saving should keep alias, got %q", alias)
	}
}

func TestAliasService_GenerateAlias_EmptyName(t *testing.T) {
	service := NewAliasService(storeWithAliases())

	alias, err := service.GenerateAlias("", "")
	if err != nil {
		t.Fatalf("GenerateAlias failed: %v", err)
	}
	if alias != "palette" {
		t.Errorf("Expected 'palette', got %q", alias)
	}
}

func TestAliasService_GenerateAlias_SpecialChars(t *testing.T) {
	service := NewAliasService(storeWithAliases())

	tests := []struct {
		name     string
		expected string
	}{
		{"Café: crème brûlée", "cafe-creme-brulee"},
		{"Brand (v2)", "brand-v2"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
	}

	for _, tt := range tests {
		alias, err := service.GenerateAlias(tt.name, "")
		if err != nil {
			t.Fatalf("GenerateAlias(%q) failed: %v", tt.name, err)
		}
		if alias != tt.expected {
			t.Errorf("GenerateAlias(%q) = %q, want %q", tt.name, alias, tt.expected)
		}
	}
}

func TestAliasService_IsAliasAvailable(t *testing.T) {
	service := NewAliasService(storeWithAliases("taken-alias"))

	if ok, _ := service.IsAliasAvailable("taken-alias", ""); ok {
		t.Error("Alias should not be available")
	}
	if ok, _ := service.IsAliasAvailable("available-alias", ""); !ok {
		t.Error("Alias should be available")
	}
}

func TestAliasService_StorageErrorPropagates(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Fail = swerr.Storage("list", errors.New("boom"))

	if _, err := NewAliasService(mem).GenerateAlias("Anything", ""); !swerr.IsStorageError(err) {
		t.Errorf("Expected storage error, got %v", err)
	}
}
