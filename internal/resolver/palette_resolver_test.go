package resolver

import (
	"errors"
	"testing"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/testutil"
)

func TestPaletteResolver_ResolveByID(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Put(testutil.TestPalette("abc123", "sunset"))

	p, err := NewPaletteResolver(mem).Resolve("abc123")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.ID != "abc123" {
		t.Errorf("ID = %q, want %q", p.ID, "abc123")
	}
}

func TestPaletteResolver_ResolveByAlias(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Put(testutil.TestPalette("abc123", "sunset"))

	p, err := NewPaletteResolver(mem).Resolve("sunset")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.ID != "abc123" {
		t.Errorf("ID = %q, want %q", p.ID, "abc123")
	}
}

func TestPaletteResolver_IDTakesPriority(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Put(testutil.TestPalette("ocean", "first"))
	mem.Put(testutil.TestPalette("xyz789", "ocean"))

	p, err := NewPaletteResolver(mem).Resolve("ocean")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if p.ID != "ocean" {
		t.Errorf("Expected ID match to win, got %q", p.ID)
	}
}

func TestPaletteResolver_NotFound(t *testing.T) {
	_, err := NewPaletteResolver(testutil.NewMemoryPaletteStore()).Resolve("missing")
	if !swerr.IsNotFound(err) {
		t.Fatalf("Expected NotFound, got %v", err)
	}
	var nf *swerr.NotFoundError
	if !errors.As(err, &nf) || nf.Resource != "palette" || nf.ID != "missing" {
		t.Errorf("unexpected error detail: %v", err)
	}
}

func TestPaletteResolver_StorageErrorPropagates(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Fail = swerr.Storage("load", errors.New("disk gone"))

	_, err := NewPaletteResolver(mem).Resolve("abc123")
	if !swerr.IsStorageError(err) {
		t.Errorf("Expected storage error, got %v", err)
	}
}
