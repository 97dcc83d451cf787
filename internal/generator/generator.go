// Package generator produces palettes of colors from harmony and theme rules.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

// Options configure a single generation.
type Options struct {
	Count   int
	Harmony model.Harmony
	Theme   model.Theme
	// Previous colors; locked entries are copied to the same slot.
	Previous []model.Color
}

// Generator creates colors. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator drawing from rng. A nil rng is seeded from the clock.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate returns opts.Count colors, preserving locked colors from opts.Previous.
func (g *Generator) Generate(opts Options) ([]model.Color, error) {
	colors, _, err := g.GenerateWithBase(opts)
	return colors, err
}

// GenerateWithBase is Generate that also returns the base hue harmonies were derived from.
// The base hue is drawn even when no harmony is set.
func (g *Generator) GenerateWithBase(opts Options) ([]model.Color, float64, error) {
	count, err := resolveCount(opts.Count)
	if err != nil {
		return nil, 0, err
	}
	if opts.Harmony != model.HarmonyNone {
		if _, ok := hueOffsets[opts.Harmony]; !ok {
			return nil, 0, swerr.InvalidField("harmony", fmt.Sprintf("unknown harmony %q", opts.Harmony))
		}
	}
	if opts.Theme != model.ThemeNone {
		if _, ok := themeBands[opts.Theme]; !ok {
			return nil, 0, swerr.InvalidField("theme", fmt.Sprintf("unknown theme %q", opts.Theme))
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	base := g.rng.Float64() * 360
	offsets := hueOffsets[opts.Harmony]
	b := bandFor(opts.Theme)

	colors := make([]model.Color, count)
	for i := range colors {
		if i < len(opts.Previous) && opts.Previous[i].Locked {
			colors[i] = opts.Previous[i]
			continue
		}

		var hue float64
		if len(offsets) > 0 {
			hue = math.Mod(base+offsets[i%len(offsets)]+360, 360)
		} else {
			hue = g.rng.Float64() * 360
		}

		colors[i] = model.Color{Hex: g.pick(hue, b)}
	}
	return colors, base, nil
}

// maxAttempts bounds resampling before pick falls back to the band center.
const maxAttempts = 32

// pick samples S and L from b until the emitted hex, read back, still lies in b.
// Rounding to 8-bit channels can push a sample near an edge just outside it.
func (g *Generator) pick(hue float64, b band) string {
	for range maxAttempts {
		hex := colormath.HSLToHex(colormath.HSL{H: hue, S: g.sample(b.S), L: g.sample(b.L)})
		if b.contains(hex) {
			return hex
		}
	}
	return colormath.HSLToHex(colormath.HSL{H: hue, S: b.S.mid(), L: b.L.mid()})
}

func (g *Generator) sample(s span) float64 {
	return s.Min + g.rng.Float64()*(s.Max-s.Min)
}

func resolveCount(n int) (int, error) {
	if n <= 0 {
		return model.DefaultCount, nil
	}
	if n > model.MaxCount {
		return 0, swerr.InvalidField("count", fmt.Sprintf("must be at most %d, got %d", model.MaxCount, n))
	}
	return n, nil
}
