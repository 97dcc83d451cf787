package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Palettes are regenerated on every keypress, so ticks are fine-grained
	// and the random suffix keeps same-tick ids apart.
	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(time.Millisecond).
		WithNumRandomChars(4)

	generator = fid.MustNewGenerator(config)
}

// Generate returns a new unique palette ID.
func Generate() string {
	return generator.MustGenerate()
}
