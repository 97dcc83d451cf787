package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType    string // "palette", "global config"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "2", "global/2")
	Expected    string // What was expected (e.g., "1", "global/1")
	MinRequired string // Minimum swatch version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires swatch >= %s (file: %s, found: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Found, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s)",
			e.FileType, e.FilePath,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingPaletteVersion creates an error for a palette file missing the _v field.
func MissingPaletteVersion(path string) error {
	return &SchemaVersionError{
		FileType: "palette",
		FilePath: path,
		Found:    "missing",
		Expected: fmt.Sprintf("%d", CurrentPaletteVersion),
	}
}

// InvalidPaletteVersion creates an error for a palette with an unsupported version.
func InvalidPaletteVersion(path string, found int) error {
	e := &SchemaVersionError{
		FileType: "palette",
		FilePath: path,
		Found:    fmt.Sprintf("%d", found),
		Expected: fmt.Sprintf("%d", CurrentPaletteVersion),
	}
	if found > CurrentPaletteVersion {
		key := fmt.Sprintf("palette/%d", found)
		if minSwatch, ok := MinSwatchVersion[key]; ok {
			e.MinRequired = minSwatch
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}

// MissingGlobalSchema creates an error for a global config missing swatch_schema.
func MissingGlobalSchema(path string) error {
	return &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    "missing",
		Expected: CurrentGlobalSchema(),
	}
}

// InvalidGlobalSchema creates an error for a global config with unsupported schema.
func InvalidGlobalSchema(path, found string) error {
	e := &SchemaVersionError{
		FileType: "global config",
		FilePath: path,
		Found:    found,
		Expected: CurrentGlobalSchema(),
	}
	// Check if it's a future version
	if v, err := ParseGlobalVersion(found); err == nil && v > CurrentGlobalVersion {
		if minSwatch, ok := MinSwatchVersion[found]; ok {
			e.MinRequired = minSwatch
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}
