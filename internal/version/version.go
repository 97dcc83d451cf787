package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Current schema versions - bump these when making breaking changes.
//
// CHECKLIST when bumping a version:
//  1. Update the constant below
//  2. Add entry to MinSwatchVersion map (tested by TestMinSwatchVersionCompleteness)
//  3. Teach the stores to read (or reject) the previous layout
const (
	CurrentPaletteVersion = 1
	CurrentGlobalVersion  = 1
)

// Schema type prefixes for config files.
const (
	GlobalSchemaPrefix = "global/"
)

// MinSwatchVersion maps schema identifiers to the minimum swatch version required.
// Used to provide helpful upgrade messages when encountering newer schemas.
var MinSwatchVersion = map[string]string{
	"palette/1": "0.1.0",
	"global/1":  "0.1.0",
}

// FormatGlobalSchema creates a global schema string from a version number.
// Example: FormatGlobalSchema(1) returns "global/1"
func FormatGlobalSchema(v int) string {
	return fmt.Sprintf("%s%d", GlobalSchemaPrefix, v)
}

// ParseGlobalVersion extracts the version number from a global schema string.
// Returns an error if the format is invalid.
func ParseGlobalVersion(schema string) (int, error) {
	return parseSchemaVersion(schema, GlobalSchemaPrefix, "global")
}

func parseSchemaVersion(schema, prefix, schemaType string) (int, error) {
	if !strings.HasPrefix(schema, prefix) {
		return 0, fmt.Errorf("invalid %s schema format: %q (expected %sN)", schemaType, schema, prefix)
	}
	versionStr := strings.TrimPrefix(schema, prefix)
	v, err := strconv.Atoi(versionStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s schema version: %q", schemaType, versionStr)
	}
	if v < 1 {
		return 0, fmt.Errorf("invalid %s schema version: %d (must be >= 1)", schemaType, v)
	}
	return v, nil
}

// CurrentGlobalSchema returns the current global schema string.
func CurrentGlobalSchema() string {
	return FormatGlobalSchema(CurrentGlobalVersion)
}
