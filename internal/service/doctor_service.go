package service

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/amterp/swatch/internal/colormath"
	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/version"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Palette files (errors)
	CodeMalformedPalette   = "MALFORMED_PALETTE"
	CodeUnsupportedVersion = "UNSUPPORTED_VERSION"
	CodeIDMismatch         = "ID_MISMATCH"
	CodeInvalidColor       = "INVALID_COLOR"

	// Palette files (warnings)
	CodeMissingVersion  = "MISSING_VERSION"
	CodeNonCanonicalHex = "NONCANONICAL_HEX"
	CodeDuplicateAlias  = "DUPLICATE_ALIAS"

	// Global config (warnings)
	CodeMalformedGlobalConfig = "MALFORMED_GLOBAL_CONFIG"
	CodeGlobalSchemaOutdated  = "GLOBAL_SCHEMA_OUTDATED"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity   IssueSeverity     `json:"severity"`
	Code       string            `json:"code"`
	PaletteID  string            `json:"palette_id,omitempty"`
	Message    string            `json:"message"`
	Fixable    bool              `json:"fixable"`
	FixAction  string            `json:"fix_action,omitempty"`
	FixError   string            `json:"fix_error,omitempty"`
	FixContext map[string]string `json:"fix_context,omitempty"`
}

// ReportSummary summarizes the diagnostic results.
type ReportSummary struct {
	Palettes  int `json:"palettes"`
	Errors    int `json:"errors"`
	Warnings  int `json:"warnings"`
	Fixed     int `json:"fixed"`
	FixFailed int `json:"fix_failed,omitempty"`
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	Issues  []Issue       `json:"issues"`
	Summary ReportSummary `json:"summary"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Summary.Errors > 0
}

// DoctorService validates saved palette files for consistency issues.
// Only the file backend is inspected; SQLite enforces its own schema.
type DoctorService struct {
	paths            *config.Paths
	globalConfigPath string
}

// NewDoctorService creates a new diagnostic service.
func NewDoctorService(paths *config.Paths, globalConfigPath string) *DoctorService {
	return &DoctorService{paths: paths, globalConfigPath: globalConfigPath}
}

// Diagnose checks the global config and every palette file.
func (s *DoctorService) Diagnose() (*DiagnosticReport, error) {
	report := &DiagnosticReport{Issues: []Issue{}}

	s.checkGlobalConfig(report)

	ids, err := listPaletteFiles(s.paths)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}

	aliases := make(map[string][]string) // alias -> palette ids
	for _, id := range ids {
		report.Summary.Palettes++
		if alias := s.checkPaletteFile(report, id); alias != "" {
			aliases[alias] = append(aliases[alias], id)
		}
	}

	for alias, owners := range aliases {
		if len(owners) < 2 {
			continue
		}
		sort.Strings(owners)
		// The first owner keeps the alias; the rest get renamed
		for _, id := range owners[1:] {
			report.Issues = append(report.Issues, Issue{
				Severity:   SeverityWarning,
				Code:       CodeDuplicateAlias,
				PaletteID:  id,
				Message:    fmt.Sprintf("Alias %q is also used by %s", alias, owners[0]),
				Fixable:    true,
				FixAction:  "Assign a unique alias",
				FixContext: map[string]string{"alias": alias},
			})
		}
	}

	sortIssues(report.Issues)
	report.Summary.Errors, report.Summary.Warnings = countSeverities(report.Issues)
	return report, nil
}

// Fix applies automatic fixes for issues that have deterministic solutions.
// Returns a new report showing remaining issues and what was fixed.
func (s *DoctorService) Fix(report *DiagnosticReport) (*DiagnosticReport, error) {
	fixed := 0
	fixFailed := 0
	remaining := []Issue{}

	for _, issue := range report.Issues {
		if !issue.Fixable {
			remaining = append(remaining, issue)
			continue
		}

		var err error
		switch issue.Code {
		case CodeMissingVersion:
			err = s.fixMissingVersion(issue.PaletteID)
		case CodeIDMismatch:
			err = s.fixIDMismatch(issue.PaletteID)
		case CodeNonCanonicalHex:
			err = s.fixNonCanonicalHex(issue.PaletteID)
		case CodeDuplicateAlias:
			err = s.fixDuplicateAlias(issue.PaletteID, issue.FixContext["alias"])
		default:
			remaining = append(remaining, issue)
			continue
		}

		if err != nil {
			issue.FixError = err.Error()
			remaining = append(remaining, issue)
			fixFailed++
		} else {
			fixed++
		}
	}

	newReport := &DiagnosticReport{
		Issues: remaining,
		Summary: ReportSummary{
			Palettes:  report.Summary.Palettes,
			Fixed:     fixed,
			FixFailed: fixFailed,
		},
	}
	newReport.Summary.Errors, newReport.Summary.Warnings = countSeverities(remaining)
	return newReport, nil
}

func (s *DoctorService) checkGlobalConfig(report *DiagnosticReport) {
	if s.globalConfigPath == "" {
		return
	}

	data, err := os.ReadFile(s.globalConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return // No global config is fine
		}
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Cannot read global config: %v", err),
		})
		return
	}

	var raw map[string]any
	if _, err := toml.Decode(string(data), &raw); err != nil {
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityWarning,
			Code:     CodeMalformedGlobalConfig,
			Message:  fmt.Sprintf("Invalid TOML in global config: %v", err),
		})
		return
	}

	schema, _ := raw["swatch_schema"].(string)
	if schema != version.CurrentGlobalSchema() {
		found := schema
		if found == "" {
			found = "none"
		}
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarning,
			Code:      CodeGlobalSchemaOutdated,
			Message:   fmt.Sprintf("Global config has schema %s, current is %s", found, version.CurrentGlobalSchema()),
			FixAction: fmt.Sprintf("Set swatch_schema = %q in %s", version.CurrentGlobalSchema(), s.globalConfigPath),
		})
	}
}

// checkPaletteFile reports problems with one palette file and returns its alias.
func (s *DoctorService) checkPaletteFile(report *DiagnosticReport, id string) string {
	raw, err := readJSONMap(s.paths.PalettePath(id))
	if err != nil {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      CodeMalformedPalette,
			PaletteID: id,
			Message:   fmt.Sprintf("Cannot parse palette file: %v", err),
		})
		return ""
	}

	switch v := raw["_v"].(type) {
	case nil:
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarning,
			Code:      CodeMissingVersion,
			PaletteID: id,
			Message:   "Palette file has no _v field",
			Fixable:   true,
			FixAction: fmt.Sprintf("Stamp _v = %d", version.CurrentPaletteVersion),
		})
	case float64:
		if int(v) != version.CurrentPaletteVersion {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeUnsupportedVersion,
				PaletteID: id,
				Message:   fmt.Sprintf("Palette version %d is not supported (current is %d)", int(v), version.CurrentPaletteVersion),
			})
		}
	default:
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      CodeUnsupportedVersion,
			PaletteID: id,
			Message:   fmt.Sprintf("Palette _v has unexpected value %v", v),
		})
	}

	if fileID, _ := raw["id"].(string); fileID != id {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityError,
			Code:      CodeIDMismatch,
			PaletteID: id,
			Message:   fmt.Sprintf("File %s.json contains id %q", id, fileID),
			Fixable:   true,
			FixAction: "Set id to match the file name",
		})
	}

	colors, _ := raw["colors"].([]any)
	nonCanonical := false
	for i, entry := range colors {
		obj, _ := entry.(map[string]any)
		hex, _ := obj["hex"].(string)
		normalized, err := colormath.Normalize(hex)
		if err != nil {
			report.Issues = append(report.Issues, Issue{
				Severity:  SeverityError,
				Code:      CodeInvalidColor,
				PaletteID: id,
				Message:   fmt.Sprintf("Color %d has invalid hex %q", i+1, hex),
			})
			continue
		}
		if normalized != hex {
			nonCanonical = true
		}
	}
	if nonCanonical {
		report.Issues = append(report.Issues, Issue{
			Severity:  SeverityWarning,
			Code:      CodeNonCanonicalHex,
			PaletteID: id,
			Message:   "Palette has colors not in #RRGGBB form",
			Fixable:   true,
			FixAction: "Rewrite colors as uppercase #RRGGBB",
		})
	}

	alias, _ := raw["alias"].(string)
	return alias
}

func (s *DoctorService) fixMissingVersion(id string) error {
	return s.rewrite(id, func(raw map[string]any) error {
		raw["_v"] = version.CurrentPaletteVersion
		return nil
	})
}

func (s *DoctorService) fixIDMismatch(id string) error {
	return s.rewrite(id, func(raw map[string]any) error {
		raw["id"] = id
		return nil
	})
}

func (s *DoctorService) fixNonCanonicalHex(id string) error {
	return s.rewrite(id, func(raw map[string]any) error {
		colors, _ := raw["colors"].([]any)
		for _, entry := range colors {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			hex, _ := obj["hex"].(string)
			if normalized, err := colormath.Normalize(hex); err == nil {
				obj["hex"] = normalized
			}
		}
		return nil
	})
}

func (s *DoctorService) fixDuplicateAlias(id, alias string) error {
	taken, err := s.collectAliases()
	if err != nil {
		return err
	}
	for i := 2; i <= 1000; i++ {
		candidate := fmt.Sprintf("%s-%d", alias, i)
		if !taken[candidate] {
			return s.rewrite(id, func(raw map[string]any) error {
				raw["alias"] = candidate
				return nil
			})
		}
	}
	return fmt.Errorf("could not find a free alias for %q", alias)
}

func (s *DoctorService) collectAliases() (map[string]bool, error) {
	ids, err := listPaletteFiles(s.paths)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool)
	for _, id := range ids {
		raw, err := readJSONMap(s.paths.PalettePath(id))
		if err != nil {
			continue
		}
		if alias, _ := raw["alias"].(string); alias != "" {
			taken[alias] = true
		}
	}
	return taken, nil
}

// rewrite edits a palette file as a generic map so unknown fields survive.
func (s *DoctorService) rewrite(id string, edit func(map[string]any) error) error {
	path := s.paths.PalettePath(id)
	raw, err := readJSONMap(path)
	if err != nil {
		return err
	}
	if err := edit(raw); err != nil {
		return err
	}
	return writeJSONMap(path, raw)
}

func countSeverities(issues []Issue) (errs, warnings int) {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			errs++
		} else {
			warnings++
		}
	}
	return errs, warnings
}

func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity == SeverityError
		}
		if issues[i].PaletteID != issues[j].PaletteID {
			return issues[i].PaletteID < issues[j].PaletteID
		}
		return strings.Compare(issues[i].Code, issues[j].Code) < 0
	})
}
