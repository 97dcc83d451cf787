// Package export renders palettes as downloadable documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

// Format is an export document type.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSS  Format = "css"
)

// Formats lists the supported formats, default first.
var Formats = []Format{FormatJSON, FormatYAML, FormatCSS}

// Document is a rendered export ready to be written or downloaded.
type Document struct {
	Filename    string
	Format      Format
	ContentType string
	Body        []byte
}

// palettePayload is the exported shape: the palette without storage fields.
type palettePayload struct {
	ID      string        `json:"id" yaml:"id"`
	Colors  []model.Color `json:"colors" yaml:"colors"`
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Harmony model.Harmony `json:"harmony,omitempty" yaml:"harmony,omitempty"`
	Theme   model.Theme   `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// ParseFormat accepts a format name case-insensitively. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	v := Format(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return FormatJSON, nil
	}
	if v == "yml" {
		return FormatYAML, nil
	}
	for _, f := range Formats {
		if f == v {
			return f, nil
		}
	}
	return "", swerr.InvalidField("format", fmt.Sprintf("unsupported export format %q (valid: json, yaml, css)", s))
}

// Filename returns the download name for a palette, e.g. palette-<id>.json.
func Filename(id string, f Format) string {
	return fmt.Sprintf("palette-%s.%s", id, f)
}

// Export renders p in the given format.
func Export(p model.Palette, f Format) (Document, error) {
	payload := palettePayload{
		ID:      p.ID,
		Colors:  p.Colors,
		Name:    p.Name,
		Harmony: p.Harmony,
		Theme:   p.Theme,
	}
	if payload.Colors == nil {
		payload.Colors = []model.Color{}
	}

	var (
		body        []byte
		contentType string
		err         error
	)
	switch f {
	case FormatJSON, "":
		f = FormatJSON
		contentType = "application/json"
		body, err = json.MarshalIndent(payload, "", "  ")
		if err == nil {
			body = append(body, '\n')
		}
	case FormatYAML:
		contentType = "application/yaml"
		body, err = marshalYAML(payload)
	case FormatCSS:
		contentType = "text/css; charset=utf-8"
		body = renderCSS(payload)
	default:
		return Document{}, swerr.InvalidField("format", fmt.Sprintf("unsupported export format %q", f))
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to render %s export: %w", f, err)
	}

	return Document{
		Filename:    Filename(p.ID, f),
		Format:      f,
		ContentType: contentType,
		Body:        body,
	}, nil
}

func marshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCSS(p palettePayload) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "/* palette %s", p.ID)
	if p.Name != "" {
		fmt.Fprintf(&b, " (%s)", strings.ReplaceAll(p.Name, "*/", ""))
	}
	b.WriteString(" */\n:root {\n")
	for i, c := range p.Colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, strings.ToLower(c.Hex))
	}
	b.WriteString("}\n")
	return []byte(b.String())
}
