package api

import (
	"fmt"
	"net/http"
	"strings"
)

// defaultFaviconColor is used when the palette is empty.
const defaultFaviconColor = "#3B82F6"

// GenerateFaviconSVG draws the colors as equal vertical stripes in a rounded square.
func GenerateFaviconSVG(colors []string) string {
	if len(colors) == 0 {
		colors = []string{defaultFaviconColor}
	}

	var stripes strings.Builder
	width := 32.0 / float64(len(colors))
	for i, c := range colors {
		fmt.Fprintf(&stripes, `<rect x="%.2f" width="%.2f" height="32" fill="%s"/>`, float64(i)*width, width+0.5, c)
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 32 32"><clipPath id="r"><rect width="32" height="32" rx="6"/></clipPath><g clip-path="url(#r)">%s</g></svg>`,
		stripes.String(),
	)
}

// GetFavicon serves a favicon drawn from the current palette.
func (h *Handler) GetFavicon(w http.ResponseWriter, r *http.Request) {
	svg := GenerateFaviconSVG(h.session.Palette().Hexes())

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(svg))
}
