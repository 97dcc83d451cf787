//go:build dev

package api

import (
	"net/http"
	"os"
)

// StaticHandler serves the frontend from disk so edits show up on reload.
// SWATCH_DIST overrides the default location relative to the repo root.
func (h *Handler) StaticHandler() http.Handler {
	dir := os.Getenv("SWATCH_DIST")
	if dir == "" {
		dir = "internal/api/dist"
	}
	return http.FileServer(http.Dir(dir))
}
