package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/export"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/state"
)

// Handler contains all HTTP handlers for the API.
//
// Single-user, single-session: every connected browser tab drives the same
// Session, which serializes transitions.
type Handler struct {
	session  *state.Session
	palettes *service.PaletteService
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(session *state.Session, palettes *service.PaletteService) *Handler {
	return &Handler{
		session:  session,
		palettes: palettes,
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/options", h.GetOptions)
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Current palette
	mux.HandleFunc("GET /api/v1/palette", h.GetPalette)
	mux.HandleFunc("POST /api/v1/palette/generate", h.Generate)
	mux.HandleFunc("POST /api/v1/palette/lock", h.ToggleLockByHex)
	mux.HandleFunc("POST /api/v1/palette/colors/{slot}/lock", h.ToggleLock)
	mux.HandleFunc("PUT /api/v1/palette/colors/{slot}", h.SetColor)
	mux.HandleFunc("POST /api/v1/palette/save", h.Save)
	mux.HandleFunc("GET /api/v1/palette/export", h.ExportCurrent)

	// Saved palettes
	mux.HandleFunc("GET /api/v1/palettes", h.ListPalettes)
	mux.HandleFunc("GET /api/v1/palettes/{id}", h.GetSaved)
	mux.HandleFunc("DELETE /api/v1/palettes/{id}", h.DeleteSaved)
	mux.HandleFunc("POST /api/v1/palettes/{id}/load", h.LoadSaved)
	mux.HandleFunc("GET /api/v1/palettes/{id}/export", h.ExportSaved)

	// Static files (frontend)
	mux.Handle("/", h.StaticHandler())
}

// --- Options ---

// OptionsResponse lists the choices the UI offers.
type OptionsResponse struct {
	Harmonies    []string `json:"harmonies"`
	Themes       []string `json:"themes"`
	Formats      []string `json:"formats"`
	DefaultCount int      `json:"default_count"`
	MaxCount     int      `json:"max_count"`
}

// GetOptions returns available harmonies, themes and export formats.
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	formats := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		formats[i] = string(f)
	}
	JSON(w, http.StatusOK, OptionsResponse{
		Harmonies:    model.HarmonyNames(),
		Themes:       model.ThemeNames(),
		Formats:      formats,
		DefaultCount: model.DefaultCount,
		MaxCount:     model.MaxCount,
	})
}

// --- Current palette ---

// SnapshotResponse is a session snapshot with per-color display hints.
type SnapshotResponse struct {
	state.Snapshot
	TextColors []string `json:"text_colors"`
}

func toSnapshotResponse(snap state.Snapshot) SnapshotResponse {
	text := make([]string, len(snap.Palette.Colors))
	for i, c := range snap.Palette.Colors {
		text[i] = colormath.TextColor(c.Hex)
	}
	return SnapshotResponse{Snapshot: snap, TextColors: text}
}

// GetPalette returns the current palette and selection.
func (h *Handler) GetPalette(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, toSnapshotResponse(h.session.Snapshot()))
}

// GenerateRequest is the request body for regenerating.
// Omitted harmony/theme keep the current selection; "" or "none" clears it.
type GenerateRequest struct {
	Harmony *string `json:"harmony,omitempty"`
	Theme   *string `json:"theme,omitempty"`
	Count   int     `json:"count,omitempty"`
}

// Generate regenerates unlocked colors.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeOptional(r, &req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	var harmony *model.Harmony
	if req.Harmony != nil {
		parsed, err := model.ParseHarmony(*req.Harmony)
		if err != nil {
			BadRequest(w, err.Error())
			return
		}
		harmony = &parsed
	}
	var theme *model.Theme
	if req.Theme != nil {
		parsed, err := model.ParseTheme(*req.Theme)
		if err != nil {
			BadRequest(w, err.Error())
			return
		}
		theme = &parsed
	}
	if req.Count < 0 || req.Count > model.MaxCount {
		Error(w, r, swerr.InvalidField("count", fmt.Sprintf("must be between 1 and %d", model.MaxCount)))
		return
	}

	snap, err := h.session.Regenerate(req.Count, harmony, theme)
	if err != nil {
		Error(w, r, err)
		return
	}
	MetricGenerations.WithLabelValues(snap.Harmony.Label(), snap.Theme.Label()).Inc()
	JSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// HexRequest carries a single color.
type HexRequest struct {
	Hex string `json:"hex"`
}

// ToggleLockByHex flips the lock on every color matching hex.
func (h *Handler) ToggleLockByHex(w http.ResponseWriter, r *http.Request) {
	var req HexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if _, err := colormath.Normalize(req.Hex); err != nil {
		Error(w, r, err)
		return
	}
	JSON(w, http.StatusOK, toSnapshotResponse(h.session.ToggleLock(req.Hex)))
}

// ToggleLock flips the lock on one slot.
func (h *Handler) ToggleLock(w http.ResponseWriter, r *http.Request) {
	slot, ok := parseSlot(w, r)
	if !ok {
		return
	}
	snap, err := h.session.ToggleLockAt(slot)
	if err != nil {
		Error(w, r, err)
		return
	}
	JSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// SetColor replaces the color in one slot, keeping its lock.
func (h *Handler) SetColor(w http.ResponseWriter, r *http.Request) {
	slot, ok := parseSlot(w, r)
	if !ok {
		return
	}
	var req HexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	snap, err := h.session.SetColorAt(slot, req.Hex)
	if err != nil {
		Error(w, r, err)
		return
	}
	JSON(w, http.StatusOK, toSnapshotResponse(snap))
}

// SaveRequest is the request body for saving the current palette.
type SaveRequest struct {
	Name string `json:"name,omitempty"`
}

// Save persists the current palette. On failure the current palette is untouched.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := decodeOptional(r, &req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	saved, err := h.palettes.Save(service.SaveInput{Palette: h.session.Palette(), Name: req.Name})
	if err != nil {
		MetricSaves.WithLabelValues("error").Inc()
		Error(w, r, err)
		return
	}
	MetricSaves.WithLabelValues("ok").Inc()

	h.session.Annotate(saved.Name, saved.Alias, saved.CreatedAtMillis)
	JSON(w, http.StatusOK, saved)
}

// ExportCurrent downloads the current palette.
func (h *Handler) ExportCurrent(w http.ResponseWriter, r *http.Request) {
	h.writeExport(w, r, h.session.Palette())
}

// --- Saved palettes ---

// ListPalettes returns saved palettes, newest first.
func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	palettes, err := h.palettes.List()
	if err != nil {
		Error(w, r, err)
		return
	}
	if palettes == nil {
		palettes = []*model.Palette{}
	}
	JSON(w, http.StatusOK, palettes)
}

// GetSaved returns one saved palette by id or alias.
func (h *Handler) GetSaved(w http.ResponseWriter, r *http.Request) {
	p, err := h.palettes.Get(r.PathValue("id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	JSON(w, http.StatusOK, p)
}

// DeleteSaved removes a saved palette.
func (h *Handler) DeleteSaved(w http.ResponseWriter, r *http.Request) {
	if _, err := h.palettes.Delete(r.PathValue("id")); err != nil {
		Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LoadSaved makes a saved palette the current one.
func (h *Handler) LoadSaved(w http.ResponseWriter, r *http.Request) {
	p, err := h.palettes.Get(r.PathValue("id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	JSON(w, http.StatusOK, toSnapshotResponse(h.session.Replace(*p)))
}

// ExportSaved downloads a saved palette.
func (h *Handler) ExportSaved(w http.ResponseWriter, r *http.Request) {
	p, err := h.palettes.Get(r.PathValue("id"))
	if err != nil {
		Error(w, r, err)
		return
	}
	h.writeExport(w, r, *p)
}

func (h *Handler) writeExport(w http.ResponseWriter, r *http.Request, p model.Palette) {
	doc, err := h.palettes.Export(p, r.URL.Query().Get("format"))
	if err != nil {
		Error(w, r, err)
		return
	}
	MetricExports.WithLabelValues(string(doc.Format)).Inc()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(doc.Body)
}

// parseSlot reads the 1-based {slot} path value and returns it 0-based.
func parseSlot(w http.ResponseWriter, r *http.Request) (int, bool) {
	slot, err := strconv.Atoi(r.PathValue("slot"))
	if err != nil {
		BadRequest(w, "slot must be a number")
		return 0, false
	}
	return slot - 1, true
}

// decodeOptional decodes a JSON body into v. An empty body leaves v unchanged.
func decodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
