package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amterp/swatch/internal/config"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/generator"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/state"
	"github.com/amterp/swatch/internal/store"
	"github.com/amterp/swatch/testutil"
)

// testAPI provides a complete test environment for API handler tests.
type testAPI struct {
	server   *Server
	session  *state.Session
	palettes store.PaletteStore
}

// setupTestAPI creates a test environment with a file store in a temp directory.
func setupTestAPI(t *testing.T) *testAPI {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	return setupTestAPIWithStore(t, store.NewPaletteStore(paths))
}

func setupTestAPIWithStore(t *testing.T, palettes store.PaletteStore) *testAPI {
	t.Helper()

	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("pal%d", n)
	}
	machine := state.NewMachine(generator.New(rand.New(rand.NewSource(42))), newID)
	initial, err := machine.Initial(model.DefaultCount, model.HarmonyNone, model.ThemeNone)
	if err != nil {
		t.Fatalf("Initial failed: %v", err)
	}
	session := state.NewSession(machine, initial)

	paletteService := service.NewPaletteService(palettes, service.NewAliasService(palettes))
	handler := NewHandler(session, paletteService)

	return &testAPI{
		server:   NewServer(handler, session, ServerOptions{Port: 0}),
		session:  session,
		palettes: palettes,
	}
}

// request makes an HTTP request and returns the response.
func (api *testAPI) request(method, path string, body any) *httptest.ResponseRecorder {
	var bodyReader io.Reader = http.NoBody
	if body != nil {
		data, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	api.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) SnapshotResponse {
	t.Helper()
	var snap SnapshotResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("Failed to decode snapshot: %v (body: %s)", err, rec.Body.String())
	}
	return snap
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("Expected status %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}

func TestGetPalette(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("GET", "/api/v1/palette", nil)
	expectStatus(t, rec, http.StatusOK)

	snap := decodeSnapshot(t, rec)
	if len(snap.Palette.Colors) != model.DefaultCount {
		t.Errorf("Expected %d colors, got %d", model.DefaultCount, len(snap.Palette.Colors))
	}
	if len(snap.TextColors) != len(snap.Palette.Colors) {
		t.Errorf("Expected a text color per card, got %d", len(snap.TextColors))
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header")
	}
}

func TestGenerate_WithHarmonyAndTheme(t *testing.T) {
	api := setupTestAPI(t)
	before := api.session.Palette()

	harmony, theme := "complementary", "vibrant"
	rec := api.request("POST", "/api/v1/palette/generate", GenerateRequest{Harmony: &harmony, Theme: &theme})
	expectStatus(t, rec, http.StatusOK)

	snap := decodeSnapshot(t, rec)
	if snap.Palette.ID == before.ID {
		t.Error("Generate should assign a new id")
	}
	if snap.Harmony != model.HarmonyComplementary || snap.Theme != model.ThemeVibrant {
		t.Errorf("Expected selection to stick, got %q/%q", snap.Harmony, snap.Theme)
	}
	if !snap.Generating {
		t.Error("Expected generating flag right after a regenerate")
	}

	// Omitted fields keep the selection
	rec = api.request("POST", "/api/v1/palette/generate", nil)
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeSnapshot(t, rec); snap.Harmony != model.HarmonyComplementary {
		t.Errorf("Expected harmony kept, got %q", snap.Harmony)
	}

	// "none" clears it
	none := "none"
	rec = api.request("POST", "/api/v1/palette/generate", GenerateRequest{Harmony: &none})
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeSnapshot(t, rec); snap.Harmony != model.HarmonyNone {
		t.Errorf("Expected harmony cleared, got %q", snap.Harmony)
	}
}

func TestOptionalBody_UnknownLength(t *testing.T) {
	api := setupTestAPI(t)

	for _, path := range []string{"/api/v1/palette/generate", "/api/v1/palette/save"} {
		req := httptest.NewRequest("POST", path, strings.NewReader(""))
		req.ContentLength = -1
		req.TransferEncoding = []string{"chunked"}
		rec := httptest.NewRecorder()
		api.server.Handler().ServeHTTP(rec, req)
		expectStatus(t, rec, http.StatusOK)

		req = httptest.NewRequest("POST", path, strings.NewReader("{"))
		req.ContentLength = -1
		rec = httptest.NewRecorder()
		api.server.Handler().ServeHTTP(rec, req)
		expectStatus(t, rec, http.StatusBadRequest)
	}
}

func TestGenerate_OneChangePerRequest(t *testing.T) {
	api := setupTestAPI(t)

	var changes []state.Snapshot
	api.session.OnChange(func(snap state.Snapshot) {
		changes = append(changes, snap)
	})

	harmony, theme := "triadic", "dark"
	rec := api.request("POST", "/api/v1/palette/generate", GenerateRequest{Harmony: &harmony, Theme: &theme})
	expectStatus(t, rec, http.StatusOK)

	if len(changes) != 1 {
		t.Fatalf("Expected 1 change notification, got %d", len(changes))
	}
	if got := changes[0].Palette; got.Harmony != model.HarmonyTriadic || got.Theme != model.ThemeDark {
		t.Errorf("Palette generated with %q/%q", got.Harmony, got.Theme)
	}
}

func TestGenerate_InvalidSelectionLeavesState(t *testing.T) {
	api := setupTestAPI(t)
	before := api.session.Snapshot()

	harmony := "triadic"
	rec := api.request("POST", "/api/v1/palette/generate", GenerateRequest{Harmony: &harmony, Count: model.MaxCount + 1})
	expectStatus(t, rec, http.StatusBadRequest)

	after := api.session.Snapshot()
	if after.Harmony != before.Harmony || after.Palette.ID != before.Palette.ID {
		t.Errorf("Rejected generate changed state: %+v", after)
	}
}

func TestGetSaved_PathEscapeNotFound(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	api := setupTestAPIWithStore(t, store.NewPaletteStore(paths))
	expectStatus(t, api.request("POST", "/api/v1/palette/save", nil), http.StatusOK)

	outside := `{"_v": 1, "id": "current", "colors": [{"hex": "#000000", "locked": false}]}`
	if err := os.WriteFile(filepath.Join(paths.DataRoot(), "current.json"), []byte(outside), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	for _, method := range []string{"GET", "DELETE"} {
		rec := api.request(method, "/api/v1/palettes/..%2Fcurrent", nil)
		expectStatus(t, rec, http.StatusNotFound)
	}
	if _, err := os.Stat(filepath.Join(paths.DataRoot(), "current.json")); err != nil {
		t.Errorf("current.json should be untouched: %v", err)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	api := setupTestAPI(t)

	bogus := "rainbow"
	tests := []struct {
		name string
		body any
	}{
		{"unknown harmony", GenerateRequest{Harmony: &bogus}},
		{"unknown theme", GenerateRequest{Theme: &bogus}},
		{"count too large", GenerateRequest{Count: model.MaxCount + 1}},
		{"negative count", GenerateRequest{Count: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.request("POST", "/api/v1/palette/generate", tt.body)
			expectStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestGenerate_Resize(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("POST", "/api/v1/palette/generate", GenerateRequest{Count: 3})
	expectStatus(t, rec, http.StatusOK)
	if snap := decodeSnapshot(t, rec); len(snap.Palette.Colors) != 3 {
		t.Errorf("Expected 3 colors, got %d", len(snap.Palette.Colors))
	}
}

func TestLockSlot_PreservedAcrossGenerate(t *testing.T) {
	api := setupTestAPI(t)

	// Slots in URLs are 1-based
	rec := api.request("POST", "/api/v1/palette/colors/3/lock", nil)
	expectStatus(t, rec, http.StatusOK)
	locked := decodeSnapshot(t, rec).Palette
	if !locked.Colors[2].Locked {
		t.Fatal("Expected third color to be locked")
	}

	rec = api.request("POST", "/api/v1/palette/generate", nil)
	expectStatus(t, rec, http.StatusOK)
	next := decodeSnapshot(t, rec).Palette

	if next.Colors[2] != locked.Colors[2] {
		t.Errorf("Locked color changed: %v -> %v", locked.Colors[2], next.Colors[2])
	}
	if next.ID == locked.ID {
		t.Error("Expected a new id")
	}
}

func TestLockSlot_Invalid(t *testing.T) {
	api := setupTestAPI(t)

	for _, slot := range []string{"0", "6", "x"} {
		rec := api.request("POST", "/api/v1/palette/colors/"+slot+"/lock", nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("slot %s: expected 400, got %d", slot, rec.Code)
		}
	}
}

func TestSetColor(t *testing.T) {
	api := setupTestAPI(t)
	api.request("POST", "/api/v1/palette/colors/1/lock", nil)

	rec := api.request("PUT", "/api/v1/palette/colors/1", HexRequest{Hex: "#a1b2c3"})
	expectStatus(t, rec, http.StatusOK)

	c := decodeSnapshot(t, rec).Palette.Colors[0]
	if c.Hex != "#A1B2C3" {
		t.Errorf("Expected #A1B2C3, got %s", c.Hex)
	}
	if !c.Locked {
		t.Error("SetColor should keep the lock")
	}

	rec = api.request("PUT", "/api/v1/palette/colors/1", HexRequest{Hex: "chartreuse"})
	expectStatus(t, rec, http.StatusBadRequest)
	if api.session.Palette().Colors[0].Hex != "#A1B2C3" {
		t.Error("Invalid color should leave the palette unchanged")
	}
}

func TestToggleLockByHex(t *testing.T) {
	api := setupTestAPI(t)
	api.request("PUT", "/api/v1/palette/colors/2", HexRequest{Hex: "#A1B2C3"})

	rec := api.request("POST", "/api/v1/palette/lock", HexRequest{Hex: "a1b2c3"})
	expectStatus(t, rec, http.StatusOK)

	snap := decodeSnapshot(t, rec)
	for i, c := range snap.Palette.Colors {
		if want := c.Hex == "#A1B2C3"; c.Locked != want {
			t.Errorf("color %d (%s): locked = %v, want %v", i+1, c.Hex, c.Locked, want)
		}
	}

	rec = api.request("POST", "/api/v1/palette/lock", HexRequest{Hex: "#12"})
	expectStatus(t, rec, http.StatusBadRequest)
}

func TestSaveListLoadDelete(t *testing.T) {
	api := setupTestAPI(t)
	current := api.session.Palette()

	rec := api.request("POST", "/api/v1/palette/save", SaveRequest{Name: "Morning Fog"})
	expectStatus(t, rec, http.StatusOK)

	var saved model.Palette
	json.Unmarshal(rec.Body.Bytes(), &saved)
	if saved.ID != current.ID || saved.Alias != "morning-fog" {
		t.Errorf("Unexpected saved palette %+v", saved)
	}
	if api.session.Palette().Name != "Morning Fog" {
		t.Error("Session palette should carry the saved name")
	}

	rec = api.request("GET", "/api/v1/palettes", nil)
	expectStatus(t, rec, http.StatusOK)
	var list []model.Palette
	json.Unmarshal(rec.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("Expected 1 saved palette, got %d", len(list))
	}

	rec = api.request("GET", "/api/v1/palettes/morning-fog", nil)
	expectStatus(t, rec, http.StatusOK)

	// Move on, then load the saved one back
	api.request("POST", "/api/v1/palette/generate", nil)
	rec = api.request("POST", "/api/v1/palettes/morning-fog/load", nil)
	expectStatus(t, rec, http.StatusOK)
	if got := decodeSnapshot(t, rec).Palette; got.ID != saved.ID {
		t.Errorf("Expected loaded palette %s, got %s", saved.ID, got.ID)
	}

	rec = api.request("DELETE", "/api/v1/palettes/"+saved.ID, nil)
	expectStatus(t, rec, http.StatusNoContent)

	rec = api.request("GET", "/api/v1/palettes/"+saved.ID, nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestSave_EmptyBody(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("POST", "/api/v1/palette/save", nil)
	expectStatus(t, rec, http.StatusOK)
}

func TestSave_StorageFailureKeepsPalette(t *testing.T) {
	mem := testutil.NewMemoryPaletteStore()
	mem.Fail = swerr.Storage("save", errors.New("disk full"))
	api := setupTestAPIWithStore(t, mem)
	before := api.session.Palette()

	rec := api.request("POST", "/api/v1/palette/save", SaveRequest{Name: "Doomed"})
	expectStatus(t, rec, http.StatusInsufficientStorage)

	after := api.session.Palette()
	if after.ID != before.ID || after.Name != "" {
		t.Errorf("Session palette changed after failed save: %+v", after)
	}
}

func TestExportCurrent(t *testing.T) {
	api := setupTestAPI(t)
	current := api.session.Palette()

	rec := api.request("GET", "/api/v1/palette/export", nil)
	expectStatus(t, rec, http.StatusOK)

	wantName := fmt.Sprintf("palette-%s.json", current.ID)
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, wantName) || !strings.HasPrefix(cd, "attachment") {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Unexpected Content-Type %q", ct)
	}

	var exported struct {
		ID     string        `json:"id"`
		Colors []model.Color `json:"colors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &exported); err != nil {
		t.Fatalf("Export is not valid JSON: %v", err)
	}
	if exported.ID != current.ID {
		t.Errorf("Expected id %s, got %s", current.ID, exported.ID)
	}
	for i, c := range exported.Colors {
		if c != current.Colors[i] {
			t.Errorf("color %d: got %v, want %v", i+1, c, current.Colors[i])
		}
	}
}

func TestExport_Formats(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("GET", "/api/v1/palette/export?format=css", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "--color-1:") {
		t.Errorf("Expected CSS custom properties, got %s", rec.Body.String())
	}

	rec = api.request("GET", "/api/v1/palette/export?format=bmp", nil)
	expectStatus(t, rec, http.StatusBadRequest)

	rec = api.request("GET", "/api/v1/palettes/missing/export", nil)
	expectStatus(t, rec, http.StatusNotFound)
}

func TestGetOptions(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("GET", "/api/v1/options", nil)
	expectStatus(t, rec, http.StatusOK)

	var opts OptionsResponse
	json.Unmarshal(rec.Body.Bytes(), &opts)
	if len(opts.Harmonies) != len(model.Harmonies) || len(opts.Themes) != len(model.Themes) {
		t.Errorf("Unexpected options %+v", opts)
	}
	if opts.Formats[0] != "json" {
		t.Errorf("Expected json first, got %v", opts.Formats)
	}
}

func TestFavicon(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("GET", "/favicon.svg", nil)
	expectStatus(t, rec, http.StatusOK)

	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Unexpected Content-Type %q", ct)
	}
	for _, hex := range api.session.Palette().Hexes() {
		if !strings.Contains(rec.Body.String(), hex) {
			t.Errorf("Favicon missing color %s", hex)
		}
	}
}

func TestGenerateFaviconSVG_Empty(t *testing.T) {
	if svg := GenerateFaviconSVG(nil); !strings.Contains(svg, defaultFaviconColor) {
		t.Errorf("Expected default color, got %s", svg)
	}
}

func TestStaticIndex(t *testing.T) {
	api := setupTestAPI(t)

	rec := api.request("GET", "/", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "<title>swatch</title>") {
		t.Error("Expected embedded index.html")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	api := setupTestAPI(t)
	api.request("GET", "/api/v1/palette", nil)

	rec := api.request("GET", "/metrics", nil)
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "swatch_http_requests_total") {
		t.Error("Expected request counter in metrics output")
	}
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{swerr.InvalidColor("nope"), http.StatusBadRequest},
		{swerr.InvalidField("count", "bad"), http.StatusBadRequest},
		{swerr.PaletteNotFound("x"), http.StatusNotFound},
		{swerr.AliasAlreadyExists("x"), http.StatusConflict},
		{fmt.Errorf("wrapped: %w", swerr.Storage("save", errors.New("io"))), http.StatusInsufficientStorage},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := errorStatus(tt.err); got != tt.want {
			t.Errorf("errorStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
