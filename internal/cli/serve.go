package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/amterp/ra"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/amterp/swatch/internal/api"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/state"
)

const shutdownTimeout = 5 * time.Second

func registerServe(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("serve")
	cmd.SetDescription("Start the web interface")

	ctx.ServePort, _ = ra.NewInt("port").
		SetOptional(true).
		SetDefault(0).
		SetShort("p").
		SetFlagOnly(true).
		SetUsage("Port to listen on (default from config; will try incrementally if in use)").
		Register(cmd)

	ctx.ServeNoOpen, _ = ra.NewBool("no-open").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Don't open browser automatically").
		Register(cmd)

	ctx.ServeUsed, _ = parent.RegisterCmd(cmd)
}

func runServe(port int, noOpen bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	if port <= 0 {
		port = app.Settings.Port
	}

	current, err := app.WorkspaceService.Current()
	if err != nil {
		Fatal(err)
	}

	session := state.NewSession(app.Machine, *current, state.WithSelection(current.Harmony, current.Theme))
	// Browser edits become the working palette the CLI sees.
	session.OnChange(func(snap state.Snapshot) {
		if _, err := app.WorkspaceService.Replace(snap.Palette); err != nil {
			log.Warn().Err(err).Str("palette", snap.Palette.ID).Msg("Failed to persist working palette")
		}
	})

	handler := api.NewHandler(session, app.PaletteService)

	opts := api.ServerOptions{Port: findAvailablePort(port)}
	if app.Settings.Store == model.StoreFile {
		opts.PalettesDir = app.Paths.PalettesDir()
	}
	server := api.NewServer(handler, session, opts)

	url := fmt.Sprintf("http://localhost:%d", opts.Port)
	fmt.Printf("swatch running at %s\n", RenderURL(url))
	fmt.Println(RenderMuted("Press Ctrl+C to stop"))
	log.Info().
		Str("addr", server.Addr()).
		Str("data", app.Paths.DataRoot()).
		Str("store", app.Settings.Store).
		Msg("Server starting")

	if !noOpen {
		openBrowser(url)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		Fatal(err)
	}
}

// findAvailablePort tries ports starting from startPort until it finds one that's available.
func findAvailablePort(startPort int) int {
	maxAttempts := 100
	for i := 0; i < maxAttempts; i++ {
		port := startPort + i
		if isPortAvailable(port) {
			return port
		}
	}
	// If we couldn't find a port after maxAttempts, return the original and let it fail naturally
	return startPort
}

// isPortAvailable checks if a port is available by attempting to listen on it.
func isPortAvailable(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	listener.Close()
	return true
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd != nil {
		_ = cmd.Start()
	}
}
