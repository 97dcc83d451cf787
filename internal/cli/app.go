package cli

import (
	"fmt"
	"os"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/discovery"
	"github.com/amterp/swatch/internal/generator"
	"github.com/amterp/swatch/internal/git"
	"github.com/amterp/swatch/internal/id"
	"github.com/amterp/swatch/internal/logging"
	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/state"
	"github.com/amterp/swatch/internal/store"
)

// App holds all the dependencies for the CLI.
type App struct {
	GlobalStore      store.GlobalStore
	Settings         config.Settings
	Location         *discovery.Result
	Paths            *config.Paths
	PaletteStore     store.PaletteStore
	WorkingStore     store.WorkingStore
	Prompter         prompt.Prompter
	Machine          *state.Machine
	InitService      *service.InitService
	AliasService     *service.AliasService
	PaletteService   *service.PaletteService
	WorkspaceService *service.WorkspaceService
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	globalStore := store.NewGlobalStore()

	// Load global config with warnings (don't silently ignore errors)
	globalCfg, err := globalStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load global config: %v\n", err)
		globalCfg = nil
	}

	settings, err := config.Resolve(globalCfg)
	if err != nil {
		return nil, err
	}
	logging.Setup(settings.LogLevel, settings.IsDevelopment())

	location, err := discovery.Resolve(settings.DataDir)
	if err != nil {
		return nil, err
	}

	paths := config.NewPaths(location.DataRoot)
	paletteStore, err := store.Open(settings.Store, paths)
	if err != nil {
		return nil, err
	}
	workingStore := store.NewWorkingStore(paths)

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	machine := state.NewMachine(generator.New(nil), id.Generate)
	aliasService := service.NewAliasService(paletteStore)
	paletteService := service.NewPaletteService(paletteStore, aliasService)
	workspaceService := service.NewWorkspaceService(workingStore, machine, service.Defaults{
		Count:   settings.Count,
		Harmony: settings.DefaultHarmony,
		Theme:   settings.DefaultTheme,
	})
	initService := service.NewInitService(git.NewClient(""), globalStore)

	return &App{
		GlobalStore:      globalStore,
		Settings:         settings,
		Location:         location,
		Paths:            paths,
		PaletteStore:     paletteStore,
		WorkingStore:     workingStore,
		Prompter:         prompter,
		Machine:          machine,
		InitService:      initService,
		AliasService:     aliasService,
		PaletteService:   paletteService,
		WorkspaceService: workspaceService,
	}, nil
}

// Close releases the palette store.
func (a *App) Close() {
	if a.PaletteStore != nil {
		_ = a.PaletteStore.Close()
	}
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("Error: %v", err)
	os.Exit(1)
}
