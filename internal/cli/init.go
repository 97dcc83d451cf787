package cli

import (
	"os"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/git"
	"github.com/amterp/swatch/internal/service"
	"github.com/amterp/swatch/internal/store"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create a .swatch data directory for this project")

	ctx.InitLocation, _ = ra.NewString("location").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Custom location for the data directory").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(location string, jsonOutput bool) {
	// No discovery here: init is how a project gets a data directory.
	initService := service.NewInitService(git.NewClient(""), store.NewGlobalStore())

	cwd, err := os.Getwd()
	if err != nil {
		Fatal(err)
	}

	result, err := initService.Initialize(cwd, location)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(InitOutput{DataRoot: result.DataRoot, AlreadyInitialized: result.AlreadyInitialized}); err != nil {
			Fatal(err)
		}
		return
	}

	if result.AlreadyInitialized {
		PrintInfo("Already initialized at %s", result.DataRoot)
		return
	}
	PrintSuccess("Initialized swatch in %s", result.DataRoot)
}
