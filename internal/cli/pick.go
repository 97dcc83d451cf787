package cli

import (
	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/prompt"
	"github.com/amterp/swatch/internal/service"
)

func registerPick(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pick")
	cmd.SetDescription("Choose a harmony and theme interactively, then generate")

	ctx.PickUsed, _ = parent.RegisterCmd(cmd)
}

func runPick(nonInteractive, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	current, err := app.WorkspaceService.Current()
	if err != nil {
		Fatal(err)
	}

	harmony, theme, err := prompt.PickOptions(app.Prompter, current.Harmony, current.Theme)
	if err != nil {
		Fatal(err)
	}

	p, err := app.WorkspaceService.Generate(service.GenerateInput{Harmony: &harmony, Theme: &theme})
	if err != nil {
		Fatal(err)
	}
	printPalette(p, jsonOutput)
}
