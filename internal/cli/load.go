package cli

import (
	"github.com/amterp/ra"
)

func registerLoad(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("load")
	cmd.SetDescription("Make a saved palette the working palette")

	ctx.LoadPalette, _ = ra.NewString("palette").
		SetUsage("Saved palette ID or alias").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.LoadUsed, _ = parent.RegisterCmd(cmd)
}

func runLoad(idOrAlias string, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	saved, err := app.PaletteService.Get(idOrAlias)
	if err != nil {
		Fatal(err)
	}

	p, err := app.WorkspaceService.Replace(*saved)
	if err != nil {
		Fatal(err)
	}
	printPalette(p, jsonOutput)
}
