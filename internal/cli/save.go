package cli

import (
	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/service"
)

func registerSave(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("save")
	cmd.SetDescription("Save a snapshot of the working palette")

	ctx.SaveName, _ = ra.NewString("name").
		SetOptional(true).
		SetUsage("Palette name (prompted for if omitted)").
		Register(cmd)

	ctx.SaveUsed, _ = parent.RegisterCmd(cmd)
}

func runSave(name string, nonInteractive, jsonOutput bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	current, err := app.WorkspaceService.Current()
	if err != nil {
		Fatal(err)
	}

	// Unnamed saves are fine; only ask when someone is there to answer.
	if name == "" && !nonInteractive && current.Name == "" {
		name, err = app.Prompter.Input("Palette name (optional)", "")
		if err != nil {
			Fatal(err)
		}
	}

	saved, err := app.PaletteService.Save(service.SaveInput{Palette: *current, Name: name})
	if err != nil {
		Fatal(err)
	}

	// The working palette picks up the name and alias so re-saves overwrite.
	if _, err := app.WorkspaceService.Replace(*saved); err != nil {
		PrintWarning("Saved, but failed to update the working palette: %v", err)
	}

	if jsonOutput {
		if err := printJson(NewPaletteOutput(saved)); err != nil {
			Fatal(err)
		}
		return
	}
	PrintSuccess("Saved %s %s (%s)", RenderStrip(*saved), saved.DisplayName(), RenderID(saved.ID))
}
