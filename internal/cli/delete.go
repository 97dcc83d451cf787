package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Delete a saved palette")

	ctx.DeletePalette, _ = ra.NewString("palette").
		SetUsage("Saved palette ID or alias").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation (required in non-interactive mode)").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(idOrAlias string, force, nonInteractive bool) {
	app, err := NewApp(!nonInteractive)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	p, err := app.PaletteService.Get(idOrAlias)
	if err != nil {
		Fatal(err)
	}

	if !force {
		if nonInteractive {
			Fatal(fmt.Errorf("deleting palette %q (%s) requires --force in non-interactive mode", p.DisplayName(), p.ID))
		}

		confirmed, err := app.Prompter.Confirm(
			fmt.Sprintf("Delete palette %q (%s)?", p.DisplayName(), p.ID),
			false,
		)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if _, err := app.PaletteService.Delete(p.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted palette %q (%s)", p.DisplayName(), p.ID)
}
