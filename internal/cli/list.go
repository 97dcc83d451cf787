package cli

import (
	"fmt"
	"time"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List saved palettes, newest first")

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	palettes, err := app.PaletteService.List()
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(NewPalettesOutput(palettes)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(palettes) == 0 {
		PrintInfo("No saved palettes")
		return
	}

	now := time.Now()
	for _, p := range palettes {
		printPaletteLine(p, now)
	}
}

func printPaletteLine(p *model.Palette, now time.Time) {
	fmt.Printf("%s  %s  %s %s\n",
		RenderStrip(*p),
		RenderID(p.ID),
		p.DisplayName(),
		RenderMuted(util.FormatAge(p.CreatedAtMillis, now)),
	)
}
