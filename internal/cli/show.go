package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/util"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display the working palette, or a saved one")

	ctx.ShowPalette, _ = ra.NewString("palette").
		SetOptional(true).
		SetUsage("Saved palette ID or alias (default: working palette)").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(idOrAlias string, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	var p *model.Palette
	if idOrAlias == "" {
		p, err = app.WorkspaceService.Current()
	} else {
		p, err = app.PaletteService.Get(idOrAlias)
	}
	if err != nil {
		Fatal(err)
	}

	printPalette(p, jsonOutput)
}

// printPalette prints a palette as JSON or as colored cards with details.
func printPalette(p *model.Palette, jsonOutput bool) {
	if jsonOutput {
		if err := printJson(NewPaletteOutput(p)); err != nil {
			Fatal(err)
		}
		return
	}

	const labelWidth = 9

	if p.Name != "" {
		fmt.Println(TitleBox(p.Name))
	}
	fmt.Println(RenderPaletteRow(*p))
	fmt.Println()

	fmt.Println(LabelValue("ID", RenderID(p.ID), labelWidth))
	if p.Alias != "" {
		fmt.Println(LabelValue("Alias", p.Alias, labelWidth))
	}
	fmt.Println(LabelValue("Harmony", p.Harmony.Label(), labelWidth))
	fmt.Println(LabelValue("Theme", p.Theme.Label(), labelWidth))
	if p.CreatedAtMillis != 0 {
		fmt.Println(LabelValue("Saved", RenderMuted(util.FormatMillis(p.CreatedAtMillis)), labelWidth))
	}
	if locked := p.LockedCount(); locked > 0 {
		fmt.Println(LabelValue("Locked", fmt.Sprintf("%d of %d", locked, len(p.Colors)), labelWidth))
	}
}
