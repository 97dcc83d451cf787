package cli

import (
	"os"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/export"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

func registerExport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("export")
	cmd.SetDescription("Write a palette to palette-<id>.<format>")

	ctx.ExportPalette, _ = ra.NewString("palette").
		SetOptional(true).
		SetUsage("Saved palette ID or alias (default: working palette)").
		SetCompletionFunc(completePalettes).
		Register(cmd)

	ctx.ExportFormat, _ = ra.NewString("format").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Export format: " + strings.Join(formatNames(), ", ") + " (default: json)").
		SetCompletionFunc(completeFormats).
		Register(cmd)

	ctx.ExportOut, _ = ra.NewString("out").
		SetShort("o").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Directory to write into (default: current directory)").
		Register(cmd)

	ctx.ExportStdout, _ = ra.NewBool("stdout").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print the document instead of writing a file").
		Register(cmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(cmd)
}

func runExport(idOrAlias, format, outDir string, toStdout, jsonOutput bool) {
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

	doc, err := app.PaletteService.Export(*p, format)
	if err != nil {
		Fatal(err)
	}

	if toStdout {
		if jsonOutput {
			warnJsonNotSupported("export --stdout")
		}
		if _, err := os.Stdout.Write(doc.Body); err != nil {
			Fatal(err)
		}
		return
	}

	path, err := service.WriteDocument(outDir, doc)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(ExportOutput{Path: path, Format: string(doc.Format)}); err != nil {
			Fatal(err)
		}
		return
	}
	PrintSuccess("Exported %s to %s", RenderID(p.ID), path)
}

func formatNames() []string {
	names := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		names[i] = string(f)
	}
	return names
}
