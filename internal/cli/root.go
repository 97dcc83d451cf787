package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Json           *bool

	// init command
	InitUsed     *bool
	InitLocation *string

	// generate command
	GenerateUsed    *bool
	GenerateHarmony *string
	GenerateTheme   *string
	GenerateCount   *int

	// show command
	ShowUsed    *bool
	ShowPalette *string

	// lock command
	LockUsed   *bool
	LockTarget *string

	// set command
	SetUsed *bool
	SetSlot *int
	SetHex  *string

	// save command
	SaveUsed *bool
	SaveName *string

	// list command
	ListUsed *bool

	// load command
	LoadUsed    *bool
	LoadPalette *string

	// delete command
	DeleteUsed    *bool
	DeletePalette *string
	DeleteForce   *bool

	// export command
	ExportUsed    *bool
	ExportPalette *string
	ExportFormat  *string
	ExportOut     *string
	ExportStdout  *bool

	// convert command
	ConvertUsed  *bool
	ConvertColor *string

	// pick command
	PickUsed *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string

	// doctor command
	DoctorUsed   *bool
	DoctorFix    *bool
	DoctorDryRun *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("swatch")
	cmd.SetDescription("Generate and keep color palettes")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Print machine-readable JSON").
		Register(cmd, ra.WithGlobal(true))

	registerInit(cmd, ctx)
	registerGenerate(cmd, ctx)
	registerShow(cmd, ctx)
	registerLock(cmd, ctx)
	registerSet(cmd, ctx)
	registerSave(cmd, ctx)
	registerList(cmd, ctx)
	registerLoad(cmd, ctx)
	registerDelete(cmd, ctx)
	registerExport(cmd, ctx)
	registerConvert(cmd, ctx)
	registerPick(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)
	registerDoctor(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitLocation, *ctx.Json)

	case *ctx.GenerateUsed:
		runGenerate(*ctx.GenerateHarmony, *ctx.GenerateTheme, *ctx.GenerateCount, *ctx.Json)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowPalette, *ctx.Json)

	case *ctx.LockUsed:
		runLock(*ctx.LockTarget, *ctx.Json)

	case *ctx.SetUsed:
		runSet(*ctx.SetSlot, *ctx.SetHex, *ctx.Json)

	case *ctx.SaveUsed:
		runSave(*ctx.SaveName, *ctx.NonInteractive, *ctx.Json)

	case *ctx.ListUsed:
		runList(*ctx.Json)

	case *ctx.LoadUsed:
		runLoad(*ctx.LoadPalette, *ctx.Json)

	case *ctx.DeleteUsed:
		runDelete(*ctx.DeletePalette, *ctx.DeleteForce, *ctx.NonInteractive)

	case *ctx.ExportUsed:
		runExport(*ctx.ExportPalette, *ctx.ExportFormat, *ctx.ExportOut, *ctx.ExportStdout, *ctx.Json)

	case *ctx.ConvertUsed:
		runConvert(*ctx.ConvertColor, *ctx.Json)

	case *ctx.PickUsed:
		runPick(*ctx.NonInteractive, *ctx.Json)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort, *ctx.ServeNoOpen)

	case *ctx.CompletionUsed:
		runCompletion(*ctx.CompletionShell, rootCmd)

	case *ctx.DoctorUsed:
		runDoctor(*ctx.DoctorFix, *ctx.DoctorDryRun, *ctx.Json)
	}
}
