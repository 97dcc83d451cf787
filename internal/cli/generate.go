package cli

import (
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

func registerGenerate(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("generate")
	cmd.SetDescription("Regenerate every unlocked color of the working palette")

	ctx.GenerateHarmony, _ = ra.NewString("harmony").
		SetShort("H").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Harmony rule: " + strings.Join(withNoneOption(model.HarmonyNames()), ", ")).
		SetCompletionFunc(completeHarmonies).
		Register(cmd)

	ctx.GenerateTheme, _ = ra.NewString("theme").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Theme: " + strings.Join(withNoneOption(model.ThemeNames()), ", ")).
		SetCompletionFunc(completeThemes).
		Register(cmd)

	ctx.GenerateCount, _ = ra.NewInt("count").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault(0).
		SetUsage("Number of colors (default from config, at most 10)").
		Register(cmd)

	ctx.GenerateUsed, _ = parent.RegisterCmd(cmd)
}

func runGenerate(harmonyArg, themeArg string, count int, jsonOutput bool) {
	input, err := parseGenerateInput(harmonyArg, themeArg, count)
	if err != nil {
		Fatal(err)
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	p, err := app.WorkspaceService.Generate(input)
	if err != nil {
		Fatal(err)
	}
	printPalette(p, jsonOutput)
}

// parseGenerateInput turns flag values into a GenerateInput.
// Empty flags leave the previous selection in place; "none" clears it.
func parseGenerateInput(harmonyArg, themeArg string, count int) (service.GenerateInput, error) {
	input := service.GenerateInput{Count: count}
	if harmonyArg != "" {
		h, err := model.ParseHarmony(harmonyArg)
		if err != nil {
			return input, err
		}
		input.Harmony = &h
	}
	if themeArg != "" {
		t, err := model.ParseTheme(themeArg)
		if err != nil {
			return input, err
		}
		input.Theme = &t
	}
	return input, nil
}

func withNoneOption(names []string) []string {
	return append([]string{"none"}, names...)
}
