package cli

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/discovery"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/store"
)

// completionCtx provides lightweight store access for shell completion.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so we can't use the full App. This initializes just enough to list palettes.
type completionCtx struct {
	once     sync.Once
	palettes store.PaletteStore
	err      error
}

var compCtx completionCtx

func initCompletionCtx() {
	compCtx.once.Do(func() {
		globalCfg, err := store.NewGlobalStore().Load()
		if err != nil {
			// Graceful degradation: no completions if global config is broken
			globalCfg = nil
		}

		settings, err := config.Resolve(globalCfg)
		if err != nil {
			compCtx.err = err
			return
		}

		result, err := discovery.Resolve(settings.DataDir)
		if err != nil {
			compCtx.err = fmt.Errorf("no data directory found")
			return
		}

		compCtx.palettes, compCtx.err = store.Open(settings.Store, config.NewPaths(result.DataRoot))
	})
}

// completePalettes returns saved palette IDs and aliases matching the given prefix.
func completePalettes(toComplete string) ([]string, ra.CompletionDirective) {
	initCompletionCtx()
	if compCtx.err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	palettes, err := compCtx.palettes.List()
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}
	return filterPrefix(paletteCandidates(palettes), toComplete), ra.CompletionDirectiveNoFileComp
}

// completeHarmonies returns harmony names matching the given prefix.
func completeHarmonies(toComplete string) ([]string, ra.CompletionDirective) {
	return filterPrefix(withNoneOption(model.HarmonyNames()), toComplete), ra.CompletionDirectiveNoFileComp
}

// completeThemes returns theme names matching the given prefix.
func completeThemes(toComplete string) ([]string, ra.CompletionDirective) {
	return filterPrefix(withNoneOption(model.ThemeNames()), toComplete), ra.CompletionDirectiveNoFileComp
}

// completeFormats returns export format names matching the given prefix.
func completeFormats(toComplete string) ([]string, ra.CompletionDirective) {
	return filterPrefix(formatNames(), toComplete), ra.CompletionDirectiveNoFileComp
}

// paletteCandidates lists each palette's ID followed by its alias, if any.
func paletteCandidates(palettes []*model.Palette) []string {
	var result []string
	for _, p := range palettes {
		result = append(result, p.ID)
		if p.Alias != "" {
			result = append(result, p.Alias)
		}
	}
	return result
}

func filterPrefix(candidates []string, prefix string) []string {
	var result []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			result = append(result, c)
		}
	}
	return result
}

// registerCompletion adds the "swatch completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
