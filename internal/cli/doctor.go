package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/config"
	"github.com/amterp/swatch/internal/model"
	"github.com/amterp/swatch/internal/service"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check saved palettes and config for problems. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Apply automatic fixes for issues with deterministic solutions").
		Register(cmd)

	ctx.DoctorDryRun, _ = ra.NewBool("dry-run").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show what fixes would be applied without making changes").
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(fix bool, dryRun bool, jsonOutput bool) {
	// --fix and --dry-run are mutually exclusive
	if fix && dryRun {
		Fatal(fmt.Errorf("--fix and --dry-run cannot be used together"))
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	doctorService := service.NewDoctorService(app.Paths, config.GlobalConfigPath())

	report, err := doctorService.Diagnose()
	if err != nil {
		Fatal(err)
	}

	if fix && len(report.Issues) > 0 {
		report, err = doctorService.Fix(report)
		if err != nil {
			Fatal(err)
		}
	}

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
	} else {
		fmt.Printf("Checking %s...\n", RenderBold(app.Paths.DataRoot()))
		if app.Settings.Store != model.StoreFile {
			PrintWarning("doctor checks palette files; the %s store is not inspected", app.Settings.Store)
		}
		printDoctorReport(report, fix, dryRun)
	}

	if report.HasErrors() {
		os.Exit(1)
	}
}

func printDoctorReport(report *service.DiagnosticReport, didFix bool, dryRun bool) {
	fmt.Printf("  Palettes: %d\n\n", report.Summary.Palettes)

	fixedCount := 0
	if didFix {
		fixedCount = report.Summary.Fixed
	}

	if fixedCount > 0 {
		PrintSuccess("Fixed %d issue(s)", fixedCount)
		fmt.Println()
	}

	fixableCount := 0
	for _, issue := range report.Issues {
		if issue.Fixable {
			fixableCount++
		}
	}

	if dryRun && fixableCount > 0 {
		PrintInfo("Dry run: %d issue(s) would be fixed", fixableCount)
		fmt.Println()
	}

	if len(report.Issues) == 0 {
		if fixedCount == 0 {
			PrintSuccess("No issues found")
		} else {
			PrintSuccess("All issues resolved")
		}
		return
	}

	// Diagnose already sorts errors ahead of warnings
	for _, issue := range report.Issues {
		printIssue(issue)
	}

	fmt.Println()
	var summaryParts []string
	if report.Summary.Errors > 0 {
		summaryParts = append(summaryParts, StyleError.Render(fmt.Sprintf("%d error(s)", report.Summary.Errors)))
	}
	if report.Summary.Warnings > 0 {
		summaryParts = append(summaryParts, StyleWarning.Render(fmt.Sprintf("%d warning(s)", report.Summary.Warnings)))
	}
	if fixedCount > 0 {
		summaryParts = append(summaryParts, StyleSuccess.Render(fmt.Sprintf("%d fixed", fixedCount)))
	}
	if report.Summary.FixFailed > 0 {
		summaryParts = append(summaryParts, StyleError.Render(fmt.Sprintf("%d fix failed", report.Summary.FixFailed)))
	}
	fmt.Printf("Summary: %s\n", strings.Join(summaryParts, ", "))

	if !didFix && fixableCount > 0 {
		fmt.Println()
		if dryRun {
			PrintInfo("Run 'swatch doctor --fix' to apply these fixes")
		} else {
			PrintInfo("Run 'swatch doctor --fix' to apply automatic fixes")
		}
	}
}

func printIssue(issue service.Issue) {
	style := StyleWarning
	icon := IconWarning
	if issue.Severity == service.SeverityError {
		style = StyleError
		icon = IconError
	}

	location := ""
	if issue.PaletteID != "" {
		location = " " + RenderID(issue.PaletteID)
	}

	fmt.Printf("%s %s%s %s\n", style.Render(icon), style.Render(fmt.Sprintf("[%s]", issue.Code)), location, issue.Message)

	if issue.FixError != "" {
		fmt.Printf("  %s Fix failed: %s\n", StyleError.Render(IconInfo), issue.FixError)
	} else if issue.FixAction != "" {
		if issue.Fixable {
			fmt.Printf("  %s Fix: %s\n", RenderMuted(IconInfo), issue.FixAction)
		} else {
			fmt.Printf("  %s %s\n", RenderMuted(IconInfo), issue.FixAction)
		}
	}
}
