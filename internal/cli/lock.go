package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amterp/ra"

	"github.com/amterp/swatch/internal/colormath"
	swerr "github.com/amterp/swatch/internal/errors"
	"github.com/amterp/swatch/internal/model"
)

func registerLock(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("lock")
	cmd.SetDescription("Toggle the lock on a color so generate keeps it")

	ctx.LockTarget, _ = ra.NewString("color").
		SetUsage("Slot number (1-based) or hex color like #A1B2C3").
		Register(cmd)

	ctx.LockUsed, _ = parent.RegisterCmd(cmd)
}

func registerSet(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("set")
	cmd.SetDescription("Replace the color in one slot, keeping its lock")

	ctx.SetSlot, _ = ra.NewInt("slot").
		SetUsage("Slot number (1-based)").
		Register(cmd)

	ctx.SetHex, _ = ra.NewString("hex").
		SetUsage("New color, e.g. #A1B2C3").
		Register(cmd)

	ctx.SetUsed, _ = parent.RegisterCmd(cmd)
}

// lockTarget is either a 0-based slot or a normalized hex.
type lockTarget struct {
	slot int
	hex  string
}

// parseLockTarget reads a 1-based slot number or a hex color.
// Bare digits are a slot; "#123" is the short hex form.
func parseLockTarget(arg string) (lockTarget, error) {
	arg = strings.TrimSpace(arg)
	if !strings.HasPrefix(arg, "#") {
		if n, err := strconv.Atoi(arg); err == nil {
			slot, err := toSlotIndex(n)
			if err != nil {
				return lockTarget{}, err
			}
			return lockTarget{slot: slot}, nil
		}
	}

	if !colormath.IsHexColor(arg) {
		return lockTarget{}, swerr.InvalidField("color", fmt.Sprintf("%q is neither a slot number nor a hex color", arg))
	}
	hex, err := colormath.Normalize(arg)
	if err != nil {
		return lockTarget{}, err
	}
	return lockTarget{slot: -1, hex: hex}, nil
}

// toSlotIndex converts a user-facing 1-based slot to an index.
func toSlotIndex(n int) (int, error) {
	if n < 1 || n > model.MaxCount {
		return 0, swerr.InvalidField("slot", fmt.Sprintf("must be between 1 and %d, got %d", model.MaxCount, n))
	}
	return n - 1, nil
}

func runLock(arg string, jsonOutput bool) {
	target, err := parseLockTarget(arg)
	if err != nil {
		Fatal(err)
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	var p *model.Palette
	if target.hex != "" {
		p, err = app.WorkspaceService.ToggleLockHex(target.hex)
	} else {
		p, err = app.WorkspaceService.ToggleLock(target.slot)
	}
	if err != nil {
		Fatal(err)
	}
	printPalette(p, jsonOutput)
}

func runSet(slotArg int, hex string, jsonOutput bool) {
	slot, err := toSlotIndex(slotArg)
	if err != nil {
		Fatal(err)
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}
	defer app.Close()

	p, err := app.WorkspaceService.SetColor(slot, hex)
	if err != nil {
		Fatal(err)
	}
	printPalette(p, jsonOutput)
}
