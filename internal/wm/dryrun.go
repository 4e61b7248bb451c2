package wm

import (
	"context"

	"autotiler/pkg/core"
)

// DryRun forwards reads to the wrapped window manager but only logs commands.
type DryRun struct {
	WindowManager
	log core.Logger
}

// NewDryRun wraps wm so that commands are logged instead of sent.
func NewDryRun(wm WindowManager, log core.Logger) *DryRun {
	return &DryRun{WindowManager: wm, log: log}
}

func (d *DryRun) Name() string {
	return d.WindowManager.Name() + " (dry run)"
}

func (d *DryRun) RunCommand(ctx context.Context, cmd string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.log.Info("Would run command", "command", cmd)
	return nil
}
