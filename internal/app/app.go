package app

import (
	"context"
	"fmt"
	"io"

	"autotiler/internal/split"
	"autotiler/internal/tiler"
	"autotiler/internal/tree"
	"autotiler/internal/wm"
	"autotiler/pkg/config"
	"autotiler/pkg/core"
	"autotiler/pkg/notify"
)

// Notifier shows a desktop notification.
type Notifier interface {
	Show(title, message string, nType notify.NotificationType) error
}

// Autotiler wires configuration, the window manager client and the tiler.
type Autotiler struct {
	config    *config.Config
	wm        wm.WindowManager
	heuristic *split.Heuristic
	tiler     *tiler.Tiler
	notifier  Notifier
	log       core.Logger
}

// New builds an Autotiler around an already connected window manager client.
func New(cfg *config.Config, w wm.WindowManager, log core.Logger) *Autotiler {
	heuristic := split.New(cfg.Terminals())
	log.Debug("Recognized terminals", "terminals", cfg.Terminals())

	return &Autotiler{
		config:    cfg,
		wm:        w,
		heuristic: heuristic,
		tiler:     tiler.New(w, heuristic, cfg.QueueSize(), log),
		notifier:  notify.NewNotifyService(cfg.GetNotifyCommand(), log),
		log:       log,
	}
}

// NewForSession detects the running window manager and builds an Autotiler for it.
func NewForSession(cfg *config.Config, dryRun bool, log core.Logger) (*Autotiler, error) {
	manager, err := wm.NewManager(wm.Options{
		SocketPath:  cfg.SocketPath(),
		EventBuffer: cfg.EventBuffer(),
		DryRun:      dryRun,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize window manager support: %w", err)
	}
	return New(cfg, manager, log), nil
}

// Run blocks until the tiler fails. The returned error is always non-nil.
func (a *Autotiler) Run(ctx context.Context) error {
	a.log.Info("Starting autotiler", "wm", a.wm.Name())

	err := a.tiler.Run(ctx)
	if err != nil && a.config.NotifyOnError() {
		if nerr := a.notifier.Show("autotiler", err.Error(), notify.Error); nerr != nil {
			a.log.Warn("Failed to show error notification", "error", nerr.Error())
		}
	}
	return err
}

// Explain fetches the tree once and describes what would happen to the focused window.
func (a *Autotiler) Explain(ctx context.Context, out io.Writer) error {
	root, err := a.wm.GetTree(ctx)
	if err != nil {
		return fmt.Errorf("fetch tree: %w", err)
	}

	focused, ok := tree.FindFocused(&root)
	if !ok {
		_, err := fmt.Fprintln(out, "no focused window")
		return err
	}

	d := tiler.Decide(&root, *focused, a.heuristic)
	command := string(d.Command)
	if d.TabbedParent {
		command = "none"
	}

	_, err = fmt.Fprintf(out,
		"id=%d name=%q layout=%s terminal=%t tabbed_parent=%t command=%q\n",
		focused.ID, focused.Name, focused.Layout, a.heuristic.IsTerminal(focused.Name), d.TabbedParent, command)
	return err
}
