package tiler

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"autotiler/internal/split"
	"autotiler/internal/wm"
	"autotiler/pkg/core"
)

const DefaultQueueSize = 10

// Tiler runs the dispatcher and the submitter against one window manager.
type Tiler struct {
	wm         wm.WindowManager
	dispatcher *Dispatcher
	submitter  *Submitter
	queueSize  int
	log        core.Logger
}

// New creates a tiler; a queueSize below one falls back to DefaultQueueSize.
func New(w wm.WindowManager, heuristic *split.Heuristic, queueSize int, log core.Logger) *Tiler {
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}
	return &Tiler{
		wm:         w,
		dispatcher: NewDispatcher(w, heuristic, log),
		submitter:  NewSubmitter(w, log),
		queueSize:  queueSize,
		log:        log,
	}
}

// Run blocks until either side fails. Every exit is an error: the event stream
// never ends on its own.
func (t *Tiler) Run(ctx context.Context) error {
	events, err := t.wm.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer events.Close()

	queue := make(chan split.Command, t.queueSize)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(queue)
		err := t.dispatcher.Run(gctx, events, queue)
		t.log.Debug("Dispatcher stopped", "state", t.dispatcher.State().String())
		return err
	})
	g.Go(func() error {
		// drains with the outer context so queued commands survive a dispatcher failure
		return t.submitter.Run(ctx, queue)
	})

	t.log.Info("Listening for focus changes", "wm", t.wm.Name(), "queue_size", t.queueSize)
	return g.Wait()
}
