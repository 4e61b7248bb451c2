package tiler

import (
	"context"
	"fmt"

	"autotiler/internal/split"
	"autotiler/internal/tree"
	"autotiler/internal/wm"
	"autotiler/pkg/core"
)

// State is the dispatcher's position in handling the event stream.
type State int

const (
	Idle State = iota
	AwaitingTree
	Forwarding
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingTree:
		return "awaiting_tree"
	case Forwarding:
		return "forwarding"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Decision is the outcome of evaluating one focus event.
type Decision struct {
	Name         string
	TabbedParent bool
	Found        bool
	Command      split.Command // empty when TabbedParent
}

// Decide evaluates focused against a freshly fetched root.
func Decide(root *tree.Node, focused tree.Node, h *split.Heuristic) Decision {
	seed := focused.Layout.IsTabbedOrStacked()
	tabbed, found := tree.Ancestry(root, focused.ID, seed)

	d := Decision{Name: focused.Name, TabbedParent: tabbed, Found: found}
	if !tabbed {
		d.Command = h.Choose(focused)
	}
	return d
}

// Dispatcher turns focus events into split commands. It is driven by a single
// goroutine and is not safe for concurrent use.
type Dispatcher struct {
	trees     wm.TreeFetcher
	heuristic *split.Heuristic
	log       core.Logger
	state     State
}

// NewDispatcher creates an idle dispatcher.
func NewDispatcher(trees wm.TreeFetcher, heuristic *split.Heuristic, log core.Logger) *Dispatcher {
	return &Dispatcher{trees: trees, heuristic: heuristic, log: log}
}

// State returns the current state. Only meaningful once Run has returned or
// from the goroutine driving it.
func (d *Dispatcher) State() State {
	return d.state
}

func (d *Dispatcher) setState(s State) {
	if d.state != s {
		d.log.Debug("Dispatcher state", "from", d.state.String(), "to", s.String())
	}
	d.state = s
}

// Run consumes events until the stream ends or fails, which always returns an error.
func (d *Dispatcher) Run(ctx context.Context, events wm.EventStream, queue chan<- split.Command) error {
	d.setState(Idle)
	for {
		ev, err := events.Next(ctx)
		if err != nil {
			d.setState(Closed)
			return fmt.Errorf("window events: %w", err)
		}
		if err := d.Handle(ctx, ev, queue); err != nil {
			d.setState(Closed)
			return err
		}
	}
}

// Handle resolves one event into zero or one queued command.
func (d *Dispatcher) Handle(ctx context.Context, ev wm.FocusEvent, queue chan<- split.Command) error {
	if ev.Change != wm.ChangeFocus {
		return nil
	}

	d.setState(AwaitingTree)
	root, err := d.trees.GetTree(ctx)
	if err != nil {
		d.log.Error("Failed to fetch tree", err, "window_id", ev.Container.ID)
		return fmt.Errorf("fetch tree: %w", err)
	}

	decision := Decide(&root, ev.Container, d.heuristic)
	d.log.Debug("Focus changed",
		"name", decision.Name,
		"window_id", ev.Container.ID,
		"tabbed_parent", decision.TabbedParent)

	if decision.TabbedParent {
		d.setState(Idle)
		return nil
	}
	if !decision.Found {
		// still split, as if no tabbed ancestor existed
		d.log.Debug("Focused window missing from tree", "window_id", ev.Container.ID)
	}

	d.setState(Forwarding)
	select {
	case queue <- decision.Command:
	case <-ctx.Done():
		return ctx.Err()
	}
	d.setState(Idle)
	return nil
}
