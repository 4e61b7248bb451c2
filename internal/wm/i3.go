package wm

import (
	"context"
	"errors"
	"fmt"

	"go.i3wm.org/i3/v4"

	"autotiler/internal/tree"
	"autotiler/pkg/core"
)

// I3 talks to i3 or sway over the i3 IPC protocol.
type I3 struct {
	name        string
	log         core.Logger
	eventBuffer int
}

// NewI3 returns a client for the window manager called name. The socket is chosen
// by NewManager through i3.SocketPathHook.
func NewI3(name string, eventBuffer int, log core.Logger) *I3 {
	if eventBuffer < 1 {
		eventBuffer = 1
	}
	return &I3{name: name, log: log, eventBuffer: eventBuffer}
}

func (w *I3) Name() string {
	return w.name
}

func (w *I3) Subscribe(ctx context.Context) (EventStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Subscribe connects lazily; fail early if the socket is unreachable.
	if _, err := i3.GetVersion(); err != nil {
		w.log.Error("Failed to reach window manager", err, "wm", w.name)
		return nil, fmt.Errorf("connect to %s: %w", w.name, err)
	}

	recv := i3.Subscribe(i3.WindowEventType)
	w.log.Debug("Subscribed to window events", "wm", w.name, "buffer", w.eventBuffer)
	return newI3Stream(recv, w.eventBuffer), nil
}

func (w *I3) GetTree(ctx context.Context) (tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return tree.Node{}, err
	}

	t, err := i3.GetTree()
	if err != nil {
		return tree.Node{}, fmt.Errorf("get_tree: %w", err)
	}
	if t.Root == nil {
		return tree.Node{}, errors.New("get_tree: empty reply")
	}
	return convertNode(t.Root), nil
}

func (w *I3) RunCommand(ctx context.Context, cmd string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	results, err := i3.RunCommand(cmd)
	if err != nil {
		return fmt.Errorf("run_command %q: %w", cmd, err)
	}
	for _, r := range results {
		if !r.Success {
			return fmt.Errorf("run_command %q: %s", cmd, r.Error)
		}
	}
	return nil
}

// convertNode copies the parts of an i3 node the tiler looks at.
func convertNode(n *i3.Node) tree.Node {
	out := tree.Node{
		ID:         int64(n.ID),
		Name:       n.Name,
		Layout:     tree.ParseLayout(string(n.Layout)),
		Rect:       convertRect(n.Rect),
		WindowRect: convertRect(n.WindowRect),
		Focused:    n.Focused,
	}
	if len(n.Nodes) > 0 {
		out.Nodes = make([]tree.Node, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			if child == nil {
				continue
			}
			out.Nodes = append(out.Nodes, convertNode(child))
		}
	}
	return out
}

func convertRect(r i3.Rect) tree.Rect {
	return tree.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}
