package split

import "autotiler/internal/tree"

// Command is a command body understood by the window manager's run_command endpoint.
type Command string

const (
	Horizontal Command = "split horizontal"
	Vertical   Command = "split vertical"
)

// Heuristic picks the split direction for a focused container.
type Heuristic struct {
	terminals map[string]struct{}
}

// New builds a Heuristic recognizing the given terminal names. The set is copied
// and never changes afterwards.
func New(terminals []string) *Heuristic {
	set := make(map[string]struct{}, len(terminals))
	for _, name := range terminals {
		set[name] = struct{}{}
	}
	return &Heuristic{terminals: set}
}

// IsTerminal reports whether name exactly matches a recognized terminal.
func (h *Heuristic) IsTerminal(name string) bool {
	_, ok := h.terminals[name]
	return ok
}

// Choose returns the split for n. Terminals stack to the right: a terminal flush with
// the left edge splits horizontally, any other terminal vertically. This only gets the
// first split right; further windows on the left column split vertically too.
// Everything else follows a spiral: split along the longer side, ties vertical.
func (h *Heuristic) Choose(n tree.Node) Command {
	if h.IsTerminal(n.Name) {
		if n.Rect.X == 0 {
			return Horizontal
		}
		return Vertical
	}

	if n.WindowRect.Width > n.WindowRect.Height {
		return Horizontal
	}
	return Vertical
}
