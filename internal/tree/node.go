package tree

// Layout is the layout mode of a container as reported by the window manager.
type Layout string

const (
	LayoutDefault Layout = "default"
	LayoutTabbed  Layout = "tabbed"
	LayoutStacked Layout = "stacked"
	LayoutSplitH  Layout = "splith"
	LayoutSplitV  Layout = "splitv"
	LayoutOther   Layout = "other"
)

// ParseLayout maps a raw layout string onto a known Layout, falling back to LayoutOther.
func ParseLayout(s string) Layout {
	switch l := Layout(s); l {
	case LayoutDefault, LayoutTabbed, LayoutStacked, LayoutSplitH, LayoutSplitV:
		return l
	}
	return LayoutOther
}

// IsTabbedOrStacked reports whether children of this layout overlap.
func (l Layout) IsTabbedOrStacked() bool {
	return l == LayoutTabbed || l == LayoutStacked
}

type Rect struct {
	X      int64
	Y      int64
	Width  int64
	Height int64
}

// Node is a snapshot of one container in the layout tree. Children are owned by
// their parent; there are no back-edges.
type Node struct {
	ID         int64
	Name       string
	Layout     Layout
	Rect       Rect // absolute, including decorations
	WindowRect Rect // client area
	Focused    bool
	Nodes      []Node
}
