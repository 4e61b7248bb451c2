package tree

// HasTabbedAncestor reports whether the node with targetID sits below a tabbed or
// stacked container. seedTabbed is the flag in effect at root, normally whether the
// focused container itself is tabbed/stacked. A target missing from the tree yields false.
func HasTabbedAncestor(root *Node, targetID int64, seedTabbed bool) bool {
	tabbed, _ := Ancestry(root, targetID, seedTabbed)
	return tabbed
}

// Ancestry is HasTabbedAncestor that also reports whether targetID was found.
// With duplicate ids the first node in depth-first pre-order wins.
func Ancestry(root *Node, targetID int64, seedTabbed bool) (tabbed, found bool) {
	if root == nil {
		return false, false
	}
	return walk(root, targetID, seedTabbed)
}

func walk(n *Node, targetID int64, inherited bool) (bool, bool) {
	if n.ID == targetID {
		return inherited, true
	}

	next := inherited || n.Layout.IsTabbedOrStacked()
	for i := range n.Nodes {
		if tabbed, found := walk(&n.Nodes[i], targetID, next); found {
			return tabbed, true
		}
	}
	return false, false
}

// FindFocused returns the first focused node in pre-order.
func FindFocused(root *Node) (*Node, bool) {
	if root == nil {
		return nil, false
	}
	if root.Focused {
		return root, true
	}
	for i := range root.Nodes {
		if n, ok := FindFocused(&root.Nodes[i]); ok {
			return n, true
		}
	}
	return nil, false
}
