package syntax

// Walk visits e and its descendants in preorder, tokens included. If fn
// returns false the children of the visited node are skipped.
func Walk(e Element, fn func(Element) bool) {
	if !fn(e) {
		return
	}
	if n, ok := e.(*Node); ok {
		for _, c := range n.children {
			Walk(c, fn)
		}
	}
}

// Descendants returns every node below n (n excluded) in preorder.
func (n *Node) Descendants() []*Node {
	var out []*Node
	for _, c := range n.children {
		Walk(c, func(e Element) bool {
			if cn, ok := e.(*Node); ok {
				out = append(out, cn)
				return true
			}
			return false
		})
	}
	return out
}

// FirstDescendant returns the first node of kind below n in preorder.
func (n *Node) FirstDescendant(kind Kind) *Node {
	var found *Node
	for _, c := range n.children {
		Walk(c, func(e Element) bool {
			if found != nil {
				return false
			}
			cn, ok := e.(*Node)
			if !ok {
				return false
			}
			if cn.kind == kind {
				found = cn
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}
