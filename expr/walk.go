package expr

// Visitor is called for every node of a tree walk, together with the node's depth
// (the root has depth 0). Returning false prevents the walk from descending into
// the node's children.
type Visitor func(n Node, depth int) bool

// Walk traverses a tree top-down and left to right, in storage order.
func Walk(n Node, visit Visitor) {
	walk(n, 0, visit)
}

func walk(n Node, depth int, visit Visitor) {
	if n == nil || !visit(n, depth) {
		return
	}
	switch x := n.(type) {
	case *Unary:
		walk(x.Child, depth+1, visit)
	case *Plenary:
		for _, ch := range x.Children {
			walk(ch, depth+1, visit)
		}
	}
}

// IsFlat checks the flattening invariant for a whole tree: no plenary node has a
// direct child which is a plenary node of the same operator.
func IsFlat(n Node) bool {
	flat := true
	Walk(n, func(n Node, _ int) bool {
		if p, ok := n.(*Plenary); ok {
			for _, ch := range p.Children {
				if Is(ch, p.Op) {
					flat = false
				}
			}
		}
		return flat
	})
	return flat
}
