package schemawalk

import "github.com/reoring/schemawalk/tree"

// VisitFunc is called by Walk for each property schema. required reports
// whether key is listed in the parent's required set. Returning false keeps
// Walk out of the property's own properties; siblings are still visited.
type VisitFunc func(path string, node Node, required bool, parent Node, key string) bool

// Walk visits the properties of n depth-first, in declaration order, with
// model paths relative to n.
func Walk(n Node, visit VisitFunc) {
	WalkFrom(n, "", visit)
}

// WalkFrom is Walk with paths prefixed by parentPath.
func WalkFrom(n Node, parentPath string, visit VisitFunc) {
	props := n.Properties()
	if props == nil {
		return
	}
	tree.WalkLabeled(props, n.obj, parentPath, func(path string, v tree.Value, parent tree.Value, key string) tree.Value {
		node := NodeOf(v)
		owner := NodeOf(parent)
		if !visit(path, node, owner.IsRequired(key), owner, key) {
			return nil
		}
		if p := node.Properties(); p != nil {
			return p
		}
		return nil
	})
}
