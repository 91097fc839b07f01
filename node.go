package schemawalk

import "github.com/reoring/schemawalk/tree"

// Node is a read-only view of one schema object. The zero Node stands for a
// missing or non-object schema.
type Node struct {
	obj *tree.Object
}

// NodeOf wraps v when it is an object.
func NodeOf(v tree.Value) Node {
	o, _ := tree.AsObject(v)
	return Node{obj: o}
}

// IsZero reports whether n wraps no schema object.
func (n Node) IsZero() bool { return n.obj == nil }

// Value returns the underlying object.
func (n Node) Value() *tree.Object { return n.obj }

// Same reports whether n and o view the very same schema object.
func (n Node) Same(o Node) bool { return n.obj != nil && n.obj == o.obj }

// Get returns a raw field of the node.
func (n Node) Get(key string) (tree.Value, bool) { return n.obj.Get(key) }

// TypeNames returns the raw type tags and whether "type" was written as a
// list.
func (n Node) TypeNames() (names []string, list bool) {
	v, ok := n.obj.Get("type")
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case tree.String:
		return []string{string(t)}, false
	case tree.Array:
		for _, e := range t {
			if s, ok := e.(tree.String); ok {
				names = append(names, string(s))
			}
		}
		return names, true
	}
	return nil, false
}

// Types returns the recognized type tags in declaration order. Untyped nodes
// with properties count as objects and untyped nodes with items as arrays.
func (n Node) Types() []Type {
	names, _ := n.TypeNames()
	if len(names) == 0 {
		switch {
		case n.HasProperties():
			return []Type{TypeObject}
		case n.obj.Has("items"):
			return []Type{TypeArray}
		}
		return nil
	}
	out := make([]Type, 0, len(names))
	for _, name := range names {
		if t, ok := ParseType(name); ok {
			out = append(out, t)
		}
	}
	return out
}

// HasType reports whether t is among the node's types.
func (n Node) HasType(t Type) bool {
	for _, x := range n.Types() {
		if x == t {
			return true
		}
	}
	return false
}

// Properties returns the properties object, or nil.
func (n Node) Properties() *tree.Object {
	v, _ := n.obj.Get("properties")
	o, _ := tree.AsObject(v)
	return o
}

// HasProperties reports whether the node declares properties.
func (n Node) HasProperties() bool { return n.Properties() != nil }

// Property returns the schema of one property.
func (n Node) Property(name string) (Node, bool) {
	v, ok := n.Properties().Get(name)
	if !ok {
		return Node{}, false
	}
	return NodeOf(v), true
}

// Required returns the names listed in required.
func (n Node) Required() []string {
	v, _ := n.obj.Get("required")
	arr, _ := tree.AsArray(v)
	names := make([]string, 0, len(arr))
	for _, e := range arr {
		if s, ok := e.(tree.String); ok {
			names = append(names, string(s))
		}
	}
	return names
}

// IsRequired reports whether key is listed in required.
func (n Node) IsRequired(key string) bool {
	for _, r := range n.Required() {
		if r == key {
			return true
		}
	}
	return false
}

// Items returns the item schema. A tuple-style items list yields its first
// element.
func (n Node) Items() (Node, bool) {
	v, ok := n.obj.Get("items")
	if !ok {
		return Node{}, false
	}
	if arr, isArr := tree.AsArray(v); isArr {
		if len(arr) == 0 {
			return Node{}, false
		}
		v = arr[0]
	}
	item := NodeOf(v)
	return item, !item.IsZero()
}

// OneOf returns the members of the node's own oneOf.
func (n Node) OneOf() []Node {
	v, _ := n.obj.Get("oneOf")
	arr, _ := tree.AsArray(v)
	out := make([]Node, 0, len(arr))
	for _, e := range arr {
		if m := NodeOf(e); !m.IsZero() {
			out = append(out, m)
		}
	}
	return out
}

// Variants returns the oneOf members of the node's items, reporting whether
// the items are a tagged union at all.
func (n Node) Variants() ([]Node, bool) {
	v, ok := n.obj.Get("items")
	if !ok {
		return nil, false
	}
	items := NodeOf(v)
	if !items.obj.Has("oneOf") {
		return nil, false
	}
	return items.OneOf(), true
}

// Default returns the default value.
func (n Node) Default() (tree.Value, bool) { return n.obj.Get("default") }

// FirstExample returns the first entry of examples, falling back to the
// single-valued example keyword.
func (n Node) FirstExample() (tree.Value, bool) {
	if v, ok := n.obj.Get("examples"); ok {
		if arr, isArr := tree.AsArray(v); isArr && len(arr) > 0 {
			return arr[0], true
		}
	}
	return n.obj.Get("example")
}

// Minimum returns the numeric minimum.
func (n Node) Minimum() (tree.Number, bool) {
	v, _ := n.obj.Get("minimum")
	num, ok := v.(tree.Number)
	return num, ok
}
