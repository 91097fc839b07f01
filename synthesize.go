package schemawalk

import (
	"fmt"

	"github.com/reoring/schemawalk/tree"
)

// SynthesizeOptions controls Synthesize. The zero value synthesizes example,
// default and type-default values and prunes empty branches.
type SynthesizeOptions struct {
	// TypeOnly produces bare type shapes ("" / {} / []) and ignores examples
	// and defaults.
	TypeOnly bool
	// KeepEmpty disables pruning of empty branches.
	KeepEmpty bool
	// Examples is an external example cache. When it is an array its first
	// element is used. Values are looked up by model path.
	Examples tree.Value
}

// Synthesize builds a representative instance of n. A node without
// properties yields a single value of its type; otherwise every property is
// synthesized at its model path inside a fresh object. The result never
// aliases the schema.
func Synthesize(n Node, opts SynthesizeOptions) (tree.Value, error) {
	sy := synthesizer{opts: opts, cache: opts.Examples}
	if cache, ok := tree.AsArray(opts.Examples); ok {
		sy.cache = nil
		if len(cache) > 0 {
			sy.cache = cache[0]
		}
	}
	if !n.HasProperties() {
		return sy.construct(leaf{node: n, required: true})
	}

	var (
		result tree.Value = tree.NewObject()
		err    error
	)
	Walk(n, func(path string, node Node, required bool, parent Node, key string) bool {
		if err != nil {
			return false
		}
		var v tree.Value
		v, err = sy.construct(leaf{node: node, required: required, path: path, parent: parent, key: key})
		if err != nil {
			err = fmt.Errorf("%s: %w", path, err)
			return false
		}
		if v != nil {
			result = tree.SetPath(result, path, v)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if opts.KeepEmpty {
		return result, nil
	}
	return tree.PruneEmptyDeep(result), nil
}

type leaf struct {
	node     Node
	required bool
	path     string
	parent   Node
	key      string
}

type synthesizer struct {
	opts  SynthesizeOptions
	cache tree.Value
}

func (sy synthesizer) construct(l leaf) (tree.Value, error) {
	names, list := l.node.TypeNames()
	if len(names) == 0 {
		if types := l.node.Types(); len(types) > 0 {
			return sy.constructAs(l, types[0]), nil
		}
		// untyped: only an explicit example or default can say what it holds
		if sy.opts.TypeOnly {
			return nil, nil
		}
		return sy.resolve(l, nil), nil
	}
	if list {
		for _, name := range names {
			if t, ok := ParseType(name); ok && t.ValueBearing() {
				return sy.constructAs(l, t), nil
			}
		}
		return nil, nil
	}
	t, ok := ParseType(names[0])
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, names[0])
	}
	return sy.constructAs(l, t), nil
}

func (sy synthesizer) constructAs(l leaf, t Type) tree.Value {
	if sy.opts.TypeOnly {
		switch t {
		case TypeString:
			return tree.String("")
		case TypeObject:
			return tree.NewObject()
		case TypeArray:
			return tree.Array{}
		}
		return nil
	}
	switch t {
	case TypeString:
		return sy.resolve(l, tree.String(""))
	case TypeObject:
		return sy.resolve(l, tree.NewObject())
	case TypeArray:
		return sy.resolve(l, tree.Array{})
	case TypeBoolean:
		if !l.required {
			return nil
		}
		return sy.resolve(l, tree.Bool(false))
	case TypeInteger, TypeNumber:
		if !l.required {
			return nil
		}
		if lo, ok := l.node.Minimum(); ok {
			return sy.resolve(l, lo)
		}
		return sy.resolve(l, tree.Number(0))
	case TypeNull:
		if !l.required {
			return nil
		}
		return sy.resolve(l, tree.Null{})
	}
	return nil
}

// resolve picks, in order: the node's first example, the parent's first
// example's field, the external cache, the node's default, and finally
// typeDefault when the leaf is required.
func (sy synthesizer) resolve(l leaf, typeDefault tree.Value) tree.Value {
	if v, ok := l.node.FirstExample(); ok {
		return tree.Clone(v)
	}
	if ex, ok := l.parent.FirstExample(); ok {
		if obj, isObj := tree.AsObject(ex); isObj {
			if v, ok := obj.Get(l.key); ok {
				return tree.Clone(v)
			}
		}
	}
	if sy.cache != nil && l.path != "" {
		if v, ok := tree.GetPath(sy.cache, l.path); ok {
			return tree.Clone(v)
		}
	}
	if v, ok := l.node.Default(); ok {
		return tree.Clone(v)
	}
	if l.required {
		return tree.Clone(typeDefault)
	}
	return nil
}
