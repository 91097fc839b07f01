package schemawalk

import "github.com/reoring/schemawalk/tree"

// IsMatch reports whether v is shaped like n. v matches when any of n's type
// tags matches:
//
//   - string, boolean, integer, number and null test the value's kind;
//   - object needs an object whose required properties are all present and
//     whose present properties match their own schemas;
//   - array needs every element to match the item schema, or to resolve to a
//     variant when the items are a oneOf union.
//
// WhichSubschema uses the same rules, so a value matches a union member
// exactly when IsMatch says so.
func IsMatch(n Node, v tree.Value) bool {
	if v == nil || n.IsZero() {
		return false
	}
	for _, t := range n.Types() {
		if matchType(n, t, v) {
			return true
		}
	}
	return false
}

func matchType(n Node, t Type, v tree.Value) bool {
	switch t {
	case TypeString:
		_, ok := v.(tree.String)
		return ok
	case TypeBoolean:
		_, ok := v.(tree.Bool)
		return ok
	case TypeInteger:
		num, ok := v.(tree.Number)
		return ok && num.IsInteger()
	case TypeNumber:
		num, ok := v.(tree.Number)
		return ok && !num.IsNaN()
	case TypeNull:
		_, ok := v.(tree.Null)
		return ok
	case TypeObject:
		obj, ok := tree.AsObject(v)
		return ok && matchProperties(n, obj)
	case TypeArray:
		arr, ok := tree.AsArray(v)
		if !ok {
			return false
		}
		for _, e := range arr {
			if !matchElement(n, e) {
				return false
			}
		}
		return true
	}
	return false
}

func matchProperties(n Node, obj *tree.Object) bool {
	ok := true
	n.Properties().Range(func(key string, raw tree.Value) bool {
		val, present := obj.Get(key)
		switch {
		case !present:
			ok = !n.IsRequired(key)
		case NodeOf(raw).IsZero():
			// boolean or otherwise opaque property schema: anything goes
		default:
			ok = IsMatch(NodeOf(raw), val)
		}
		return ok
	})
	return ok
}

func matchElement(arraySchema Node, e tree.Value) bool {
	if variants, ok := arraySchema.Variants(); ok {
		_, found := firstMatch(variants, e)
		return found
	}
	items, ok := arraySchema.Items()
	if !ok {
		return true
	}
	return IsMatch(items, e)
}

func firstMatch(variants []Node, v tree.Value) (Node, bool) {
	for _, m := range variants {
		if IsMatch(m, v) {
			return m, true
		}
	}
	return Node{}, false
}

// WhichSubschema returns the first oneOf member of arraySchema's items that v
// matches. It fails with ErrNoVariants when the items are not a union; a
// union without a matching member yields false.
func WhichSubschema(arraySchema Node, v tree.Value) (Node, bool, error) {
	variants, ok := arraySchema.Variants()
	if !ok {
		return Node{}, false, ErrNoVariants
	}
	m, found := firstMatch(variants, v)
	return m, found, nil
}

// CreateVariantElement synthesizes a new element for arraySchema. When the
// items are a oneOf union, variant must be one of the union's own members;
// otherwise variant is ignored and the items schema is used.
func CreateVariantElement(arraySchema Node, variant Node) (tree.Value, error) {
	if !arraySchema.Value().Has("items") {
		return nil, ErrNoItems
	}
	if variants, ok := arraySchema.Variants(); ok {
		if variant.IsZero() {
			return nil, ErrInvalidVariant
		}
		for _, m := range variants {
			if m.Same(variant) {
				return Synthesize(m, SynthesizeOptions{})
			}
		}
		return nil, ErrInvalidVariant
	}
	items, ok := arraySchema.Items()
	if !ok {
		return nil, ErrNoItems
	}
	return Synthesize(items, SynthesizeOptions{})
}
