package tree

import "github.com/reoring/schemawalk/dotpath"

// Clone returns a deep copy of v.
func Clone(v Value) Value {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil
		}
		out := &Object{keys: make([]string, 0, len(t.keys)), vals: make(map[string]Value, len(t.vals))}
		for _, k := range t.keys {
			out.keys = append(out.keys, k)
			out.vals[k] = Clone(t.vals[k])
		}
		return out
	case Array:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	}
	return v
}

// Equal reports deep equality. Object key order is not significant.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		eq := true
		x.Range(func(k string, v Value) bool {
			w, ok := y.Get(k)
			eq = ok && Equal(v, w)
			return eq
		})
		return eq
	case Array:
		y, ok := b.(Array)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// Merge returns a fresh tree combining base and overlay. When both are objects
// the result holds every key of either, merging shared keys recursively;
// otherwise overlay wins unless it is undefined.
func Merge(base, overlay Value) Value {
	bo, bok := AsObject(base)
	oo, ook := AsObject(overlay)
	if !bok || !ook {
		if overlay == nil {
			return Clone(base)
		}
		return Clone(overlay)
	}
	out := Clone(bo).(*Object)
	oo.Range(func(k string, v Value) bool {
		cur, _ := out.Get(k)
		out.Set(k, Merge(cur, v))
		return true
	})
	return out
}

// Get looks up the value addressed by segs below v.
func Get(v Value, segs []dotpath.Segment) (Value, bool) {
	cur := v
	for _, s := range segs {
		switch c := cur.(type) {
		case *Object:
			if s.IsIndex {
				return nil, false
			}
			next, ok := c.Get(s.Key)
			if !ok {
				return nil, false
			}
			cur = next
		case Array:
			if !s.IsIndex || s.Index >= len(c) {
				return nil, false
			}
			cur = c[s.Index]
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}

// GetPath is Get with a model path.
func GetPath(v Value, path string) (Value, bool) {
	return Get(v, dotpath.Split(path))
}

// GetKeys looks up a literal key sequence, treating every segment as an object
// key. It is used for schema lookups where "items" is an ordinary key.
func GetKeys(v Value, keys []string) (Value, bool) {
	cur := v
	for _, k := range keys {
		o, ok := AsObject(cur)
		if !ok {
			return nil, false
		}
		if cur, ok = o.Get(k); !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// Set stores x at segs below root and returns the updated root. Existing
// containers are updated in place; missing or mismatched ones are created,
// arrays being padded with null. Setting nil removes an object key and leaves
// arrays untouched.
func Set(root Value, segs []dotpath.Segment, x Value) Value {
	if len(segs) == 0 {
		return x
	}
	s := segs[0]
	if s.IsIndex {
		arr, _ := root.(Array)
		if x == nil && s.Index >= len(arr) {
			return root
		}
		for len(arr) <= s.Index {
			arr = append(arr, Null{})
		}
		if next := Set(arr[s.Index], segs[1:], x); next != nil {
			arr[s.Index] = next
		}
		return arr
	}
	o, ok := AsObject(root)
	if !ok {
		if x == nil {
			return root
		}
		o = NewObject()
	}
	cur, _ := o.Get(s.Key)
	o.Set(s.Key, Set(cur, segs[1:], x))
	return o
}

// SetPath is Set with a model path.
func SetPath(root Value, path string, x Value) Value {
	return Set(root, dotpath.Split(path), x)
}
