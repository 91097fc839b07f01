package tree

import (
	"strconv"

	"github.com/reoring/schemawalk/dotpath"
)

// TransformFunc post-processes a value found by FindDeep. owner is the object
// that holds key.
type TransformFunc func(v Value, key string, owner *Object) Value

// FindDeep searches v depth-first, pre-order, for the first object carrying
// key: an object's own keys are checked before any of its values is searched,
// and arrays are searched by index. The boolean result distinguishes "not
// found" from a found value that happens to be empty, false or zero. When
// transform is non-nil the found value is passed through it.
func FindDeep(v Value, key string, transform TransformFunc) (Value, bool) {
	switch t := v.(type) {
	case *Object:
		if t == nil {
			return nil, false
		}
		if found, ok := t.Get(key); ok {
			if transform != nil {
				return transform(found, key, t), true
			}
			return found, true
		}
		var (
			out Value
			hit bool
		)
		t.Range(func(_ string, child Value) bool {
			out, hit = FindDeep(child, key, transform)
			return !hit
		})
		return out, hit
	case Array:
		for _, child := range t {
			if out, ok := FindDeep(child, key, transform); ok {
				return out, true
			}
		}
	}
	return nil, false
}

// IsEmptyDeep reports whether v carries no information. Undefined, null and
// NaN are empty; booleans and other numbers never are; strings are empty when
// they have no characters; arrays and objects are empty when every member is.
func IsEmptyDeep(v Value) bool {
	switch t := v.(type) {
	case nil, Null:
		return true
	case Bool:
		return false
	case Number:
		return t.IsNaN()
	case String:
		return len(t) == 0
	case Array:
		for _, e := range t {
			if !IsEmptyDeep(e) {
				return false
			}
		}
		return true
	case *Object:
		empty := true
		t.Range(func(_ string, child Value) bool {
			empty = IsEmptyDeep(child)
			return empty
		})
		return empty
	}
	return true
}

// PruneEmptyDeep returns a deep copy of v in which every object key whose value
// is empty (see IsEmptyDeep) has been removed. Surviving composites are pruned
// recursively; array elements keep their positions. v is not modified.
func PruneEmptyDeep(v Value) Value {
	switch t := v.(type) {
	case *Object:
		out := NewObject()
		t.Range(func(k string, child Value) bool {
			if !IsEmptyDeep(child) {
				out.Set(k, PruneEmptyDeep(child))
			}
			return true
		})
		return out
	case Array:
		out := make(Array, len(t))
		for i, e := range t {
			out[i] = PruneEmptyDeep(e)
		}
		return out
	}
	return Clone(v)
}

// VisitFunc is called by WalkLabeled for every child of the walked tree. A
// non-nil return value is walked next, with the visited value as its parent
// and path as its parent path.
type VisitFunc func(path string, v Value, parent Value, key string) Value

// WalkLabeled visits the children of t in their own order (insertion order for
// objects, index order for arrays), labelling each with its model path below
// parentPath.
func WalkLabeled(t Value, parent Value, parentPath string, visit VisitFunc) {
	switch c := t.(type) {
	case *Object:
		c.Range(func(k string, child Value) bool {
			path := dotpath.Child(parentPath, k)
			if next := visit(path, child, parent, k); next != nil {
				WalkLabeled(next, child, path, visit)
			}
			return true
		})
	case Array:
		for i, child := range c {
			path := dotpath.Index(parentPath, i)
			if next := visit(path, child, parent, strconv.Itoa(i)); next != nil {
				WalkLabeled(next, child, path, visit)
			}
		}
	}
}
