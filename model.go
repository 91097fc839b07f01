package schemawalk

import (
	"github.com/reoring/schemawalk/dotpath"
	"github.com/reoring/schemawalk/tree"
)

// ModelVisitFunc is called by WalkModel for every schema/value pair. value is
// nil when the model has nothing at path.
type ModelVisitFunc func(node Node, value tree.Value, path string)

// WalkModel visits n paired with model at path, then every property of n
// paired with the model value at the property's path. Array properties whose
// value is an actual array are descended element by element, in index order,
// at path[i]; union elements use the variant they match and are skipped when
// none does.
func WalkModel(n Node, model tree.Value, path string, visit ModelVisitFunc) {
	visit(n, model, path)
	base := dotpath.Split(path)
	Walk(n, func(rel string, leaf Node, _ bool, _ Node, _ string) bool {
		relSegs := dotpath.Split(rel)
		value, _ := tree.Get(model, relSegs)
		abs := dotpath.Join(append(append([]dotpath.Segment(nil), base...), relSegs...))
		visit(leaf, value, abs)
		if arr, ok := tree.AsArray(value); ok && leaf.HasType(TypeArray) {
			walkElements(leaf, arr, abs, visit)
		}
		return true
	})
}

func walkElements(arraySchema Node, arr tree.Array, path string, visit ModelVisitFunc) {
	variants, union := arraySchema.Variants()
	items, hasItems := arraySchema.Items()
	for i, e := range arr {
		elem := items
		if union {
			m, ok := firstMatch(variants, e)
			if !ok {
				continue
			}
			elem = m
		} else if !hasItems {
			continue
		}
		WalkModel(elem, e, dotpath.Index(path, i), visit)
	}
}
