package source

import (
	"errors"

	"github.com/reoring/schemawalk/tree"
)

// ErrCRDNotFound is returned when no CustomResourceDefinition matches.
var ErrCRDNotFound = errors.New("source: CRD kind not found")

// UnwrapCRD returns the openAPIV3Schema carried by v, accepting either a
// document with a top-level openAPIV3Schema or a Kubernetes CRD. For CRDs it
// looks for spec.versions[].schema.openAPIV3Schema (preferring served=true),
// then falls back to spec.validation.openAPIV3Schema for legacy specs. Other
// documents are returned unchanged.
func UnwrapCRD(v tree.Value) tree.Value {
	if s, ok := tree.GetPath(v, "openAPIV3Schema"); ok {
		if _, isObj := tree.AsObject(s); isObj {
			return s
		}
	}
	if kind, _ := tree.GetPath(v, "kind"); kind != tree.String("CustomResourceDefinition") {
		return v
	}
	if vers, ok := tree.GetPath(v, "spec.versions"); ok {
		arr, _ := tree.AsArray(vers)
		var firstFound tree.Value
		for _, ver := range arr {
			oas, ok := tree.GetPath(ver, "schema.openAPIV3Schema")
			if !ok {
				continue
			}
			served := true
			if sv, ok := tree.GetPath(ver, "served"); ok {
				if b, isBool := sv.(tree.Bool); isBool {
					served = bool(b)
				}
			}
			if served {
				return oas
			}
			if firstFound == nil {
				firstFound = oas
			}
		}
		if firstFound != nil {
			return firstFound
		}
	}
	// legacy: spec.validation.openAPIV3Schema
	if oas, ok := tree.GetPath(v, "spec.validation.openAPIV3Schema"); ok {
		return oas
	}
	return v
}

// CRDForKind picks the CustomResourceDefinition whose spec.names.kind is
// kind from a multi-document stream.
func CRDForKind(docs []tree.Value, kind string) (tree.Value, error) {
	for _, d := range docs {
		if k, _ := tree.GetPath(d, "kind"); k != tree.String("CustomResourceDefinition") {
			continue
		}
		if k, _ := tree.GetPath(d, "spec.names.kind"); k == tree.String(kind) {
			return d, nil
		}
	}
	return nil, ErrCRDNotFound
}
