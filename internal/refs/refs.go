// Package refs inlines internal $ref pointers of a schema document.
package refs

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/reoring/schemawalk/dotpath"
	"github.com/reoring/schemawalk/tree"
)

const refKey = "$ref"

// DefaultMaxPasses bounds the number of references inlined for one document.
const DefaultMaxPasses = 1000

var (
	ErrReferenceCycle    = errors.New("refs: cyclic $ref")
	ErrReferenceNotFound = errors.New("refs: $ref target not found")
	ErrExternalReference = errors.New("refs: external $ref not supported")
	ErrInvalidReference  = errors.New("refs: $ref must be a string")
)

// scanRoots lists the top-level keys whose subtrees must end up free of $ref.
// Definitions are only read, never rewritten.
var scanRoots = []string{"properties", "items"}

// Options controls Resolve.
type Options struct {
	// MaxPasses caps the number of inlined references; <= 0 selects
	// DefaultMaxPasses.
	MaxPasses int
	Logger    *zap.Logger
}

// Resolve rewrites root in place until no $ref is reachable from its
// properties or items. Each pass finds the first remaining reference, deletes
// it and merges a deep copy of its target into the referencing node:
//
//   - object fields are merged recursively, existing values winning;
//   - array fields are concatenated, existing elements first;
//   - any other field is overwritten by the target's value.
//
// A reference applied twice to the same node, or a document that needs more
// than MaxPasses inlines, is reported as ErrReferenceCycle.
func Resolve(root *tree.Object, opts Options) error {
	if root == nil {
		return nil
	}
	limit := opts.MaxPasses
	if limit <= 0 {
		limit = DefaultMaxPasses
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	applied := map[*tree.Object]map[string]bool{}
	for pass := 1; ; pass++ {
		owner, ref, found := next(root)
		if !found {
			return nil
		}
		if pass > limit {
			return fmt.Errorf("%w: gave up after %d inlines (last %v)", ErrReferenceCycle, limit, ref)
		}
		s, ok := ref.(tree.String)
		if !ok {
			return fmt.Errorf("%w: got %s", ErrInvalidReference, kindOf(ref))
		}
		if err := inline(root, owner, string(s), applied); err != nil {
			return err
		}
		log.Debug("inlined reference", zap.String("ref", string(s)), zap.Int("pass", pass))
	}
}

func next(root *tree.Object) (*tree.Object, tree.Value, bool) {
	var owner *tree.Object
	for _, k := range scanRoots {
		sub, ok := root.Get(k)
		if !ok {
			continue
		}
		ref, found := tree.FindDeep(sub, refKey, func(v tree.Value, _ string, o *tree.Object) tree.Value {
			owner = o
			return v
		})
		if found {
			return owner, ref, true
		}
	}
	return nil, nil, false
}

func inline(root, owner *tree.Object, ref string, applied map[*tree.Object]map[string]bool) error {
	if !strings.HasPrefix(ref, "#") {
		return fmt.Errorf("%w: %q", ErrExternalReference, ref)
	}
	seen := applied[owner]
	if seen == nil {
		seen = map[string]bool{}
		applied[owner] = seen
	}
	if seen[ref] {
		return fmt.Errorf("%w: %q", ErrReferenceCycle, ref)
	}
	seen[ref] = true

	target, ok := tree.GetKeys(root, dotpath.ReferenceSegments(ref))
	if !ok {
		return fmt.Errorf("%w: %q", ErrReferenceNotFound, ref)
	}
	obj, ok := tree.AsObject(target)
	if !ok {
		return fmt.Errorf("%w: %q points at %s, not a schema", ErrReferenceNotFound, ref, kindOf(target))
	}
	owner.Delete(refKey)
	mergeInto(owner, tree.Clone(obj).(*tree.Object))
	return nil
}

func mergeInto(owner, resolved *tree.Object) {
	resolved.Range(func(k string, v tree.Value) bool {
		existing, _ := owner.Get(k)
		switch t := v.(type) {
		case *tree.Object:
			owner.Set(k, tree.Merge(t, existing))
		case tree.Array:
			if cur, ok := tree.AsArray(existing); ok {
				joined := make(tree.Array, 0, len(cur)+len(t))
				joined = append(joined, cur...)
				owner.Set(k, append(joined, t...))
				return true
			}
			owner.Set(k, t)
		default:
			owner.Set(k, t)
		}
		return true
	})
}

func kindOf(v tree.Value) string {
	if v == nil {
		return "undefined"
	}
	return v.Kind().String()
}
