package schemawalk

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/reoring/schemawalk/dotpath"
	"github.com/reoring/schemawalk/internal/refs"
	"github.com/reoring/schemawalk/tree"
)

// DefaultDisplayKey is the schema keyword holding presentation metadata.
const DefaultDisplayKey = "x-display"

// Schema is a resolved schema document. It is immutable once New returns and
// safe for concurrent use.
type Schema struct {
	root       *tree.Object
	logger     *zap.Logger
	validator  Validator
	displayKey string
	maxPasses  int

	compileOnce sync.Once
	compiled    CompiledValidator
	compileErr  error
}

// Option configures a Schema.
type Option func(*Schema)

// WithLogger sets the logger used during resolution and validation.
func WithLogger(l *zap.Logger) Option {
	return func(s *Schema) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithValidator sets the validator used by Validate.
func WithValidator(v Validator) Option {
	return func(s *Schema) { s.validator = v }
}

// WithMaxReferencePasses bounds the number of $ref inlines performed by New.
func WithMaxReferencePasses(n int) Option {
	return func(s *Schema) { s.maxPasses = n }
}

// WithDisplayKey changes the keyword read for presentation metadata.
func WithDisplayKey(key string) Option {
	return func(s *Schema) {
		if key != "" {
			s.displayKey = key
		}
	}
}

// New builds a Schema from a raw document. The document is copied and every
// $ref below its properties and items is inlined; doc itself is not modified.
func New(doc tree.Value, opts ...Option) (*Schema, error) {
	obj, ok := tree.AsObject(doc)
	if !ok {
		return nil, ErrNotObject
	}
	s := &Schema{
		root:       tree.Clone(obj).(*tree.Object),
		logger:     zap.NewNop(),
		displayKey: DefaultDisplayKey,
	}
	for _, o := range opts {
		o(s)
	}
	if err := refs.Resolve(s.root, refs.Options{MaxPasses: s.maxPasses, Logger: s.logger}); err != nil {
		return nil, fmt.Errorf("schemawalk: resolving references: %w", err)
	}
	return s, nil
}

// Root returns the root node.
func (s *Schema) Root() Node { return Node{obj: s.root} }

// Document returns a deep copy of the resolved document.
func (s *Schema) Document() *tree.Object { return tree.Clone(s.root).(*tree.Object) }

// Lookup returns the subschema describing the value at a model path.
func (s *Schema) Lookup(path string) (Node, bool) {
	v, ok := tree.GetKeys(s.root, dotpath.HydrateSegments(path))
	if !ok {
		return Node{}, false
	}
	n := NodeOf(v)
	return n, !n.IsZero()
}

// SynthesizeRoot synthesizes an instance of the whole document.
func (s *Schema) SynthesizeRoot(opts SynthesizeOptions) (tree.Value, error) {
	return Synthesize(s.Root(), opts)
}

// Display is the presentation metadata of a subschema.
type Display struct {
	Label   string
	Message string
}

// Display reads the presentation metadata of n.
func (s *Schema) Display(n Node) Display {
	v, ok := n.Get(s.displayKey)
	if !ok {
		return Display{}
	}
	meta := NodeOf(v)
	var d Display
	if l, ok := meta.Get("label"); ok {
		d.Label, _ = tree.AsString(l)
	}
	if m, ok := meta.Get("message"); ok {
		d.Message, _ = tree.AsString(m)
	}
	return d
}
