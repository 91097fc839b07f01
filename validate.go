package schemawalk

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/reoring/schemawalk/dotpath"
	"github.com/reoring/schemawalk/tree"
)

// RawError is one failure as reported by a Validator.
type RawError struct {
	// DataPath addresses the offending value in the dot dialect with a
	// leading dot, e.g. ".items[0].kind"; "" is the root.
	DataPath string
	Keyword  string
	Message  string
	Params   map[string]any
}

// Error renders the failure the way validators usually print it.
func (e RawError) Error() string { return "data" + e.DataPath + " " + e.Message }

// Validator compiles schema documents.
type Validator interface {
	Compile(doc tree.Value) (CompiledValidator, error)
}

// CompiledValidator checks values against one compiled document.
type CompiledValidator interface {
	Validate(v tree.Value) (bool, []RawError)
}

// Validate checks v against the schema. It returns nil when v is valid and
// Issues otherwise, one per raw validator error, each carrying the
// originating subschema and its display message.
func (s *Schema) Validate(v tree.Value) error {
	if s.validator == nil {
		return ErrNoValidator
	}
	s.compileOnce.Do(func() {
		s.compiled, s.compileErr = s.validator.Compile(s.root)
	})
	if s.compileErr != nil {
		return fmt.Errorf("schemawalk: compiling schema: %w", s.compileErr)
	}
	ok, raw := s.compiled.Validate(v)
	if ok {
		return nil
	}
	iss := make(Issues, 0, len(raw))
	for _, r := range raw {
		iss = append(iss, s.enrich(r))
	}
	s.logger.Debug("validation failed", zap.Int("errors", len(iss)))
	return iss
}

func (s *Schema) enrich(r RawError) Issue {
	path := dotpath.Resolve(r.DataPath)
	key := dotpath.LastKey(path)
	sub, _ := s.Lookup(path)
	d := s.Display(sub)
	msg := d.Message
	if msg == "" {
		label := d.Label
		if label == "" {
			label = key
		}
		msg = strings.TrimSpace(label + " " + r.Message)
	}
	return Issue{
		Path:       path,
		ParentPath: dotpath.Parent(path),
		Key:        key,
		Code:       r.Keyword,
		Message:    msg,
		Detail:     r.Error(),
		Params:     r.Params,
		Schema:     sub,
	}
}
