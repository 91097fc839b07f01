// Package validator is the default schemawalk.Validator. It compiles schemas
// with santhosh-tekuri/jsonschema (draft-07, formats asserted) and reports
// failures with dot dialect data paths and translated messages.
package validator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/dotpath"
	"github.com/reoring/schemawalk/i18n"
	"github.com/reoring/schemawalk/tree"
)

// Keywords reported in RawError.Keyword.
const (
	KeywordType                 = "type"
	KeywordRequired             = "required"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordOneOf                = "oneOf"
	KeywordAnyOf                = "anyOf"
	KeywordEnum                 = "enum"
	KeywordConst                = "const"
	KeywordMinimum              = "minimum"
	KeywordMaximum              = "maximum"
	KeywordExclusiveMinimum     = "exclusiveMinimum"
	KeywordExclusiveMaximum     = "exclusiveMaximum"
	KeywordMultipleOf           = "multipleOf"
	KeywordMinLength            = "minLength"
	KeywordMaxLength            = "maxLength"
	KeywordPattern              = "pattern"
	KeywordFormat               = "format"
	KeywordMinItems             = "minItems"
	KeywordMaxItems             = "maxItems"
	KeywordUniqueItems          = "uniqueItems"
	KeywordMinProperties        = "minProperties"
	KeywordMaxProperties        = "maxProperties"
)

// resourceURL names the in-memory schema resource handed to the compiler.
const resourceURL = "mem:schema.json"

// Option configures a Validator.
type Option func(*Validator)

// WithTranslator renders messages with tr instead of the global i18n translator.
func WithTranslator(tr i18n.Translator) Option {
	return func(v *Validator) { v.tr = tr }
}

// WithMaxErrors stops collecting after n errors; n <= 0 means unlimited.
func WithMaxErrors(n int) Option {
	return func(v *Validator) { v.maxErrors = n }
}

// Validator implements schemawalk.Validator.
type Validator struct {
	tr        i18n.Translator
	maxErrors int
}

var _ schemawalk.Validator = (*Validator)(nil)

// New returns a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Compile prepares doc for validation. The document is checked against the
// draft-07 meta-schema, so an invalid pattern or keyword value is reported
// here rather than per value.
func (v *Validator) Compile(doc tree.Value) (schemawalk.CompiledValidator, error) {
	root, ok := tree.AsObject(doc)
	if !ok {
		return nil, fmt.Errorf("validator: schema document must be an object")
	}
	raw, err := tree.Encode(root)
	if err != nil {
		return nil, fmt.Errorf("validator: encoding schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	c.AssertFormat = true
	if err := c.AddResource(resourceURL, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}
	sch, err := c.Compile(resourceURL)
	if err != nil {
		return nil, fmt.Errorf("validator: compiling schema: %w", err)
	}
	return &compiled{doc: root, schema: sch, tr: v.tr, maxErrors: v.maxErrors}, nil
}

type compiled struct {
	doc       *tree.Object
	schema    *jsonschema.Schema
	tr        i18n.Translator
	maxErrors int
}

// Validate implements schemawalk.CompiledValidator.
func (c *compiled) Validate(v tree.Value) (bool, []schemawalk.RawError) {
	err := c.schema.Validate(instance(v))
	if err == nil {
		return true, nil
	}
	r := &run{c: c, value: v}
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		r.collect(ve)
	}
	if len(r.errs) == 0 {
		r.errs = append(r.errs, schemawalk.RawError{Message: err.Error()})
	}
	return false, r.errs
}

type run struct {
	c     *compiled
	value tree.Value
	errs  []schemawalk.RawError
}

func (r *run) full() bool {
	return r.c.maxErrors > 0 && len(r.errs) >= r.c.maxErrors
}

// collect flattens the error tree into its leaves. oneOf and anyOf failures
// are leaves themselves: their causes describe the rejected branches.
func (r *run) collect(ve *jsonschema.ValidationError) {
	kw := keyword(ve.KeywordLocation)
	if len(ve.Causes) > 0 && kw != KeywordOneOf && kw != KeywordAnyOf {
		for _, cause := range ve.Causes {
			r.collect(cause)
		}
		return
	}
	r.leaf(ve, kw)
}

func (r *run) leaf(ve *jsonschema.ValidationError, kw string) {
	path := r.instancePath(ve.InstanceLocation)
	loc := schemaLocation(ve.AbsoluteKeywordLocation)
	kwValue, _ := lookup(r.c.doc, loc)
	inst, _ := tree.Get(r.value, path)

	switch kw {
	case KeywordRequired:
		obj, _ := tree.AsObject(inst)
		arr, _ := tree.AsArray(kwValue)
		n := 0
		for _, e := range arr {
			if name, ok := tree.AsString(e); ok && !obj.Has(name) {
				r.report(child(path, dotpath.Key(name)), kw, map[string]any{"missingProperty": name}, ve.Message)
				n++
			}
		}
		if n > 0 {
			return
		}
	case KeywordAdditionalProperties:
		obj, _ := tree.AsObject(inst)
		var parent tree.Value
		if len(loc) > 0 {
			parent, _ = lookup(r.c.doc, loc[:len(loc)-1])
		}
		props := schemawalk.NodeOf(parent).Properties()
		n := 0
		for _, k := range obj.Keys() {
			if !props.Has(k) {
				r.report(child(path, dotpath.Key(k)), kw, map[string]any{"additionalProperty": k}, ve.Message)
				n++
			}
		}
		if n > 0 {
			return
		}
	}
	r.report(path, kw, params(kw, kwValue, inst), ve.Message)
}

func (r *run) report(path []dotpath.Segment, kw string, params map[string]any, fallback string) {
	if r.full() {
		return
	}
	data := make(map[string]string, len(params))
	for k, p := range params {
		data[k] = fmt.Sprint(p)
	}
	tr := r.c.tr
	if tr == nil {
		tr = i18n.Current()
	}
	msg := tr.Message(kw, data)
	if msg == kw {
		msg = fallback
	}
	dp := ""
	if len(path) > 0 {
		dp = dataPath(path)
	}
	r.errs = append(r.errs, schemawalk.RawError{
		DataPath: dp,
		Keyword:  kw,
		Message:  msg,
		Params:   params,
	})
}

// instancePath converts an instance JSON Pointer into segments, turning
// tokens that address array elements into index segments.
func (r *run) instancePath(ptr string) []dotpath.Segment {
	var (
		cur  = r.value
		segs []dotpath.Segment
	)
	for _, s := range dotpath.FromPointer(ptr) {
		if arr, ok := tree.AsArray(cur); ok {
			if i, err := strconv.Atoi(s.Key); err == nil && i >= 0 {
				segs = append(segs, dotpath.Idx(i))
				if i < len(arr) {
					cur = arr[i]
				} else {
					cur = nil
				}
				continue
			}
		}
		segs = append(segs, s)
		obj, _ := tree.AsObject(cur)
		cur, _ = obj.Get(s.Key)
	}
	return segs
}

func params(kw string, kwValue, inst tree.Value) map[string]any {
	switch kw {
	case KeywordType:
		var names []string
		switch t := kwValue.(type) {
		case tree.String:
			names = []string{string(t)}
		case tree.Array:
			for _, e := range t {
				if s, ok := tree.AsString(e); ok {
					names = append(names, s)
				}
			}
		}
		return map[string]any{"type": strings.Join(names, ",")}
	case KeywordMinimum, KeywordMaximum, KeywordExclusiveMinimum, KeywordExclusiveMaximum,
		KeywordMultipleOf, KeywordMinLength, KeywordMaxLength, KeywordMinItems, KeywordMaxItems,
		KeywordMinProperties, KeywordMaxProperties:
		if f, ok := tree.AsNumber(kwValue); ok {
			return map[string]any{"limit": formatNumber(f)}
		}
	case KeywordPattern:
		s, _ := tree.AsString(kwValue)
		return map[string]any{"pattern": s}
	case KeywordFormat:
		s, _ := tree.AsString(kwValue)
		return map[string]any{"format": s}
	case KeywordEnum:
		return map[string]any{"allowedValues": tree.ToAny(kwValue)}
	case KeywordConst:
		return map[string]any{"allowedValue": tree.ToAny(kwValue)}
	case KeywordUniqueItems:
		arr, _ := tree.AsArray(inst)
		for i := 0; i < len(arr); i++ {
			for j := i + 1; j < len(arr); j++ {
				if tree.Equal(arr[i], arr[j]) {
					return map[string]any{"i": i, "j": j}
				}
			}
		}
	}
	return nil
}

// keyword returns the last token of a keyword location.
func keyword(loc string) string {
	if i := strings.LastIndexByte(loc, '/'); i >= 0 {
		return loc[i+1:]
	}
	return loc
}

// schemaLocation returns the unescaped pointer tokens of the fragment of an
// absolute keyword location.
func schemaLocation(abs string) []string {
	i := strings.LastIndexByte(abs, '#')
	if i < 0 {
		return nil
	}
	return dotpath.ReferenceSegments(abs[i:])
}

// lookup follows pointer tokens through objects and arrays.
func lookup(v tree.Value, tokens []string) (tree.Value, bool) {
	cur := v
	for _, tok := range tokens {
		switch c := cur.(type) {
		case *tree.Object:
			next, ok := c.Get(tok)
			if !ok {
				return nil, false
			}
			cur = next
		case tree.Array:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			cur = c[i]
		default:
			return nil, false
		}
	}
	return cur, cur != nil
}

// instance converts v into the decoded-JSON shape the compiler validates.
// Numbers become json.Number so multipleOf and bounds are checked on their
// decimal form.
func instance(v tree.Value) any {
	switch t := v.(type) {
	case tree.Bool:
		return bool(t)
	case tree.Number:
		return json.Number(strconv.FormatFloat(float64(t), 'f', -1, 64))
	case tree.String:
		return string(t)
	case tree.Array:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = instance(e)
		}
		return out
	case *tree.Object:
		out := make(map[string]any, t.Len())
		t.Range(func(k string, e tree.Value) bool {
			out[k] = instance(e)
			return true
		})
		return out
	}
	return nil
}

// dataPath renders segments in the dot dialect with a leading dot.
func dataPath(path []dotpath.Segment) string {
	joined := dotpath.Join(path)
	if path[0].IsIndex || joined[0] == '[' {
		return joined
	}
	return "." + joined
}

func child(path []dotpath.Segment, s dotpath.Segment) []dotpath.Segment {
	out := make([]dotpath.Segment, len(path), len(path)+1)
	copy(out, path)
	return append(out, s)
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
