package schemawalk_test

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"github.com/reoring/schemawalk"
	"github.com/reoring/schemawalk/source"
	"github.com/reoring/schemawalk/tree"
	"github.com/reoring/schemawalk/validator"
)

type fakeValidator struct {
	compiles int
	errs     []schemawalk.RawError
	err      error
}

func (f *fakeValidator) Compile(tree.Value) (schemawalk.CompiledValidator, error) {
	f.compiles++
	if f.err != nil {
		return nil, f.err
	}
	return f, nil
}

func (f *fakeValidator) Validate(tree.Value) (bool, []schemawalk.RawError) {
	return len(f.errs) == 0, f.errs
}

const displaySchema = `{"properties":{
	"items":{"type":"array","items":{"properties":{"price":{"type":"number","x-display":{"label":"Price"}}}}},
	"name":{"type":"string","x-display":{"message":"Give a name"}}
}}`

func newSchema(t *testing.T, js string, opts ...schemawalk.Option) *schemawalk.Schema {
	t.Helper()
	doc, err := source.JSON([]byte(js))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s, err := schemawalk.New(doc, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestValidate_Enrich(t *testing.T) {
	fv := &fakeValidator{errs: []schemawalk.RawError{
		{DataPath: ".items[0].price", Keyword: "minimum", Message: "must be >= 0"},
		{DataPath: ".name", Keyword: "required", Message: "is required"},
		{DataPath: "", Keyword: "type", Message: "must be object"},
	}}
	s := newSchema(t, displaySchema, schemawalk.WithValidator(fv))

	err := s.Validate(tree.NewObject())
	iss, ok := schemawalk.AsIssues(err)
	if !ok || len(iss) != 3 {
		t.Fatalf("expected 3 issues, got %v", err)
	}

	price := iss[0]
	if price.Path != "items[0].price" || price.ParentPath != "items[0]" || price.Key != "price" {
		t.Fatalf("price paths = %+v", price)
	}
	if price.Message != "Price must be >= 0" || price.Code != "minimum" {
		t.Fatalf("price message = %q", price.Message)
	}
	if price.Detail != "data.items[0].price must be >= 0" {
		t.Fatalf("price detail = %q", price.Detail)
	}
	if price.Schema.IsZero() || !price.Schema.HasType(schemawalk.TypeNumber) {
		t.Fatalf("price schema not resolved")
	}

	if iss[1].Message != "Give a name" {
		t.Fatalf("name message = %q", iss[1].Message)
	}
	if iss[2].Path != "" || iss[2].Message != "must be object" || !iss[2].Schema.Same(s.Root()) {
		t.Fatalf("root issue = %+v", iss[2])
	}

	want := "validation failed with 3 errors: minimum at items[0].price; required at name; type at (root)"
	if err.Error() != want {
		t.Fatalf("summary = %q", err.Error())
	}

	s.Validate(tree.NewObject())
	if fv.compiles != 1 {
		t.Fatalf("schema compiled %d times", fv.compiles)
	}
}

func TestValidate_SingleIssueMessage(t *testing.T) {
	fv := &fakeValidator{errs: []schemawalk.RawError{{DataPath: ".other", Keyword: "type", Message: "must be string"}}}
	s := newSchema(t, displaySchema, schemawalk.WithValidator(fv))
	err := s.Validate(tree.NewObject())
	if err == nil || err.Error() != "other must be string" {
		t.Fatalf("err = %v", err)
	}
	iss, _ := schemawalk.AsIssues(err)
	if !iss[0].Schema.IsZero() {
		t.Fatalf("unknown path should have no schema")
	}
}

func TestValidate_DisplayKey(t *testing.T) {
	fv := &fakeValidator{errs: []schemawalk.RawError{{DataPath: ".a", Keyword: "type", Message: "must be string"}}}
	s := newSchema(t, `{"properties":{"a":{"ui":{"label":"Field A"}}}}`,
		schemawalk.WithValidator(fv), schemawalk.WithDisplayKey("ui"))
	if err := s.Validate(tree.NewObject()); err == nil || err.Error() != "Field A must be string" {
		t.Fatalf("err = %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	s := newSchema(t, displaySchema)
	if err := s.Validate(tree.NewObject()); !errors.Is(err, schemawalk.ErrNoValidator) {
		t.Fatalf("expected ErrNoValidator, got %v", err)
	}

	boom := errors.New("boom")
	s = newSchema(t, displaySchema, schemawalk.WithValidator(&fakeValidator{err: boom}))
	if err := s.Validate(tree.NewObject()); !errors.Is(err, boom) {
		t.Fatalf("expected compile error, got %v", err)
	}

	s = newSchema(t, displaySchema, schemawalk.WithValidator(&fakeValidator{}))
	if err := s.Validate(tree.NewObject()); err != nil {
		t.Fatalf("valid value: %v", err)
	}
	if _, ok := schemawalk.AsIssues(errors.New("plain")); ok {
		t.Fatalf("plain error is not Issues")
	}
}

func TestValidate_WithDefaultValidator(t *testing.T) {
	s := newSchema(t, `{
		"type":"object",
		"required":["name"],
		"properties":{
			"name":{"type":"string","x-display":{"label":"Full name"}},
			"lines":{"type":"array","items":{"$ref":"#/definitions/line"}}
		},
		"definitions":{"line":{"type":"object","properties":{"qty":{"type":"integer","minimum":1,"x-display":{"label":"Quantity"}}}}}
	}`, schemawalk.WithValidator(validator.New()))

	data, err := source.JSON([]byte(`{"lines":[{"qty":1},{"qty":0}]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	iss, ok := schemawalk.AsIssues(s.Validate(data))
	if !ok || len(iss) != 2 {
		t.Fatalf("issues = %v", iss)
	}
	var msgs []string
	for _, it := range iss {
		msgs = append(msgs, it.Path+": "+it.Message)
	}
	sort.Strings(msgs)
	got := strings.Join(msgs, "; ")
	if got != "lines[1].qty: Quantity must be >= 1; name: Full name is required" {
		t.Fatalf("messages = %q", got)
	}
}
