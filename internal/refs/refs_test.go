package refs

import (
	"errors"
	"testing"

	"github.com/reoring/schemawalk/source"
	"github.com/reoring/schemawalk/tree"
)

func mustDoc(t *testing.T, js string) *tree.Object {
	t.Helper()
	v, err := source.JSON([]byte(js))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	o, ok := tree.AsObject(v)
	if !ok {
		t.Fatalf("not an object: %s", js)
	}
	return o
}

func assertDoc(t *testing.T, got *tree.Object, want string) {
	t.Helper()
	w := mustDoc(t, want)
	if !tree.Equal(got, w) {
		b, _ := tree.Encode(got)
		t.Fatalf("got %s\nwant %s", b, want)
	}
}

func TestResolve_Simple(t *testing.T) {
	doc := mustDoc(t, `{"properties":{"a":{"$ref":"#/definitions/b"}},"definitions":{"b":{"type":"string"}}}`)
	if err := Resolve(doc, Options{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	assertDoc(t, doc, `{"properties":{"a":{"type":"string"}},"definitions":{"b":{"type":"string"}}}`)
}

func TestResolve_Chained(t *testing.T) {
	doc := mustDoc(t, `{
		"properties":{"a":{"$ref":"#/definitions/b"}},
		"definitions":{
			"b":{"$ref":"#/definitions/c","description":"b"},
			"c":{"type":"string"}
		}}`)
	if err := Resolve(doc, Options{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	a, _ := tree.GetKeys(doc, []string{"properties", "a"})
	assertDoc(t, a.(*tree.Object), `{"description":"b","type":"string"}`)
	if _, ok := tree.FindDeep(a, "$ref", nil); ok {
		t.Fatalf("residual $ref in %v", a)
	}
}

func TestResolve_MergeSemantics(t *testing.T) {
	doc := mustDoc(t, `{
		"items":{
			"$ref":"#/definitions/base",
			"required":["x"],
			"title":"local",
			"properties":{"x":{"type":"string"}}
		},
		"definitions":{"base":{
			"required":["y"],
			"title":"base",
			"properties":{"x":{"type":"integer","minimum":1},"y":{"type":"boolean"}}
		}}}`)
	if err := Resolve(doc, Options{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	items, _ := doc.Get("items")
	assertDoc(t, items.(*tree.Object), `{
		"required":["x","y"],
		"title":"base",
		"properties":{"x":{"type":"string","minimum":1},"y":{"type":"boolean"}}
	}`)
}

func TestResolve_DefinitionsStayUntouched(t *testing.T) {
	doc := mustDoc(t, `{"properties":{},"definitions":{"x":{"$ref":"#/definitions/y"},"y":{}}}`)
	if err := Resolve(doc, Options{}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if v, _ := tree.GetKeys(doc, []string{"definitions", "x", "$ref"}); v != tree.String("#/definitions/y") {
		t.Fatalf("definitions were rewritten: %v", v)
	}
}

func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"not found", `{"properties":{"a":{"$ref":"#/definitions/missing"}}}`, ErrReferenceNotFound},
		{"scalar target", `{"properties":{"a":{"$ref":"#/definitions/n"}},"definitions":{"n":1}}`, ErrReferenceNotFound},
		{"external", `{"properties":{"a":{"$ref":"other.json#/x"}}}`, ErrExternalReference},
		{"not a string", `{"properties":{"a":{"$ref":3}}}`, ErrInvalidReference},
		{"self cycle", `{"properties":{"a":{"$ref":"#/definitions/x"}},"definitions":{"x":{"$ref":"#/definitions/x"}}}`, ErrReferenceCycle},
		{"unbounded recursion", `{"properties":{"a":{"$ref":"#/definitions/node"}},
			"definitions":{"node":{"type":"object","properties":{"child":{"$ref":"#/definitions/node"}}}}}`, ErrReferenceCycle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Resolve(mustDoc(t, tc.doc), Options{MaxPasses: 50})
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestResolve_Nil(t *testing.T) {
	if err := Resolve(nil, Options{}); err != nil {
		t.Fatalf("nil document: %v", err)
	}
}
