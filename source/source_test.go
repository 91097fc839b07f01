package source

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/reoring/schemawalk/tree"
)

func TestJSON_KeepsOrder(t *testing.T) {
	v, err := JSON([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[1.5,"s"]}`))
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	o, _ := tree.AsObject(v)
	if !reflect.DeepEqual(o.Keys(), []string{"z", "a", "m"}) {
		t.Fatalf("keys = %v", o.Keys())
	}
	b, _ := tree.Encode(v)
	if string(b) != `{"z":1,"a":{"y":true,"b":null},"m":[1.5,"s"]}` {
		t.Fatalf("round trip = %s", b)
	}
}

func TestJSON_Errors(t *testing.T) {
	_, err := JSON([]byte(`{"a":{"b":1,"b":2}}`))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Key != "b" || !reflect.DeepEqual(dup.Path, []string{"a", "b"}) {
		t.Fatalf("dup = %+v", dup)
	}
	if _, err := JSON([]byte("  ")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := JSON([]byte(`{} {}`)); !errors.Is(err, ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
	if _, err := JSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestYAML(t *testing.T) {
	v, err := YAML([]byte("b: 1\na:\n  - x\n  - 2.5\n  - true\n  - ~\nc: '3'\n"))
	if err != nil {
		t.Fatalf("YAML: %v", err)
	}
	b, _ := tree.Encode(v)
	if string(b) != `{"b":1,"a":["x",2.5,true,null],"c":"3"}` {
		t.Fatalf("decoded = %s", b)
	}
}

func TestYAML_DuplicateKey(t *testing.T) {
	_, err := YAML([]byte("a: 1\nb:\n  c: 1\n  c: 2\n"))
	var dup *DuplicateKeyError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateKeyError, got %v", err)
	}
	if dup.Key != "c" || dup.FirstLine != 3 || dup.Line != 4 {
		t.Fatalf("dup = %+v", dup)
	}
}

func TestYAMLDocuments(t *testing.T) {
	docs, err := YAMLDocuments([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatalf("YAMLDocuments: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("docs = %d", len(docs))
	}
	if _, err := YAML(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

const crdStream = `apiVersion: v1
kind: ConfigMap
metadata: {name: other}
---
apiVersion: apiextensions.k8s.io/v1
kind: CustomResourceDefinition
spec:
  names: {kind: Widget}
  versions:
    - name: v1alpha1
      served: false
      schema:
        openAPIV3Schema: {type: object, description: old}
    - name: v1
      served: true
      schema:
        openAPIV3Schema: {type: object, description: current}
`

func TestCRD(t *testing.T) {
	docs, err := YAMLDocuments([]byte(crdStream))
	if err != nil {
		t.Fatalf("YAMLDocuments: %v", err)
	}
	crd, err := CRDForKind(docs, "Widget")
	if err != nil {
		t.Fatalf("CRDForKind: %v", err)
	}
	desc, _ := tree.GetPath(UnwrapCRD(crd), "description")
	if desc != tree.String("current") {
		t.Fatalf("unwrapped description = %v", desc)
	}
	if _, err := CRDForKind(docs, "Gadget"); !errors.Is(err, ErrCRDNotFound) {
		t.Fatalf("expected ErrCRDNotFound, got %v", err)
	}

	plain := tree.ObjectOf("type", tree.String("object"))
	if UnwrapCRD(plain) != tree.Value(plain) {
		t.Fatalf("plain schema should be returned unchanged")
	}
	wrapped := tree.ObjectOf("openAPIV3Schema", plain)
	if UnwrapCRD(wrapped) != tree.Value(plain) {
		t.Fatalf("top-level openAPIV3Schema should be unwrapped")
	}
}

func TestDecodeAndLoad(t *testing.T) {
	v, err := Decode([]byte(" [1]"), FormatAuto)
	if err != nil || !tree.Equal(v, tree.Array{tree.Number(1)}) {
		t.Fatalf("auto JSON = %v, %v", v, err)
	}
	v, err = Decode([]byte("k: v"), FormatAuto)
	if err != nil || !tree.Equal(v, tree.ObjectOf("k", tree.String("v"))) {
		t.Fatalf("auto YAML = %v, %v", v, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected unknown format error")
	}
	if f, _ := ParseFormat("YML"); f != FormatYAML {
		t.Fatalf("ParseFormat(YML) = %v", f)
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(p, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err = Load(p)
	if err != nil || !tree.Equal(v, tree.ObjectOf("a", tree.Number(1))) {
		t.Fatalf("Load = %v, %v", v, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestEncode(t *testing.T) {
	v := tree.ObjectOf("name", tree.String("Ada"), "n", tree.Number(2), "f", tree.Number(1.5),
		"list", tree.Array{tree.Bool(true), tree.Null{}})
	y, err := EncodeYAML(v)
	if err != nil {
		t.Fatalf("EncodeYAML: %v", err)
	}
	if !strings.HasPrefix(string(y), "name: Ada\nn: 2\nf: 1.5\nlist:\n") {
		t.Fatalf("yaml =\n%s", y)
	}
	back, err := YAML(y)
	if err != nil || !tree.Equal(back, v) {
		t.Fatalf("yaml round trip = %v, %v", back, err)
	}

	js, err := EncodeJSON(v, true)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	back, err = JSON(js)
	if err != nil || !tree.Equal(back, v) {
		t.Fatalf("json round trip = %v, %v", back, err)
	}
}
