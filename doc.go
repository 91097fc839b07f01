// Package schemawalk walks JSON-Schema-like documents together with the data
// they describe.
//
// It provides:
//
// - Construction of a Schema from a raw document, inlining every internal $ref
// - A schema walker that reports path, required-ness and parent for each property
// - Synthesis of representative instances from examples, defaults and type zero values
// - Resolution of the oneOf variant an array element belongs to
// - A model walker visiting every schema/value pair, including array elements
// - Validation through a pluggable validator, with issues enriched by
// per-property display metadata
//
// Design policy:
// - Keep public APIs in the root package; put the reference resolver under internal/.
// - Documents are tree.Value sum types; paths are dotpath strings.
// - Decoding lives in source/, the default validator in validator/, the CLI under cmd/schemawalk.
//
// Typical usage:
//
//	doc, err := source.Load("order.schema.yaml")
//	s, err := schemawalk.New(doc, schemawalk.WithValidator(validator.New()))
//	draft, err := s.SynthesizeRoot(schemawalk.SynthesizeOptions{})
//	if err := s.Validate(draft); err != nil {
//		iss, _ := schemawalk.AsIssues(err)
//	}
package schemawalk
