// Package tree models JSON-compatible documents as a closed sum type and
// provides the generic deep operations used to walk, search, prune, clone and
// merge them.
//
// A Value is one of Null, Bool, Number, String, Array or *Object. A Go nil
// Value stands for "undefined": a key or element that is absent, which is
// distinct from an explicit Null.
package tree

import "math"

// Kind enumerates the shapes a Value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a node of a JSON-compatible tree.
type Value interface {
	Kind() Kind
	sealed()
}

type (
	// Null is the JSON null literal.
	Null struct{}
	// Bool is a JSON boolean.
	Bool bool
	// Number is a JSON number.
	Number float64
	// String is a JSON string.
	String string
	// Array is a JSON array. Elements are never nil.
	Array []Value
)

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (Array) sealed()  {}

// IsInteger reports whether n has no fractional part.
func (n Number) IsInteger() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// IsNaN reports whether n is NaN.
func (n Number) IsNaN() bool { return math.IsNaN(float64(n)) }

// AsObject returns v as an object when it is one.
func AsObject(v Value) (*Object, bool) {
	o, ok := v.(*Object)
	return o, ok && o != nil
}

// AsArray returns v as an array when it is one.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsString returns v as a Go string when it is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsNumber returns v as a float64 when it is a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}
