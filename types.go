package schemawalk

// Type is the closed set of JSON Schema type tags.
type Type int

const (
	TypeInvalid Type = iota
	TypeString
	TypeBoolean
	TypeObject
	TypeInteger
	TypeNumber
	TypeArray
	TypeNull
)

var typeNames = map[string]Type{
	"string":  TypeString,
	"boolean": TypeBoolean,
	"object":  TypeObject,
	"integer": TypeInteger,
	"number":  TypeNumber,
	"array":   TypeArray,
	"null":    TypeNull,
}

// ParseType maps a type tag to a Type.
func ParseType(name string) (Type, bool) {
	t, ok := typeNames[name]
	return t, ok
}

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBoolean:
		return "boolean"
	case TypeObject:
		return "object"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeArray:
		return "array"
	case TypeNull:
		return "null"
	}
	return "invalid"
}

// ValueBearing reports whether a synthesized instance of t can carry a value.
// Only null is excluded.
func (t Type) ValueBearing() bool {
	switch t {
	case TypeString, TypeBoolean, TypeObject, TypeInteger, TypeNumber, TypeArray:
		return true
	}
	return false
}
