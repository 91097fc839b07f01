package schemawalk

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownType is returned when a node's type tag is not a JSON Schema type.
	ErrUnknownType = errors.New("schemawalk: unknown type")
	// ErrNoVariants is returned when variant resolution is asked of an array
	// whose items are not a oneOf union.
	ErrNoVariants = errors.New("schemawalk: intrinsic type has no variants")
	// ErrNoItems is returned when an array element is requested from a schema
	// without items.
	ErrNoItems = errors.New("schemawalk: schema has no items")
	// ErrInvalidVariant is returned when a union element is requested without
	// one of the union's own members.
	ErrInvalidVariant = errors.New("schemawalk: invalid variant")
	// ErrNotObject is returned when a document root is not an object.
	ErrNotObject = errors.New("schemawalk: schema document must be an object")
	// ErrNoValidator is returned by Validate when no Validator was configured.
	ErrNoValidator = errors.New("schemawalk: no validator configured")
)

// Issue is one validation failure, enriched with the subschema it came from.
type Issue struct {
	Path       string // Model path of the offending value (for example: items[2].price).
	ParentPath string
	Key        string // Last key of Path, without index suffix.
	Code       string // Validation keyword reported by the validator.
	Message    string // Display message: the subschema's own message or "<label> <validator message>".
	Detail     string // The validator's rendered error text.
	// Params carries the validator's structured parameters (e.g., {"limit": 3}).
	Params map[string]any
	// Schema is the originating subschema; zero when the path does not map
	// onto the schema.
	Schema Node
}

// Issues is the validation failure returned by Schema.Validate.
type Issues []Issue

// Error returns the message of a single issue, or a summary of the first
// few issues.
func (iss Issues) Error() string {
	switch len(iss) {
	case 0:
		return ""
	case 1:
		return iss[0].Message
	}
	const maxShown = 3
	b := &strings.Builder{}
	fmt.Fprintf(b, "validation failed with %d errors: ", len(iss))
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		path := it.Path
		if path == "" {
			path = "(root)"
		}
		// e.g. minimum at items[0].price
		fmt.Fprintf(b, "%s at %s", it.Code, path)
	}
	if len(iss) > lim {
		b.WriteString("; ...")
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
