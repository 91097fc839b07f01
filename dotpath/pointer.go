package dotpath

import (
	"strconv"
	"strings"
)

var (
	pointerEscaper   = strings.NewReplacer("~", "~0", "/", "~1")
	pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// Pointer renders segments as an RFC 6901 JSON Pointer. The empty path is "/".
func Pointer(segs []Segment) string {
	if len(segs) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range segs {
		b.WriteByte('/')
		if s.IsIndex {
			b.WriteString(strconv.Itoa(s.Index))
			continue
		}
		b.WriteString(pointerEscaper.Replace(s.Key))
	}
	return b.String()
}

// FromPointer parses a JSON Pointer into key segments. A pointer carries no
// type information, so numeric tokens stay keys; callers that know the shape
// of the addressed value can convert them.
func FromPointer(ptr string) []Segment {
	parts := splitPointer(ptr)
	segs := make([]Segment, 0, len(parts))
	for _, p := range parts {
		segs = append(segs, Segment{Key: p})
	}
	return segs
}

func splitPointer(ptr string) []string {
	var parts []string
	for _, p := range strings.Split(ptr, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, pointerUnescaper.Replace(p))
	}
	return parts
}
