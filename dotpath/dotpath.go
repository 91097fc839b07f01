// Package dotpath converts between the three path dialects used when a schema
// and a model are walked together:
//
//   - model paths: a.b.c, with ['quoted'] segments for keys that are not atomic
//     under dot splitting and [n] suffixes for sequence indices;
//   - schema property paths: properties.a.properties.b, with items standing in
//     for every sequence index;
//   - $ref pointers: #/a/b.
//
// All functions are pure string transformations; none of them looks at a schema.
package dotpath

import (
	"strconv"
	"strings"
)

// Segment is one step of a model path: either an object key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

// Key returns a key segment.
func Key(k string) Segment { return Segment{Key: k} }

// Idx returns an index segment.
func Idx(i int) Segment { return Segment{Index: i, IsIndex: true} }

// String renders the segment as it appears inside a resolved path.
func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if needsQuote(s.Key) {
		return quote(s.Key)
	}
	return s.Key
}

// Split parses a model path into segments. Dots separate keys, bracketed
// quoted strings are taken literally, bracketed integers become index
// segments, and empty segments (leading, doubled or trailing dots) are dropped.
func Split(path string) []Segment {
	var segs []Segment
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			segs = append(segs, Segment{Key: cur.String()})
			cur.Reset()
		}
	}
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch c {
		case '.':
			flush()
		case '[':
			end, seg, ok := readBracket(path, i)
			if !ok {
				cur.WriteByte(c)
				continue
			}
			flush()
			segs = append(segs, seg)
			i = end
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return segs
}

// readBracket parses a bracket expression starting at path[start] == '['. It
// returns the index of the closing ']' and the parsed segment.
func readBracket(path string, start int) (int, Segment, bool) {
	if start+1 >= len(path) {
		return 0, Segment{}, false
	}
	if q := path[start+1]; q == '\'' || q == '"' {
		closeAt := strings.Index(path[start+2:], string(q)+"]")
		if closeAt < 0 {
			return 0, Segment{}, false
		}
		key := path[start+2 : start+2+closeAt]
		return start + 2 + closeAt + 1, Segment{Key: key}, true
	}
	closeAt := strings.IndexByte(path[start+1:], ']')
	if closeAt < 0 {
		return 0, Segment{}, false
	}
	body := path[start+1 : start+1+closeAt]
	end := start + 1 + closeAt
	if n, err := strconv.Atoi(body); err == nil && n >= 0 {
		return end, Segment{Index: n, IsIndex: true}, true
	}
	if body == "" {
		return 0, Segment{}, false
	}
	return end, Segment{Key: body}, true
}

// Join renders segments as a resolved model path.
func Join(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		switch {
		case s.IsIndex:
			b.WriteString("[" + strconv.Itoa(s.Index) + "]")
		case needsQuote(s.Key):
			b.WriteString(quote(s.Key))
		default:
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(s.Key)
		}
	}
	return b.String()
}

// Resolve normalizes a model path: a['b'].c becomes a.b.c. Keys that would
// not survive dot splitting stay bracket-quoted.
func Resolve(path string) string { return Join(Split(path)) }

// Parent returns the resolved path without its last dot-segment. Index
// suffixes belong to the segment they follow, so Parent("a.b[0]") is "a".
func Parent(path string) string {
	segs := Split(path)
	n := len(segs)
	for n > 0 && segs[n-1].IsIndex {
		n--
	}
	if n > 0 {
		n--
	}
	return Join(segs[:n])
}

// LastKey returns the final key of a path with any index suffix dropped.
func LastKey(path string) string {
	segs := Split(path)
	for i := len(segs) - 1; i >= 0; i-- {
		if !segs[i].IsIndex {
			return segs[i].Key
		}
	}
	return ""
}

// Child appends a key to a resolved path.
func Child(parent, key string) string {
	return Join(append(Split(parent), Segment{Key: key}))
}

// Index appends a sequence index to a resolved path.
func Index(parent string, i int) string {
	return Join(append(Split(parent), Segment{Index: i, IsIndex: true}))
}

// HydrateSegments maps a model path onto the literal key sequence that
// addresses the matching subschema: every key k becomes properties, k and
// every index becomes items.
func HydrateSegments(path string) []string {
	segs := Split(path)
	out := make([]string, 0, len(segs)*2)
	for _, s := range segs {
		if s.IsIndex {
			out = append(out, "items")
			continue
		}
		out = append(out, "properties", s.Key)
	}
	return out
}

// Hydrate is HydrateSegments rendered with every segment bracket-quoted, so
// Hydrate("a.b") == "['properties']['a']['properties']['b']".
func Hydrate(path string) string {
	var b strings.Builder
	for _, k := range HydrateSegments(path) {
		b.WriteString(quote(k))
	}
	return b.String()
}

// NormalizeReference converts a #/a/b pointer into the dot form a.b.
func NormalizeReference(ref string) string {
	ref = strings.TrimPrefix(ref, "#")
	ref = strings.TrimPrefix(ref, "/")
	return strings.ReplaceAll(ref, "/", ".")
}

// ReferenceSegments splits a #/a/b pointer into its unescaped keys.
func ReferenceSegments(ref string) []string {
	ref = strings.TrimPrefix(ref, "#")
	if ref == "" || ref == "/" {
		return nil
	}
	return splitPointer(ref)
}

func needsQuote(k string) bool {
	return k == "" || strings.ContainsAny(k, ".[]'\"")
}

func quote(k string) string {
	if strings.ContainsRune(k, '\'') {
		return `["` + k + `"]`
	}
	return "['" + k + "']"
}
