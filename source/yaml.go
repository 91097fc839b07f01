package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reoring/schemawalk/tree"
)

// DuplicateKeyError reports a duplicate object key. YAML input carries both
// the first occurrence position and the duplicate occurrence position; JSON
// input leaves them zero.
type DuplicateKeyError struct {
	Key       string
	Path      []string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("duplicate key %q at /%s", e.Key, strings.Join(e.Path, "/"))
	}
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// YAMLReader decodes a multi-document YAML stream using yaml.Node so that
// key order is kept and duplicate keys are detected with positions.
type YAMLReader struct {
	dec *yaml.Decoder
}

// NewYAMLReader constructs a YAMLReader.
func NewYAMLReader(r io.Reader) *YAMLReader {
	return &YAMLReader{dec: yaml.NewDecoder(r)}
}

// Next returns the next document. It returns (nil, io.EOF) when the stream is
// exhausted. An empty document decodes as Null.
func (s *YAMLReader) Next() (tree.Value, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	if len(root.Content) == 0 {
		return tree.Null{}, nil
	}
	return nodeToValue(root.Content[0], nil)
}

// ReadAll reads all documents from the YAML stream.
func (s *YAMLReader) ReadAll() ([]tree.Value, error) {
	var out []tree.Value
	for {
		v, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

// YAML decodes the first document of a YAML stream.
func YAML(data []byte) (tree.Value, error) {
	v, err := NewYAMLReader(bytes.NewReader(data)).Next()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	}
	return v, err
}

// YAMLDocuments decodes every document of a YAML stream.
func YAMLDocuments(data []byte) ([]tree.Value, error) {
	return NewYAMLReader(bytes.NewReader(data)).ReadAll()
}

func nodeToValue(n *yaml.Node, path []string) (tree.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return tree.Null{}, nil
		}
		return nodeToValue(n.Content[0], path)
	case yaml.AliasNode:
		if n.Alias == nil {
			return tree.Null{}, nil
		}
		return nodeToValue(n.Alias, path)
	case yaml.MappingNode:
		o := tree.NewObject()
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			v := n.Content[i+1]
			key := k.Value
			if pos, dup := first[key]; dup {
				return nil, &DuplicateKeyError{
					Key: key, Path: append(append([]string(nil), path...), key),
					FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column,
				}
			}
			first[key] = [2]int{k.Line, k.Column}
			val, err := nodeToValue(v, append(path, key))
			if err != nil {
				return nil, err
			}
			o.Set(key, val)
		}
		return o, nil
	case yaml.SequenceNode:
		arr := make(tree.Array, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := nodeToValue(c, append(path, strconv.Itoa(i)))
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		return scalarToValue(n), nil
	}
	return tree.Null{}, nil
}

func scalarToValue(n *yaml.Node) tree.Value {
	switch n.Tag {
	case "!!null":
		return tree.Null{}
	case "!!bool":
		if b, err := strconv.ParseBool(n.Value); err == nil {
			return tree.Bool(b)
		}
	case "!!int":
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			return tree.Number(i)
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return tree.Number(f)
		}
	case "!!float":
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return tree.Number(f)
		}
	}
	// !!str, !!timestamp, !!binary and custom tags keep their text
	return tree.String(n.Value)
}
