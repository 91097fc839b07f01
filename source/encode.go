package source

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/schemawalk/tree"
)

// EncodeJSON renders v as JSON, indented with two spaces when indent is set.
func EncodeJSON(v tree.Value, indent bool) ([]byte, error) {
	if indent {
		return tree.EncodeIndent(v, "", "  ")
	}
	return tree.Encode(v)
}

// EncodeYAML renders v as YAML, keeping object key order.
func EncodeYAML(v tree.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(valueToNode(v)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func valueToNode(v tree.Value) *yaml.Node {
	switch t := v.(type) {
	case *tree.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		t.Range(func(k string, child tree.Value) bool {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				valueToNode(child))
			return true
		})
		return n
	case tree.Array:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			n.Content = append(n.Content, valueToNode(e))
		}
		return n
	case tree.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(t)}
	case tree.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(bool(t))}
	case tree.Number:
		if t.IsInteger() {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatFloat(float64(t), 'f', -1, 64)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(float64(t), 'g', -1, 64)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
