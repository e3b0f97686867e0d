package descriptor

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is one ordered key/value pair.
type Property struct {
	Key   string
	Value string
}

// Properties preserves the document order of a YAML mapping. Command lines
// and manifest merges both depend on deterministic iteration, which a plain
// Go map cannot give.
type Properties []Property

// UnmarshalYAML reads a YAML mapping node keeping key order.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a mapping, got %s at line %d", nodeKind(node), node.Line)
	}
	out := make(Properties, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		out = append(out, Property{Key: node.Content[i].Value, Value: node.Content[i+1].Value})
	}
	*p = out
	return nil
}

// MarshalYAML writes the pairs back as a mapping in order.
func (p Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, kv := range p {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Value},
		)
	}
	return node, nil
}

// Get returns the value for key and whether it was present.
func (p Properties) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Set overwrites an existing key in place or appends a new pair.
// In-place overwrite keeps iteration order stable across merges.
func (p Properties) Set(key, value string) Properties {
	for i, kv := range p {
		if kv.Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Property{Key: key, Value: value})
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	default:
		return "document"
	}
}
