package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML writes a record as a plain mapping so field order survives.
func (r DetailRecord) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		v := &yaml.Node{}
		if err := v.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("encode field %q: %w", f.Name, err)
		}
		n.Content = append(n.Content, k, v)
	}
	return n, nil
}

// UnmarshalYAML reads a mapping in document order.
func (r *DetailRecord) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: detail record must be a mapping", value.Line)
	}
	r.Fields = make([]Field, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		var val any
		if err := v.Decode(&val); err != nil {
			return fmt.Errorf("line %d: field %q: %w", v.Line, k.Value, err)
		}
		r.Fields = append(r.Fields, Field{Name: k.Value, Value: val})
	}
	return nil
}
