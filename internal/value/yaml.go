package value

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML converts a YAML node into the value tree, keeping mapping key
// order. Integers are widened to float64 so YAML and JSON documents yield
// identical trees.
func DecodeYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return DecodeYAML(node.Content[0])
	case yaml.AliasNode:
		return DecodeYAML(node.Alias)
	case yaml.MappingNode:
		obj := NewObject()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
			}
			item, err := DecodeYAML(valNode)
			if err != nil {
				return nil, fmt.Errorf("in key '%s': %w", keyNode.Value, err)
			}
			obj.Set(keyNode.Value, item)
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for i, itemNode := range node.Content {
			item, err := DecodeYAML(itemNode)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", i, err)
			}
			arr = append(arr, item)
		}
		return arr, nil
	case yaml.ScalarNode:
		var scalar any
		if err := node.Decode(&scalar); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch n := scalar.(type) {
		case int:
			return float64(n), nil
		case int64:
			return float64(n), nil
		case uint64:
			return float64(n), nil
		}
		return scalar, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	v, err := DecodeYAML(node)
	if err != nil {
		return err
	}
	obj, ok := v.(*Object)
	if !ok {
		return fmt.Errorf("value: expected a YAML mapping, got %s", TypeName(v))
	}
	*o = *obj
	return nil
}
