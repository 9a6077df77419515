package jsontools

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a YAML mapping into the Object, preserving member
// order. Nested mappings decode as *Object and sequences as Array, so YAML
// documents can be queried and edited like any other tree.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	obj, err := objectFromYAML(node)
	if err != nil {
		return err
	}
	*o = *obj
	return nil
}

// MarshalYAML encodes the Object as a mapping node preserving member order.
func (o *Object) MarshalYAML() (interface{}, error) {
	return yamlNode(o)
}

func objectFromYAML(node *yaml.Node) (*Object, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected YAML mapping, got %s", node.Tag)
	}
	obj := NewObject()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return nil, err
		}
		value, err := valueFromYAML(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	return obj, nil
}

func valueFromYAML(node *yaml.Node) (JSONValue, error) {
	switch node.Kind {
	case yaml.MappingNode:
		return objectFromYAML(node)
	case yaml.SequenceNode:
		arr := make(Array, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := valueFromYAML(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.AliasNode:
		return valueFromYAML(node.Alias)
	default:
		var value interface{}
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

func yamlNode(value JSONValue) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, e := range v.entries {
			keyNode := &yaml.Node{}
			if err := keyNode.Encode(e.Key); err != nil {
				return nil, err
			}
			valueNode, err := yamlNode(e.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil
	case Array:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			itemNode, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}
