package decode

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxAliasDepth bounds alias resolution so a pathological anchor chain
// cannot recurse without limit.
const maxAliasDepth = 10000

// Parse parses a raw document with the permissive YAML grammar (a superset
// of JSON) and converts the node tree into the canonical Value.
func Parse(raw string) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &root); err != nil {
		return Value{}, fmt.Errorf("decode: parsing document: %w", err)
	}
	return fromNode(&root, 0)
}

// fromNode recursively converts a yaml.Node into a Value: scalars map to
// their canonical counterparts, sequences convert element-wise preserving
// order, and mappings convert value-wise with last write winning on
// duplicate keys.
func fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxAliasDepth {
		return Value{}, fmt.Errorf("decode: document nesting exceeds %d levels", maxAliasDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return fromNode(n.Content[0], depth+1)

	case yaml.AliasNode:
		return fromNode(n.Alias, depth+1)

	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return Null(), nil
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Value{}, fmt.Errorf("decode: invalid boolean %q: %w", n.Value, err)
			}
			return BoolValue(b), nil
		case "!!int":
			var i int64
			if err := n.Decode(&i); err != nil {
				return Value{}, fmt.Errorf("decode: invalid integer %q: %w", n.Value, err)
			}
			return NumberValue(float64(i)), nil
		case "!!float":
			var f float64
			if err := n.Decode(&f); err != nil {
				return Value{}, fmt.Errorf("decode: invalid number %q: %w", n.Value, err)
			}
			return NumberValue(f), nil
		default:
			return StringValue(n.Value), nil
		}

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return ArrayValue(items...), nil

	case yaml.MappingNode:
		fields := make(map[string]Value, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i]
			if key.Kind == yaml.AliasNode {
				key = key.Alias
			}
			if key.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("decode: non-scalar mapping key at line %d", key.Line)
			}
			v, err := fromNode(n.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			fields[key.Value] = v
		}
		return ObjectValue(fields), nil

	default:
		return Value{}, fmt.Errorf("decode: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}
