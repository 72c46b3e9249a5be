// Package fromyaml builds dynamic.Dynamic values from a YAML document. It
// is the second "external JSON-shaped value" source named in spec §1 (the
// first being encoding/json via dynamic.FromJSONBytes): gopkg.in/yaml.v3
// appears in the teacher's own encoding/yaml package and, independently, in
// the go.mod of two other repos in the retrieval pack, so a host embedding
// this query language can load a root document from either format.
package fromyaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Rastler3D/query-lang/dynamic"
)

// FromBytes parses a single YAML document and converts it to a Dynamic,
// preserving mapping key order (yaml.Node.Content interleaves key/value
// nodes in document order, unlike decoding into map[string]any).
func FromBytes(data []byte) (dynamic.Dynamic, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return dynamic.Dynamic{}, fmt.Errorf("fromyaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return dynamic.Null, nil
	}
	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (dynamic.Dynamic, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return dynamic.Null, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		items := make([]dynamic.Dynamic, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return dynamic.Dynamic{}, err
			}
			items[i] = v
		}
		return dynamic.FromArray(dynamic.NewArray(items...)), nil
	case yaml.MappingNode:
		m := dynamic.NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return dynamic.Dynamic{}, err
			}
			m.Set(key, v)
		}
		return dynamic.FromObject(m), nil
	default:
		return dynamic.Null, nil
	}
}

func fromScalar(n *yaml.Node) (dynamic.Dynamic, error) {
	switch n.Tag {
	case "!!null":
		return dynamic.Null, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return dynamic.Dynamic{}, err
		}
		return dynamic.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return dynamic.Dynamic{}, err
		}
		return dynamic.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return dynamic.Dynamic{}, err
		}
		return dynamic.Float(f), nil
	default:
		return dynamic.String(n.Value), nil
	}
}
