package encode

import (
	"github.com/goccy/go-yaml"

	"github.com/signadot/mdtree"
)

// ToYAML renders the tree as a YAML document: one mapping per node
// with element name, exported element fields and children.
func ToYAML[M any](root *mdtree.Node[M]) ([]byte, error) {
	return yaml.Marshal(yamlNode(root))
}

func yamlNode[M any](n *mdtree.Node[M]) map[string]any {
	m := map[string]any{
		"element": mdtree.ElementName(n.Element()),
	}
	if attrs := mdtree.ElementAttrs(n.Element()); len(attrs) > 0 {
		for k, v := range attrs {
			// YAML output wants plain scalars, not Stringer types
			if s, ok := v.(interface{ String() string }); ok {
				attrs[k] = s.String()
			}
		}
		m["attrs"] = attrs
	}
	if n.HasChildren() {
		var kids []any
		for c := range n.Children().All() {
			kids = append(kids, yamlNode(c))
		}
		m["children"] = kids
	}
	return m
}
