package value

import (
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/prettydoc/pkg/doc"
	"github.com/matzehuels/prettydoc/pkg/errors"
)

// FromYAML decodes the first YAML document in data and returns its document.
// Mapping order is kept and aliases are replaced by the value they refer to.
func FromYAML(data []byte, opts ...Option) (*doc.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "yaml")
	}
	y := &yamlConverter{options: newOptions(opts), resolving: make(map[*yaml.Node]bool)}
	return y.node(&root)
}

type yamlConverter struct {
	*options
	resolving map[*yaml.Node]bool
}

func (y *yamlConverter) node(n *yaml.Node) (*doc.Node, error) {
	switch n.Kind {
	case 0:
		return doc.Text("null"), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return doc.Text("null"), nil
		}
		return y.node(n.Content[0])
	case yaml.AliasNode:
		if y.resolving[n] {
			return nil, errors.New(errors.ErrCodeInvalidInput, "yaml: alias *%s refers to itself", n.Value)
		}
		y.resolving[n] = true
		defer delete(y.resolving, n)
		return y.node(n.Alias)
	case yaml.SequenceNode:
		items := make([]*doc.Node, len(n.Content))
		scalars := true
		for i, c := range n.Content {
			d, err := y.node(c)
			if err != nil {
				return nil, err
			}
			items[i] = d
			scalars = scalars && c.Kind == yaml.ScalarNode
		}
		return y.list(items, scalars), nil
	case yaml.MappingNode:
		entries := make([]entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := y.node(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := y.node(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{key: k, value: v})
		}
		return y.object("", entries), nil
	default:
		return y.scalar(n)
	}
}

func (y *yamlConverter) scalar(n *yaml.Node) (*doc.Node, error) {
	switch n.ShortTag() {
	case "!!null":
		return doc.Text("null"), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "yaml: line %d", n.Line)
		}
		return doc.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// Out of range for int64: keep the digits.
			return doc.Text(n.Value), nil
		}
		return doc.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "yaml: line %d", n.Line)
		}
		return doc.FloatTyped(f), nil
	default:
		return quote(n.Value), nil
	}
}
