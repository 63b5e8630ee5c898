package output

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/jt/pkg/colorize"
	"github.com/arthur-debert/jt/pkg/document"
)

// FormatYAML writes data as block style YAML with two-space indentation.
// Mapping order is preserved and the text ends with a newline.
func FormatYAML(data any, opts Options) (string, error) {
	if document.IsUndefined(data) {
		return "", nil
	}

	node, err := yamlNode(data)
	if err != nil {
		return "", outputError(err, "yaml")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", outputError(err, "yaml")
	}
	if err := enc.Close(); err != nil {
		return "", outputError(err, "yaml")
	}

	text := buf.String()
	if opts.Color {
		return colorize.YAML(text, opts.Palette), nil
	}
	return text, nil
}

func yamlNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		value := "false"
		if t {
			value = "true"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: value}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}, nil
	case float64:
		return numberNode(t), nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range t {
			if document.IsUndefined(item) {
				item = nil
			}
			n, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case *document.Object:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		t.Range(func(k string, val any) bool {
			if document.IsUndefined(val) {
				return true
			}
			var n *yaml.Node
			n, err = yamlNode(val)
			if err != nil {
				return false
			}
			m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, n)
			return true
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("cannot serialize value of type %s", reflect.TypeOf(v))
}

func numberNode(f float64) *yaml.Node {
	switch {
	case math.IsNaN(f):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".nan"}
	case math.IsInf(f, 1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: ".inf"}
	case math.IsInf(f, -1):
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-.inf"}
	}

	text := document.FormatNumber(f)
	tag := "!!float"
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
}
