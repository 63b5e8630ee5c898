package input

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/jt/pkg/document"
	"github.com/arthur-debert/jt/pkg/errors"
)

const isoTimeLayout = "2006-01-02T15:04:05.000Z"

// ParseYAML decodes the first YAML document of input. Empty or comment
// only input gives document.Undefined.
func ParseYAML(input string) (any, error) {
	var root yaml.Node
	err := yaml.NewDecoder(strings.NewReader(input)).Decode(&root)
	if stderrors.Is(err, io.EOF) {
		return document.Undefined, nil
	}
	if err != nil {
		return nil, yamlError(err)
	}

	v, err := convertNode(&root)
	if err != nil {
		return nil, yamlError(err)
	}
	return v, nil
}

func yamlError(err error) error {
	return errors.Wrap(err, errors.ErrInvalidInput, "Invalid YAML input").
		WithSuggestion("Check indentation and syntax")
}

func convertNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return document.Undefined, nil
		}
		return convertNode(n.Content[0])
	case yaml.AliasNode:
		return convertNode(n.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := convertNode(c)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		obj := document.NewObject()
		if err := fillMapping(obj, n, map[string]bool{}); err != nil {
			return nil, err
		}
		return obj, nil
	case yaml.ScalarNode:
		return convertScalar(n)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
}

// fillMapping copies the pairs of n into obj. Keys written explicitly
// always win over keys pulled in through a merge key.
func fillMapping(obj *document.Object, n *yaml.Node, explicit map[string]bool) error {
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valNode := n.Content[i], n.Content[i+1]
		if keyNode.ShortTag() == "!!merge" {
			if err := merge(obj, valNode, explicit); err != nil {
				return err
			}
			continue
		}

		key, err := mappingKey(keyNode)
		if err != nil {
			return err
		}
		v, err := convertNode(valNode)
		if err != nil {
			return err
		}
		obj.Set(key, v)
		explicit[key] = true
	}
	return nil
}

func merge(obj *document.Object, src *yaml.Node, explicit map[string]bool) error {
	if src.Kind == yaml.AliasNode {
		src = src.Alias
	}
	switch src.Kind {
	case yaml.MappingNode:
		merged := document.NewObject()
		if err := fillMapping(merged, src, map[string]bool{}); err != nil {
			return err
		}
		merged.Range(func(k string, v any) bool {
			if !explicit[k] && !obj.Has(k) {
				obj.Set(k, v)
			}
			return true
		})
		return nil
	case yaml.SequenceNode:
		for _, c := range src.Content {
			if err := merge(obj, c, explicit); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("line %d: merge value must be a mapping or a list of mappings", src.Line)
}

func mappingKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		if n.ShortTag() == "!!null" {
			return "null", nil
		}
		return n.Value, nil
	}
	v, err := convertNode(n)
	if err != nil {
		return "", err
	}
	return document.Stringify(v, "")
}

func convertScalar(n *yaml.Node) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!timestamp":
		var t time.Time
		if err := n.Decode(&t); err != nil {
			return n.Value, nil
		}
		return t.UTC().Format(isoTimeLayout), nil
	default:
		return n.Value, nil
	}
}
