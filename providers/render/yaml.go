package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	yaml "sigs.k8s.io/yaml/goyaml.v3"

	"github.com/leofalp/prefsjson/core/prefs"
)

const (
	yamlStrTag   = "!!str"
	yamlIntTag   = "!!int"
	yamlFloatTag = "!!float"
	yamlBoolTag  = "!!bool"
	yamlNullTag  = "!!null"
	yamlMapTag   = "!!map"
	yamlSeqTag   = "!!seq"
)

// YAMLRenderer writes the mapping as a YAML document in key order. Numbers
// are written with their literal text, so big integers and trailing zeros
// survive; a literal a YAML reader would resolve differently keeps an
// explicit tag.
type YAMLRenderer struct{}

func (r *YAMLRenderer) Format() Format { return FormatYAML }

func (r *YAMLRenderer) Render(w io.Writer, res *prefs.Result) error {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTag}
	for key, value := range res.All() {
		node, err := valueNode(value)
		if err != nil {
			return fmt.Errorf("failed to convert %q to YAML: %w", key, err)
		}
		root.Content = append(root.Content, stringNode(key), node)
	}
	if len(root.Content) == 0 {
		root.Style = yaml.FlowStyle
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return nil
}

func valueNode(value prefs.Value) (*yaml.Node, error) {
	if value.IsRaw() {
		return stringNode(value.Text()), nil
	}
	dec := json.NewDecoder(strings.NewReader(value.Text()))
	dec.UseNumber()
	return jsonNode(dec)
}

// jsonNode converts the next JSON value read from dec, keeping member order.
func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: yamlSeqTag}
		if t == '{' {
			node = &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTag}
		}
		for dec.More() {
			if node.Kind == yaml.MappingNode {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, _ := keyTok.(string)
				node.Content = append(node.Content, stringNode(key))
			}
			child, err := jsonNode(dec)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		if len(node.Content) == 0 {
			node.Style = yaml.FlowStyle
		}
		return node, nil

	case string:
		return stringNode(t), nil

	case json.Number:
		return numberNode(t.String()), nil

	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlBoolTag, Value: strconv.FormatBool(t)}, nil

	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlNullTag, Value: "null"}, nil

	default:
		return nil, fmt.Errorf("unexpected JSON token %v", tok)
	}
}

func stringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: yamlStrTag, Value: s}
}

func numberNode(literal string) *yaml.Node {
	tag := yamlIntTag
	if strings.ContainsAny(literal, ".eE") {
		tag = yamlFloatTag
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: literal}
}
