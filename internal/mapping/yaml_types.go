package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"accessor-generator/internal/diagnostic"
)

// Fragment is a scalar together with where its text starts in the file.
type Fragment struct {
	Text   string
	Line   int
	Column int
}

// UnmarshalYAML implements custom YAML unmarshaling for Fragment.
// Quoted scalars start one column after their opening quote; block
// scalars start on the line after their indicator.
func (f *Fragment) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a string, got %s", node.Line, nodeKind(node))
	}

	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}

	*f = Fragment{Text: text, Line: node.Line, Column: node.Column}

	switch node.Style {
	case yaml.DoubleQuotedStyle, yaml.SingleQuotedStyle:
		f.Column++
	case yaml.LiteralStyle, yaml.FoldedStyle:
		f.Line++
	}

	return nil
}

// IsSet reports whether the fragment was present with non-empty text.
func (f Fragment) IsSet() bool {
	return f.Text != ""
}

// Span locates the fragment in file.
func (f Fragment) Span(file string) diagnostic.Span {
	return diagnostic.Span{File: file, Line: f.Line, Column: f.Column}
}

// Fragments is a list of fragments that may also be written as a single
// scalar.
type Fragments []Fragment

// UnmarshalYAML implements custom YAML unmarshaling for Fragments.
// Accepts either a single string or an array of strings.
func (fs *Fragments) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f Fragment
		if err := f.UnmarshalYAML(node); err != nil {
			return err
		}

		if f.IsSet() {
			*fs = Fragments{f}
		} else {
			*fs = Fragments{}
		}

		return nil

	case yaml.SequenceNode:
		out := make(Fragments, len(node.Content))
		for i, item := range node.Content {
			if err := out[i].UnmarshalYAML(item); err != nil {
				return err
			}
		}

		*fs = out

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %s", node.Line, nodeKind(node))
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "array"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "string"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
