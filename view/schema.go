package view

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// File represents the root of a YAML view definition document.
type File struct {
	// Views is the list of named view definitions.
	Views []Def `yaml:"views"`
}

// Def declares one named view over a Go struct type. The type itself is
// bound at compile time (see NewRegistry); the definition only names
// fields.
type Def struct {
	// Name identifies the view; other views reference it by this name.
	Name string `yaml:"name"`

	// Attrs lists scalar attributes read directly off the bound type.
	Attrs AttrArray `yaml:"attrs,omitempty"`

	// HasOne embeds single nested values rendered by another view.
	HasOne []Assoc `yaml:"has_one,omitempty"`

	// HasMany embeds slice fields rendered element-wise by another view.
	HasMany []Assoc `yaml:"has_many,omitempty"`
}

// Attr maps one source field to one output key.
type Attr struct {
	// Key is the output key in the rendered JSON.
	Key string

	// Field is the exported field name on the bound type.
	Field string
}

// AttrArray is a list of Attr that supports two YAML forms per entry:
//   - Plain string: "ID" (key equals the field name)
//   - Rename map: {id: ID} (output key "id", field "ID")
type AttrArray []Attr

// UnmarshalYAML implements custom YAML unmarshaling for AttrArray.
func (a *AttrArray) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("attrs: expected sequence, got %v", node.Kind)
	}

	out := make(AttrArray, 0, len(node.Content))

	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			var s string

			err := item.Decode(&s)
			if err != nil {
				return err
			}

			if s == "" {
				return errors.New("attrs: empty field name")
			}

			out = append(out, Attr{Key: s, Field: s})

		case yaml.MappingNode:
			var m map[string]string

			err := item.Decode(&m)
			if err != nil {
				return err
			}

			if len(m) != 1 {
				return errors.New("attrs: rename entry must hold exactly one key")
			}

			for key, field := range m {
				out = append(out, Attr{Key: key, Field: field})
			}

		default:
			return fmt.Errorf("attrs: expected string or map, got %v", item.Kind)
		}
	}

	*a = out

	return nil
}

// MarshalYAML implements custom YAML marshaling for AttrArray. Entries
// whose key equals the field name collapse to the plain string form.
func (a AttrArray) MarshalYAML() (any, error) {
	out := make([]any, 0, len(a))

	for _, at := range a {
		if at.Key == at.Field {
			out = append(out, at.Field)
			continue
		}

		out = append(out, map[string]string{at.Key: at.Field})
	}

	return out, nil
}

// Assoc embeds another view under a key, either as a single nested object
// (has_one) or an array of nested objects (has_many).
type Assoc struct {
	// Key is the output key. If empty, the field name is used verbatim.
	Key string `yaml:"key,omitempty"`

	// Field is the exported field name on the bound type.
	Field string `yaml:"field"`

	// View names the view that renders the nested value(s).
	View string `yaml:"view"`
}

// OutKey returns the output key for this association.
func (a Assoc) OutKey() string {
	if a.Key != "" {
		return a.Key
	}

	return a.Field
}
