package gen

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an output format for generated implementation blocks.
type Format string

const (
	// FormatText renders source text.
	FormatText Format = "text"
	// FormatJSON exports descriptors as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML exports descriptors as YAML.
	FormatYAML Format = "yaml"
	// FormatMsgpack exports descriptors as msgpack.
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported Format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMsgpack}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}

	return "", fmt.Errorf("unknown format %q, expected one of %v", s, Formats)
}

// Extension is the file extension used for exported descriptors.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatMsgpack:
		return ".msgpack"
	default:
		return ""
	}
}

// Export serializes impl in the given descriptor format.
func Export(impl *Impl, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(impl, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(impl)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}

		return data, nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(impl)
		if err != nil {
			return nil, fmt.Errorf("encoding msgpack: %w", err)
		}

		return data, nil
	default:
		return nil, fmt.Errorf("format %q is not a descriptor format", format)
	}
}
