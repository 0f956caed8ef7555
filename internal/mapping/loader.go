package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"accessor-generator/internal/plan"
)

// LoadFile loads and parses a description file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	return Parse(data, path)
}

// Load reads the description file at path and builds its records. Records
// that are valid are returned next to the errors of the others.
func Load(path string) ([]plan.Record, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte, name string) (*File, error) {
	f := File{Name: name}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse description YAML %s: %w", name, err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	for i := range f.Records {
		r := &f.Records[i]
		if !r.Kind.IsSet() {
			r.Kind.Text = plan.RecordStruct.String()
		}
	}
}
