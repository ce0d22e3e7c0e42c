package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML dataset from path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode reads a YAML dataset from r and resolves its references.
func Decode(r io.Reader) (*Dataset, error) {
	var ds Dataset
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if err == io.EOF {
			return &Dataset{}, nil
		}
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	for i, w := range ds.Works {
		if w == nil || w.ID == "" {
			return nil, fmt.Errorf("work %d has no id", i)
		}
	}
	for i, c := range ds.Categories {
		if c == nil || c.ID == "" {
			return nil, fmt.Errorf("category %d has no id", i)
		}
	}
	ds.Resolve()
	return &ds, nil
}
