package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the root of a YAML shape description file. It records the layout
// of a set of shapes so later builds can detect field reordering, renames
// and arity changes.
type File struct {
	// Version of the description format.
	Version string `yaml:"version,omitempty"`

	// Shapes lists the described shapes.
	Shapes []ShapeDesc `yaml:"shapes"`
}

// ShapeDesc describes one shape.
type ShapeDesc struct {
	Name     string      `yaml:"name"`
	LenConst string      `yaml:"len_const,omitempty"`
	Fields   []FieldDesc `yaml:"fields"`
}

// FieldDesc describes one field of a shape.
type FieldDesc struct {
	Name       string `yaml:"name"`
	Index      int    `yaml:"index"`
	IndexConst string `yaml:"index_const,omitempty"`
}

// Len returns the number of described fields.
func (d ShapeDesc) Len() int { return len(d.Fields) }

// Describe builds a description of the given schemas.
func Describe(schemas ...*Schema) *File {
	f := &File{Version: "1"}

	for _, s := range schemas {
		sd := ShapeDesc{
			Name:     s.Name(),
			LenConst: s.LenConst(),
			Fields:   make([]FieldDesc, 0, s.Len()),
		}

		for _, fld := range s.Fields() {
			sd.Fields = append(sd.Fields, FieldDesc{
				Name:       fld.Name,
				Index:      fld.Index,
				IndexConst: s.IndexConst(fld.Name),
			})
		}

		f.Shapes = append(f.Shapes, sd)
	}

	return f
}

// Schema rebuilds a schema from the description, ordering fields by index.
func (d ShapeDesc) Schema() (*Schema, error) {
	names := make([]string, len(d.Fields))
	for _, f := range d.Fields {
		if f.Index < 0 || f.Index >= len(d.Fields) {
			return nil, fmt.Errorf("shape %s: field %q index %d out of range: %w", d.Name, f.Name, f.Index, ErrLayout)
		}

		if names[f.Index] != "" {
			return nil, fmt.Errorf("shape %s: index %d used by %q and %q: %w", d.Name, f.Index, names[f.Index], f.Name, ErrLayout)
		}

		names[f.Index] = f.Name
	}

	return New(d.Name, names...)
}

// LoadFile loads and parses a YAML description file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse description YAML: %w", err)
	}

	if f.Version == "" {
		f.Version = "1"
	}

	return &f, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal description: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write description file %s: %w", path, err)
	}

	return nil
}
