package variant

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type fileDefinition struct {
	Schemas []schemaDefinition `yaml:"schemas"`
}

type schemaDefinition struct {
	Name string           `yaml:"name"`
	Base string           `yaml:"base"`
	Axes []axisDefinition `yaml:"axes"`
}

type axisDefinition struct {
	Name    string             `yaml:"name"`
	Default string             `yaml:"default"`
	Options []optionDefinition `yaml:"options"`
}

type optionDefinition struct {
	Key   string `yaml:"key"`
	Class string `yaml:"class"`
}

// Decode reads schema definitions from YAML:
//
//	schemas:
//	  - name: pill
//	    base: inline-flex rounded-full
//	    axes:
//	      - name: tone
//	        default: neutral
//	        options:
//	          - {key: neutral, class: bg-neutral-100 text-neutral-800}
//	          - {key: danger, class: bg-error-100 text-error-800}
//
// Every definition is validated as by New.
func Decode(r io.Reader) ([]*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fileDefinition
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode schemas: %w", err)
	}

	schemas := make([]*Schema, 0, len(file.Schemas))
	for _, def := range file.Schemas {
		axes := make([]Axis, 0, len(def.Axes))
		for _, a := range def.Axes {
			opts := make([]Option, 0, len(a.Options))
			for _, o := range a.Options {
				opts = append(opts, Option{Key: o.Key, Classes: o.Class})
			}
			axes = append(axes, Axis{Name: a.Name, Default: a.Default, Options: opts})
		}
		s, err := New(def.Name, def.Base, axes...)
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, s)
	}
	return schemas, nil
}

// LoadFile reads and decodes a schema definition file from fs.
func LoadFile(fs afero.Fs, path string) ([]*Schema, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read schema file %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data))
}
