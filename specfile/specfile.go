// Package specfile imports record-kind declarations from YAML documents so
// consumers can keep record shapes as data next to their configuration.
package specfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	fieldspec "github.com/openpass/fieldspec"
	"github.com/openpass/fieldspec/dsl"
)

// document mirrors the YAML shape of one record-kind declaration:
//
//	kind: Location
//	fields:
//	  - name: altitude
//	    type: float
//	  - name: latitude
//	    type: float
//	    required: true
//	    min: -90
//	    max: 90
type document struct {
	Kind   string `yaml:"kind"`
	Fields []struct {
		Name     string   `yaml:"name"`
		Type     string   `yaml:"type"`
		Required bool     `yaml:"required"`
		Min      *float64 `yaml:"min"`
		Max      *float64 `yaml:"max"`
	} `yaml:"fields"`
}

// Import reads a single record-kind declaration.
func Import(data []byte) (fieldspec.RecordSpec, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fieldspec.RecordSpec{}, err
	}
	return specFromDoc(doc)
}

// ImportAll reads every record-kind declaration from a multi-document YAML
// stream, in document order.
func ImportAll(data []byte) ([]fieldspec.RecordSpec, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var specs []fieldspec.RecordSpec
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		s, err := specFromDoc(doc)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func specFromDoc(doc document) (fieldspec.RecordSpec, error) {
	if doc.Kind == "" {
		return fieldspec.RecordSpec{}, errors.New("specfile: missing record kind")
	}
	b := dsl.Kind(doc.Kind)
	for _, f := range doc.Fields {
		var t dsl.FieldType
		switch f.Type {
		case "string":
			t = dsl.String()
		case "float", "number":
			t = dsl.Float()
		default:
			return fieldspec.RecordSpec{}, fmt.Errorf("specfile: unknown field type %q for %q", f.Type, f.Name)
		}
		if f.Min != nil {
			t = t.Min(*f.Min)
		}
		if f.Max != nil {
			t = t.Max(*f.Max)
		}
		step := b.Field(f.Name, t)
		if f.Required {
			step.Required()
		}
	}
	return b.Build()
}
