package dsl

import (
	"math"

	fieldspec "github.com/openpass/fieldspec"
	"github.com/openpass/fieldspec/i18n"
)

// Builder assembles a RecordSpec. Fields validate in the order they are
// declared, so declaration order decides which failure fail-fast reports.
type Builder struct {
	kind   string
	fields []fieldDecl
}

type fieldDecl struct {
	name     string
	typ      FieldType
	required bool
}

type fieldStep struct {
	b *Builder
}

// Kind creates a builder for a named record kind.
func Kind(name string) *Builder {
	return &Builder{kind: name}
}

// Field declares the next field of the record kind.
func (b *Builder) Field(name string, t FieldType) *fieldStep {
	b.fields = append(b.fields, fieldDecl{name: name, typ: t})
	return &fieldStep{b: b}
}

// Required marks the field just declared as mandatory and returns the builder.
func (f *fieldStep) Required() *Builder {
	f.b.fields[len(f.b.fields)-1].required = true
	return f.b
}

// Optional marks the field just declared as optional (the default) and
// returns the builder.
func (f *fieldStep) Optional() *Builder {
	f.b.fields[len(f.b.fields)-1].required = false
	return f.b
}

func (f *fieldStep) Field(name string, t FieldType) *fieldStep { return f.b.Field(name, t) }
func (f *fieldStep) Build() (fieldspec.RecordSpec, error)      { return f.b.Build() }
func (f *fieldStep) MustBuild() fieldspec.RecordSpec           { return f.b.MustBuild() }

// Build validates the declaration and returns the RecordSpec. Field names
// must be unique and bounds only attach to required float fields.
func (b *Builder) Build() (fieldspec.RecordSpec, error) {
	seen := make(map[string]struct{}, len(b.fields))
	fields := make([]fieldspec.Field, 0, len(b.fields))
	for _, d := range b.fields {
		if d.name == "" {
			return fieldspec.RecordSpec{}, specIssue("/", "field name must not be empty")
		}
		if _, dup := seen[d.name]; dup {
			return fieldspec.RecordSpec{}, specIssue("/"+d.name, "duplicate field name")
		}
		seen[d.name] = struct{}{}
		v, err := validatorFor(d)
		if err != nil {
			return fieldspec.RecordSpec{}, err
		}
		fields = append(fields, fieldspec.Field{Name: d.name, Validator: v})
	}
	return fieldspec.RecordSpec{Kind: b.kind, Fields: fields}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() fieldspec.RecordSpec {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// validatorFor maps a declaration onto the closed validator set.
func validatorFor(d fieldDecl) (fieldspec.Validator, error) {
	switch d.typ.kind {
	case fieldspec.KindString:
		if d.typ.min != nil || d.typ.max != nil {
			return nil, specIssue("/"+d.name, "bounds are not applicable to string fields")
		}
		if d.required {
			return fieldspec.RequiredString(), nil
		}
		return fieldspec.OptionalString(), nil
	case fieldspec.KindFloat:
		if d.typ.min == nil && d.typ.max == nil {
			if d.required {
				return fieldspec.RequiredFloat(), nil
			}
			return fieldspec.OptionalFloat(), nil
		}
		if !d.required {
			return nil, specIssue("/"+d.name, "bounds require a required field")
		}
		low, high := math.Inf(-1), math.Inf(1)
		if d.typ.min != nil {
			low = *d.typ.min
		}
		if d.typ.max != nil {
			high = *d.typ.max
		}
		if low > high {
			return nil, specIssue("/"+d.name, "min bound exceeds max bound")
		}
		return fieldspec.BoundedFloat(low, high), nil
	}
	return nil, specIssue("/"+d.name, "unknown field kind")
}

func specIssue(path, hint string) error {
	return fieldspec.Issues{fieldspec.Issue{
		Path:    path,
		Code:    fieldspec.CodeParseError,
		Message: i18n.T(fieldspec.CodeParseError, nil),
		Hint:    hint,
	}}
}
