package dsl

import fieldspec "github.com/openpass/fieldspec"

// FieldType describes the wire type and constraints of a field under
// construction. Values are produced by String() and Float() and refined with
// chained options; each option returns a copy, so a FieldType can be reused
// across fields.
type FieldType struct {
	kind fieldspec.Kind
	min  *float64
	max  *float64
}

// String declares a string-typed field.
func String() FieldType { return FieldType{kind: fieldspec.KindString} }

// Float declares a floating-point field.
func Float() FieldType { return FieldType{kind: fieldspec.KindFloat} }

// Min sets an inclusive lower bound. Bounds attach only to required float
// fields; Build rejects other combinations.
func (t FieldType) Min(n float64) FieldType {
	t.min = &n
	return t
}

// Max sets an inclusive upper bound.
func (t FieldType) Max(n float64) FieldType {
	t.max = &n
	return t
}
