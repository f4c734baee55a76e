package fieldspec

// Kind identifies the declared wire type of a field.
type Kind int

const (
	KindString Kind = iota
	KindFloat
)

// Field pairs a declaration-style name with the validator that guards it.
type Field struct {
	Name      string
	Validator Validator
}

// RecordSpec declares a record kind: a named, ordered list of fields.
// Validation order is fixed at declaration time (first declared, first
// validated) and field names are unique within one kind; the dsl and specfile
// packages enforce uniqueness when assembling a spec.
type RecordSpec struct {
	Kind   string
	Fields []Field
}
