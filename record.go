package fieldspec

import "context"

// Record is the immutable result of a successful Build: the validated values
// of one record kind. Absent optional fields have no entry at all; a field is
// either present with its normalized, type-checked value or missing entirely.
type Record struct {
	spec   RecordSpec
	values map[string]any
}

// Build constructs a Record from a loosely-typed input mapping. The input is
// normalized once, then every declared field is validated in declaration
// order. Construction is strictly fail-fast: the first failing field aborts
// the build and its failure is surfaced unchanged; later fields are never
// inspected and no partial record is returned. Unknown keys are ignored.
func Build(ctx context.Context, spec RecordSpec, in map[string]any) (Record, error) {
	nn := Normalize(in)
	values := make(map[string]any, len(spec.Fields))
	for _, f := range spec.Fields {
		v, present := lookup(nn, f.Name)
		val, keep, err := f.Validator.Validate(f.Name, v, present)
		if err != nil {
			return Record{}, err
		}
		if keep {
			values[f.Name] = val
		}
	}
	return Record{spec: spec, values: values}, nil
}

// lookup resolves a field against the input, falling back from the
// declaration-style key to its canonical form so that serialized output can
// be rebuilt against the same spec. The declaration-style key wins when both
// appear.
func lookup(in map[string]any, name string) (any, bool) {
	if v, ok := in[name]; ok {
		return v, true
	}
	if ck := CanonicalKey(name); ck != name {
		if v, ok := in[ck]; ok {
			return v, true
		}
	}
	return nil, false
}

// Kind returns the record kind name.
func (r Record) Kind() string { return r.spec.Kind }

// Get returns the validated value for a declaration-style field name; ok is
// false when the field holds no value.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether the field holds a value.
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// String returns the field value when it is present and string-typed.
func (r Record) String(name string) (string, bool) {
	s, ok := r.values[name].(string)
	return s, ok
}

// Float returns the field value when it is present and float-typed.
func (r Record) Float(name string) (float64, bool) {
	f, ok := r.values[name].(float64)
	return f, ok
}

// Len returns the number of fields holding a value.
func (r Record) Len() int { return len(r.values) }
