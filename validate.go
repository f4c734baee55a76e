package fieldspec

import (
	"encoding/json"
	"strconv"

	"github.com/openpass/fieldspec/i18n"
)

// Validator checks a single value-or-absence and yields the value a record
// should hold for the field. present distinguishes "key present with value"
// from "key absent"; keep reports whether the record holds a value at all
// (false means true absence, never a default). Implementations are pure and
// never mutate their input.
type Validator interface {
	Validate(field string, v any, present bool) (val any, keep bool, err error)
}

// OptionalString accepts absence or any string value. The empty string is a
// valid value, not absence.
func OptionalString() Validator { return optionalString{} }

// RequiredString demands a present string value.
func RequiredString() Validator { return requiredString{} }

// OptionalFloat accepts absence or any floating-point value.
func OptionalFloat() Validator { return optionalFloat{} }

// RequiredFloat demands a present floating-point value.
func RequiredFloat() Validator { return requiredFloat{} }

// BoundedFloat composes RequiredFloat with an inclusive [low, high] range
// check.
func BoundedFloat(low, high float64) Validator { return boundedFloat{low: low, high: high} }

type optionalString struct{}

func (optionalString) Validate(field string, v any, present bool) (any, bool, error) {
	if !present {
		return nil, false, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, false, invalidType(field, "string")
	}
	return s, true, nil
}

type requiredString struct{}

func (requiredString) Validate(field string, v any, present bool) (any, bool, error) {
	if !present {
		return nil, false, missingRequired(field)
	}
	return optionalString{}.Validate(field, v, true)
}

type optionalFloat struct{}

func (optionalFloat) Validate(field string, v any, present bool) (any, bool, error) {
	if !present {
		return nil, false, nil
	}
	f, ok := floatValue(v)
	if !ok {
		return nil, false, invalidType(field, "float")
	}
	return f, true, nil
}

type requiredFloat struct{}

func (requiredFloat) Validate(field string, v any, present bool) (any, bool, error) {
	if !present {
		return nil, false, missingRequired(field)
	}
	return optionalFloat{}.Validate(field, v, true)
}

type boundedFloat struct{ low, high float64 }

func (b boundedFloat) Validate(field string, v any, present bool) (any, bool, error) {
	val, keep, err := requiredFloat{}.Validate(field, v, present)
	if err != nil || !keep {
		return val, keep, err
	}
	f := val.(float64)
	// negated form keeps NaN out of range
	if !(f >= b.low && f <= b.high) {
		return nil, false, outOfRange(field, b.low, b.high, f)
	}
	return f, true, nil
}

// floatValue reports v as float64 when it carries a numeric value. JSON
// numbers decoded with UseNumber arrive as json.Number and convert here;
// numeric-looking strings do not qualify.
func floatValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// ---- Issue constructors ----

func missingRequired(field string) error {
	return Issues{Issue{
		Path:    "/" + field,
		Code:    CodeRequired,
		Message: i18n.T(CodeRequired, map[string]string{"field": field}),
	}}
}

func invalidType(field, expected string) error {
	return Issues{Issue{
		Path:    "/" + field,
		Code:    CodeInvalidType,
		Message: i18n.T(CodeInvalidType, map[string]string{"field": field, "expected": expected}),
		Params:  map[string]any{"expected": expected},
	}}
}

func outOfRange(field string, low, high, got float64) error {
	return Issues{Issue{
		Path: "/" + field,
		Code: CodeOutOfRange,
		Message: i18n.T(CodeOutOfRange, map[string]string{
			"field": field,
			"min":   formatFloat(low),
			"max":   formatFloat(high),
		}),
		Params: map[string]any{"min": low, "max": high, "got": got},
	}}
}

// formatFloat mirrors the canonical JSON-like float formatting.
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
