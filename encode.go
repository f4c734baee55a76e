package fieldspec

import (
	"bytes"
	"math"

	j "github.com/goccy/go-json"

	"github.com/openpass/fieldspec/i18n"
)

// Serialize walks the record's fields in declaration order and emits a
// canonical-key -> value pair for each field holding a value. Absent fields
// produce no key at all; absence is conveyed solely by omission, never by a
// null or empty placeholder.
func (r Record) Serialize() (map[string]any, error) {
	out := make(map[string]any, len(r.values))
	for _, f := range r.spec.Fields {
		v, ok := r.values[f.Name]
		if !ok {
			continue
		}
		if err := checkEncodable(f.Name, v); err != nil {
			return nil, err
		}
		out[CanonicalKey(f.Name)] = v
	}
	return out, nil
}

// MarshalJSON encodes the record as a JSON object with canonical keys in
// declaration order, omitting absent fields. A Record nests directly inside
// larger documents handed to a JSON encoder.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, f := range r.spec.Fields {
		v, ok := r.values[f.Name]
		if !ok {
			continue
		}
		if err := checkEncodable(f.Name, v); err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, err := j.Marshal(CanonicalKey(f.Name))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := j.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeJSON serializes the record to its canonical JSON object form.
func EncodeJSON(r Record) ([]byte, error) { return r.MarshalJSON() }

// checkEncodable rejects values with no JSON representation. Validators admit
// any float64, so NaN and ±Inf can reach a record; they surface here as
// unsupported_value instead of a driver error.
func checkEncodable(field string, v any) error {
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return Issues{Issue{
			Path:    "/" + field,
			Code:    CodeUnsupportedValue,
			Message: i18n.T(CodeUnsupportedValue, map[string]string{"field": field}),
			Params:  map[string]any{"got": formatFloat(f)},
		}}
	}
	return nil
}
