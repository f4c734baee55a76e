package fieldspec

import "strings"

// Normalize returns a copy of in where every string value has leading and
// trailing whitespace stripped. Non-string values pass through unchanged and
// the input map is never mutated. Build applies this pass exactly once,
// before any validator runs.
func Normalize(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if s, ok := v.(string); ok {
			out[k] = strings.TrimSpace(s)
			continue
		}
		out[k] = v
	}
	return out
}
