package fieldspec

import "strings"

// CanonicalKey converts a declaration-style field name into its
// presentation-style lower-camel form: segments are split on '_', the first
// is lowercased and each subsequent segment is capitalized. Deterministic and
// total; names without separators pass through lowercased.
//
//	CanonicalKey("seat_type")        // "seatType"
//	CanonicalKey("seat_description") // "seatDescription"
//	CanonicalKey("latitude")         // "latitude"
func CanonicalKey(name string) string {
	if !strings.Contains(name, "_") {
		return strings.ToLower(name)
	}
	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, seg := range strings.Split(name, "_") {
		if seg == "" {
			continue
		}
		if first {
			b.WriteString(strings.ToLower(seg))
			first = false
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	if first {
		// nothing but separators; keep the input as-is
		return name
	}
	return b.String()
}
