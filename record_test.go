package fieldspec_test

import (
	"context"
	"testing"

	fieldspec "github.com/openpass/fieldspec"
	"github.com/openpass/fieldspec/dsl"
)

func seatSpec(t *testing.T) fieldspec.RecordSpec {
	t.Helper()
	return dsl.Kind("Seat").
		Field("seat_type", dsl.String()).Optional().
		Field("seat_description", dsl.String()).Optional().
		Field("seat_identifier", dsl.String()).Optional().
		MustBuild()
}

func locationSpec(t *testing.T) fieldspec.RecordSpec {
	t.Helper()
	return dsl.Kind("Location").
		Field("altitude", dsl.Float()).Optional().
		Field("latitude", dsl.Float().Min(-90).Max(90)).Required().
		Field("longitude", dsl.Float().Min(-180).Max(180)).Required().
		MustBuild()
}

func TestBuild_Location(t *testing.T) {
	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, locationSpec(t), map[string]any{
		"latitude":  37.7749,
		"longitude": -122.4194,
	})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if rec.Kind() != "Location" {
		t.Fatalf("expected kind Location, got %q", rec.Kind())
	}
	if lat, ok := rec.Float("latitude"); !ok || lat != 37.7749 {
		t.Fatalf("expected latitude 37.7749, got %v ok=%v", lat, ok)
	}
	if rec.Has("altitude") {
		t.Fatalf("absent optional field must hold no value")
	}
	if rec.Len() != 2 {
		t.Fatalf("expected 2 present fields, got %d", rec.Len())
	}
}

func TestBuild_MissingRequired(t *testing.T) {
	ctx := context.Background()
	_, err := fieldspec.Build(ctx, locationSpec(t), map[string]any{"latitude": 37.7749})
	it := issueCode(t, err)
	if it.Code != fieldspec.CodeRequired || it.Path != "/longitude" {
		t.Fatalf("expected required at /longitude, got %+v", it)
	}
}

func TestBuild_Seat_TrimsBeforeValidation(t *testing.T) {
	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, seatSpec(t), map[string]any{
		"seat_type": "  Reserved seating  ",
	})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if s, ok := rec.String("seat_type"); !ok || s != "Reserved seating" {
		t.Fatalf("expected trimmed value, got %q ok=%v", s, ok)
	}
}

func TestBuild_Seat_InvalidType(t *testing.T) {
	ctx := context.Background()
	_, err := fieldspec.Build(ctx, seatSpec(t), map[string]any{"seat_type": 123})
	it := issueCode(t, err)
	if it.Code != fieldspec.CodeInvalidType || it.Path != "/seat_type" {
		t.Fatalf("expected invalid_type at /seat_type, got %+v", it)
	}
}

func TestBuild_FailFastReportsFirstDeclaredField(t *testing.T) {
	ctx := context.Background()
	// latitude and longitude are both invalid; latitude is declared first
	// (after altitude, which is valid here).
	_, err := fieldspec.Build(ctx, locationSpec(t), map[string]any{
		"altitude":  30.0,
		"latitude":  200.0,
		"longitude": "west",
	})
	it := issueCode(t, err)
	if it.Path != "/latitude" || it.Code != fieldspec.CodeOutOfRange {
		t.Fatalf("expected out_of_range at first-declared /latitude, got %+v", it)
	}

	// the reported field does not depend on input map composition
	_, err = fieldspec.Build(ctx, locationSpec(t), map[string]any{
		"longitude": "west",
		"latitude":  200.0,
	})
	if it := issueCode(t, err); it.Path != "/latitude" {
		t.Fatalf("input ordering must not change the reported field, got %+v", it)
	}
}

func TestBuild_UnknownKeysIgnored(t *testing.T) {
	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, locationSpec(t), map[string]any{
		"latitude":  0.0,
		"longitude": 0.0,
		"gate":      "B12",
		"boarding":  true,
	})
	if err != nil {
		t.Fatalf("unknown keys must be ignored, got %v", err)
	}
	if rec.Len() != 2 {
		t.Fatalf("expected only declared fields, got %d", rec.Len())
	}
}

func TestBuild_EmptyInputAllOptional(t *testing.T) {
	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, seatSpec(t), map[string]any{})
	if err != nil {
		t.Fatalf("empty input with only optional fields must succeed, got %v", err)
	}
	if rec.Len() != 0 {
		t.Fatalf("expected no present fields, got %d", rec.Len())
	}
	out, err := rec.Serialize()
	if err != nil {
		t.Fatalf("serialize err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty output mapping, got %v", out)
	}
}

func TestBuild_EmptyStringIsAValue(t *testing.T) {
	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, seatSpec(t), map[string]any{"seat_description": ""})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if !rec.Has("seat_description") {
		t.Fatalf("empty string must count as a present value")
	}
	out, err := rec.Serialize()
	if err != nil {
		t.Fatalf("serialize err: %v", err)
	}
	if v, ok := out["seatDescription"]; !ok || v != "" {
		t.Fatalf("expected seatDescription to be emitted as empty string, got %v ok=%v", v, ok)
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	in := map[string]any{"seat_type": "  padded  "}
	if _, err := fieldspec.Build(ctx, seatSpec(t), in); err != nil {
		t.Fatalf("build err: %v", err)
	}
	if in["seat_type"] != "  padded  " {
		t.Fatalf("input map was mutated: %q", in["seat_type"])
	}
}
