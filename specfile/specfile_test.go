package specfile_test

import (
	"context"
	"testing"

	fieldspec "github.com/openpass/fieldspec"
	"github.com/openpass/fieldspec/specfile"
)

const locationYAML = `
kind: Location
fields:
  - name: altitude
    type: float
  - name: latitude
    type: float
    required: true
    min: -90
    max: 90
  - name: longitude
    type: float
    required: true
    min: -180
    max: 180
`

func TestImport(t *testing.T) {
	spec, err := specfile.Import([]byte(locationYAML))
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if spec.Kind != "Location" || len(spec.Fields) != 3 {
		t.Fatalf("unexpected spec: %+v", spec)
	}

	ctx := context.Background()
	rec, err := fieldspec.Build(ctx, spec, map[string]any{
		"latitude":  37.7749,
		"longitude": -122.4194,
	})
	if err != nil {
		t.Fatalf("build err: %v", err)
	}
	if lat, ok := rec.Float("latitude"); !ok || lat != 37.7749 {
		t.Fatalf("expected latitude 37.7749, got %v ok=%v", lat, ok)
	}

	_, err = fieldspec.Build(ctx, spec, map[string]any{
		"latitude":  90.0001,
		"longitude": 0,
	})
	iss, ok := fieldspec.AsIssues(err)
	if !ok || iss[0].Code != fieldspec.CodeOutOfRange || iss[0].Path != "/latitude" {
		t.Fatalf("expected out_of_range at /latitude, got %v", err)
	}
}

func TestImportAll_MultiDocument(t *testing.T) {
	data := []byte(locationYAML + `
---
kind: Seat
fields:
  - name: seat_type
    type: string
  - name: seat_description
    type: string
  - name: seat_identifier
    type: string
`)
	specs, err := specfile.ImportAll(data)
	if err != nil {
		t.Fatalf("import err: %v", err)
	}
	if len(specs) != 2 {
		t.Fatalf("expected 2 specs, got %d", len(specs))
	}
	if specs[0].Kind != "Location" || specs[1].Kind != "Seat" {
		t.Fatalf("expected document order preserved, got %q then %q", specs[0].Kind, specs[1].Kind)
	}
}

func TestImport_UnknownType(t *testing.T) {
	_, err := specfile.Import([]byte(`
kind: Broken
fields:
  - name: when
    type: datetime
`))
	if err == nil {
		t.Fatalf("expected error for unknown field type")
	}
}

func TestImport_MissingKind(t *testing.T) {
	_, err := specfile.Import([]byte(`
fields:
  - name: x
    type: string
`))
	if err == nil {
		t.Fatalf("expected error for missing kind")
	}
}
