package fieldspec

// Package fieldspec builds immutable, strictly typed records from
// loosely-typed key-value input and serializes them selectively.
//
// - Declarative record kinds: an ordered field list with per-field validators
// - A stable error model via Issues (path, code, message)
// - Strict fail-fast construction: the first invalid field aborts the build
// - Selective serialization: canonical lowerCamel keys, absent fields omitted
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the record-kind builder under dsl/ and YAML spec import under specfile/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	spec := dsl.Kind("Location").
//		Field("altitude", dsl.Float()).Optional().
//		Field("latitude", dsl.Float().Min(-90).Max(90)).Required().
//		Field("longitude", dsl.Float().Min(-180).Max(180)).Required().
//		MustBuild()
//
//	rec, err := fieldspec.Build(ctx, spec, input)
//	out, err := rec.Serialize()
