package fieldspec

import (
	"bytes"
	"context"
	"io"

	j "github.com/goccy/go-json"
)

// BuildJSON decodes a JSON object and builds a Record from it. Numbers are
// decoded as json.Number so float validators observe the exact wire value.
func BuildJSON(ctx context.Context, spec RecordSpec, data []byte) (Record, error) {
	return BuildReader(ctx, spec, bytes.NewReader(data))
}

// BuildReader is BuildJSON over an io.Reader.
func BuildReader(ctx context.Context, spec RecordSpec, r io.Reader) (Record, error) {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	var in map[string]any
	if err := dec.Decode(&in); err != nil {
		return Record{}, Issues{Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return Build(ctx, spec, in)
}
