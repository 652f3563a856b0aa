package writers

import (
	"encoding/json"
	"io"

	"platemap/internal/jsonlutil"
	"platemap/internal/output"
	"platemap/pkg/api"
)

func init() {
	Register(output.FormatJSONL, writeJSONL)
}

// writeJSONL streams one SampleV1 object per line. An empty sheet is an
// empty file.
func writeJSONL(w io.Writer, s Sheet) error {
	in, done := jsonlutil.Start[api.SampleV1](w, 64, func(enc *json.Encoder, v api.SampleV1) error {
		return enc.Encode(v)
	}, IsBrokenPipe)
	for _, r := range s.Records {
		in <- output.ToAPISample(r)
	}
	close(in)
	return <-done
}
