// internal/output/json.go
package output

import (
	"io"

	"platemap-core/assign"
	"platemap-core/samplesheet"
	"platemap/internal/jsonutil"
	"platemap/pkg/api"
)

// ToAPISample converts a record to the stable wire schema (v1).
func ToAPISample(r assign.Record) api.SampleV1 {
	return api.SampleV1{
		SampleID:   r.SampleID,
		SampleName: r.SampleName,
		I7Name:     r.I7Name,
		I7Index:    r.I7Index,
		I5Name:     r.I5Name,
		I5Index:    r.I5Index,
	}
}

// ToAPISamples never returns nil so empty sheets encode as [].
func ToAPISamples(list []assign.Record) []api.SampleV1 {
	out := make([]api.SampleV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPISample(r))
	}
	return out
}

// WriteJSON writes one sample sheet as pretty-indented JSON.
func WriteJSON(w io.Writer, kind samplesheet.Kind, list []assign.Record) error {
	return jsonutil.EncodePretty(w, api.SampleSheetV1{Kind: string(kind), Samples: ToAPISamples(list)})
}
