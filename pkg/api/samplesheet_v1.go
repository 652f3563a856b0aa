// pkg/api/samplesheet_v1.go
package api

// SampleV1 is the stable JSON schema for one sample-sheet row. Field names
// match the CSV header. Keep fields, names, and types stable.
type SampleV1 struct {
	SampleID   string `json:"Sample_ID"`
	SampleName string `json:"Sample_name"`
	I7Name     string `json:"i7-name"`
	I7Index    string `json:"i7-index"`
	I5Name     string `json:"i5-name"`
	I5Index    string `json:"i5-index"`
}

// SampleSheetV1 wraps an ordered list of samples with its export kind.
type SampleSheetV1 struct {
	Kind    string     `json:"kind"` // "horizontal" | "vertical"
	Samples []SampleV1 `json:"samples"`
}
