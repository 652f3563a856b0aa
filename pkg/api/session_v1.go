// pkg/api/session_v1.go
package api

// ParamsV1 carries the i7 column / i5 row choice.
type ParamsV1 struct {
	I7Col     int    `json:"i7_col"`
	I5Row     string `json:"i5_row"`
	Prefix    string `json:"prefix"`
	I5RevComp bool   `json:"i5_revcomp,omitempty"`
}

// SessionV1 is the view of a selection session returned to clients.
type SessionV1 struct {
	ID      string     `json:"id"`
	Phase   string     `json:"phase"` // "empty" | "partial" | "range"
	Start   string     `json:"start,omitempty"`
	End     string     `json:"end,omitempty"`
	Removed []string   `json:"removed"`
	Active  []string   `json:"active"`
	Params  *ParamsV1  `json:"params,omitempty"`
	Plate   [][]string `json:"plate"` // 8x12 cell states
}

// WellRequestV1 is the body of click / exclude calls.
type WellRequestV1 struct {
	Well string `json:"well"`
}

// ErrorV1 is every non-2xx response body.
type ErrorV1 struct {
	Error string `json:"error"`
}
