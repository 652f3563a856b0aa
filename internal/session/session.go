// internal/session/session.go
package session

import (
	"bytes"
	"fmt"
	"time"

	"platemap-core/assign"
	"platemap-core/index"
	"platemap-core/plate"
	"platemap-core/samplesheet"
	"platemap-core/selection"
	"platemap/internal/output"
	"platemap/internal/writers"
)

// DefaultParams mirrors the initial picker values: i7 column 1, i5 row A.
var DefaultParams = assign.Params{I7Col: 1, I5Row: 'A'}

// Session is the state of one user working on one plate. It is not safe for
// concurrent use; Store serializes access per session.
type Session struct {
	ID     string
	table  *index.Table
	state  selection.State
	params assign.Params
}

// New starts an empty session over a loaded, shared index table.
func New(id string, tab *index.Table) *Session {
	return &Session{ID: id, table: tab, params: DefaultParams}
}

// ClickWell feeds one range click. Clicks after the range is complete are
// ignored until ResetSelection.
func (s *Session) ClickWell(label string) error {
	w, err := plate.Parse(label)
	if err != nil {
		return err
	}
	s.state = s.state.Click(w)
	return nil
}

// ExcludeWell drops a well from the output. Excluding twice is a no-op.
func (s *Session) ExcludeWell(label string) error {
	w, err := plate.Parse(label)
	if err != nil {
		return err
	}
	s.state = s.state.Exclude(w)
	return nil
}

// ResetSelection clears the range and every exclusion. Params are kept.
func (s *Session) ResetSelection() { s.state = s.state.Reset() }

// SetAssignmentParams sets the i7 column (1..12), i5 row (A..H) and prefix.
func (s *Session) SetAssignmentParams(i7Col int, i5Row, prefix string) error {
	row, err := plate.ParseRowLetter(i5Row)
	if err != nil {
		return fmt.Errorf("%w: %v", assign.ErrInvalidParams, err)
	}
	p := assign.Params{I7Col: i7Col, I5Row: byte('A' + row), Prefix: prefix, I5RevComp: s.params.I5RevComp}
	if err := p.Validate(); err != nil {
		return err
	}
	s.params = p
	return nil
}

// SetI5ReverseComplement toggles reverse-complemented i5 sequences in the
// output. Off by default.
func (s *Session) SetI5ReverseComplement(on bool) { s.params.I5RevComp = on }

func (s *Session) Params() assign.Params { return s.params }
func (s *Session) State() selection.State { return s.state }

// ActiveSelection lists the wells that will be exported, row-major.
func (s *Session) ActiveSelection() []string { return plate.Labels(s.state.Active()) }

// PlateMap is the mark of every well for display, [row][col].
func (s *Session) PlateMap() [plate.Rows][plate.Cols]selection.Mark { return s.state.Map() }

func (s *Session) BuildHorizontalOutput() ([]assign.Record, error) {
	return assign.HorizontalRecords(s.state.ActiveSet(), s.params, s.table)
}

func (s *Session) BuildVerticalOutput() ([]assign.Record, error) {
	return assign.VerticalRecords(s.state.ActiveSet(), s.params, s.table)
}

// BuildOutput builds the records for an export kind.
func (s *Session) BuildOutput(kind samplesheet.Kind) ([]assign.Record, error) {
	return s.build(kind.Order())
}

func (s *Session) build(o assign.Order) ([]assign.Record, error) {
	return assign.Build(s.state.ActiveSet(), s.params, s.table, o)
}

// ExportCSV renders one ordering as CSV with its timestamped file name. With
// nothing selected the file holds only the header.
func (s *Session) ExportCSV(kind samplesheet.Kind, now time.Time) (string, []byte, error) {
	return s.Export(output.FormatCSV, kind, now)
}

// Export renders one ordering in any registered format.
func (s *Session) Export(format string, kind samplesheet.Kind, now time.Time) (string, []byte, error) {
	recs, err := s.BuildOutput(kind)
	if err != nil {
		return "", nil, err
	}
	var buf bytes.Buffer
	if err := writers.Write(format, &buf, writers.Sheet{Kind: kind, Records: recs}); err != nil {
		return "", nil, err
	}
	return writers.Filename(format, kind, now), buf.Bytes(), nil
}
