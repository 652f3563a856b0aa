// core/samplesheet/samplesheet.go
package samplesheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"platemap-core/assign"
)

// Header is the fixed column order of an exported sample sheet.
var Header = []string{"Sample_ID", "Sample_name", "i7-name", "i7-index", "i5-name", "i5-index"}

// TimestampLayout renders YYYYMMDD_HHMMSS.
const TimestampLayout = "20060102_150405"

// Kind names the export variant in file names.
type Kind string

const (
	KindHorizontal Kind = "horizontal"
	KindVertical   Kind = "vertical"
)

// ParseKind accepts "horizontal" or "vertical".
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindHorizontal, KindVertical:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown export kind %q (want horizontal | vertical)", s)
}

// Order maps a kind to its record order.
func (k Kind) Order() assign.Order {
	if k == KindVertical {
		return assign.Vertical
	}
	return assign.Horizontal
}

// Row flattens a record into Header order.
func Row(r assign.Record) []string {
	return []string{r.SampleID, r.SampleName, r.I7Name, r.I7Index, r.I5Name, r.I5Index}
}

// CSV renders the header plus one row per record. An empty list yields a
// header-only sheet.
func CSV(records []assign.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV streams the sheet to w.
func WriteCSV(w io.Writer, records []assign.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename is "{kind}_output_{YYYYMMDD_HHMMSS}.csv".
func Filename(kind Kind, now time.Time) string {
	return FilenameExt(kind, now, "csv")
}

// FilenameExt is Filename with a different extension.
func FilenameExt(kind Kind, now time.Time, ext string) string {
	return fmt.Sprintf("%s_output_%s.%s", kind, now.Format(TimestampLayout), ext)
}
