// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"time"

	"platemap-core/assign"
	"platemap-core/samplesheet"
)

// Sheet is one ordered sample sheet ready for serialization.
type Sheet struct {
	Kind    samplesheet.Kind
	Records []assign.Record
}

// SheetWriter serializes a sheet to w.
type SheetWriter func(w io.Writer, s Sheet) error

// Writer registry (format → handler). Formats register in init() blocks.
var sheetWriters = map[string]SheetWriter{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn SheetWriter) { sheetWriters[format] = fn }

// Registered lists known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(sheetWriters))
	for f := range sheetWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, s Sheet) error {
	fn, ok := sheetWriters[format]
	if !ok {
		return fmt.Errorf("unknown sheet format %q (no writer registered)", format)
	}
	return fn(w, s)
}

// Filename is the timestamped download name for a sheet in format.
func Filename(format string, kind samplesheet.Kind, now time.Time) string {
	return samplesheet.FilenameExt(kind, now, format)
}
