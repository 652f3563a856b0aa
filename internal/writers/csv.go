package writers

import (
	"io"

	"platemap-core/samplesheet"
	"platemap/internal/output"
)

func init() {
	Register(output.FormatCSV, func(w io.Writer, s Sheet) error {
		return samplesheet.WriteCSV(w, s.Records)
	})
}
