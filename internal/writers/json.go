package writers

import (
	"io"

	"platemap/internal/output"
)

func init() {
	Register(output.FormatJSON, func(w io.Writer, s Sheet) error {
		return output.WriteJSON(w, s.Kind, s.Records)
	})
}
