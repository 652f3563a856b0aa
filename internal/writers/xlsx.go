// internal/writers/xlsx.go
package writers

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"platemap-core/samplesheet"
	"platemap/internal/output"
)

func init() {
	Register(output.FormatXLSX, func(w io.Writer, s Sheet) error { return WriteXLSX(w, s) })
}

// WriteXLSX writes each sheet to its own worksheet named after its kind,
// header in row 1. A single call usually carries one sheet.
func WriteXLSX(w io.Writer, sheets ...Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	first := f.GetSheetName(0)
	for i, s := range sheets {
		name := string(s.Kind)
		if i == 0 {
			if err := f.SetSheetName(first, name); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		if err := writeRows(f, name, s); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, name string, s Sheet) error {
	header := samplesheet.Header
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	for i, r := range s.Records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		row := samplesheet.Row(r)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
	}
	return nil
}
