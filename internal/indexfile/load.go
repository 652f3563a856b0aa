// Package indexfile reads the i7/i5 index sheet into an index.Table.
//
// The sheet is CSV or XLSX, optionally gzip/bzip2/xz compressed. Only the
// columns index, i7-name, i7-index, i5-name and i5-index are read; anything
// else in the sheet is ignored.
package indexfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"platemap-core/index"
)

// Column names, matched case-insensitively after trimming.
const (
	ColKey     = "index"
	ColI7Name  = "i7-name"
	ColI7Index = "i7-index"
	ColI5Name  = "i5-name"
	ColI5Index = "i5-index"
)

var required = []string{ColKey, ColI7Name, ColI7Index, ColI5Name, ColI5Index}

var (
	ErrMissingColumn = errors.New("index sheet missing column")
	ErrNoRows        = errors.New("index sheet has no header row")
)

// Format of the decompressed sheet.
type Format int

const (
	FormatCSV Format = iota
	FormatXLSX
)

func (f Format) String() string {
	if f == FormatXLSX {
		return "xlsx"
	}
	return "csv"
}

// Info describes what Load found.
type Info struct {
	Path        string
	Format      Format
	Compression Compression
	Rows        int
	Ignored     int // rows without a key, or repeating an earlier key
}

// Load reads path and builds a table. It fails fast if the file is missing,
// unreadable, or lacks a required column.
func Load(path string) (*index.Table, Info, error) {
	info := Info{Path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, info, fmt.Errorf("index file: %w", err)
	}
	tab, info, err := Parse(raw, path)
	info.Path = path
	if err != nil {
		return nil, info, fmt.Errorf("%s: %w", path, err)
	}
	return tab, info, nil
}

// Parse builds a table from file contents. name only hints the format when
// the magic bytes are not conclusive.
func Parse(raw []byte, name string) (*index.Table, Info, error) {
	var info Info
	data, comp, err := Decompress(raw)
	info.Compression = comp
	if err != nil {
		return nil, info, err
	}
	info.Format = detectFormat(data, name)

	var rows [][]string
	switch info.Format {
	case FormatXLSX:
		rows, err = readXLSX(data)
	default:
		rows, err = readCSV(data)
	}
	if err != nil {
		return nil, info, err
	}
	entries, err := Entries(rows)
	if err != nil {
		return nil, info, err
	}
	tab := index.New(entries)
	info.Rows = tab.Len()
	info.Ignored = len(tab.Ignored())
	return tab, info, nil
}

func detectFormat(data []byte, name string) Format {
	if bytes.HasPrefix(data, zipMagic) {
		return FormatXLSX
	}
	base := strings.ToLower(name)
	for _, ext := range []string{".gz", ".bz2", ".xz"} {
		base = strings.TrimSuffix(base, ext)
	}
	if filepath.Ext(base) == ".xlsx" {
		return FormatXLSX
	}
	return FormatCSV
}

func readCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// Entries maps header + data rows to index entries. Blank rows are skipped.
func Entries(rows [][]string) ([]index.Entry, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	pos := map[string]int{}
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}
	for _, col := range required {
		if _, ok := pos[col]; !ok {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, col)
		}
	}
	cell := func(row []string, col string) string {
		i := pos[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]index.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		out = append(out, index.Entry{
			Key:     cell(row, ColKey),
			I7Name:  cell(row, ColI7Name),
			I7Index: cell(row, ColI7Index),
			I5Name:  cell(row, ColI5Name),
			I5Index: cell(row, ColI5Index),
		})
	}
	return out, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
