// core/assign/assign.go
package assign

import (
	"errors"
	"fmt"
	"strconv"

	"platemap-core/index"
	"platemap-core/oligo"
	"platemap-core/plate"
)

// Order is the enumeration order of output records.
type Order int

const (
	Horizontal Order = iota // row-major: A1, A2, ... H12
	Vertical                // column-major: A1, B1, ... H12
)

func (o Order) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

var ErrInvalidParams = errors.New("invalid assignment parameters")

// Params are the user's index choices. I7Col is 1..12, I5Row is 'A'..'H'.
type Params struct {
	I7Col  int
	I5Row  byte
	Prefix string

	// I5RevComp writes the i5 sequence reverse-complemented, for instruments
	// that read i5 on the opposite strand from the sheet.
	I5RevComp bool
}

func (p Params) Validate() error {
	if p.I7Col < 1 || p.I7Col > plate.Cols {
		return fmt.Errorf("%w: i7 column %d outside 1-%d", ErrInvalidParams, p.I7Col, plate.Cols)
	}
	if p.I5Row < 'A' || p.I5Row >= 'A'+plate.Rows {
		return fmt.Errorf("%w: i5 row %q outside A-H", ErrInvalidParams, string(p.I5Row))
	}
	return nil
}

// Record is one sample-sheet row. SampleName is left blank for manual entry.
type Record struct {
	SampleID   string
	SampleName string
	I7Name     string
	I7Index    string
	I5Name     string
	I5Index    string
}

// Lookup is the part of index.Table the builder needs.
type Lookup interface {
	Lookup(key string, kind index.Kind) (name, seq string, err error)
}

// Build assigns indices to every well of sel in the given order. The i7 key
// pairs the well's row with the chosen column; the i5 key pairs the chosen row
// with the well's column. Any failed lookup aborts with no records.
func Build(sel plate.WellSet, p Params, tab Lookup, order Order) ([]Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return build(sel, p, tab, order)
}

func build(sel plate.WellSet, p Params, tab Lookup, order Order) ([]Record, error) {
	var wells []plate.Well
	if order == Vertical {
		wells = sel.WellsColumnMajor()
	} else {
		wells = sel.Wells()
	}
	out := make([]Record, 0, len(wells))
	for _, w := range wells {
		r, err := recordFor(w, p, tab)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func recordFor(w plate.Well, p Params, tab Lookup) (Record, error) {
	i5Key := string(p.I5Row) + strconv.Itoa(w.Number())
	i5Name, i5Seq, err := tab.Lookup(i5Key, index.I5)
	if err != nil {
		return Record{}, err
	}
	if p.I5RevComp {
		i5Seq = oligo.RevComp(i5Seq)
	}
	i7Key := string(w.Letter()) + strconv.Itoa(p.I7Col)
	i7Name, i7Seq, err := tab.Lookup(i7Key, index.I7)
	if err != nil {
		return Record{}, err
	}
	return Record{
		SampleID: p.Prefix + w.String(),
		I7Name:   i7Name,
		I7Index:  i7Seq,
		I5Name:   i5Name,
		I5Index:  i5Seq,
	}, nil
}

// HorizontalRecords is Build in row-major order.
func HorizontalRecords(sel plate.WellSet, p Params, tab Lookup) ([]Record, error) {
	return Build(sel, p, tab, Horizontal)
}

// VerticalRecords is Build in column-major order.
func VerticalRecords(sel plate.WellSet, p Params, tab Lookup) ([]Record, error) {
	return Build(sel, p, tab, Vertical)
}
