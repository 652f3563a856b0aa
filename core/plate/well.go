// core/plate/well.go
package plate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Plate geometry of a standard 96-well plate.
const (
	Rows  = 8
	Cols  = 12
	Wells = Rows * Cols
)

// ErrInvalidWell is returned for any label outside A1..H12.
var ErrInvalidWell = errors.New("invalid well label")

// Well is a zero-based (row, column) position on the plate.
type Well struct {
	Row int
	Col int
}

// Valid reports whether w lies on the plate.
func (w Well) Valid() bool {
	return w.Row >= 0 && w.Row < Rows && w.Col >= 0 && w.Col < Cols
}

// Letter is the row letter A..H.
func (w Well) Letter() byte { return byte('A' + w.Row) }

// Number is the one-based column number 1..12.
func (w Well) Number() int { return w.Col + 1 }

// String renders the canonical label, e.g. "A1" or "H12".
func (w Well) String() string {
	return string(w.Letter()) + strconv.Itoa(w.Number())
}

// Ordinal is the row-major position 0..95.
func (w Well) Ordinal() int { return w.Row*Cols + w.Col }

// Label returns the well label for a zero-based row and column.
// It panics on coordinates off the plate; use Well.Valid to check first.
func Label(row, col int) string {
	w := Well{Row: row, Col: col}
	if !w.Valid() {
		panic(fmt.Sprintf("plate: coordinates (%d,%d) out of range", row, col))
	}
	return w.String()
}

// Coords is the inverse of Label.
func Coords(label string) (row, col int, err error) {
	w, err := Parse(label)
	if err != nil {
		return 0, 0, err
	}
	return w.Row, w.Col, nil
}

// Parse converts a label such as "B7" into a Well. Lower-case row letters and
// surrounding whitespace are accepted; leading zeros and signs are not.
func Parse(label string) (Well, error) {
	s := strings.TrimSpace(label)
	if len(s) < 2 || len(s) > 3 {
		return Well{}, fmt.Errorf("%w %q", ErrInvalidWell, label)
	}
	letter := s[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter >= 'A'+Rows {
		return Well{}, fmt.Errorf("%w %q: row must be A-H", ErrInvalidWell, label)
	}
	digits := s[1:]
	if digits[0] < '1' || digits[0] > '9' {
		return Well{}, fmt.Errorf("%w %q: column must be 1-12", ErrInvalidWell, label)
	}
	n := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return Well{}, fmt.Errorf("%w %q: column must be 1-12", ErrInvalidWell, label)
		}
		n = n*10 + int(c-'0')
	}
	if n > Cols {
		return Well{}, fmt.Errorf("%w %q: column must be 1-12", ErrInvalidWell, label)
	}
	return Well{Row: int(letter - 'A'), Col: n - 1}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(label string) Well {
	w, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return w
}

// ParseRowLetter accepts a single row letter A..H (any case).
func ParseRowLetter(s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: row %q must be a single letter A-H", ErrInvalidWell, s)
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c >= 'A'+Rows {
		return 0, fmt.Errorf("%w: row %q must be A-H", ErrInvalidWell, s)
	}
	return int(c - 'A'), nil
}

// All lists every well in row-major order (A1, A2, ... H12).
func All() []Well {
	out := make([]Well, 0, Wells)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			out = append(out, Well{Row: r, Col: c})
		}
	}
	return out
}

// ColumnMajor lists every well column by column (A1, B1, ... H12).
func ColumnMajor() []Well {
	out := make([]Well, 0, Wells)
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			out = append(out, Well{Row: r, Col: c})
		}
	}
	return out
}

// Labels maps wells to their labels.
func Labels(ws []Well) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}
