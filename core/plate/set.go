// core/plate/set.go
package plate

import "math/bits"

// WellSet is a fixed-size set of wells. The zero value is empty and the type
// is comparable, so sets copy by value and never alias.
type WellSet struct {
	bits [2]uint64
}

// Rect is the inclusive rectangle spanned by a and b, in either order.
func Rect(a, b Well) WellSet {
	rlo, rhi := minmax(a.Row, b.Row)
	clo, chi := minmax(a.Col, b.Col)
	var s WellSet
	for r := rlo; r <= rhi; r++ {
		for c := clo; c <= chi; c++ {
			s = s.Add(Well{Row: r, Col: c})
		}
	}
	return s
}

func minmax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

// Add returns s with w included.
func (s WellSet) Add(w Well) WellSet {
	if !w.Valid() {
		return s
	}
	n := w.Ordinal()
	s.bits[n/64] |= 1 << (n % 64)
	return s
}

// Has reports membership.
func (s WellSet) Has(w Well) bool {
	if !w.Valid() {
		return false
	}
	n := w.Ordinal()
	return s.bits[n/64]&(1<<(n%64)) != 0
}

// Len is the number of wells in s.
func (s WellSet) Len() int {
	return bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1])
}

// Minus removes every well of o from s.
func (s WellSet) Minus(o WellSet) WellSet {
	return WellSet{bits: [2]uint64{s.bits[0] &^ o.bits[0], s.bits[1] &^ o.bits[1]}}
}

// Wells lists members in row-major order.
func (s WellSet) Wells() []Well {
	out := make([]Well, 0, s.Len())
	for _, w := range All() {
		if s.Has(w) {
			out = append(out, w)
		}
	}
	return out
}

// WellsColumnMajor lists members column by column.
func (s WellSet) WellsColumnMajor() []Well {
	out := make([]Well, 0, s.Len())
	for _, w := range ColumnMajor() {
		if s.Has(w) {
			out = append(out, w)
		}
	}
	return out
}
