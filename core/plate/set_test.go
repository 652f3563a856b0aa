package plate

import (
	"reflect"
	"testing"
)

func TestRectSymmetricAndSized(t *testing.T) {
	for _, a := range All() {
		for _, b := range []Well{{0, 0}, {7, 11}, {3, 5}, {a.Row, 0}} {
			ab, ba := Rect(a, b), Rect(b, a)
			if ab != ba {
				t.Fatalf("Rect(%s,%s) != Rect(%s,%s)", a, b, b, a)
			}
			rows := abs(a.Row-b.Row) + 1
			cols := abs(a.Col-b.Col) + 1
			if ab.Len() != rows*cols {
				t.Fatalf("Rect(%s,%s).Len() = %d, want %d", a, b, ab.Len(), rows*cols)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestSetOrder(t *testing.T) {
	s := Rect(MustParse("A1"), MustParse("B2"))
	if got := Labels(s.Wells()); !reflect.DeepEqual(got, []string{"A1", "A2", "B1", "B2"}) {
		t.Errorf("row-major = %v", got)
	}
	if got := Labels(s.WellsColumnMajor()); !reflect.DeepEqual(got, []string{"A1", "B1", "A2", "B2"}) {
		t.Errorf("column-major = %v", got)
	}
}

func TestSetOps(t *testing.T) {
	a := WellSet{}.Add(MustParse("A1")).Add(MustParse("H12")).Add(MustParse("E6"))
	b := WellSet{}.Add(MustParse("E6"))
	if !a.Has(MustParse("H12")) || a.Has(MustParse("H11")) {
		t.Errorf("Has mismatch")
	}
	if got := a.Minus(b).Len(); got != 2 {
		t.Errorf("Minus len = %d", got)
	}
	if got := Labels(a.Wells()); !reflect.DeepEqual(got, []string{"A1", "E6", "H12"}) {
		t.Errorf("Wells = %v", got)
	}
	if got := a.Add(MustParse("A1")); got != a {
		t.Errorf("Add is not idempotent")
	}
	if (WellSet{}).Add(Well{Row: 9}).Len() != 0 {
		t.Errorf("off-plate well added")
	}
	if (WellSet{}).Len() != 0 || len((WellSet{}).Wells()) != 0 {
		t.Errorf("zero set not empty")
	}
}
