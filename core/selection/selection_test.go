// core/selection/selection_test.go
package selection

import (
	"reflect"
	"testing"

	"platemap-core/plate"
)

func w(l string) plate.Well { return plate.MustParse(l) }

func rangeOf(a, b string) State {
	return State{}.Click(w(a)).Click(w(b))
}

func TestPhases(t *testing.T) {
	var s State
	if s.Phase() != Empty || len(s.Active()) != 0 {
		t.Fatalf("zero state should be empty")
	}
	s = s.Click(w("C3"))
	if s.Phase() != PartialRange {
		t.Fatalf("phase = %v, want partial", s.Phase())
	}
	if st, ok := s.Start(); !ok || st != w("C3") {
		t.Errorf("Start = %v,%v", st, ok)
	}
	if _, ok := s.End(); ok {
		t.Errorf("End set too early")
	}
	if len(s.Active()) != 0 {
		t.Errorf("partial range must have no active wells")
	}
	s = s.Click(w("D4"))
	if s.Phase() != RangeSet {
		t.Fatalf("phase = %v, want range", s.Phase())
	}
	frozen := s.Click(w("H12"))
	if frozen != s {
		t.Errorf("click after range set changed state")
	}
}

func TestClickOrderIrrelevant(t *testing.T) {
	for _, a := range plate.All() {
		for _, b := range []plate.Well{{Row: 0, Col: 0}, {Row: 7, Col: 11}, {Row: 4, Col: 2}} {
			ab := State{}.Click(a).Click(b).Active()
			ba := State{}.Click(b).Click(a).Active()
			if !reflect.DeepEqual(ab, ba) {
				t.Fatalf("Active(%s,%s) != Active(%s,%s)", a, b, b, a)
			}
		}
	}
}

func TestActiveSizeMinusRemoved(t *testing.T) {
	s := rangeOf("B2", "E7").Exclude(w("C3")).Exclude(w("H12")).Exclude(w("E7"))
	rect := s.Rect()
	inside := 0
	for _, r := range s.Removed() {
		if rect.Has(r) {
			inside++
		}
	}
	want := 4*6 - inside
	if got := len(s.Active()); got != want || got != 22 {
		t.Errorf("len(Active) = %d, want %d", got, want)
	}
}

func TestExcludeOneWayAndIdempotent(t *testing.T) {
	s := rangeOf("A1", "B2").Exclude(w("A2"))
	again := s.Exclude(w("A2"))
	if again != s {
		t.Errorf("re-excluding changed state")
	}
	if got := plate.Labels(s.Active()); !reflect.DeepEqual(got, []string{"A1", "B1", "B2"}) {
		t.Errorf("Active = %v", got)
	}
	if s.MarkOf(w("A2")) != RemovedMark {
		t.Errorf("A2 should be removed")
	}
}

func TestExcludeBeforeRange(t *testing.T) {
	s := State{}.Exclude(w("A2")).Click(w("A1")).Click(w("A3"))
	if got := plate.Labels(s.Active()); !reflect.DeepEqual(got, []string{"A1", "A3"}) {
		t.Errorf("Active = %v", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := rangeOf("A1", "H12").Exclude(w("D4")).Reset()
	if s != (State{}) {
		t.Errorf("Reset left state %+v", s)
	}
	if len(s.Removed()) != 0 {
		t.Errorf("removed survived reset")
	}
}

func TestActiveRowMajor(t *testing.T) {
	got := plate.Labels(rangeOf("B2", "A1").Active())
	want := []string{"A1", "A2", "B1", "B2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Active = %v, want %v", got, want)
	}
}

func TestInvalidClickIgnored(t *testing.T) {
	s := State{}.Click(plate.Well{Row: 8, Col: 0})
	if s.Phase() != Empty {
		t.Errorf("off-plate click advanced state")
	}
}

func TestMarks(t *testing.T) {
	s := rangeOf("B2", "C4").Exclude(w("C3")).Exclude(w("B2"))
	tests := []struct {
		well string
		want Mark
	}{
		{"B2", RemovedMark},
		{"C4", EndMark},
		{"C3", RemovedMark},
		{"B3", Selected},
		{"A1", Idle},
	}
	m := s.Map()
	for _, tt := range tests {
		got := s.MarkOf(w(tt.well))
		if got != tt.want {
			t.Errorf("MarkOf(%s) = %v, want %v", tt.well, got, tt.want)
		}
		ww := w(tt.well)
		if m[ww.Row][ww.Col] != got {
			t.Errorf("Map[%s] = %v, MarkOf = %v", tt.well, m[ww.Row][ww.Col], got)
		}
	}
	partial := State{}.Click(w("E5"))
	if partial.MarkOf(w("E5")) != StartMark || partial.MarkOf(w("E6")) != Idle {
		t.Errorf("partial range marks wrong")
	}
}
