// core/assign/assign_test.go
package assign

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"platemap-core/index"
	"platemap-core/plate"
	"platemap-core/selection"
)

// fullTable has one row per well; names/sequences encode the key.
func fullTable(t *testing.T, skip ...string) *index.Table {
	t.Helper()
	drop := map[string]bool{}
	for _, s := range skip {
		drop[s] = true
	}
	var entries []index.Entry
	for _, w := range plate.All() {
		k := w.String()
		if drop[k] {
			continue
		}
		entries = append(entries, index.Entry{
			Key: k, I7Name: "N7-" + k, I7Index: "S7-" + k, I5Name: "N5-" + k, I5Index: "S5-" + k,
		})
	}
	return index.New(entries)
}

func sel(a, b string, removed ...string) plate.WellSet {
	s := selection.State{}.Click(plate.MustParse(a)).Click(plate.MustParse(b))
	for _, r := range removed {
		s = s.Exclude(plate.MustParse(r))
	}
	return s.ActiveSet()
}

func ids(rs []Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.SampleID
	}
	return out
}

// both builds the two orderings the way a caller exporting both files does.
func both(s plate.WellSet, p Params, tab *index.Table) (h, v []Record, err error) {
	if h, err = HorizontalRecords(s, p, tab); err != nil {
		return nil, nil, err
	}
	if v, err = VerticalRecords(s, p, tab); err != nil {
		return nil, nil, err
	}
	return h, v, nil
}

func TestScenarioA1B2(t *testing.T) {
	p := Params{I7Col: 5, I5Row: 'C', Prefix: "S_"}
	h, v, err := both(sel("A1", "B2"), p, fullTable(t))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := ids(h); !reflect.DeepEqual(got, []string{"S_A1", "S_A2", "S_B1", "S_B2"}) {
		t.Errorf("horizontal = %v", got)
	}
	if got := ids(v); !reflect.DeepEqual(got, []string{"S_A1", "S_B1", "S_A2", "S_B2"}) {
		t.Errorf("vertical = %v", got)
	}
	want := Record{SampleID: "S_A1", I7Name: "N7-A5", I7Index: "S7-A5", I5Name: "N5-C1", I5Index: "S5-C1"}
	if h[0] != want {
		t.Errorf("A1 record = %+v, want %+v", h[0], want)
	}
	// B2: i7 from row B at column 5, i5 from row C at column 2.
	if h[3].I7Name != "N7-B5" || h[3].I5Name != "N5-C2" {
		t.Errorf("B2 record = %+v", h[3])
	}
	for _, r := range h {
		if r.SampleName != "" {
			t.Errorf("SampleName must be blank, got %q", r.SampleName)
		}
	}
}

func TestScenarioRemoval(t *testing.T) {
	p := Params{I7Col: 5, I5Row: 'C', Prefix: "S_"}
	h, err := HorizontalRecords(sel("A1", "B2", "A2"), p, fullTable(t))
	if err != nil {
		t.Fatalf("HorizontalRecords: %v", err)
	}
	if got := ids(h); !reflect.DeepEqual(got, []string{"S_A1", "S_B1", "S_B2"}) {
		t.Errorf("ids = %v", got)
	}
}

func TestNoPrefix(t *testing.T) {
	h, err := HorizontalRecords(sel("H12", "H12"), Params{I7Col: 1, I5Row: 'A'}, fullTable(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(h) != 1 || h[0].SampleID != "H12" || h[0].I7Name != "N7-H1" || h[0].I5Name != "N5-A12" {
		t.Errorf("records = %+v", h)
	}
}

func TestHorizontalVerticalSameSet(t *testing.T) {
	tab := fullTable(t)
	p := Params{I7Col: 12, I5Row: 'H', Prefix: "x"}
	cases := [][3]string{
		{"A1", "H12", ""},
		{"C4", "F9", "D5"},
		{"B3", "B10", ""},
		{"A7", "G7", "C7"},
	}
	for _, c := range cases {
		var removed []string
		if c[2] != "" {
			removed = append(removed, c[2])
		}
		s := sel(c[0], c[1], removed...)
		h, v, err := both(s, p, tab)
		if err != nil {
			t.Fatalf("%v: %v", c, err)
		}
		hs, vs := ids(h), ids(v)
		if len(hs) != s.Len() {
			t.Errorf("%v: %d records for %d wells", c, len(hs), s.Len())
		}
		hsorted := append([]string(nil), hs...)
		vsorted := append([]string(nil), vs...)
		sort.Strings(hsorted)
		sort.Strings(vsorted)
		if !reflect.DeepEqual(hsorted, vsorted) {
			t.Errorf("%v: horizontal and vertical sets differ", c)
		}
		a, b := plate.MustParse(c[0]), plate.MustParse(c[1])
		multi := a.Row != b.Row && a.Col != b.Col
		if multi && reflect.DeepEqual(hs, vs) {
			t.Errorf("%v: orders should differ for a 2-D range", c)
		}
		if !multi && !reflect.DeepEqual(hs, vs) {
			t.Errorf("%v: single row/column range should give equal orders", c)
		}
	}
}

func TestMissingIndexAborts(t *testing.T) {
	// A5 is the i7 key for row A at column 5.
	tab := fullTable(t, "A5")
	h, v, err := both(sel("A1", "B2"), Params{I7Col: 5, I5Row: 'C'}, tab)
	if !errors.Is(err, index.ErrIndexNotFound) {
		t.Fatalf("err = %v, want ErrIndexNotFound", err)
	}
	if h != nil || v != nil {
		t.Errorf("partial output returned: %v %v", h, v)
	}
	var nf *index.NotFoundError
	if !errors.As(err, &nf) || nf.Key != "A5" || nf.Kind != index.I7 {
		t.Errorf("not-found detail = %+v", nf)
	}
}

func TestEmptySelection(t *testing.T) {
	h, err := HorizontalRecords(plate.WellSet{}, Params{I7Col: 1, I5Row: 'A'}, fullTable(t))
	if err != nil || len(h) != 0 {
		t.Errorf("empty selection: %v, %v", h, err)
	}
}

func TestParamsValidate(t *testing.T) {
	bad := []Params{{I7Col: 0, I5Row: 'A'}, {I7Col: 13, I5Row: 'A'}, {I7Col: 1, I5Row: 'I'}, {I7Col: 1}}
	for _, p := range bad {
		if _, err := VerticalRecords(plate.WellSet{}, p, fullTable(t)); !errors.Is(err, ErrInvalidParams) {
			t.Errorf("%+v: err = %v", p, err)
		}
	}
}

func TestI5RevComp(t *testing.T) {
	tab := index.New([]index.Entry{
		{Key: "A1", I7Name: "n7", I7Index: "AGGGTTAA", I5Name: "n5", I5Index: "ACTCTATT"},
	})
	p := Params{I7Col: 1, I5Row: 'A', I5RevComp: true}
	rs, err := HorizontalRecords(sel("A1", "A1"), p, tab)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if rs[0].I5Index != "AATAGAGT" {
		t.Errorf("i5 = %q, want reverse complement", rs[0].I5Index)
	}
	if rs[0].I7Index != "AGGGTTAA" {
		t.Errorf("i7 must stay as listed, got %q", rs[0].I7Index)
	}
}
