// core/samplesheet/samplesheet_test.go
package samplesheet

import (
	"testing"
	"time"

	"platemap-core/assign"
)

func TestCSVHeaderOnly(t *testing.T) {
	b, err := CSV(nil)
	if err != nil {
		t.Fatal(err)
	}
	want := "Sample_ID,Sample_name,i7-name,i7-index,i5-name,i5-index\n"
	if string(b) != want {
		t.Errorf("CSV(nil) = %q, want %q", b, want)
	}
}

func TestCSVRowsAndQuoting(t *testing.T) {
	recs := []assign.Record{
		{SampleID: "S_A1", I7Name: "D701", I7Index: "ATTACTCG", I5Name: "D501", I5Index: "TATAGCCT"},
		{SampleID: "run,1_A2", I7Name: "D702", I7Index: "TCCGGAGA", I5Name: "D502", I5Index: "ATAGAGGC"},
	}
	b, err := CSV(recs)
	if err != nil {
		t.Fatal(err)
	}
	want := "Sample_ID,Sample_name,i7-name,i7-index,i5-name,i5-index\n" +
		"S_A1,,D701,ATTACTCG,D501,TATAGCCT\n" +
		"\"run,1_A2\",,D702,TCCGGAGA,D502,ATAGAGGC\n"
	if string(b) != want {
		t.Errorf("CSV =\n%s\nwant\n%s", b, want)
	}
	again, _ := CSV(recs)
	if string(again) != string(b) {
		t.Errorf("CSV not deterministic")
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 7, 5, 2, 0, time.UTC)
	if got := Filename(KindHorizontal, now); got != "horizontal_output_20240309_070502.csv" {
		t.Errorf("Filename = %q", got)
	}
	if got := FilenameExt(KindVertical, now, "xlsx"); got != "vertical_output_20240309_070502.xlsx" {
		t.Errorf("FilenameExt = %q", got)
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("vertical")
	if err != nil || k != KindVertical || k.Order() != assign.Vertical {
		t.Errorf("ParseKind(vertical) = %v,%v", k, err)
	}
	if KindHorizontal.Order() != assign.Horizontal {
		t.Errorf("horizontal order mismatch")
	}
	if _, err := ParseKind("both"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
