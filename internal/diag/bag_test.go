package diag

import (
	"testing"

	"tank/internal/source"
)

func TestBagAddLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "one")) {
		t.Error("first Add rejected")
	}
	if !bag.Add(NewError(SynUnexpectedToken, source.Span{}, "two")) {
		t.Error("second Add rejected")
	}
	if bag.Add(NewError(SynUnexpectedToken, source.Span{}, "three")) {
		t.Error("Add past the limit must drop the diagnostic")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() {
		t.Error("empty bag reports errors")
	}

	bag.Add(NewWarning(SynUnexpectedToken, source.Span{}, "warn"))
	if bag.HasErrors() {
		t.Error("warning alone must not count as an error")
	}
	if !bag.HasWarnings() {
		t.Error("HasWarnings() = false after a warning")
	}

	bag.Add(NewError(LexUnknownChar, source.Span{}, "err"))
	if !bag.HasErrors() {
		t.Error("HasErrors() = false after an error")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewError(SynUnexpectedToken, source.Span{Start: 20, End: 21}, "late"))
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 5, End: 6}, "early"))
	bag.Add(NewError(SynExpectColon, source.Span{Start: 10, End: 11}, "middle"))

	bag.Sort()

	got := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		got = append(got, d.Message)
	}
	want := []string{"early", "middle", "late"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sorted order = %v, want %v", got, want)
		}
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, source.Span{}, "a"))

	b := NewBag(2)
	b.Add(NewWarning(SynUnexpectedToken, source.Span{}, "b1"))
	b.Add(NewError(SynExpectColon, source.Span{}, "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len() after merge = %d, want 3", a.Len())
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(5)
	r := &BagReporter{Bag: bag}

	r.Report(SynEmptyInput, SevError, source.Span{Start: 1, End: 2}, "nothing to parse", nil)

	if bag.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != SynEmptyInput || d.Severity != SevError || d.Message != "nothing to parse" {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestCodeIDRanges(t *testing.T) {
	tests := []struct {
		code Code
		id   string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemRedeclaredSymbol, "SEM3001"},
		{IOLoadFileError, "IO4001"},
		{PrjManifestInvalid, "PRJ5001"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.id {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.id)
		}
	}
}
