package admission

import (
	"reflect"
	"testing"
	"time"
)

func TestExpandDates_InclusiveRange(t *testing.T) {
	got := ExpandDates("2025-12-30", "2026-01-02")
	want := []string{"30-Dec", "31-Dec", "1-Jan", "2-Jan"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestExpandDates_SameDay(t *testing.T) {
	got := ExpandDates("2025-02-05", "2025-02-05")
	if len(got) != 1 || got[0] != "5-Feb" {
		t.Fatalf("expected single label 5-Feb, got %v", got)
	}
}

func TestExpandDates_EmptyCases(t *testing.T) {
	cases := [][2]string{
		{"", "2025-01-01"},
		{"2025-01-01", ""},
		{"2025-01-10", "2025-01-01"},
		{"garbage", "2025-01-01"},
	}
	for _, c := range cases {
		got := ExpandDates(c[0], c[1])
		if got == nil || len(got) != 0 {
			t.Fatalf("ExpandDates(%q, %q) = %v, want empty", c[0], c[1], got)
		}
	}
}

func TestExpandDates_LengthMatchesDayDiff(t *testing.T) {
	base := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	for n := 0; n < 60; n++ {
		end := base.AddDate(0, 0, n)
		got := ExpandDates(base.Format(isoDate), end.Format(isoDate))
		if len(got) != n+1 {
			t.Fatalf("n=%d: expected %d labels, got %d", n, n+1, len(got))
		}
		if got[len(got)-1] != DayLabel(end) {
			t.Fatalf("n=%d: last label %q, want %q", n, got[len(got)-1], DayLabel(end))
		}
		if StayDays(base.Format(isoDate), end.Format(isoDate)) != n+1 {
			t.Fatalf("n=%d: StayDays mismatch", n)
		}
	}
}

func TestValidateDates(t *testing.T) {
	h := Header{AdmissionDate: "2025-01-10", DischargeDate: "2025-01-01"}
	if err := ValidateDates(h, 0); err != ErrInvalidDates {
		t.Fatalf("expected ErrInvalidDates, got %v", err)
	}

	h = Header{AdmissionDate: "2025-01-01", DischargeDate: "2025-03-01"}
	if err := ValidateDates(h, 30); err != ErrStayTooLong {
		t.Fatalf("expected ErrStayTooLong, got %v", err)
	}
	if err := ValidateDates(h, 0); err != nil {
		t.Fatalf("unexpected error without max stay: %v", err)
	}

	if err := ValidateDates(Header{AdmissionDate: "2025-01-01"}, 30); err != nil {
		t.Fatalf("partial dates must be accepted, got %v", err)
	}
}
