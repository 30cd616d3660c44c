package charts

import (
	"errors"
	"testing"
)

func TestAddRow_ThreadsCounter(t *testing.T) {
	rows := SeedDiet()

	rows2, r1, next := AddRow(rows, InitialCounter, DefaultRow(TableDiet))
	rows3, r2, next := AddRow(rows2, next, DefaultRow(TableDiet))

	if r1.ID != 1001 || r2.ID != 1002 || next != 1002 {
		t.Fatalf("unexpected ids %d, %d (counter %d)", r1.ID, r2.ID, next)
	}
	if len(rows) != 5 || len(rows2) != 6 || len(rows3) != 7 {
		t.Fatalf("input slices must not grow: %d %d %d", len(rows), len(rows2), len(rows3))
	}
	if r1.Type != RowOnce {
		t.Fatalf("diet rows default to Once, got %q", r1.Type)
	}
}

func TestDefaultRow_Treatment(t *testing.T) {
	if DefaultRow(TableTreatment).Type != RowTwice {
		t.Fatalf("treatment rows default to Twice")
	}
}

func TestUpdateRow_AppliesFormatters(t *testing.T) {
	label := "  amoxicillin   clav "
	dose := "250mg bid"
	twice := RowTwice

	out, r, err := UpdateRow(SeedTreatment(), 101, RowPatch{Label: &label, Dose: &dose, Type: &twice})
	if err != nil {
		t.Fatalf("UpdateRow: %v", err)
	}
	if r.Label != "Amoxicillin Clav" || r.Dose != "250MG BID" {
		t.Fatalf("unexpected row %+v", r)
	}
	if out[0] != r {
		t.Fatalf("returned slice not updated")
	}
}

func TestUpdateRow_NotFound(t *testing.T) {
	rows := SeedDiet()
	if _, _, err := UpdateRow(rows, 999, RowPatch{}); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestDeleteRow_RejectsLastRow(t *testing.T) {
	rows := SeedTreatment()

	out, err := DeleteRow(rows, 101)
	if !errors.Is(err, ErrLastRow) {
		t.Fatalf("expected ErrLastRow, got %v", err)
	}
	if len(out) != 1 || len(rows) != 1 {
		t.Fatalf("table size must stay 1, got %d", len(out))
	}
}

func TestDeleteRow_KeepsOrder(t *testing.T) {
	rows := SeedDiet()

	out, err := DeleteRow(rows, 3)
	if err != nil {
		t.Fatalf("DeleteRow: %v", err)
	}
	want := []int64{1, 2, 4, 5}
	if len(out) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(out))
	}
	for i, id := range want {
		if out[i].ID != id {
			t.Fatalf("row %d: expected id %d, got %d", i, id, out[i].ID)
		}
	}
	if len(rows) != 5 || rows[2].ID != 3 {
		t.Fatalf("input mutated: %+v", rows)
	}

	if _, err := DeleteRow(rows, 42); !errors.Is(err, ErrRowNotFound) {
		t.Fatalf("expected ErrRowNotFound, got %v", err)
	}
}

func TestDeleteRow_DownToOne(t *testing.T) {
	rows := SeedDiet()
	var err error
	for _, id := range []int64{1, 2, 3, 4} {
		if rows, err = DeleteRow(rows, id); err != nil {
			t.Fatalf("DeleteRow(%d): %v", id, err)
		}
	}
	if _, err := DeleteRow(rows, 5); !errors.Is(err, ErrLastRow) {
		t.Fatalf("expected ErrLastRow for the last diet row, got %v", err)
	}
}

func TestParseTableAndRowType(t *testing.T) {
	if tb, ok := ParseTable(" Diet "); !ok || tb != TableDiet {
		t.Fatalf("ParseTable diet failed")
	}
	if _, ok := ParseTable("notes"); ok {
		t.Fatalf("unknown table accepted")
	}
	if rt, ok := ParseRowType("twice"); !ok || rt != RowTwice {
		t.Fatalf("ParseRowType twice failed")
	}
	if _, ok := ParseRowType("thrice"); ok {
		t.Fatalf("unknown type accepted")
	}
}
