package pricelist

import (
	"reflect"
	"testing"
)

func TestWorkbookKeepsTabOrder(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(3)", nil)
	wb.AddSheet("(1)", nil)
	wb.AddSheet("메모", nil)

	want := []string{"(3)", "(1)", "메모"}
	if got := wb.SheetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SheetNames() = %v, want %v", got, want)
	}
	if wb.SheetCount() != 3 {
		t.Errorf("SheetCount() = %d, want 3", wb.SheetCount())
	}
}

func TestWorkbookAddSheetReplacesInPlace(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{{"old"}})
	wb.AddSheet("(2)", nil)
	wb.AddSheet("(1)", [][]Cell{{"new"}})

	want := []string{"(1)", "(2)"}
	if got := wb.SheetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("SheetNames() = %v, want %v", got, want)
	}

	rows, ok := wb.Rows("(1)")
	if !ok {
		t.Fatal("Rows((1)) reported missing sheet")
	}
	if len(rows) != 1 || rows[0][0] != "new" {
		t.Errorf("Rows((1)) = %v, want replaced grid", rows)
	}
}

func TestWorkbookRowsMissingSheet(t *testing.T) {
	wb := NewWorkbook()
	if _, ok := wb.Rows("없는시트"); ok {
		t.Error("Rows() reported a sheet that was never added")
	}
}

func TestWorkbookSheetNamesIsACopy(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", nil)

	names := wb.SheetNames()
	names[0] = "변조"

	if got := wb.SheetNames()[0]; got != "(1)" {
		t.Errorf("SheetNames()[0] = %q after mutating a previous result, want %q", got, "(1)")
	}
}
