package pricelist

import (
	"errors"
	"reflect"
	"testing"
)

func TestScannerScan_ExtractsItems(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"원두 단가표"},
		{"산지", "품명", "단가"},
		{"브라질", "산토스 NY2", "12,000원"},
		{"", "세하도 파인컵", "13,500"},
		{"콜롬비아", "수프리모", 15500.0},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []Item{
		{Country: "BR", Name: "산토스 NY2", Price: 12000, PriceGroup: "(1)"},
		{Country: "BR", Name: "세하도 파인컵", Price: 13500, PriceGroup: "(1)"},
		{Country: "CO", Name: "수프리모", Price: 15500, PriceGroup: "(1)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_CountryPersistsAcrossHeaderRows(t *testing.T) {
	// A repeated header starts a new block but must not clear the current
	// country; only a real origin cell may change it.
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"산지", "품명", "단가"},
		{"브라질", "산토스", "10,000원"},
		{"", "할인 안내", ""},
		{"산지", "품명", "단가"},
		{"", "모지아나", "11,000원"},
		{"케냐", "AA", "18,000원"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []Item{
		{Country: "BR", Name: "산토스", Price: 10000, PriceGroup: "(1)"},
		{Country: "BR", Name: "모지아나", Price: 11000, PriceGroup: "(1)"},
		{Country: "KE", Name: "AA", Price: 18000, PriceGroup: "(1)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_RowsBeforeCountrySkipped(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"산지", "품명", "단가"},
		{"", "이름 있는 상품", "9,000원"},
		{"페루", "오가닉 워시드", "9,500"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []Item{
		{Country: "PE", Name: "오가닉 워시드", Price: 9500, PriceGroup: "(1)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_HeaderSynonyms(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(2)", [][]Cell{
		{"원산지", "상품명", "가격"},
		{"에티오피아", "예가체프 G1", "21,000원"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []Item{
		{Country: "ET", Name: "예가체프 G1", Price: 21000, PriceGroup: "(2)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_NameLabelAloneIsNotAHeader(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"", "품명 안내문", ""},
		{"산지", "품명", "단가"},
		{"브라질", "산토스", "10,000"},
		{"", "품명만 적힌 줄", ""},
		{"", "모지아나", "11,000"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}

	want := []Item{
		{Country: "BR", Name: "산토스", Price: 10000, PriceGroup: "(1)"},
		{Country: "BR", Name: "모지아나", Price: 11000, PriceGroup: "(1)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_IgnoresUnlistedSheets(t *testing.T) {
	table := [][]Cell{
		{"산지", "품명", "단가"},
		{"브라질", "산토스", "10,000"},
	}
	wb := NewWorkbook()
	wb.AddSheet("메모", table)
	wb.AddSheet("(2)", table)
	wb.AddSheet("(5)", table)

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Scan() produced %d items, want 1", len(items))
	}
	if items[0].PriceGroup != "(2)" {
		t.Errorf("item PriceGroup = %q, want %q", items[0].PriceGroup, "(2)")
	}
}

func TestScannerScan_FollowsTabOrder(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(3)", [][]Cell{
		{"산지", "품명", "단가"},
		{"케냐", "AA FAQ", "17,000"},
	})
	wb.AddSheet("(1)", [][]Cell{
		{"산지", "품명", "단가"},
		{"브라질", "산토스", "10,000"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Scan() produced %d items, want 2", len(items))
	}
	if items[0].PriceGroup != "(3)" || items[1].PriceGroup != "(1)" {
		t.Errorf("groups in order %q, %q; want tab order (3), (1)", items[0].PriceGroup, items[1].PriceGroup)
	}
}

func TestScannerScan_DropsInvalidRowsSilently(t *testing.T) {
	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"산지", "품명", "단가"},
		{"브라질", "", "10,000"},
		{"", "", ""},
		{"", "산토스", "시가"},
		{"", "세하도", "0"},
		{"", "모지아나", "-100"},
		{"", "버번 내추럴"},
		{"", "옐로버번", "9,900원"},
	})

	items, err := NewScanner(DefaultConfig()).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []Item{
		{Country: "BR", Name: "옐로버번", Price: 9900, PriceGroup: "(1)"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}

func TestScannerScan_EmptyWorkbook(t *testing.T) {
	s := NewScanner(DefaultConfig())

	if _, err := s.Scan(NewWorkbook()); !errors.Is(err, ErrEmptyWorkbook) {
		t.Errorf("Scan(empty workbook) error = %v, want ErrEmptyWorkbook", err)
	}
	if _, err := s.Scan(nil); !errors.Is(err, ErrEmptyWorkbook) {
		t.Errorf("Scan(nil) error = %v, want ErrEmptyWorkbook", err)
	}
}

func TestScannerScan_NoValidItems(t *testing.T) {
	s := NewScanner(DefaultConfig())

	t.Run("only unlisted sheets", func(t *testing.T) {
		wb := NewWorkbook()
		wb.AddSheet("메모", [][]Cell{{"산지", "품명", "단가"}, {"브라질", "산토스", "10,000"}})
		if _, err := s.Scan(wb); !errors.Is(err, ErrNoValidItems) {
			t.Errorf("Scan() error = %v, want ErrNoValidItems", err)
		}
	})

	t.Run("no header row", func(t *testing.T) {
		wb := NewWorkbook()
		wb.AddSheet("(1)", [][]Cell{{"브라질", "산토스", "10,000"}})
		if _, err := s.Scan(wb); !errors.Is(err, ErrNoValidItems) {
			t.Errorf("Scan() error = %v, want ErrNoValidItems", err)
		}
	})

	t.Run("all rows invalid", func(t *testing.T) {
		wb := NewWorkbook()
		wb.AddSheet("(1)", [][]Cell{
			{"산지", "품명", "단가"},
			{"", "산토스", "시가"},
		})
		if _, err := s.Scan(wb); !errors.Is(err, ErrNoValidItems) {
			t.Errorf("Scan() error = %v, want ErrNoValidItems", err)
		}
	})
}

func TestScannerScan_SheetTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSheetRows = 10

	rows := [][]Cell{{"산지", "품명", "단가"}}
	for i := 0; i < 10; i++ {
		rows = append(rows, []Cell{"브라질", "산토스", "10,000"})
	}

	wb := NewWorkbook()
	wb.AddSheet("(1)", [][]Cell{
		{"산지", "품명", "단가"},
		{"브라질", "산토스", "10,000"},
	})
	wb.AddSheet("(2)", rows)

	items, err := NewScanner(cfg).Scan(wb)
	if items != nil {
		t.Errorf("Scan() returned %d items alongside error, want none", len(items))
	}

	var tooLarge *SheetTooLargeError
	if !errors.As(err, &tooLarge) {
		t.Fatalf("Scan() error = %v, want *SheetTooLargeError", err)
	}
	if tooLarge.Sheet != "(2)" || tooLarge.Rows != 11 || tooLarge.Limit != 10 {
		t.Errorf("SheetTooLargeError = %+v, want Sheet (2), Rows 11, Limit 10", tooLarge)
	}
}

func TestScannerScan_RowCapDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSheetRows = 0

	rows := [][]Cell{{"산지", "품명", "단가"}}
	for i := 0; i < 50; i++ {
		rows = append(rows, []Cell{"브라질", "산토스", "10,000"})
	}
	wb := NewWorkbook()
	wb.AddSheet("(1)", rows)

	items, err := NewScanner(cfg).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if len(items) != 50 {
		t.Errorf("Scan() produced %d items, want 50", len(items))
	}
}

func TestScannerScan_CustomConfig(t *testing.T) {
	cfg := Config{
		AllowedSheets: []string{"견적"},
		MaxSheetRows:  100,
		CountryCol:    0,
		NameLabels:    []string{"item"},
		PriceLabels:   []string{"cost"},
		CountryTable:  map[string]string{"brazil": "BR"},
	}

	wb := NewWorkbook()
	wb.AddSheet("견적", [][]Cell{
		{"origin", "item", "cost"},
		{"brazil", "natural lot 1", "5.5"},
	})

	items, err := NewScanner(cfg).Scan(wb)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	want := []Item{
		{Country: "BR", Name: "natural lot 1", Price: 5.5, PriceGroup: "견적"},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("Scan() = %+v, want %+v", items, want)
	}
}
