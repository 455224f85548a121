package pricelist

import "strings"

// labelMatcher locates a header column by substring match against a set of
// label synonyms. Cells are sanitized before matching, so decorated headers
// like "품명 (필수)" or "단가(원)" still hit.
type labelMatcher struct {
	labels []string
}

func newLabelMatcher(labels []string) labelMatcher {
	return labelMatcher{labels: labels}
}

// matchColumn returns the index of the first cell in row containing one of
// the labels, or -1 when none does.
func (m labelMatcher) matchColumn(row []Cell) int {
	for i, cell := range row {
		text := SanitizeText(cell)
		if text == "" {
			continue
		}
		for _, label := range m.labels {
			if strings.Contains(text, label) {
				return i
			}
		}
	}
	return -1
}

// Scanner extracts validated price items from decoded workbooks. It is
// stateless across calls and safe for concurrent use.
type Scanner struct {
	cfg     Config
	allowed map[string]bool
	names   labelMatcher
	prices  labelMatcher
}

// NewScanner builds a scanner for the given configuration.
func NewScanner(cfg Config) *Scanner {
	allowed := make(map[string]bool, len(cfg.AllowedSheets))
	for _, name := range cfg.AllowedSheets {
		allowed[name] = true
	}
	return &Scanner{
		cfg:     cfg,
		allowed: allowed,
		names:   newLabelMatcher(cfg.NameLabels),
		prices:  newLabelMatcher(cfg.PriceLabels),
	}
}

// Scan walks the workbook's permitted sheets in tab order and returns every
// valid item found. Bad rows are dropped without trace; the errors are
// aggregate: ErrEmptyWorkbook for a sheetless file, SheetTooLargeError when
// a permitted sheet busts the row cap and ErrNoValidItems when the whole
// scan yields nothing.
func (s *Scanner) Scan(wb *Workbook) ([]Item, error) {
	if wb == nil || wb.SheetCount() == 0 {
		return nil, ErrEmptyWorkbook
	}

	var items []Item
	for _, sheetName := range wb.SheetNames() {
		if !s.allowed[sheetName] {
			continue
		}
		rows, _ := wb.Rows(sheetName)
		if s.cfg.MaxSheetRows > 0 && len(rows) > s.cfg.MaxSheetRows {
			return nil, &SheetTooLargeError{Sheet: sheetName, Rows: len(rows), Limit: s.cfg.MaxSheetRows}
		}
		items = append(items, s.scanSheet(sheetName, rows)...)
	}

	if len(items) == 0 {
		return nil, ErrNoValidItems
	}
	return items, nil
}

// scanSheet folds one permitted sheet into items. Rows before the first
// header are skipped. The origin accumulator is sticky on purpose: it is
// updated whenever the origin column normalizes to something non-empty and
// is never cleared, not even by a later header row, because suppliers start
// a new price block without restating the origin.
func (s *Scanner) scanSheet(sheetName string, rows [][]Cell) []Item {
	var (
		items    []Item
		inTable  bool
		nameCol  int
		priceCol int
		country  string
	)

	for _, row := range rows {
		if i := s.names.matchColumn(row); i >= 0 {
			if j := s.prices.matchColumn(row); j >= 0 {
				nameCol, priceCol = i, j
				inTable = true
				continue
			}
			// A name label without a price label is not a header. The row
			// falls through to the data path, which rejects it like any
			// other unparseable row.
		}
		if !inTable {
			continue
		}

		if origin := normalizeCountry(s.cfg.CountryTable, cellAt(row, s.cfg.CountryCol)); origin != "" {
			country = origin
		}

		name := SanitizeText(cellAt(row, nameCol))
		price, ok := ParsePrice(cellAt(row, priceCol))
		if name == "" || country == "" || !ok {
			continue
		}
		items = append(items, Item{
			Country:    country,
			Name:       name,
			Price:      price,
			PriceGroup: sheetName,
		})
	}
	return items
}

// cellAt reads row[i], tolerating the ragged rows spreadsheet decoders
// produce.
func cellAt(row []Cell, i int) Cell {
	if i < 0 || i >= len(row) {
		return nil
	}
	return row[i]
}
