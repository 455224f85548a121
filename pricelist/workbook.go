package pricelist

// Cell is one raw spreadsheet cell as handed over by the decoder: a string,
// a number, a bool or nil for a missing cell. The scanner coerces it with
// CellText, nothing in this package type-asserts beyond that.
type Cell = interface{}

// Workbook is the decoded form of an uploaded spreadsheet: named sheets in
// their original tab order, each a row-major grid of raw cells. The importer
// package fills it from an .xlsx stream; tests assemble it by hand.
type Workbook struct {
	order  []string
	sheets map[string][][]Cell
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{sheets: make(map[string][][]Cell)}
}

// AddSheet appends a sheet under the given name. Adding a name twice
// replaces the rows but keeps the sheet's original position.
func (wb *Workbook) AddSheet(name string, rows [][]Cell) {
	if _, ok := wb.sheets[name]; !ok {
		wb.order = append(wb.order, name)
	}
	wb.sheets[name] = rows
}

// SheetNames returns the sheet names in tab order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.order))
	copy(names, wb.order)
	return names
}

// Rows returns the cell grid of the named sheet.
func (wb *Workbook) Rows(name string) ([][]Cell, bool) {
	rows, ok := wb.sheets[name]
	return rows, ok
}

// SheetCount reports how many sheets the workbook holds.
func (wb *Workbook) SheetCount() int {
	return len(wb.order)
}
