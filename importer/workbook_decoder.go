package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"pricebook/pricelist"
)

// DecodeWorkbook reads an .xlsx stream into the scanner's workbook form.
// Sheets keep their tab order; cells arrive as the display strings excelize
// produces, which is what the scanner's coercion expects. A stream that is
// not a readable spreadsheet fails with ErrDecodeFailure, one with no sheets
// with pricelist.ErrEmptyWorkbook.
func DecodeWorkbook(r io.Reader) (*pricelist.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	defer f.Close()
	return buildWorkbook(f)
}

// DecodeFile opens a spreadsheet from disk, for the CLI tools.
func DecodeFile(path string) (*pricelist.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailure, err)
	}
	defer f.Close()
	return buildWorkbook(f)
}

func buildWorkbook(f *excelize.File) (*pricelist.Workbook, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, pricelist.ErrEmptyWorkbook
	}

	wb := pricelist.NewWorkbook()
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("%w: 시트 %q: %v", ErrDecodeFailure, name, err)
		}
		grid := make([][]pricelist.Cell, len(rows))
		for i, row := range rows {
			cells := make([]pricelist.Cell, len(row))
			for j, val := range row {
				cells[j] = val
			}
			grid[i] = cells
		}
		wb.AddSheet(name, grid)
	}
	return wb, nil
}
