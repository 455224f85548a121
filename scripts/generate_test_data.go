// Command generate_test_data builds sample 단가표 workbooks for manual upload
// testing and load checks. The generated files carry the quirks real supplier
// files show: a title row above the header, country cells left blank inside a
// run, mixed price formatting and the occasional note row without a price.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/xuri/excelize/v2"

	"pricebook/pricelist"
)

func main() {
	gofakeit.Seed(0)

	sizes := []struct {
		name string
		rows int
	}{
		{"small", 40},
		{"medium", 400},
		{"large", 4000},
	}

	dataDir := filepath.Join("tests", "data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	stamp := time.Now().Format("200601")
	for _, size := range sizes {
		fmt.Printf("Generating %s workbook...\n", size.name)

		fileName := filepath.Join(dataDir, fmt.Sprintf("단가표_%s_%s.xlsx", size.name, stamp))
		if err := writeWorkbook(fileName, size.rows); err != nil {
			log.Fatalf("Failed to write workbook %s: %v", fileName, err)
		}

		fmt.Printf("Generated %d rows per sheet in %s\n", size.rows, fileName)
	}
}

// writeWorkbook fills the four permitted price-group sheets plus one extra
// sheet the scanner ignores, then saves the file.
func writeWorkbook(fileName string, rowsPerSheet int) error {
	f := excelize.NewFile()
	defer f.Close()

	cfg := pricelist.DefaultConfig()
	countries := countryNames(cfg.CountryTable)

	for _, sheet := range cfg.AllowedSheets {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := fillSheet(f, sheet, countries, rowsPerSheet); err != nil {
			return err
		}
	}

	// An extra tab with no price data, as supplier files often carry one.
	if _, err := f.NewSheet("배송안내"); err != nil {
		return err
	}
	if err := f.SetSheetRow("배송안내", "A1", &[]interface{}{"택배 발송은 오후 2시 마감입니다."}); err != nil {
		return err
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	return f.SaveAs(fileName)
}

// fillSheet writes a title row, the header and then country runs where only
// the first row of a run names the origin.
func fillSheet(f *excelize.File, sheet string, countries []string, rows int) error {
	title := fmt.Sprintf("생두 단가표 %s", sheet)
	if err := f.SetSheetRow(sheet, "A1", &[]interface{}{title}); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A3", &[]interface{}{"산지", "품명", "단가"}); err != nil {
		return err
	}

	rowNum := 4
	written := 0
	for written < rows {
		country := gofakeit.RandomString(countries)
		runLen := gofakeit.Number(2, 6)
		for i := 0; i < runLen && written < rows; i++ {
			origin := ""
			if i == 0 {
				origin = country
			}

			cell, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return err
			}

			// A note row now and then, carrying no price at all.
			if gofakeit.Number(1, 25) == 1 {
				if err := f.SetSheetRow(sheet, cell, &[]interface{}{origin, "(1kg 단위 판매)", ""}); err != nil {
					return err
				}
			} else {
				row := []interface{}{origin, generateProductName(), generatePriceCell()}
				if err := f.SetSheetRow(sheet, cell, &row); err != nil {
					return err
				}
			}
			rowNum++
			written++
		}
	}

	footer, err := excelize.CoordinatesToCellName(1, rowNum+1)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, footer, &[]interface{}{"", "* 부가세 별도", ""})
}

// countryNames returns the origin labels in a stable order so a fixed seed
// reproduces the same workbook.
func countryNames(table map[string]string) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// generateProductName combines a region or farm name with an optional grade.
func generateProductName() string {
	regions := []string{
		"산토스", "세하도", "수프리모", "후일라", "예가체페", "시다모", "구지",
		"타라주", "안티구아", "만델링", "모카 마타리", "킨타마니", "카라나비",
	}
	grades := []string{"NY2", "G1", "G2", "G4", "AA", "AB", "SHB", "SHG", "EP", "FAQ", "스페셜티", "파인컵"}

	name := gofakeit.RandomString(regions)
	if gofakeit.Bool() {
		name = fmt.Sprintf("%s %s", name, gofakeit.RandomString(grades))
	}
	if gofakeit.Number(1, 8) == 1 {
		name = fmt.Sprintf("%s Scr.%d", name, gofakeit.Number(14, 19))
	}
	return name
}

// generatePriceCell produces a unit price in one of the formats suppliers
// actually type: a bare number, a comma-grouped string or a 원-suffixed one.
func generatePriceCell() interface{} {
	price := gofakeit.Number(70, 450) * 100

	switch gofakeit.Number(0, 3) {
	case 0:
		return price
	case 1:
		return fmt.Sprintf("%d", price)
	case 2:
		return formatGrouped(price)
	default:
		return formatGrouped(price) + "원"
	}
}

// formatGrouped renders 12345 as "12,345".
func formatGrouped(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	return s[:len(s)-3] + "," + s[len(s)-3:]
}
