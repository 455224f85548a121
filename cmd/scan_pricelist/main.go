// Command scan_pricelist runs the price list scan offline: it decodes a
// workbook from disk, applies the same sheet and row rules the upload API
// applies, and prints the normalized items as JSON. Useful for checking a
// supplier file before uploading it.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pricebook/importer"
	"pricebook/pricelist"
)

var (
	outputPath string
	pretty     bool
	maxRows    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "scan_pricelist [단가표.xlsx]",
		Short: "Scan a price list workbook and print the normalized items",
		Long: `scan_pricelist decodes an .xlsx price list and runs the same scan the
upload endpoint runs: only the permitted sheets are read, header rows are
located by their name and price labels, country values stick until replaced,
and rows without a usable name or price are dropped.

The result is printed as JSON to stdout, or written to a file with --output.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().IntVar(&maxRows, "max-rows", 0, "Per-sheet row cap, 0 keeps the default")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scanOutput mirrors what the upload API stores for a snapshot.
type scanOutput struct {
	FileName  string           `json:"file_name"`
	FileDate  string           `json:"file_date"`
	Sheets    []string         `json:"sheets"`
	ItemCount int              `json:"item_count"`
	Items     []pricelist.Item `json:"items"`
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", inputPath)
	}

	wb, err := importer.DecodeFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to decode workbook: %w", err)
	}

	cfg := pricelist.DefaultConfig()
	if maxRows > 0 {
		cfg.MaxSheetRows = maxRows
	}

	items, err := pricelist.NewScanner(cfg).Scan(wb)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	fileName := filepath.Base(inputPath)
	out := scanOutput{
		FileName:  fileName,
		FileDate:  pricelist.FileDateLabel(fileName),
		Sheets:    wb.SheetNames(),
		ItemCount: len(items),
		Items:     items,
	}

	var data []byte
	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d items to %s\n", len(items), outputPath)
		return nil
	}

	fmt.Println(string(data))
	return nil
}
