// Package lookup loads the barcode lookup table from a spreadsheet and
// resolves image basenames to barcodes.
package lookup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrColumnNotFound indicates the header row lacks the barcode column.
var ErrColumnNotFound = errors.New("barcode column not found")

// spreadsheetExts lists the extensions FindSpreadsheet accepts.
var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xlsm": true,
}

// FindSpreadsheet returns the first spreadsheet file in dir, in
// directory-listing order. It returns "" when dir holds none.
func FindSpreadsheet(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if spreadsheetExts[strings.ToLower(filepath.Ext(name))] {
			return filepath.Join(dir, name), nil
		}
	}

	return "", nil
}

// Table maps every normalized cell value of a data row to that row's barcode.
type Table struct {
	// Column is the header name of the barcode column.
	Column string
	// Rows is the number of data rows scanned.
	Rows int

	index map[string]string
}

// Load opens a spreadsheet and builds a Table from its active sheet.
func Load(path, column string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", filepath.Base(path))
		}
		sheetName = sheets[0]
	}

	rows, err := ReadRows(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}

	return Build(rows, column)
}

// Build indexes rows whose first row is the header. When a value appears in
// several rows, the earliest row wins. Rows with an empty barcode cell are
// skipped entirely, so a value they share with a later row resolves to that
// later row's barcode instead of to an empty name.
func Build(rows [][]interface{}, column string) (*Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q (sheet is empty)", ErrColumnNotFound, column)
	}

	barcodeIdx := -1
	for i, cell := range rows[0] {
		if name, ok := cell.(string); ok && name == column {
			barcodeIdx = i
			break
		}
	}
	if barcodeIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}

	t := &Table{
		Column: column,
		index:  make(map[string]string),
	}

	for _, row := range rows[1:] {
		t.Rows++
		if barcodeIdx >= len(row) {
			continue
		}
		barcode := Normalize(row[barcodeIdx])
		if barcode == "" {
			continue
		}
		for _, cell := range row {
			key := Normalize(cell)
			if key == "" {
				continue
			}
			if _, exists := t.index[key]; !exists {
				t.index[key] = barcode
			}
		}
	}

	return t, nil
}

// Match returns the barcode for basename. A nil Table never matches.
func (t *Table) Match(basename string) (string, bool) {
	if t == nil {
		return "", false
	}
	barcode, ok := t.index[basename]
	return barcode, ok
}

// Len returns the number of distinct match keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.index)
}
