package lookup

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string, cells map[string]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for cell, value := range cells {
		if err := f.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("SetCellValue(%s) failed: %v", cell, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
}

func TestLoadMatchesAnyCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")
	writeWorkbook(t, path, map[string]interface{}{
		"A1": "barcode", "B1": "name", "C1": "sku",
		"A2": 4006381333931.0, "B2": "Widget", "C2": "IMG_001",
		"A3": "X-200", "B3": 10.5, "C3": 77.0,
	})

	table, err := Load(path, "barcode")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Rows != 2 {
		t.Errorf("Expected 2 data rows, got %d", table.Rows)
	}

	tests := []struct {
		basename string
		barcode  string
		found    bool
	}{
		{"IMG_001", "4006381333931", true},
		{"Widget", "4006381333931", true},
		{"4006381333931", "4006381333931", true},
		{"77", "X-200", true},
		{"10.5", "X-200", true},
		{"X-200", "X-200", true},
		{"barcode", "", false},
		{"missing", "", false},
	}

	for _, tt := range tests {
		barcode, found := table.Match(tt.basename)
		if found != tt.found || barcode != tt.barcode {
			t.Errorf("Match(%q) = (%q, %v), expected (%q, %v)",
				tt.basename, barcode, found, tt.barcode, tt.found)
		}
	}
}

func TestLoadFirstRowWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dupes.xlsx")
	writeWorkbook(t, path, map[string]interface{}{
		"A1": "name", "B1": "barcode",
		"A2": "shared", "B2": "111",
		"A3": "shared", "B3": "222",
	})

	table, err := Load(path, "barcode")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if barcode, _ := table.Match("shared"); barcode != "111" {
		t.Errorf("Expected earliest row barcode 111, got %q", barcode)
	}
}

func TestLoadMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nocol.xlsx")
	writeWorkbook(t, path, map[string]interface{}{
		"A1": "sku", "B1": "name",
		"A2": "1", "B2": "Widget",
	})

	_, err := Load(path, "barcode")
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("Expected ErrColumnNotFound, got %v", err)
	}
}

func TestBuildSkipsEmptyBarcode(t *testing.T) {
	rows := [][]interface{}{
		{"barcode", "name"},
		{nil, "orphan"},
		{"B1"},
	}
	table, err := Build(rows, "barcode")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if _, found := table.Match("orphan"); found {
		t.Error("Expected row without barcode to be ignored")
	}
	if _, found := table.Match(""); found {
		t.Error("Expected empty basename never to match")
	}
	if table.Len() != 1 {
		t.Errorf("Expected 1 key, got %d", table.Len())
	}
}

func TestBuildEmptyBarcodeDefersToLaterRow(t *testing.T) {
	rows := [][]interface{}{
		{"barcode", "name"},
		{nil, "shared"},
		{"B2", "shared"},
	}
	table, err := Build(rows, "barcode")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if barcode, found := table.Match("shared"); !found || barcode != "B2" {
		t.Errorf("Match(shared) = (%q, %v), expected (\"B2\", true)", barcode, found)
	}
}

func TestNilTableNeverMatches(t *testing.T) {
	var table *Table
	if _, found := table.Match("anything"); found {
		t.Error("Expected nil table not to match")
	}
}

func TestFindSpreadsheet(t *testing.T) {
	dir := t.TempDir()

	path, err := FindSpreadsheet(dir)
	if err != nil {
		t.Fatalf("FindSpreadsheet failed: %v", err)
	}
	if path != "" {
		t.Errorf("Expected no spreadsheet, got %q", path)
	}

	if err := os.WriteFile(filepath.Join(dir, "~$b.xlsx"), []byte("lock"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "a.xlsx"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	writeWorkbook(t, filepath.Join(dir, "c.XLSX"), map[string]interface{}{"A1": "barcode"})
	writeWorkbook(t, filepath.Join(dir, "d.xlsx"), map[string]interface{}{"A1": "barcode"})

	path, err = FindSpreadsheet(dir)
	if err != nil {
		t.Fatalf("FindSpreadsheet failed: %v", err)
	}
	if filepath.Base(path) != "c.XLSX" {
		t.Errorf("Expected c.XLSX, got %q", path)
	}
}
