package report

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
	"github.com/xuri/excelize/v2"
)

func readSheet(t *testing.T, path string) (string, [][]string) {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 {
		t.Fatalf("Expected a single sheet, got %v", sheets)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	return sheets[0], rows
}

func TestWriteNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), NotFoundFile)
	names := []string{"IMG_002", "1023", "photo b"}

	if err := WriteNotFound(path, names); err != nil {
		t.Fatalf("WriteNotFound failed: %v", err)
	}

	sheet, rows := readSheet(t, path)
	if sheet != "Not Found Images" {
		t.Errorf("Expected sheet 'Not Found Images', got %q", sheet)
	}
	if len(rows) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Image Filename" {
		t.Errorf("Expected header 'Image Filename', got %q", rows[0][0])
	}
	for i, name := range names {
		if rows[i+1][0] != name {
			t.Errorf("Row %d: expected %q, got %q", i+2, name, rows[i+1][0])
		}
	}
}

func TestWriteNotFoundEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), NotFoundFile)
	if err := WriteNotFound(path, nil); err != nil {
		t.Fatalf("WriteNotFound failed: %v", err)
	}

	_, rows := readSheet(t, path)
	if len(rows) != 1 || rows[0][0] != FilenameHeader {
		t.Errorf("Expected header only, got %v", rows)
	}
}

func TestWriteFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), FailedFile)
	failures := []models.ImageFailure{
		{Source: "/in/broken.jpg", Stage: "decode", Error: "unexpected EOF"},
	}

	if err := WriteFailures(path, failures); err != nil {
		t.Fatalf("WriteFailures failed: %v", err)
	}

	sheet, rows := readSheet(t, path)
	if sheet != FailedSheet {
		t.Errorf("Expected sheet %q, got %q", FailedSheet, sheet)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header plus 1 row, got %d", len(rows))
	}
	want := []string{"broken.jpg", "decode", "unexpected EOF"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Errorf("Column %d: expected %q, got %q", i+1, v, rows[1][i])
		}
	}
}
