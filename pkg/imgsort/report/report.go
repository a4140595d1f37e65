// Package report writes the per-folder report spreadsheets.
package report

import (
	"path/filepath"

	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
	"github.com/xuri/excelize/v2"
)

const (
	// NotFoundFile is the file name of the not-found report.
	NotFoundFile = "not_found_images.xlsx"
	// NotFoundSheet is the sheet title of the not-found report.
	NotFoundSheet = "Not Found Images"
	// FilenameHeader heads the column of image basenames.
	FilenameHeader = "Image Filename"

	// FailedFile is the file name of the failed-images report.
	FailedFile = "failed_images.xlsx"
	// FailedSheet is the sheet title of the failed-images report.
	FailedSheet = "Failed Images"
)

// WriteNotFound writes a single-sheet workbook listing basenames in order.
func WriteNotFound(path string, basenames []string) error {
	rows := make([][]interface{}, 0, len(basenames))
	for _, name := range basenames {
		rows = append(rows, []interface{}{name})
	}
	return writeSheet(path, NotFoundSheet, []interface{}{FilenameHeader}, rows)
}

// WriteFailures writes a workbook listing images skipped because of errors.
func WriteFailures(path string, failures []models.ImageFailure) error {
	rows := make([][]interface{}, 0, len(failures))
	for _, failure := range failures {
		rows = append(rows, []interface{}{filepath.Base(failure.Source), failure.Stage, failure.Error})
	}
	return writeSheet(path, FailedSheet, []interface{}{FilenameHeader, "Stage", "Error"}, rows)
}

func writeSheet(path, sheetName string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // row 1 is the header
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &rows[i]); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}
