package imgsort

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/lookup"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/report"
	"github.com/ukaji3/imgsort-go/pkg/imgsort/transform"
)

// NotFoundDir is the subfolder receiving unmatched images.
const NotFoundDir = "not_found"

// Organize resizes every image in opts.InputFolder and its immediate
// subfolders, renames matched images to their barcode and routes the rest
// according to opts.Policy. Per-image failures are recorded in the summary;
// configuration errors and output I/O errors abort the run.
func Organize(opts Options, log logrus.FieldLogger) (*models.RunSummary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	lock, err := lockOutput(opts.OutputFolder)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := lock.release(); err != nil {
			log.WithError(err).Warn("Failed to release output lock")
		}
	}()

	summary := &models.RunSummary{}

	table, spreadsheet, err := loadTable(opts, log)
	if err != nil {
		return nil, err
	}
	summary.Spreadsheet = spreadsheet

	folders, err := ListFolders(opts.InputFolder, opts.OutputFolder)
	if err != nil {
		return nil, fmt.Errorf("list input folders: %w", err)
	}

	o := &organizer{
		opts:    opts,
		table:   table,
		log:     log,
		written: make(map[string]string),
	}
	for i, dir := range folders {
		outDir := opts.OutputFolder
		if i > 0 {
			outDir = filepath.Join(opts.OutputFolder, filepath.Base(dir))
			if filepath.Base(dir) == NotFoundDir {
				log.WithFields(logrus.Fields{
					"folder": dir,
					"output": outDir,
				}).Warn("Subfolder output shares the root not_found folder")
			}
		}

		result, err := o.processFolder(dir, outDir)
		summary.Folders = append(summary.Folders, result)
		if err != nil {
			return summary, err
		}
	}

	matched, unmatched, failed := summary.Totals()
	log.WithFields(logrus.Fields{
		"folders":   len(summary.Folders),
		"matched":   matched,
		"unmatched": unmatched,
		"failed":    failed,
	}).Info("Run complete")

	return summary, nil
}

// loadTable finds and loads the lookup spreadsheet. A missing spreadsheet
// yields a nil table and no error.
func loadTable(opts Options, log logrus.FieldLogger) (*lookup.Table, string, error) {
	path, err := lookup.FindSpreadsheet(opts.WorkDir)
	if err != nil {
		return nil, "", fmt.Errorf("search spreadsheet in %s: %w", opts.WorkDir, err)
	}
	if path == "" {
		log.WithField("workdir", opts.WorkDir).Info("No Excel file found. Proceeding without barcode matching")
		return nil, "", nil
	}

	table, err := lookup.Load(path, opts.BarcodeColumn)
	if err != nil {
		if errors.Is(err, lookup.ErrColumnNotFound) {
			return nil, path, NewConfigError("barcode_column", fmt.Errorf("%s: %w", filepath.Base(path), err))
		}
		return nil, path, fmt.Errorf("load spreadsheet %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"spreadsheet": path,
		"column":      table.Column,
		"rows":        table.Rows,
		"keys":        table.Len(),
	}).Info("Loaded barcode lookup table")

	return table, path, nil
}

type organizer struct {
	opts  Options
	table *lookup.Table
	log   logrus.FieldLogger

	written map[string]string // destination -> source, across all folders
}

// processFolder handles the images directly inside dir, writing into outDir.
func (o *organizer) processFolder(dir, outDir string) (models.FolderResult, error) {
	result := models.FolderResult{Input: dir}
	log := o.log.WithField("folder", dir)
	log.Info("Processing directory")

	names, err := ListImages(dir)
	if err != nil {
		return result, fmt.Errorf("list images in %s: %w", dir, err)
	}
	if len(names) == 0 {
		log.Info("Folder is empty of valid images. Skipping")
		result.Skipped = true
		return result, nil
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return result, fmt.Errorf("create output folder: %w", err)
	}
	result.Output = outDir

	routeNotFound := o.opts.Policy.RoutesNotFound(o.table != nil)
	notFoundDir := filepath.Join(outDir, NotFoundDir)
	if routeNotFound {
		if err := os.MkdirAll(notFoundDir, 0755); err != nil {
			return result, fmt.Errorf("create not_found folder: %w", err)
		}
	}

	for _, name := range names {
		src := filepath.Join(dir, name)
		basename := Basename(name)
		barcode, found := o.table.Match(basename)

		var dest string
		switch {
		case found:
			dest = filepath.Join(outDir, barcode+".jpg")
		case routeNotFound:
			dest = filepath.Join(notFoundDir, basename+".jpg")
		default:
			dest = filepath.Join(outDir, basename+".jpg")
		}

		if err := o.writeThumbnail(src, dest); err != nil {
			o.recordFailure(&result, log, err)
			continue
		}

		if prev, dup := o.written[dest]; dup {
			log.WithFields(logrus.Fields{
				"image":       name,
				"previous":    prev,
				"destination": dest,
			}).Warn("Output overwritten by a later image")
		}
		o.written[dest] = src

		record := models.ImageRecord{
			Source:      src,
			Basename:    basename,
			Found:       found,
			Barcode:     barcode,
			Destination: dest,
		}
		if found {
			result.Matched = append(result.Matched, record)
			log.WithFields(logrus.Fields{"image": name, "barcode": barcode}).Debug("Barcode matched")
			continue
		}

		result.Unmatched = append(result.Unmatched, record)
		if routeNotFound {
			result.NotFound = append(result.NotFound, basename)
			log.WithFields(logrus.Fields{
				"image":       name,
				"destination": dest,
			}).Info("Barcode not found for image")
		}
	}

	if routeNotFound {
		path := filepath.Join(notFoundDir, report.NotFoundFile)
		if err := report.WriteNotFound(path, result.NotFound); err != nil {
			return result, fmt.Errorf("write not-found report: %w", err)
		}
		result.Report = path
		log.WithFields(logrus.Fields{
			"report": path,
			"images": len(result.NotFound),
		}).Info("Excel file for not found images created")
	}

	if len(result.Failed) > 0 {
		path := filepath.Join(outDir, report.FailedFile)
		if err := report.WriteFailures(path, result.Failed); err != nil {
			return result, fmt.Errorf("write failed-images report: %w", err)
		}
		log.WithFields(logrus.Fields{
			"report": path,
			"images": len(result.Failed),
		}).Warn("Some images could not be processed")
	}

	return result, nil
}

// writeThumbnail decodes src, builds the thumbnail and saves it to dest.
func (o *organizer) writeThumbnail(src, dest string) error {
	img, err := transform.Open(src)
	if err != nil {
		return NewImageError(src, StageDecode, err)
	}

	thumb, err := transform.Thumbnail(img)
	if err != nil {
		return NewImageError(src, StageTransform, err)
	}

	if err := transform.SaveJPEG(thumb, dest); err != nil {
		return NewImageError(src, StageWrite, err)
	}
	return nil
}

func (o *organizer) recordFailure(result *models.FolderResult, log logrus.FieldLogger, err error) {
	failure := models.ImageFailure{Error: err.Error()}

	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		failure.Source = imgErr.Path
		failure.Stage = imgErr.Stage
		failure.Error = imgErr.Err.Error()
	}

	result.Failed = append(result.Failed, failure)
	log.WithError(err).WithField("stage", failure.Stage).Error("Error processing image")
}
