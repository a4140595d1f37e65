// Package imgsort resizes product images to thumbnails and files them under
// the barcode found for them in a lookup spreadsheet.
package imgsort

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Policy selects how unmatched images are routed.
type Policy string

const (
	// PolicyAlways creates a not_found folder and report for every processed
	// folder, even when no lookup spreadsheet exists.
	PolicyAlways Policy = "always"
	// PolicyLookup routes to not_found only when a lookup spreadsheet exists.
	// Without one, images keep their basename in the folder's output root.
	PolicyLookup Policy = "lookup"
)

// ParsePolicy converts a policy name into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case PolicyAlways, PolicyLookup:
		return p, nil
	default:
		return "", fmt.Errorf("invalid policy: %s (must be always or lookup)", s)
	}
}

// RoutesNotFound reports whether unmatched images go to not_found.
func (p Policy) RoutesNotFound(hasTable bool) bool {
	return p == PolicyAlways || hasTable
}

// Options configures an organizer run.
type Options struct {
	// InputFolder is the root image folder. Its immediate subfolders are
	// processed too.
	InputFolder string `toml:"input_folder"`
	// OutputFolder receives the thumbnails, mirroring InputFolder.
	OutputFolder string `toml:"output_folder"`
	// BarcodeColumn is the header name of the barcode column.
	BarcodeColumn string `toml:"barcode_column"`
	// WorkDir is searched for the lookup spreadsheet.
	WorkDir string `toml:"workdir"`
	// Policy selects not-found routing.
	Policy Policy `toml:"policy"`
}

// DefaultOptions returns the default run options.
func DefaultOptions() Options {
	return Options{
		InputFolder:   "./images",
		OutputFolder:  "output_images",
		BarcodeColumn: "barcode",
		WorkDir:       ".",
		Policy:        PolicyAlways,
	}
}

// Validate checks that every option is usable.
func (o Options) Validate() error {
	if o.InputFolder == "" {
		return NewConfigError("input_folder", errors.New("must not be empty"))
	}
	if o.OutputFolder == "" {
		return NewConfigError("output_folder", errors.New("must not be empty"))
	}
	if o.BarcodeColumn == "" {
		return NewConfigError("barcode_column", errors.New("must not be empty"))
	}
	if _, err := ParsePolicy(string(o.Policy)); err != nil {
		return NewConfigError("policy", err)
	}
	return nil
}

// LoadOptionsFile decodes a TOML file on top of base. Keys missing from the
// file keep their value from base.
func LoadOptionsFile(path string, base Options) (Options, error) {
	file, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	opts := base
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&opts); err != nil {
		return base, NewConfigError(path, fmt.Errorf("parse config: %w", err))
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	return opts, nil
}
