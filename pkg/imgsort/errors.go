package imgsort

import (
	"errors"
	"fmt"
)

// ErrLocked indicates another run holds the output folder.
var ErrLocked = errors.New("output folder is locked by another run")

// ConfigError represents an unusable configuration. It aborts the run.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   err,
	}
}

// Stages at which a single image can fail.
const (
	StageDecode    = "decode"
	StageTransform = "transform"
	StageWrite     = "write"
)

// ImageError represents a failure on one image. The image is skipped and the
// run continues.
type ImageError struct {
	Path  string
	Stage string // StageDecode, StageTransform or StageWrite
	Err   error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// NewImageError creates a new ImageError.
func NewImageError(path, stage string, err error) *ImageError {
	return &ImageError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
