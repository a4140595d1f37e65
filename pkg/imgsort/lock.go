package imgsort

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// outputLock guards an output folder against concurrent runs.
type outputLock struct {
	flock *flock.Flock
	path  string
}

// lockOutput takes a non-blocking exclusive lock on "<output>.lock".
func lockOutput(output string) (*outputLock, error) {
	path := filepath.Clean(output) + ".lock"
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	fl := flock.New(path)
	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to try lock on %s: %w", path, err)
	}
	if !acquired {
		_ = fl.Close()
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return &outputLock{flock: fl, path: path}, nil
}

// release drops the lock and removes the lock file.
func (l *outputLock) release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
