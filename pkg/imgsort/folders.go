package imgsort

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// imageExts contains the recognized image extensions (lower case).
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsImageFile reports whether name has a recognized image extension.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// Basename returns name without its last extension.
func Basename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// ListFolders returns root followed by its immediate subdirectories in
// directory-listing order. A subdirectory equal to exclude is left out, so
// an output folder nested in the input is never read back.
func ListFolders(root, exclude string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	excludeAbs := ""
	if exclude != "" {
		if excludeAbs, err = filepath.Abs(exclude); err != nil {
			return nil, err
		}
	}

	folders := []string{root}
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if !isDir(path, entry) {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil && abs == excludeAbs {
			continue
		}
		folders = append(folders, path)
	}

	return folders, nil
}

// ListImages returns the names of the image files directly inside dir.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if isDir(filepath.Join(dir, entry.Name()), entry) {
			continue
		}
		if IsImageFile(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// isDir follows symlinks, unlike DirEntry.IsDir.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
