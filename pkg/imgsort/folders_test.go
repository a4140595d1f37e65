package imgsort

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.Png", true},
		{"a.webp", true},
		{"a.gif", false},
		{"a.jpg.txt", false},
		{"jpg", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.expected {
			t.Errorf("IsImageFile(%q) = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestBasename(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"IMG_001.jpg", "IMG_001"},
		{"archive.tar.png", "archive.tar"},
		{"1023.PNG", "1023"},
	}

	for _, tt := range tests {
		if got := Basename(tt.name); got != tt.expected {
			t.Errorf("Basename(%q) = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestListFolders(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"b", "a", "output"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(t, filepath.Join(root, "c.jpg"), "x")

	folders, err := ListFolders(root, filepath.Join(root, "output"))
	if err != nil {
		t.Fatalf("ListFolders failed: %v", err)
	}

	want := []string{root, filepath.Join(root, "a"), filepath.Join(root, "b")}
	if len(folders) != len(want) {
		t.Fatalf("Expected %v, got %v", want, folders)
	}
	for i := range want {
		if folders[i] != want[i] {
			t.Errorf("Folder %d: expected %q, got %q", i, want[i], folders[i])
		}
	}
}

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.png"), "x")
	writeFile(t, filepath.Join(dir, "a.JPG"), "x")
	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	if err := os.Mkdir(filepath.Join(dir, "folder.jpg"), 0755); err != nil {
		t.Fatal(err)
	}

	names, err := ListImages(dir)
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a.JPG" || names[1] != "b.png" {
		t.Errorf("Expected [a.JPG b.png], got %v", names)
	}
}
