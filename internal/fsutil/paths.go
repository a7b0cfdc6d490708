// Package fsutil holds small path helpers shared by the commands.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/croissant/pkg/croissant"
)

// ValidateOutputPath makes sure a file can be written at path. Missing parent
// directories are created, and writability is checked with a uniquely named
// temporary file in the same directory, so no existing file is touched.
func ValidateOutputPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory for %s: %v: %w", path, err, croissant.ErrInvalidOutputPath)
	}

	f, err := os.CreateTemp(dir, ".croissant-*")
	if err != nil {
		return fmt.Errorf("cannot write to %s: %v: %w", path, err, croissant.ErrInvalidOutputPath)
	}
	name := f.Name()
	f.Close()
	_ = os.Remove(name)

	return nil
}

// NormalizePath returns the clean absolute form of an existing path with
// symbolic links resolved.
func NormalizePath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}
	return resolved, nil
}

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatFileSize renders a byte count with binary units, for example
// "512 B" or "1.5 KB". Sizes above bytes get one decimal.
func FormatFileSize(size int64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// FileExtension returns the lowercase extension of path without the dot,
// or "" when there is none.
func FileExtension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// IsFileReadable reports whether path is a regular file that can be opened.
func IsFileReadable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
