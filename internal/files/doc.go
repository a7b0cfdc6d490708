// Package files groups file access used by the croissant tool.
//
// The filesystem sub-package provides the FileSystemProvider abstraction with
// an OS implementation (directory walks via godirwalk) and an in-memory one
// for tests. Metadata documents are loaded and CSV inputs are opened through it.
//
// # Usage
//
//	import "github.com/vvka-141/croissant/internal/files/filesystem"
//
//	fsys := filesystem.NewOSFileSystem()
//	data, err := fsys.ReadFile("people.json")
package files
