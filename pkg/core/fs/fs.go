// Package fs provides filesystem operations that respect sandbox boundaries.
// Applets should use this package instead of direct os calls.
package fs

import (
	"io/fs"
	"os"

	"github.com/rcarmo/go-rfind/pkg/sandbox"
)

// Stat returns file info, following symlinks.
func Stat(path string) (os.FileInfo, error) {
	return sandbox.Stat(path)
}

// ReadDir reads directory contents sorted by name.
func ReadDir(path string) ([]fs.DirEntry, error) {
	return sandbox.ReadDir(path)
}

// Host exposes the sandboxed host filesystem through method values so that
// callers can depend on a small interface and tests can swap it out.
type Host struct{}

// Stat implements the Stat half of a read-only filesystem.
func (Host) Stat(name string) (fs.FileInfo, error) {
	return Stat(name)
}

// ReadDir implements the ReadDir half of a read-only filesystem.
func (Host) ReadDir(name string) ([]fs.DirEntry, error) {
	return ReadDir(name)
}
