package find

import (
	"io/fs"
	"path"
	"path/filepath"
	"testing/fstest"
)

// mapFS adapts fstest.MapFS to the host-path style used by Finder. Paths in
// failDirs fail to list with the given error, and every listing is recorded.
type mapFS struct {
	files    fstest.MapFS
	failDirs map[string]error
	listed   []string
}

func newMapFS(names ...string) *mapFS {
	files := fstest.MapFS{}
	for _, n := range names {
		files[n] = &fstest.MapFile{Data: []byte(n)}
	}
	return &mapFS{files: files, failDirs: map[string]error{}}
}

func (m *mapFS) clean(name string) (string, error) {
	if name == "" {
		return "", fs.ErrNotExist
	}
	return path.Clean(filepath.ToSlash(name)), nil
}

func (m *mapFS) Stat(name string) (fs.FileInfo, error) {
	p, err := m.clean(name)
	if err != nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: err}
	}
	return fs.Stat(m.files, p)
}

func (m *mapFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.listed = append(m.listed, name)
	p, err := m.clean(name)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if err, ok := m.failDirs[p]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return fs.ReadDir(m.files, p)
}

// recorder captures tracer events in order.
type recorder struct {
	events []string
}

func (r *recorder) NoRoot()                      { r.events = append(r.events, "noroot") }
func (r *recorder) Enter(dir string)             { r.events = append(r.events, "enter "+dir) }
func (r *recorder) Matched(name, pattern string) { r.events = append(r.events, "match "+name+" "+pattern) }
func (r *recorder) Missed(name string)           { r.events = append(r.events, "miss "+name) }
