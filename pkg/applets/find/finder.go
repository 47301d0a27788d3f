package find

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ReadDirError is returned when a directory cannot be listed. It aborts the
// whole search.
type ReadDirError struct {
	Path string
	Err  error
}

func (e *ReadDirError) Error() string {
	err := e.Err
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s: %v", e.Path, err)
}

func (e *ReadDirError) Unwrap() error {
	return e.Err
}

// Finder walks root directories depth-first and collects the paths of
// entries whose base name matches one of its matchers.
type Finder struct {
	fsys     FS
	opts     Options
	matchers []*Matcher
	trace    Tracer
}

// NewFinder returns a Finder. A nil tracer disables progress output.
func NewFinder(fsys FS, opts Options, matchers []*Matcher, tracer Tracer) *Finder {
	if tracer == nil {
		tracer = nopTracer{}
	}
	return &Finder{
		fsys:     fsys,
		opts:     opts,
		matchers: matchers,
		trace:    tracer,
	}
}

// Find searches every root in order and returns matches in discovery order.
// With no roots the current directory is searched. The first directory that
// cannot be read aborts the search and no matches are returned.
func (f *Finder) Find(roots []string) ([]string, error) {
	if len(roots) == 0 {
		f.trace.NoRoot()
		roots = []string{"."}
	}
	matches := []string{}
	for _, root := range roots {
		if err := f.walk(root, &matches); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

func (f *Finder) walk(dir string, matches *[]string) error {
	f.trace.Enter(dir)
	entries, err := f.fsys.ReadDir(dir)
	if err != nil {
		return &ReadDirError{Path: dir, Err: err}
	}
	for _, entry := range entries {
		childPath := joinPath(dir, entry.Name())
		if f.opts.Recursive && f.isDir(childPath, entry) {
			if err := f.walk(childPath, matches); err != nil {
				return err
			}
			continue
		}
		name := entry.Name()
		if m := firstMatch(f.matchers, name); m != nil {
			f.trace.Matched(name, m.Source())
			*matches = append(*matches, childPath)
		} else {
			f.trace.Missed(name)
		}
	}
	return nil
}

// isDir follows symlinks so that a link to a directory is descended into.
func (f *Finder) isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := f.fsys.Stat(path)
	return err == nil && info.IsDir()
}

// joinPath appends name to dir without cleaning, so "." stays "./name".
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
