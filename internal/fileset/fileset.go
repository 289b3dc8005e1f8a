// Package fileset expands user-supplied paths into an ordered mapping
// from base file name to a concrete location on disk.
package fileset

import (
	"os"
	"path/filepath"

	"github.com/zckv/action-update-release/internal/logger"
)

// File is one resolved entry: the asset name and where its bytes live.
type File struct {
	Name string
	Path string
}

// Set is an insertion-ordered mapping from base name to path. A name
// collision keeps the position of the first insertion and takes the
// path of the last one.
type Set struct {
	order  []string
	byName map[string]string
}

// Resolve expands paths into a Set. A regular file contributes one
// entry under its base name; a directory contributes one entry per
// regular file directly inside it, without descending into
// subdirectories. A path that resolves to neither is reported and
// skipped; it does not abort the run.
func Resolve(paths []string) *Set {
	s := &Set{byName: make(map[string]string)}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			logger.Log.Warn("Path does not exist", "path", p)
			continue
		}

		if !info.IsDir() {
			s.add(filepath.Base(p), p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			logger.Log.Warn("Cannot read directory", "path", p, "err", err)
			continue
		}
		for _, e := range entries {
			if e.Type().IsRegular() {
				s.add(e.Name(), filepath.Join(p, e.Name()))
			}
		}
	}

	return s
}

func (s *Set) add(name, path string) {
	if _, ok := s.byName[name]; !ok {
		s.order = append(s.order, name)
	}
	s.byName[name] = path
}

// Files returns the resolved entries in insertion order.
func (s *Set) Files() []File {
	files := make([]File, 0, len(s.order))
	for _, name := range s.order {
		files = append(files, File{Name: name, Path: s.byName[name]})
	}
	return files
}

// Len reports the number of resolved entries.
func (s *Set) Len() int {
	return len(s.order)
}
