// Package templates lists the files and directories a new entry can be
// created from.
package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fileops/internal/errors"
	"fileops/internal/log"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
)

// Template is one entry of the templates directory
type Template struct {
	Name  string
	Path  string
	IsDir bool
	Size  int64
}

// String renders the template as a listing line
func (t Template) String() string {
	if t.IsDir {
		return fmt.Sprintf("%-32s %8s", t.Name+"/", "-")
	}
	return fmt.Sprintf("%-32s %8s", t.Name, humanize.Bytes(uint64(t.Size)))
}

// Filter decides which names are shown
type Filter struct {
	include []glob.Glob
	exclude []glob.Glob
}

// NewFilter compiles include and exclude patterns. An empty include list
// accepts every name.
func NewFilter(include, exclude []string) (*Filter, error) {
	f := &Filter{}
	var err error
	if f.include, err = compile(include); err != nil {
		return nil, err
	}
	if f.exclude, err = compile(exclude); err != nil {
		return nil, err
	}
	return f, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("invalid template pattern %q", p), "templates", errors.InvalidConfig, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Match reports whether name passes the filter
func (f *Filter) Match(name string) bool {
	for _, g := range f.exclude {
		if g.Match(name) {
			return false
		}
	}
	if len(f.include) == 0 {
		return true
	}
	for _, g := range f.include {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// List returns the templates in dir that match the filter. dirs selects
// directory templates (for new directories) instead of regular files.
// A missing directory yields no templates.
func List(dir string, include, exclude []string, dirs bool) ([]Template, error) {
	filter, err := NewFilter(include, exclude)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("templates directory %s does not exist", dir)
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read templates directory %s", dir)
	}

	var out []Template
	for _, entry := range entries {
		if !filter.Match(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Follow symlinks so a linked template counts as what it points at
		info, err := os.Stat(path)
		if err != nil {
			log.Debugf("skipping template %s: %v", path, err)
			continue
		}
		if info.IsDir() != dirs || (!dirs && !info.Mode().IsRegular()) {
			continue
		}
		out = append(out, Template{Name: entry.Name(), Path: path, IsDir: info.IsDir(), Size: info.Size()})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Resolve returns the path of template name inside dir. Names that would
// leave dir are rejected.
func Resolve(dir, name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
		return "", errors.NewPathError("template name must be a plain file name", name, errors.InvalidPath, nil)
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", errors.NewPathError("template not found", path, errors.InvalidPath, err)
	}
	return path, nil
}
