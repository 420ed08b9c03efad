package classify

import (
	"os"
	"path/filepath"

	"fileops/internal/errors"
)

// Entry describes an existing source path
type Entry struct {
	Path   string
	IsDir  bool
	IsLink bool
	// Target is the absolute target of a symlink, empty otherwise
	Target      string
	TargetIsDir bool
}

// Inspect describes path without following a final symlink
func (c *Classifier) Inspect(path string) (Entry, error) {
	if err := ValidatePath(path); err != nil {
		return Entry{}, err
	}
	path = filepath.Clean(path)
	info, err := c.fs.Lstat(path)
	if err != nil {
		return Entry{}, errors.NewPathError("source does not exist", path, errors.SourceNotFound, err)
	}

	e := Entry{Path: path, IsDir: info.IsDir()}
	if info.Mode()&os.ModeSymlink == 0 {
		return e, nil
	}

	e.IsLink = true
	target, err := c.fs.Readlink(path)
	if err != nil {
		return e, errors.NewPathError("failed to read link", path, errors.InvalidPath, err)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	e.Target = filepath.Clean(target)
	if ti, err := c.fs.Stat(path); err == nil {
		e.TargetIsDir = ti.IsDir()
	}
	return e, nil
}

// Inspect describes path using the OS filesystem
func Inspect(path string) (Entry, error) {
	return defaultClassifier.Inspect(path)
}
