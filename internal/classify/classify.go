// Package classify computes the classification flags for a candidate
// destination typed into the rename/create dialog.
//
// Classification is total: filesystem errors never escape, they are read as
// "does not exist". Nothing is cached, so every call re-stats the paths and
// reflects concurrent changes made by other processes.
package classify

import (
	"os"
	"path/filepath"
	"strings"

	"fileops/internal/errors"
	"fileops/internal/log"
	"fileops/pkg/types"
)

// Filesystem is the classifier's view of the filesystem
type Filesystem interface {
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	SameFile(a, b os.FileInfo) bool
	Readlink(name string) (string, error)
}

// OSFilesystem is the real filesystem
type OSFilesystem struct{}

func (OSFilesystem) Stat(name string) (os.FileInfo, error)  { return os.Stat(name) }
func (OSFilesystem) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }
func (OSFilesystem) SameFile(a, b os.FileInfo) bool         { return os.SameFile(a, b) }
func (OSFilesystem) Readlink(name string) (string, error)   { return os.Readlink(name) }

// Classifier evaluates candidates against a Filesystem
type Classifier struct {
	fs Filesystem
}

// New creates a Classifier backed by the real filesystem
func New() *Classifier {
	return &Classifier{fs: OSFilesystem{}}
}

// NewWithFilesystem creates a Classifier backed by fs
func NewWithFilesystem(fs Filesystem) *Classifier {
	return &Classifier{fs: fs}
}

var defaultClassifier = New()

// Classify evaluates raw against original on the real filesystem
func Classify(original, raw string, op types.Operation) types.ClassificationFlags {
	return defaultClassifier.Classify(original, raw, op)
}

// ValidatePath rejects text that must never reach a shell command line.
// The destination comes from a multi-line text field, so an embedded
// newline would otherwise split the command in two.
func ValidatePath(raw string) error {
	if strings.ContainsAny(raw, "\n\r\x00") {
		return errors.NewPathError("path contains a newline or NUL byte", raw, errors.InvalidPath, nil)
	}
	return nil
}

// Resolve turns the raw field text into an absolute candidate. Relative text
// is taken relative to the original's parent directory, so "." is that
// parent and ".." its parent. Empty text resolves to the parent itself.
func Resolve(original, raw string) types.PathCandidate {
	original = filepath.Clean(original)
	candidate := raw
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(filepath.Dir(original), candidate)
	}
	candidate = filepath.Clean(candidate)
	return types.PathCandidate{
		Original:  original,
		Candidate: candidate,
		Parent:    filepath.Dir(candidate),
		Raw:       raw,
	}
}

// Classify computes the flags for raw against original. It never fails.
func (c *Classifier) Classify(original, raw string, op types.Operation) types.ClassificationFlags {
	_, flags := c.Evaluate(original, raw, op)
	return flags
}

// Evaluate resolves raw and classifies it in one step
func (c *Classifier) Evaluate(original, raw string, op types.Operation) (types.PathCandidate, types.ClassificationFlags) {
	var flags types.ClassificationFlags
	cand := Resolve(original, raw)

	if ValidatePath(raw) != nil || ValidatePath(original) != nil {
		flags.Invalid = true
		return cand, flags
	}

	if c.Equivalent(cand.Original, cand.Candidate) {
		flags.SameAsOriginal = true
		// In create modes the original is only a suggested name, and it
		// may already be taken
		if op.IsCreate() {
			c.existence(cand.Candidate, &flags)
		}
		return cand, flags
	}

	if c.existence(cand.Candidate, &flags) {
		return cand, flags
	}

	parent, err := c.fs.Stat(cand.Parent)
	switch {
	case err != nil:
		flags.ParentMissing = true
	case !parent.IsDir():
		flags.ParentExistsAsFile = true
	}

	log.Debugf("classified %q as %s", cand.Candidate, flags)
	return cand, flags
}

// existence sets Exists or ExistsIsDirectory and reports whether path exists.
// Dangling symlinks count as existing files; symlinks to directories count
// as directories.
func (c *Classifier) existence(path string, flags *types.ClassificationFlags) bool {
	if _, err := c.fs.Lstat(path); err != nil {
		return false
	}
	if info, err := c.fs.Stat(path); err == nil && info.IsDir() {
		flags.ExistsIsDirectory = true
	} else {
		flags.Exists = true
	}
	return true
}

// Equivalent reports whether a and b name the same filesystem entry.
// Directory components are resolved through symlinks, the final component
// is not, so a symlink and its target are different entries.
func (c *Classifier) Equivalent(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if a == b {
		return true
	}
	ia, err := c.fs.Lstat(a)
	if err != nil {
		return false
	}
	ib, err := c.fs.Lstat(b)
	if err != nil {
		return false
	}
	return c.fs.SameFile(ia, ib)
}
