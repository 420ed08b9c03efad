package dialog

import (
	"path/filepath"
	"strings"
)

// compound extensions kept whole when splitting a name
var compoundExtensions = []string{
	".tar.gz", ".tar.bz2", ".tar.xz", ".tar.zst", ".tar.lz", ".tar.lzma", ".tar.Z",
}

// Parts is a path split the way the name/extension/parent fields show it
type Parts struct {
	Parent string
	Name   string
	Ext    string
}

// SplitPath splits path into parent, name and extension. Directories and
// dotfiles without a further dot keep their whole name.
func SplitPath(path string, isDir bool) Parts {
	path = filepath.Clean(path)
	p := Parts{Parent: filepath.Dir(path)}
	p.Name, p.Ext = SplitName(filepath.Base(path), isDir)
	return p
}

// SplitName separates a base name from its extension
func SplitName(base string, isDir bool) (name, ext string) {
	if isDir {
		return base, ""
	}
	lower := strings.ToLower(base)
	for _, ce := range compoundExtensions {
		if strings.HasSuffix(lower, strings.ToLower(ce)) && len(base) > len(ce) {
			return base[:len(base)-len(ce)], base[len(base)-len(ce):]
		}
	}
	ext = filepath.Ext(base)
	if ext == "." || ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), ext
}

// Base joins name and extension
func (p Parts) Base() string {
	return p.Name + p.Ext
}

// Join rebuilds the full path
func (p Parts) Join() string {
	return filepath.Join(p.Parent, p.Base())
}
