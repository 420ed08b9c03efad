package types

import (
	"fmt"
	"strings"
)

// Mode is the dialog's top level purpose
type Mode int

const (
	// Rename acts on an existing entry (move, copy or link it elsewhere)
	Rename Mode = iota
	// NewFile creates a regular file, empty or from a template
	NewFile
	// NewDirectory creates a directory, empty or from a template
	NewDirectory
	// NewLink creates a symbolic link to a target
	NewLink
)

// RenameOp is the sub-variant selected for Rename mode
type RenameOp int

const (
	Move RenameOp = iota
	Copy
	Link
	// CopyTarget copies what a symlink points to rather than the link itself
	CopyTarget
	// LinkTarget links to what a symlink points to rather than the link itself
	LinkTarget
)

// Operation is the user's selected action. Op is only meaningful when
// Mode is Rename.
type Operation struct {
	Mode Mode
	Op   RenameOp
}

// Convenience values for the eight distinct operations
var (
	OpMove         = Operation{Mode: Rename, Op: Move}
	OpCopy         = Operation{Mode: Rename, Op: Copy}
	OpLink         = Operation{Mode: Rename, Op: Link}
	OpCopyTarget   = Operation{Mode: Rename, Op: CopyTarget}
	OpLinkTarget   = Operation{Mode: Rename, Op: LinkTarget}
	OpNewFile      = Operation{Mode: NewFile}
	OpNewDirectory = Operation{Mode: NewDirectory}
	OpNewLink      = Operation{Mode: NewLink}
)

var operationNames = map[Operation]string{
	OpMove:         "move",
	OpCopy:         "copy",
	OpLink:         "link",
	OpCopyTarget:   "copy-target",
	OpLinkTarget:   "link-target",
	OpNewFile:      "new-file",
	OpNewDirectory: "new-dir",
	OpNewLink:      "new-link",
}

// Operations lists every operation in dialog order
var Operations = []Operation{
	OpMove, OpCopy, OpLink, OpCopyTarget, OpLinkTarget,
	OpNewFile, OpNewDirectory, OpNewLink,
}

func (o Operation) String() string {
	if o.Mode != Rename {
		o.Op = Move
	}
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("operation(%d/%d)", o.Mode, o.Op)
}

// IsCreate reports whether the operation creates a new entry
func (o Operation) IsCreate() bool {
	return o.Mode != Rename
}

// IsMove reports whether the operation renames or moves in place
func (o Operation) IsMove() bool {
	return o.Mode == Rename && o.Op == Move
}

// IsCopy reports whether the operation is a copy variant
func (o Operation) IsCopy() bool {
	return o.Mode == Rename && (o.Op == Copy || o.Op == CopyTarget)
}

// IsLink reports whether the operation produces a symlink
func (o Operation) IsLink() bool {
	return o.Mode == NewLink || (o.Mode == Rename && (o.Op == Link || o.Op == LinkTarget))
}

// PlacesDirectory reports whether the entry the operation puts at the
// destination is a directory. isDir describes the source entry; links are
// never directories.
func (o Operation) PlacesDirectory(isDir bool) bool {
	switch o.Mode {
	case NewDirectory:
		return true
	case Rename:
		return isDir && !o.IsLink()
	}
	return false
}

// UsesTarget reports whether the operation dereferences the source symlink
func (o Operation) UsesTarget() bool {
	return o.Mode == Rename && (o.Op == CopyTarget || o.Op == LinkTarget)
}

// ParseOperation maps a name such as "copy-target" or "new-dir" to an Operation
func ParseOperation(name string) (Operation, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "rename":
		return OpMove, nil
	case "new-directory", "new-folder", "mkdir":
		return OpNewDirectory, nil
	}
	for op, n := range operationNames {
		if n == name {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("unknown operation: %q", name)
}
