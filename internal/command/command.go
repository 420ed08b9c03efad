// Package command selects and builds the shell command that carries out a
// confirmed rename/create dialog.
//
// Every path is quoted individually before it is placed on the command line,
// and any path containing a newline is refused before a line is built.
package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"fileops/internal/classify"
	"fileops/internal/errors"
	"fileops/pkg/types"

	"github.com/alessio/shellescape"
)

// Family is the program a command runs
type Family string

const (
	FamilyMove  Family = "mv"
	FamilyCopy  Family = "cp"
	FamilyLink  Family = "ln"
	FamilyMkdir Family = "mkdir"
	FamilyTouch Family = "touch"
)

// Request is everything the selector needs to build one command
type Request struct {
	Operation types.Operation
	Flags     types.ClassificationFlags
	// Source is the existing entry for Rename operations and the link
	// target for NewLink. It is unused by NewFile and NewDirectory.
	Source      string
	Destination string
	// SourceTarget is the resolved target of a symlink Source, used by
	// CopyTarget and LinkTarget
	SourceTarget string
	// Template is copied for NewFile/NewDirectory when set
	Template string
	// IsDir describes what is being placed: the source, or its target for
	// CopyTarget and LinkTarget
	IsDir  bool
	IsLink bool

	OverwriteConfirmed bool
	ParentConfirmed    bool
	AsRoot             bool
}

// Command is a fully formed shell command
type Command struct {
	Family      Family
	Line        string
	WorkDir     string
	AsRoot      bool
	Source      string
	Destination string
	// Atomic marks a move that may first be attempted with rename(2)
	Atomic bool
	// CreatesParent is set when the line starts with mkdir -p
	CreatesParent bool
}

func (c *Command) String() string {
	return c.Line
}

// Build checks the request and selects exactly one command family
func Build(req Request) (*Command, error) {
	op := req.Operation

	if req.Destination == "" {
		return nil, errors.NewPathError("destination is empty", "", errors.InvalidPath, nil)
	}
	for _, p := range []string{req.Source, req.Destination, req.SourceTarget, req.Template} {
		if err := classify.ValidatePath(p); err != nil {
			return nil, err
		}
	}
	if req.Flags.Invalid {
		return nil, errors.NewPathError("invalid destination", req.Destination, errors.InvalidPath, nil)
	}
	if op.Mode == types.Rename && req.Source == "" {
		return nil, errors.NewPathError("source is empty", "", errors.InvalidPath, nil)
	}
	if op.Mode == types.NewLink && req.Source == "" {
		return nil, errors.NewPathError("link target is empty", "", errors.InvalidPath, nil)
	}
	if op.UsesTarget() && req.SourceTarget == "" {
		return nil, errors.NewPathError("source is not a resolvable symlink", req.Source, errors.InvalidPath, nil)
	}

	dest := filepath.Clean(req.Destination)

	if req.Flags.SameAsOriginal && op.Mode == types.Rename {
		if op.IsMove() {
			return nil, errors.NewPathError("destination is unchanged", dest, errors.Unchanged, nil)
		}
		return nil, errors.NewPathError("destination is the source itself", dest, errors.SameAsOriginal, nil)
	}

	if req.Flags.ExistsIsDirectory {
		return nil, errors.NewPathError("destination exists as a directory", dest, errors.DestinationIsDirectory, nil)
	}
	if req.Flags.ParentExistsAsFile {
		return nil, errors.NewPathError("destination parent is not a directory", filepath.Dir(dest), errors.ParentIsFile, nil)
	}

	overwrite := false
	if req.Flags.Exists {
		if op.PlacesDirectory(req.IsDir) {
			return nil, errors.NewPathError("destination exists as a file", dest, errors.TypeConflict, nil)
		}
		if !req.OverwriteConfirmed {
			return nil, errors.NewPathError("destination exists", dest, errors.NeedsOverwriteConfirmation, nil)
		}
		overwrite = true
	}

	if req.Flags.ParentMissing && !req.ParentConfirmed {
		return nil, errors.NewPathError("destination parent does not exist", filepath.Dir(dest), errors.NeedsParentCreationConfirmation, nil)
	}

	cmd := &Command{
		Source:        req.Source,
		Destination:   dest,
		AsRoot:        req.AsRoot,
		CreatesParent: req.Flags.ParentMissing,
		WorkDir:       workDir(req, dest),
	}

	var args []string
	switch op.Mode {
	case types.Rename:
		cmd.Family, args = renameArgs(req, dest, overwrite)
		cmd.Atomic = op.IsMove() && !cmd.CreatesParent && !cmd.AsRoot
	case types.NewFile:
		if req.Template != "" {
			cmd.Family, args = FamilyCopy, []string{"cp", "-f", "--", req.Template, dest}
		} else {
			cmd.Family, args = FamilyTouch, []string{"touch", "--", dest}
		}
	case types.NewDirectory:
		if req.Template != "" {
			cmd.Family, args = FamilyCopy, []string{"cp", "-rL", "--", req.Template, dest}
		} else {
			cmd.Family, args = FamilyMkdir, []string{"mkdir", "--", dest}
		}
	case types.NewLink:
		cmd.Family, args = FamilyLink, []string{"ln", linkFlag(overwrite), "--", req.Source, dest}
	default:
		return nil, fmt.Errorf("unsupported operation: %s", op)
	}

	line := join(args)
	if cmd.CreatesParent {
		line = join([]string{"mkdir", "-p", "--", filepath.Dir(dest)}) + " && " + line
	}
	cmd.Line = line
	return cmd, nil
}

func renameArgs(req Request, dest string, overwrite bool) (Family, []string) {
	from := req.Source
	if req.Operation.UsesTarget() {
		from = req.SourceTarget
	}

	switch req.Operation.Op {
	case types.Copy, types.CopyTarget:
		args := []string{"cp", "-Pf"}
		if req.IsDir {
			args[1] = "-Pfr"
		}
		if overwrite {
			args = append(args, "--remove-destination")
		}
		return FamilyCopy, append(args, "--", from, dest)
	case types.Link, types.LinkTarget:
		return FamilyLink, []string{"ln", linkFlag(overwrite), "--", from, dest}
	}
	return FamilyMove, []string{"mv", "-f", "--", from, dest}
}

func linkFlag(overwrite bool) string {
	if overwrite {
		return "-sf"
	}
	return "-s"
}

func workDir(req Request, dest string) string {
	if req.Operation.Mode == types.Rename {
		return filepath.Dir(filepath.Clean(req.Source))
	}
	if req.Flags.ParentMissing {
		return "/"
	}
	return filepath.Dir(dest)
}

// join quotes each word. Flags and program names are constants, paths are
// user input.
func join(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = shellescape.Quote(w)
	}
	return strings.Join(quoted, " ")
}
