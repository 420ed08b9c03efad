package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fileops/internal/classify"
	"fileops/internal/command"
	"fileops/internal/errors"
	"fileops/internal/templates"
	"fileops/pkg/types"

	"github.com/spf13/cobra"
)

// default names suggested when no path is given
var suggestedNames = map[types.Mode][2]string{
	types.NewFile:      {"New File", ".txt"},
	types.NewDirectory: {"New Folder", ""},
	types.NewLink:      {"New Link", ""},
}

// NewNewCmd creates the new command
func NewNewCmd() *cobra.Command {
	var (
		template string
		target   string
		flags    execFlags
	)

	cmd := &cobra.Command{
		Use:   "new (file|dir|link) [PATH]",
		Short: "Create a file, directory or symbolic link",
		Long: `New creates an empty file, a directory or a symbolic link at PATH. Files and
directories may be created from a template (--template NAME, see the
templates command); links need --target. Without PATH a free name such as
"New File.txt" is picked in the current directory.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"file", "dir", "link"},
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := createOperation(args[0])
			if err != nil {
				return err
			}

			var path string
			if len(args) == 2 {
				path = args[1]
			} else if path, err = suggestPath(op); err != nil {
				return err
			}
			if path, err = absPath(path); err != nil {
				return err
			}

			var tplPath string
			switch {
			case template != "" && op.Mode == types.NewLink:
				return errors.New("links are not created from templates")
			case template != "":
				if tplPath, err = templates.Resolve(cfg.Templates.Dir, template); err != nil {
					return err
				}
			}
			if op.Mode == types.NewLink && target == "" {
				return errors.New("a link needs --target")
			}

			// The parent directory stands in for the original so that an
			// existing entry at path is reported as such
			cand, classFlags := classify.New().Evaluate(filepath.Dir(path), path, op)
			return execute(cmd, command.NewCreateRequest(op, cand.Candidate, target, tplPath, classFlags), flags)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "", "template name from the templates directory")
	cmd.Flags().StringVar(&target, "target", "", "link target (new link only)")
	flags.register(cmd)
	return cmd
}

func createOperation(kind string) (types.Operation, error) {
	switch kind {
	case "file":
		return types.OpNewFile, nil
	case "dir", "directory", "folder":
		return types.OpNewDirectory, nil
	case "link", "symlink":
		return types.OpNewLink, nil
	}
	return types.Operation{}, fmt.Errorf("unknown kind %q: want file, dir or link", kind)
}

func suggestPath(op types.Operation) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	name := suggestedNames[op.Mode]
	base, err := classify.UniqueName(wd, name[0], name[1])
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, base), nil
}

func absPath(path string) (string, error) {
	if err := classify.ValidatePath(path); err != nil {
		return "", err
	}
	return filepath.Abs(path)
}
