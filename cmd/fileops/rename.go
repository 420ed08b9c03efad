package main

import (
	"fileops/internal/classify"
	"fileops/internal/command"
	"fileops/internal/errors"
	"fileops/pkg/types"

	"github.com/spf13/cobra"
)

// NewRenameCmd creates the rename command
func NewRenameCmd() *cobra.Command {
	var (
		opName string
		flags  execFlags
	)

	cmd := &cobra.Command{
		Use:     "rename SOURCE DEST",
		Aliases: []string{"mv"},
		Short:   "Move, copy or link an existing entry",
		Long: `Rename moves SOURCE to DEST, or copies or links it with --op. A relative DEST
is taken from SOURCE's directory, so "rename notes.txt todo.txt" stays in
place. An existing file is only replaced with --overwrite, and a missing
parent directory is only created with --parents (or when asked with -i).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := types.ParseOperation(opName)
			if err != nil {
				return err
			}
			if op.Mode != types.Rename {
				return errors.Newf("%s is not a rename operation, use the new command", op)
			}
			if !cfg.DialogOptions().Permits(op) {
				return errors.Newf("%s is disabled by the configuration", op)
			}

			path, err := absPath(args[0])
			if err != nil {
				return err
			}
			c := classify.New()
			src, err := c.Inspect(path)
			if err != nil {
				return err
			}
			if op.UsesTarget() && !src.IsLink {
				return errors.NewPathError("source is not a symlink", src.Path, errors.InvalidPath, nil)
			}

			cand, classFlags := c.Evaluate(src.Path, args[1], op)
			return execute(cmd, command.NewRenameRequest(op, src, cand.Candidate, classFlags), flags)
		},
	}

	cmd.Flags().StringVarP(&opName, "op", "o", "move", "operation: move, copy, link, copy-target, link-target")
	flags.register(cmd)
	return cmd
}
