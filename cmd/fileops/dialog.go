package main

import (
	"fmt"
	"path/filepath"

	"fileops/internal/command"
	"fileops/internal/config"
	"fileops/internal/log"
	"fileops/internal/templates"
	"fileops/internal/tui"
	"fileops/internal/watch"
	"fileops/pkg/types"

	"github.com/spf13/cobra"
)

// NewDialogCmd creates the interactive dialog command
func NewDialogCmd() *cobra.Command {
	var (
		opName  string
		target  string
		dryRun  bool
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "dialog [PATH]",
		Short: "Open the interactive rename/create dialog",
		Long: `Dialog opens a terminal dialog for PATH. With a rename operation PATH is the
entry to act on; with new-file, new-dir or new-link it is the suggested
name, and a free name in the current directory is picked when it is left
out. The destination is re-checked on every keystroke and whenever its
directory changes on disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := types.ParseOperation(opName)
			if err != nil {
				return err
			}

			var path string
			switch {
			case len(args) == 1:
				path = args[0]
			case op.Mode == types.Rename:
				return fmt.Errorf("%s needs a PATH", op)
			default:
				if path, err = suggestPath(op); err != nil {
					return err
				}
			}
			if path, err = absPath(path); err != nil {
				return err
			}

			params := tui.Params{
				Operation: op,
				Original:  path,
				Target:    target,
				Options:   cfg.DialogOptions(),
				Palette:   config.GetTheme(cfg.Theme.Name),
				DryRun:    dryRun,
			}
			if !dryRun {
				params.Dispatcher = command.NewDispatcher(newManager())
			}
			if op.Mode == types.NewFile || op.Mode == types.NewDirectory {
				params.Templates, err = templates.List(cfg.Templates.Dir, cfg.Templates.Include, cfg.Templates.Exclude, op.Mode == types.NewDirectory)
				if err != nil {
					log.Warnf("templates unavailable: %v", err)
				}
			}
			if !noWatch {
				w, err := watch.New()
				if err != nil {
					log.Warnf("not watching %s: %v", filepath.Dir(path), err)
				} else {
					params.Watcher = w
				}
			}

			outcome, err := tui.Run(params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case outcome.Canceled:
				fmt.Fprintln(out, infoText("canceled"))
			case outcome.Unchanged:
				fmt.Fprintln(out, infoText("nothing to do"))
			case outcome.DryRun:
				fmt.Fprintln(out, outcome.Command.Line)
			case outcome.Err != nil:
				return outcome.Err
			case outcome.Command != nil:
				fmt.Fprintln(out, successText(fmt.Sprintf("%s %s", outcome.Command.Family, outcome.Command.Destination)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opName, "op", "o", "move", "operation: move, copy, link, copy-target, link-target, new-file, new-dir, new-link")
	cmd.Flags().StringVar(&target, "target", "", "initial link target (new-link only)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the command instead of running it")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not watch the destination directory")
	return cmd
}
