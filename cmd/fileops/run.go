package main

import (
	"context"
	"fmt"
	"io"

	"fileops/internal/command"
	"fileops/internal/errors"
	"fileops/internal/log"
	"fileops/internal/task"

	"github.com/spf13/cobra"
)

// execFlags are the confirmations and switches shared by rename and new
type execFlags struct {
	overwrite   bool
	parents     bool
	asRoot      bool
	dryRun      bool
	interactive bool
}

func (f *execFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.overwrite, "overwrite", "f", false, "replace an existing destination file")
	cmd.Flags().BoolVarP(&f.parents, "parents", "p", false, "create a missing parent directory")
	cmd.Flags().BoolVar(&f.asRoot, "as-root", false, "run through the configured root command")
	cmd.Flags().BoolVarP(&f.dryRun, "dry-run", "n", false, "print the command instead of running it")
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "ask before overwriting or creating parents")
}

func newManager() *task.Manager {
	return task.NewManager(task.Options{
		Shell:       cfg.Tasks.Shell,
		RootCommand: cfg.Tasks.RootCommand,
		MaxParallel: cfg.Tasks.MaxParallel,
	})
}

// execute builds req, asking for the confirmations the selector requires
// when running interactively, and then runs the command once
func execute(cmd *cobra.Command, req command.Request, f execFlags) error {
	out := cmd.OutOrStdout()
	ask := newPrompter(cmd.InOrStdin(), out)

	if f.asRoot && !cfg.Dialog.ShowRootOption {
		return errors.New("running as root is disabled (dialog.show_root_option)")
	}
	req.OverwriteConfirmed = f.overwrite
	req.ParentConfirmed = f.parents || !cfg.Dialog.ConfirmMkdir
	req.AsRoot = f.asRoot

	for {
		c, err := command.Build(req)
		switch {
		case errors.NeedsOverwrite(err):
			if !f.interactive || !ask.confirm(fmt.Sprintf("Overwrite %s?", req.Destination)) {
				return errors.Wrap(err, "pass --overwrite to replace it")
			}
			req.OverwriteConfirmed = true
			continue
		case errors.NeedsParentCreation(err):
			var pathErr *errors.PathError
			errors.As(err, &pathErr)
			if !f.interactive || !ask.confirm(fmt.Sprintf("Create directory %s?", pathErr.Path())) {
				return errors.Wrap(err, "pass --parents to create it")
			}
			req.ParentConfirmed = true
			continue
		case errors.IsUnchanged(err):
			fmt.Fprintln(out, infoText("nothing to do"))
			return nil
		case err != nil:
			return err
		}

		if f.dryRun {
			fmt.Fprintln(out, c.Line)
			return nil
		}
		return runCommand(cmd.Context(), out, command.NewDispatcher(newManager()), c)
	}
}

// runCommand dispatches c and waits for it to finish
func runCommand(ctx context.Context, out io.Writer, d *command.Dispatcher, c *command.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Debugf("running %s", c.Line)

	results := make(chan command.Result, 1)
	if _, err := d.Dispatch(ctx, c, func(r command.Result) { results <- r }); err != nil {
		return err
	}
	r := <-results
	if r.Task != nil && r.Task.Output() != "" {
		fmt.Fprint(out, r.Task.Output())
	}
	if r.Err != nil {
		return r.Err
	}
	fmt.Fprintln(out, successText(fmt.Sprintf("%s %s", c.Family, c.Destination)))
	return nil
}
