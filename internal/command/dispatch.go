package command

import (
	"context"
	"os"

	"fileops/internal/errors"
	"fileops/internal/log"
	"fileops/internal/task"
)

// Submitter runs a command line in the background
type Submitter interface {
	Submit(ctx context.Context, spec task.Spec) (*task.Task, error)
}

// Result reports how a dispatched command completed
type Result struct {
	// Task is nil when the command completed in place with rename(2)
	Task *task.Task
	Err  error
}

// Dispatcher hands confirmed commands to a Submitter, trying an in-place
// rename first for atomic moves
type Dispatcher struct {
	submitter Submitter
	rename    func(oldpath, newpath string) error
}

// NewDispatcher creates a Dispatcher that renames with os.Rename
func NewDispatcher(s Submitter) *Dispatcher {
	return &Dispatcher{submitter: s, rename: os.Rename}
}

// WithRename replaces the rename function, for tests
func (d *Dispatcher) WithRename(fn func(oldpath, newpath string) error) *Dispatcher {
	d.rename = fn
	return d
}

// Dispatch runs cmd once. Atomic moves are renamed in place and onDone is
// called before Dispatch returns; a cross-device rename falls back to an mv
// task. Everything else is submitted and onDone is called when the task
// finishes. onDone may be nil.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd *Command, onDone func(Result)) (*task.Task, error) {
	logger := log.LogWithFields(log.F("family", string(cmd.Family)), log.F("destination", cmd.Destination))

	if cmd.Atomic {
		err := d.rename(cmd.Source, cmd.Destination)
		switch {
		case err == nil:
			logger.Infof("renamed %s", cmd.Source)
			if onDone != nil {
				onDone(Result{})
			}
			return nil, nil
		case isCrossDevice(err):
			logger.Debug("rename crosses filesystems, moving as task")
		default:
			return nil, errors.Wrapf(err, "failed to rename %s", cmd.Source)
		}
	}

	t, err := d.submitter.Submit(ctx, task.Spec{
		Command: cmd.Line,
		WorkDir: cmd.WorkDir,
		AsRoot:  cmd.AsRoot,
		OnDone: func(t *task.Task) {
			if onDone != nil {
				onDone(Result{Task: t, Err: t.Err()})
			}
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit command")
	}
	logger.With(log.F("task", t.ID)).Debug("command submitted")
	return t, nil
}
