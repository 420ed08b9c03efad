package task

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// State is a task's lifecycle position
type State int

const (
	Queued State = iota
	Running
	Done
	Failed
	Canceled
)

var stateNames = [...]string{
	Queued:   "queued",
	Running:  "running",
	Done:     "done",
	Failed:   "failed",
	Canceled: "canceled",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Finished reports whether the state is terminal
func (s State) Finished() bool {
	return s == Done || s == Failed || s == Canceled
}

// Spec describes one command to run
type Spec struct {
	Command string
	WorkDir string
	AsRoot  bool
	// OnDone is called once, from the task's goroutine, after the task
	// reaches a terminal state and before Done is closed. It must not wait
	// on the task.
	OnDone func(*Task)
}

// Task is a handle to a submitted command
type Task struct {
	ID      string
	Command string
	WorkDir string
	AsRoot  bool

	seq      uint64
	mu       sync.Mutex
	state    State
	err      error
	output   bytes.Buffer
	created  time.Time
	started  time.Time
	finished time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func newTask(id string, spec Spec) *Task {
	return &Task{
		ID:      id,
		Command: spec.Command,
		WorkDir: spec.WorkDir,
		AsRoot:  spec.AsRoot,
		state:   Queued,
		created: time.Now(),
		done:    make(chan struct{}),
	}
}

// State returns the current state
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the failure, if any, once the task has finished
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Output returns the combined stdout and stderr captured so far
func (t *Task) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.output.String()
}

// Done is closed when the task reaches a terminal state
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Wait blocks until the task finishes or ctx is done
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops a queued or running task
func (t *Task) Cancel() {
	if t.cancel != nil {
		t.cancel()
	}
}

func (t *Task) setRunning() {
	t.mu.Lock()
	t.state = Running
	t.started = time.Now()
	t.mu.Unlock()
}

func (t *Task) finish(state State, output []byte, err error) {
	t.mu.Lock()
	t.state = state
	t.err = err
	t.output.Write(output)
	t.finished = time.Now()
	t.mu.Unlock()
}

// Elapsed is the run time so far, or the total run time once finished
func (t *Task) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch {
	case t.started.IsZero():
		return 0
	case t.finished.IsZero():
		return time.Since(t.started)
	}
	return t.finished.Sub(t.started)
}

// String renders one line of a task listing
func (t *Task) String() string {
	t.mu.Lock()
	state, created := t.state, t.created
	t.mu.Unlock()

	root := ""
	if t.AsRoot {
		root = " [root]"
	}
	return fmt.Sprintf("%s  %-8s  %s%s  (submitted %s)",
		shortID(t.ID), state, t.Command, root, humanize.Time(created))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
