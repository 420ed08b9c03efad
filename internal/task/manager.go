// Package task runs confirmed shell commands in the background and tracks
// their progress. Each submitted command runs exactly once, in its own
// process, with the number of concurrently running commands bounded.
package task

import (
	"context"
	"os/exec"
	"sort"
	"strings"
	"sync"
	"time"

	"fileops/internal/errors"
	"fileops/internal/log"

	"github.com/google/uuid"
)

const killGrace = 2 * time.Second

// Options configure a Manager
type Options struct {
	Shell       string
	RootCommand []string
	MaxParallel int
}

// Manager accepts command submissions and runs them asynchronously
type Manager struct {
	shell       string
	rootCommand []string
	slots       chan struct{}

	mu    sync.RWMutex
	tasks map[string]*Task
	seq   uint64
	wg    sync.WaitGroup
}

// NewManager creates a task manager
func NewManager(opts Options) *Manager {
	if opts.Shell == "" {
		opts.Shell = "/bin/sh"
	}
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = 1
	}
	return &Manager{
		shell:       opts.Shell,
		rootCommand: opts.RootCommand,
		slots:       make(chan struct{}, opts.MaxParallel),
		tasks:       make(map[string]*Task),
	}
}

// Submit queues spec and returns immediately. The task runs until it
// finishes, is canceled, or ctx is done.
func (m *Manager) Submit(ctx context.Context, spec Spec) (*Task, error) {
	if strings.TrimSpace(spec.Command) == "" {
		return nil, errors.NewTaskError("empty command", "", errors.TaskFailed, nil)
	}
	if strings.ContainsAny(spec.Command, "\n\r\x00") {
		return nil, errors.NewTaskError("command contains a newline or NUL byte", "", errors.TaskFailed, nil)
	}
	if spec.AsRoot && len(m.rootCommand) == 0 {
		return nil, errors.NewTaskError("no root command configured", "", errors.TaskFailed, nil)
	}

	t := newTask(uuid.New().String(), spec)
	runCtx, cancel := context.WithCancel(ctx)
	t.cancel = cancel

	m.mu.Lock()
	m.seq++
	t.seq = m.seq
	m.tasks[t.ID] = t
	m.mu.Unlock()

	log.LogWithFields(log.F("task", t.ID), log.F("command", t.Command)).Debug("task queued")

	m.wg.Add(1)
	go m.run(runCtx, t, spec.OnDone)
	return t, nil
}

func (m *Manager) run(ctx context.Context, t *Task, onDone func(*Task)) {
	defer m.wg.Done()
	defer t.cancel()
	logger := log.LogWithFields(log.F("task", t.ID))

	select {
	case m.slots <- struct{}{}:
	case <-ctx.Done():
		t.finish(Canceled, nil, errors.NewTaskError("task canceled before start", t.ID, errors.TaskCanceled, ctx.Err()))
		logger.Info("task canceled before start")
		notify(t, onDone)
		return
	}
	defer func() { <-m.slots }()

	t.setRunning()
	logger.With(log.F("command", t.Command), log.F("root", t.AsRoot)).Info("task started")

	argv := m.argv(t)
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = t.WorkDir
	// Do not hang on grandchildren that inherited the output pipe
	cmd.WaitDelay = killGrace
	output, err := cmd.CombinedOutput()

	switch {
	case ctx.Err() != nil:
		t.finish(Canceled, output, errors.NewTaskError("task canceled", t.ID, errors.TaskCanceled, ctx.Err()))
		logger.Warn("task canceled")
	case err != nil:
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			msg = "command failed"
		}
		t.finish(Failed, output, errors.NewTaskError(msg, t.ID, errors.TaskFailed, err))
		logger.With(log.F("error", err)).Error("task failed")
	default:
		t.finish(Done, output, nil)
		logger.With(log.F("elapsed", t.Elapsed().String())).Info("task finished")
	}
	notify(t, onDone)
}

// notify runs the completion callback, then releases waiters
func notify(t *Task, onDone func(*Task)) {
	if onDone != nil {
		onDone(t)
	}
	close(t.done)
}

func (m *Manager) argv(t *Task) []string {
	argv := []string{m.shell, "-c", t.Command}
	if t.AsRoot {
		argv = append(append([]string{}, m.rootCommand...), argv...)
	}
	return argv
}

// Get returns a task by ID
func (m *Manager) Get(id string) (*Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, errors.NewTaskError("task not found", id, errors.TaskNotFound, nil)
	}
	return t, nil
}

// Cancel stops a queued or running task
func (m *Manager) Cancel(id string) error {
	t, err := m.Get(id)
	if err != nil {
		return err
	}
	t.Cancel()
	return nil
}

// List returns all tasks, oldest first
func (m *Manager) List() []*Task {
	m.mu.RLock()
	tasks := make([]*Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		tasks = append(tasks, t)
	}
	m.mu.RUnlock()

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].seq < tasks[j].seq
	})
	return tasks
}

// Prune forgets finished tasks and returns how many were removed
func (m *Manager) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, t := range m.tasks {
		if t.State().Finished() {
			delete(m.tasks, id)
			n++
		}
	}
	return n
}

// Wait blocks until every submitted task has finished
func (m *Manager) Wait() {
	m.wg.Wait()
}
