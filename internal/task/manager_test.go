package task

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"fileops/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitTask(t *testing.T, task *Task) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := task.Wait(ctx)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
	return err
}

func TestSubmitRunsCommand(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(Options{MaxParallel: 2})

	var called atomic.Int32
	task, err := m.Submit(context.Background(), Spec{
		Command: "touch created.txt && echo ok",
		WorkDir: dir,
		OnDone:  func(*Task) { called.Add(1) },
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)

	require.NoError(t, waitTask(t, task))
	assert.Equal(t, Done, task.State())
	assert.Equal(t, "ok\n", task.Output())
	assert.Equal(t, int32(1), called.Load())
	assert.FileExists(t, filepath.Join(dir, "created.txt"))
}

func TestSubmitReportsFailure(t *testing.T) {
	m := NewManager(Options{})

	task, err := m.Submit(context.Background(), Spec{Command: "echo boom >&2; exit 3", WorkDir: t.TempDir()})
	require.NoError(t, err)

	err = waitTask(t, task)
	require.Error(t, err)
	assert.Equal(t, Failed, task.State())
	assert.True(t, errors.IsTaskError(err))
	assert.Contains(t, err.Error(), "boom")
}

func TestSubmitRejects(t *testing.T) {
	m := NewManager(Options{})

	_, err := m.Submit(context.Background(), Spec{Command: "  "})
	assert.Error(t, err)

	_, err = m.Submit(context.Background(), Spec{Command: "echo a\nrm -rf /"})
	assert.Error(t, err)

	_, err = m.Submit(context.Background(), Spec{Command: "true", AsRoot: true})
	assert.Error(t, err, "root requires a configured root command")
}

func TestRootCommandPrefix(t *testing.T) {
	m := NewManager(Options{RootCommand: []string{"env", "AS_ROOT=1"}})

	task, err := m.Submit(context.Background(), Spec{Command: `echo "$AS_ROOT"`, AsRoot: true, WorkDir: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, waitTask(t, task))
	assert.Equal(t, "1\n", task.Output())
	assert.Contains(t, task.String(), "[root]")
}

func TestCancel(t *testing.T) {
	m := NewManager(Options{MaxParallel: 1})

	running, err := m.Submit(context.Background(), Spec{Command: "sleep 30", WorkDir: t.TempDir()})
	require.NoError(t, err)
	queued, err := m.Submit(context.Background(), Spec{Command: "true", WorkDir: t.TempDir()})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return running.State() == Running }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, Queued, queued.State())

	require.NoError(t, m.Cancel(queued.ID))
	err = waitTask(t, queued)
	assert.True(t, errors.IsTaskCanceled(err))
	assert.Equal(t, Canceled, queued.State())

	require.NoError(t, m.Cancel(running.ID))
	err = waitTask(t, running)
	assert.True(t, errors.IsTaskCanceled(err))

	m.Wait()
	assert.Error(t, m.Cancel("missing"))
}

func TestListAndPrune(t *testing.T) {
	m := NewManager(Options{MaxParallel: 4})
	dir := t.TempDir()

	var ids []string
	for i := 0; i < 3; i++ {
		task, err := m.Submit(context.Background(), Spec{Command: "true", WorkDir: dir})
		require.NoError(t, err)
		ids = append(ids, task.ID)
	}
	m.Wait()

	list := m.List()
	require.Len(t, list, 3)
	for i, task := range list {
		assert.Equal(t, ids[i], task.ID)
		assert.True(t, task.State().Finished())
	}

	got, err := m.Get(ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], got.ID)

	assert.Equal(t, 3, m.Prune())
	assert.Empty(t, m.List())
}

func TestWorkDirMissing(t *testing.T) {
	m := NewManager(Options{})
	task, err := m.Submit(context.Background(), Spec{Command: "true", WorkDir: filepath.Join(os.TempDir(), "fileops-does-not-exist")})
	require.NoError(t, err)
	assert.Error(t, waitTask(t, task))
	assert.Equal(t, Failed, task.State())
}
