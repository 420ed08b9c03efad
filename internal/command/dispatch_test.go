//go:build unix

package command

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"fileops/internal/errors"
	"fileops/internal/task"
	"fileops/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

type fakeSubmitter struct {
	mu    sync.Mutex
	specs []task.Spec
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, spec task.Spec) (*task.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.specs = append(f.specs, spec)
	return &task.Task{ID: "fake"}, nil
}

func moveCommand(t *testing.T, req Request) *Command {
	t.Helper()
	cmd, err := Build(req)
	require.NoError(t, err)
	return cmd
}

func TestDispatchAtomicRename(t *testing.T) {
	sub := &fakeSubmitter{}
	var renamed [2]string
	d := NewDispatcher(sub).WithRename(func(oldpath, newpath string) error {
		renamed = [2]string{oldpath, newpath}
		return nil
	})

	var results []Result
	cmd := moveCommand(t, Request{Operation: types.OpMove, Source: "/tmp/a/x", Destination: "/tmp/a/y"})
	tk, err := d.Dispatch(context.Background(), cmd, func(r Result) { results = append(results, r) })
	require.NoError(t, err)
	assert.Nil(t, tk)
	assert.Equal(t, [2]string{"/tmp/a/x", "/tmp/a/y"}, renamed)
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Empty(t, sub.specs)
}

func TestDispatchCrossDeviceFallsBack(t *testing.T) {
	sub := &fakeSubmitter{}
	d := NewDispatcher(sub).WithRename(func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.EXDEV}
	})

	cmd := moveCommand(t, Request{Operation: types.OpMove, Source: "/tmp/a/x", Destination: "/mnt/usb/x"})
	tk, err := d.Dispatch(context.Background(), cmd, nil)
	require.NoError(t, err)
	require.NotNil(t, tk)
	require.Len(t, sub.specs, 1)
	assert.Equal(t, "mv -f -- /tmp/a/x /mnt/usb/x", sub.specs[0].Command)
	assert.Equal(t, "/tmp/a", sub.specs[0].WorkDir)
}

func TestDispatchRenameError(t *testing.T) {
	sub := &fakeSubmitter{}
	d := NewDispatcher(sub).WithRename(func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: unix.EACCES}
	})

	cmd := moveCommand(t, Request{Operation: types.OpMove, Source: "/tmp/a/x", Destination: "/tmp/a/y"})
	tk, err := d.Dispatch(context.Background(), cmd, nil)
	assert.Nil(t, tk)
	require.Error(t, err)
	assert.ErrorIs(t, err, unix.EACCES)
	assert.Empty(t, sub.specs)
}

func TestDispatchSubmitsNonAtomic(t *testing.T) {
	sub := &fakeSubmitter{}
	d := NewDispatcher(sub).WithRename(func(string, string) error {
		t.Fatal("copy must not be renamed")
		return nil
	})

	cmd := moveCommand(t, Request{Operation: types.OpCopy, Source: "/tmp/a/x", Destination: "/tmp/a/y"})
	_, err := d.Dispatch(context.Background(), cmd, nil)
	require.NoError(t, err)
	require.Len(t, sub.specs, 1)
	assert.Equal(t, cmd.Line, sub.specs[0].Command)

	sub.err = errors.New("queue closed")
	_, err = d.Dispatch(context.Background(), cmd, nil)
	assert.Error(t, err)
}

func TestDispatchWithManager(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("data"), 0o644))
	dest := filepath.Join(dir, "new parent", "b.txt")

	m := task.NewManager(task.Options{})
	d := NewDispatcher(m)

	cmd := moveCommand(t, Request{
		Operation:       types.OpMove,
		Source:          src,
		Destination:     dest,
		Flags:           types.ClassificationFlags{ParentMissing: true},
		ParentConfirmed: true,
	})

	done := make(chan Result, 1)
	tk, err := d.Dispatch(context.Background(), cmd, func(r Result) { done <- r })
	require.NoError(t, err)
	require.NotNil(t, tk)

	select {
	case r := <-done:
		require.NoError(t, r.Err)
		assert.Equal(t, tk, r.Task)
	case <-time.After(10 * time.Second):
		t.Fatal("task did not finish")
	}
	assert.FileExists(t, dest)
	assert.NoFileExists(t, src)
}
