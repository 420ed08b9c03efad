package tui

import (
	"context"
	"time"

	"fileops/internal/command"
	"fileops/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
)

// changeMsg reports a filesystem change near the candidate
type changeMsg watch.Change

// doneMsg reports the dispatched command's completion
type doneMsg struct {
	err error
}

func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return changeMsg(change)
	}
}

// cancelGrace bounds how long a canceled command may take to report back
var cancelGrace = 2 * time.Second

// dispatch runs cmd until it completes or ctx is canceled. A canceled
// command is given cancelGrace to be killed and reaped.
func dispatch(ctx context.Context, d *command.Dispatcher, cmd *command.Command) tea.Cmd {
	return func() tea.Msg {
		results := make(chan command.Result, 1)
		if _, err := d.Dispatch(ctx, cmd, func(r command.Result) { results <- r }); err != nil {
			return doneMsg{err: err}
		}
		select {
		case r := <-results:
			return doneMsg{err: r.Err}
		case <-ctx.Done():
		}
		select {
		case r := <-results:
			return doneMsg{err: r.Err}
		case <-time.After(cancelGrace):
			return doneMsg{err: ctx.Err()}
		}
	}
}
