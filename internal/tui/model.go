// Package tui is the interactive rename/create dialog.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"fileops/internal/classify"
	"fileops/internal/command"
	"fileops/internal/config"
	"fileops/internal/dialog"
	"fileops/internal/errors"
	"fileops/internal/log"
	"fileops/internal/templates"
	"fileops/internal/watch"
	"fileops/pkg/types"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type prompt int

const (
	promptNone prompt = iota
	promptOverwrite
	promptParent
)

type focus int

const (
	focusPath focus = iota
	focusTarget
)

// Params configures a dialog
type Params struct {
	Operation types.Operation
	// Original is the existing source for Rename and the suggested path for
	// the create modes
	Original string
	// Target is the initial link target for NewLink
	Target     string
	Templates  []templates.Template
	Options    dialog.Options
	Palette    config.Palette
	Dispatcher *command.Dispatcher
	// Watcher is optional; when set the dialog re-evaluates on changes
	Watcher *watch.Watcher
	DryRun  bool
}

// Outcome is how the dialog ended
type Outcome struct {
	Command  *command.Command
	Err      error
	Canceled bool
	// Unchanged is set when a rename was confirmed onto its own path
	Unchanged bool
	DryRun    bool
}

// Model is the bubbletea model of the dialog
type Model struct {
	op         types.Operation
	ops        []types.Operation
	original   string
	source     classify.Entry
	opts       dialog.Options
	classifier *classify.Classifier
	dispatcher *command.Dispatcher
	watcher    *watch.Watcher
	dryRun     bool

	path    textinput.Model
	target  textinput.Model
	focus   focus
	spinner spinner.Model

	templates []templates.Template
	template  int

	asRoot bool

	candidate types.PathCandidate
	flags     types.ClassificationFlags
	state     types.DialogState

	prompt             prompt
	overwriteConfirmed bool
	parentConfirmed    bool
	dispatched         bool
	cancel             context.CancelFunc
	status             string
	outcome            Outcome

	keys   KeyMap
	styles Styles
}

// New creates a dialog for p. Rename dialogs inspect the source first.
func New(p Params) (*Model, error) {
	if p.Dispatcher == nil && !p.DryRun {
		return nil, errors.New("a dispatcher is required unless running dry")
	}

	m := &Model{
		op:         p.Operation,
		original:   filepath.Clean(p.Original),
		opts:       p.Options,
		classifier: classify.New(),
		dispatcher: p.Dispatcher,
		watcher:    p.Watcher,
		dryRun:     p.DryRun,
		templates:  p.Templates,
		template:   -1,
		keys:       DefaultKeyMap(),
		styles:     NewStyles(p.Palette),
	}

	if p.Operation.Mode == types.Rename {
		src, err := m.classifier.Inspect(p.Original)
		if err != nil {
			return nil, err
		}
		m.source = src
		m.ops = dialog.AllowedOperations(src.IsLink, p.Options)
	} else {
		m.ops = []types.Operation{p.Operation}
	}
	if !containsOp(m.ops, p.Operation) {
		return nil, errors.Newf("operation %s is not available for %s", p.Operation, p.Original)
	}

	m.path = textinput.New()
	m.path.Prompt = ""
	m.path.CharLimit = 4096
	m.path.SetValue(m.original)
	m.path.Focus()

	m.target = textinput.New()
	m.target.Prompt = ""
	m.target.Placeholder = "link target"
	m.target.SetValue(p.Target)

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = m.styles.Help

	m.evaluate()
	return m, nil
}

func containsOp(ops []types.Operation, op types.Operation) bool {
	for _, o := range ops {
		if o == op {
			return true
		}
	}
	return false
}

// Outcome returns how the dialog ended
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// State returns the current dialog state
func (m *Model) State() types.DialogState {
	return m.state
}

// Flags returns the current classification
func (m *Model) Flags() types.ClassificationFlags {
	return m.flags
}

// Operation returns the selected operation
func (m *Model) Operation() types.Operation {
	return m.op
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changeMsg:
		if !m.dispatched && m.affectedBy(msg.Path) {
			log.Debugf("%s changed, re-evaluating", msg.Path)
			m.evaluate()
		}
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForChange(m.watcher)
	case doneMsg:
		m.outcome.Err = msg.err
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case spinner.TickMsg:
		if m.dispatched {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dispatched {
		// Only cancel is honored while the command runs. The dialog quits
		// once the command reports back.
		if key.Matches(msg, m.keys.Cancel) && !m.outcome.Canceled {
			m.outcome.Canceled = true
			m.status = "canceling " + m.outcome.Command.Line
			m.cancel()
		}
		return m, nil
	}
	if m.prompt != promptNone {
		return m.handlePrompt(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.outcome.Canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		return m.confirm()
	case key.Matches(msg, m.keys.NextOp):
		m.cycleOperation(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevOp):
		m.cycleOperation(-1)
		return m, nil
	case key.Matches(msg, m.keys.Template):
		m.cycleTemplate()
		return m, nil
	case key.Matches(msg, m.keys.Root):
		if m.opts.ShowRootOption {
			m.asRoot = !m.asRoot
		}
		return m, nil
	case key.Matches(msg, m.keys.SwitchField):
		m.toggleFocus()
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusTarget {
		m.target, cmd = m.target.Update(msg)
		return m, cmd
	}
	before := m.path.Value()
	m.path, cmd = m.path.Update(msg)
	if m.path.Value() != before {
		m.status = ""
		m.evaluate()
	}
	return m, cmd
}

func (m *Model) handlePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.outcome.Canceled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Yes):
		if m.prompt == promptOverwrite {
			m.overwriteConfirmed = true
		} else {
			m.parentConfirmed = true
		}
		m.prompt = promptNone
		return m.build()
	case key.Matches(msg, m.keys.No):
		m.prompt = promptNone
		m.overwriteConfirmed, m.parentConfirmed = false, false
	}
	return m, nil
}

func (m *Model) confirm() (tea.Model, tea.Cmd) {
	if !m.state.ConfirmEnabled {
		if text := m.state.Advisory.Text(); text != "" {
			m.status = text
		} else {
			m.status = fmt.Sprintf("%s is not allowed", m.op)
		}
		return m, nil
	}
	return m.build()
}

// build runs the command selector and turns its confirmation errors into
// prompts
func (m *Model) build() (tea.Model, tea.Cmd) {
	cmd, err := command.Build(m.request())
	switch {
	case errors.NeedsOverwrite(err):
		m.prompt = promptOverwrite
		return m, nil
	case errors.NeedsParentCreation(err):
		if !m.opts.ConfirmMkdir {
			m.parentConfirmed = true
			return m.build()
		}
		m.prompt = promptParent
		return m, nil
	case errors.IsUnchanged(err):
		m.outcome.Unchanged = true
		return m, tea.Quit
	case err != nil:
		m.status = err.Error()
		return m, nil
	}

	m.outcome.Command = cmd
	if m.dryRun {
		m.outcome.DryRun = true
		return m, tea.Quit
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.dispatched, m.cancel = true, cancel
	m.status = cmd.Line
	return m, tea.Batch(m.spinner.Tick, dispatch(ctx, m.dispatcher, cmd))
}

func (m *Model) request() command.Request {
	var req command.Request
	dest := m.candidate.Candidate
	if m.op.Mode == types.Rename {
		req = command.NewRenameRequest(m.op, m.source, dest, m.flags)
	} else {
		req = command.NewCreateRequest(m.op, dest, m.target.Value(), m.templatePath(), m.flags)
	}
	req.OverwriteConfirmed = m.overwriteConfirmed
	req.ParentConfirmed = m.parentConfirmed
	req.AsRoot = m.asRoot
	return req
}

func (m *Model) templatePath() string {
	if m.template < 0 || m.template >= len(m.templates) {
		return ""
	}
	return m.templates[m.template].Path
}

// evaluate classifies the current path text and projects the dialog state.
// Confirmations given for an earlier evaluation are dropped.
func (m *Model) evaluate() {
	m.candidate, m.flags = m.classifier.Evaluate(m.original, m.path.Value(), m.op)
	m.state = dialog.Project(dialog.NewProjection(m.candidate, m.flags, m.op, m.entryIsDir(), m.entryIsLink(), m.opts))
	m.prompt = promptNone
	m.overwriteConfirmed, m.parentConfirmed = false, false

	if m.watcher != nil && !m.flags.Invalid {
		if err := m.watcher.Retarget(m.candidate.Candidate); err != nil {
			log.Debugf("failed to watch %s: %v", m.candidate.Parent, err)
		}
	}
}

// affectedBy reports whether a change to path can alter the classification:
// path is the candidate, one of its ancestors or the original
func (m *Model) affectedBy(path string) bool {
	path = filepath.Clean(path)
	cand := m.candidate.Candidate
	if path == cand || path == m.original {
		return true
	}
	return strings.HasPrefix(cand, strings.TrimSuffix(path, string(filepath.Separator))+string(filepath.Separator))
}

func (m *Model) entryIsDir() bool {
	switch m.op.Mode {
	case types.Rename:
		if m.op.UsesTarget() {
			return m.source.TargetIsDir
		}
		return m.source.IsDir
	case types.NewDirectory:
		return true
	}
	return false
}

func (m *Model) entryIsLink() bool {
	if m.op.Mode == types.Rename {
		return m.source.IsLink
	}
	return m.op.Mode == types.NewLink
}

func (m *Model) cycleOperation(delta int) {
	if len(m.ops) < 2 {
		return
	}
	i := 0
	for j, op := range m.ops {
		if op == m.op {
			i = j
		}
	}
	i = (i + delta + len(m.ops)) % len(m.ops)
	m.op = m.ops[i]
	m.evaluate()
}

// cycleTemplate steps through "no template" and each template in turn
func (m *Model) cycleTemplate() {
	if !m.opts.ShowTemplate || !m.op.IsCreate() || m.op.Mode == types.NewLink || len(m.templates) == 0 {
		return
	}
	m.template++
	if m.template >= len(m.templates) {
		m.template = -1
	}
}

func (m *Model) toggleFocus() {
	if m.op.Mode != types.NewLink {
		return
	}
	if m.focus == focusPath {
		m.focus = focusTarget
		m.path.Blur()
		m.target.Focus()
	} else {
		m.focus = focusPath
		m.target.Blur()
		m.path.Focus()
	}
}

// Run shows the dialog until it is confirmed or canceled
func Run(p Params) (Outcome, error) {
	m, err := New(p)
	if err != nil {
		return Outcome{}, err
	}
	if p.Watcher != nil {
		if err := p.Watcher.Start(); err != nil {
			return Outcome{}, err
		}
		defer p.Watcher.Stop()
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return Outcome{}, errors.Wrap(err, "dialog failed")
	}
	return final.(*Model).Outcome(), nil
}
