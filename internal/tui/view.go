package tui

import (
	"fmt"
	"strings"

	"fileops/internal/dialog"
	"fileops/pkg/types"

	"github.com/charmbracelet/bubbles/key"
)

var titles = map[types.Mode]string{
	types.Rename:       "Rename",
	types.NewFile:      "New file",
	types.NewDirectory: "New directory",
	types.NewLink:      "New link",
}

// View implements tea.Model
func (m *Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(titles[m.op.Mode]))
	sb.WriteString("\n")

	sb.WriteString(m.row("path", m.path.View()))
	if text := m.state.Advisory.Text(); text != "" {
		sb.WriteString(m.row("", m.styles.Advisory.Render(text)))
	}

	ctx := dialog.FieldContext{Operation: m.op, IsDir: m.entryIsDir(), IsLink: m.entryIsLink(), Options: m.opts}
	parts := dialog.SplitPath(m.candidate.Candidate, m.entryIsDir())
	for _, field := range dialog.VisibleFields(ctx) {
		switch field {
		case dialog.FieldName:
			sb.WriteString(m.row("name", parts.Name))
		case dialog.FieldExtension:
			sb.WriteString(m.row("extension", parts.Ext))
		case dialog.FieldParent:
			sb.WriteString(m.row("parent", parts.Parent))
		case dialog.FieldTarget:
			if m.op.Mode == types.NewLink {
				sb.WriteString(m.row("target", m.target.View()))
			} else {
				sb.WriteString(m.row("target", m.source.Target))
			}
		case dialog.FieldTemplate:
			if m.op.Mode != types.NewLink {
				sb.WriteString(m.row("template", m.templateLabel()))
			}
		case dialog.FieldOperation:
			sb.WriteString(m.row("operation", m.opChoices(false)))
		case dialog.FieldTargetOperation:
			sb.WriteString(m.row("target op", m.opChoices(true)))
		case dialog.FieldRoot:
			box := "[ ]"
			if m.asRoot {
				box = "[x]"
			}
			sb.WriteString(m.row("as root", box))
		}
	}

	sb.WriteString("\n")
	label := "[ " + m.state.ButtonLabel + " ]"
	if m.state.ConfirmEnabled {
		sb.WriteString(m.styles.Button.Render(label))
	} else {
		sb.WriteString(m.styles.ButtonDisabled.Render(label))
	}
	sb.WriteString("\n")

	switch m.prompt {
	case promptOverwrite:
		sb.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Overwrite %s? (y/n)", m.candidate.Candidate)))
		sb.WriteString("\n")
	case promptParent:
		sb.WriteString(m.styles.Prompt.Render(fmt.Sprintf("Create directory %s? (y/n)", m.candidate.Parent)))
		sb.WriteString("\n")
	}

	if m.status != "" {
		if m.dispatched {
			sb.WriteString(m.spinner.View() + " " + m.styles.Help.Render(m.status))
		} else {
			sb.WriteString(m.styles.Error.Render(m.status))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render(m.keyHelp()))
	return m.styles.App.Render(sb.String())
}

func (m *Model) row(label, value string) string {
	return m.styles.Label.Render(label) + " " + m.styles.Value.Render(value) + "\n"
}

func (m *Model) opChoices(target bool) string {
	var names []string
	for _, op := range m.ops {
		if op.UsesTarget() != target {
			continue
		}
		name := op.String()
		if op == m.op {
			names = append(names, m.styles.Selected.Render("("+name+")"))
		} else {
			names = append(names, name)
		}
	}
	return strings.Join(names, " ")
}

func (m *Model) templateLabel() string {
	if m.template < 0 || m.template >= len(m.templates) {
		if len(m.templates) == 0 {
			return "(no templates)"
		}
		return "(empty)"
	}
	return m.templates[m.template].Name
}

func (m *Model) keyHelp() string {
	if m.prompt != promptNone {
		return helpLine(m.keys.Yes, m.keys.No)
	}
	bindings := []key.Binding{m.keys.Confirm, m.keys.Cancel}
	if len(m.ops) > 1 {
		bindings = append(bindings, m.keys.NextOp)
	}
	if m.op.Mode == types.NewLink {
		bindings = append(bindings, m.keys.SwitchField)
	}
	if len(m.templates) > 0 && m.op.Mode != types.NewLink {
		bindings = append(bindings, m.keys.Template)
	}
	if m.opts.ShowRootOption {
		bindings = append(bindings, m.keys.Root)
	}
	return helpLine(bindings...)
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Desc))
	}
	return strings.Join(parts, "  ")
}
