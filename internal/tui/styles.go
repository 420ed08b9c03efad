package tui

import (
	"fileops/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the dialog's lipgloss styles
type Styles struct {
	App            lipgloss.Style
	Title          lipgloss.Style
	Label          lipgloss.Style
	Value          lipgloss.Style
	Selected       lipgloss.Style
	Advisory       lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Prompt         lipgloss.Style
	Error          lipgloss.Style
	Success        lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles builds the dialog styles from a palette
func NewStyles(p config.Palette) Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.Primary)).
			Padding(0, 1),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Primary)).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Width(10),
		Value: lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Emphasis)).
			Bold(true),
		Advisory: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Warning)).
			Italic(true),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Success)).
			Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Strikethrough(true).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Warning)),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Success)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
	}
}
