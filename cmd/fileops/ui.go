package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"fileops/internal/config"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	warningStyle  lipgloss.Style
	infoStyle     lipgloss.Style
	emphasisStyle lipgloss.Style
)

func init() {
	applyTheme(config.GetTheme("default"))
}

func applyTheme(p config.Palette) {
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Warning))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Muted))
	emphasisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Emphasis)).Bold(true)
}

func successText(s string) string  { return successStyle.Render(s) }
func errorText(s string) string    { return errorStyle.Render(s) }
func warningText(s string) string  { return warningStyle.Render(s) }
func infoText(s string) string     { return infoStyle.Render(s) }
func emphasisText(s string) string { return emphasisStyle.Render(s) }

// prompter asks y/N questions. One reader serves every question so no
// buffered input is lost between them.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// confirm treats anything but y or yes as a no
func (p *prompter) confirm(question string) bool {
	fmt.Fprintf(p.out, "%s %s ", warningText(question), infoText("[y/N]"))
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(p.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
