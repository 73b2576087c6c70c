package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

const (
	defaultInlineWidth = 80
	minInlineWidth     = 40
	// inlineChrome is the width taken by everything on the line but the bar.
	inlineChrome = 30
)

// terminalWidth returns the current terminal width, defaulting to 80.
func terminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < minInlineWidth {
		return defaultInlineWidth
	}
	return w
}

func inlineBarWidth(width int) int {
	if width < minInlineWidth {
		width = minInlineWidth
	}
	return width - inlineChrome
}

// viewInline renders the session on two lines for use without the
// alternate screen.
func (m Model) viewInline() string {
	snap := m.session.Snapshot()
	color := phaseColor(m.theme, snap.Phase, snap.Status)

	phase := lipgloss.NewStyle().Bold(true).Foreground(color).Render(fmt.Sprintf("%-4s", snap.Phase.Label()))
	clock := lipgloss.NewStyle().Bold(true).Render(snap.TimeText)

	bar := m.bar
	bar.FullColor = string(color)
	line := fmt.Sprintf("🍅 %s %s %s %3.0f%%", phase, clock, bar.ViewAs(snap.Fraction), snap.Fraction*100)

	hint := snap.Button
	if m.notice != "" {
		hint = m.notice
	}
	if m.lastErr != nil {
		hint = fmt.Sprintf("Error: %v", m.lastErr)
	}
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	return line + "\n" + helpStyle.Render(fmt.Sprintf("%s · [space] start/pause  [s] skip  [q] quit", hint)) + "\n"
}
