package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by every styled line.
const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
)

// Styles groups the lipgloss styles used for session output.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles mirrors the notice and error classes of the HTML form.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
		Success: lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess),
		Failure: lipgloss.NewStyle().Bold(true).Foreground(ColorError),
		Error:   lipgloss.NewStyle().Foreground(ColorError),
	}
}

// PlainStyles renders every line without colour, for output that is not a
// terminal.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Title: plain, Muted: plain, Success: plain, Failure: plain, Error: plain}
}
