package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by View.
type Styles struct {
	Title    lipgloss.Style
	Section  lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Tag      lipgloss.Style
	TagFocus lipgloss.Style
	Button   lipgloss.Style
	Notice   lipgloss.Style
	Summary  lipgloss.Style
}

// DefaultStyles mirrors the web palette.
func DefaultStyles() Styles {
	accent := lipgloss.Color("#2563eb")
	danger := lipgloss.Color("#dc2626")
	success := lipgloss.Color("#16a34a")
	muted := lipgloss.Color("#6b7280")

	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Section:  lipgloss.NewStyle().Bold(true).Underline(true).MarginTop(1),
		Label:    lipgloss.NewStyle().Width(16),
		Focused:  lipgloss.NewStyle().Width(16).Bold(true).Foreground(accent),
		Error:    lipgloss.NewStyle().Foreground(danger).PaddingLeft(16),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Tag:      lipgloss.NewStyle().Padding(0, 1).Background(accent).Foreground(lipgloss.Color("#ffffff")),
		TagFocus: lipgloss.NewStyle().Padding(0, 1).Background(danger).Foreground(lipgloss.Color("#ffffff")),
		Button:   lipgloss.NewStyle().Bold(true).Padding(0, 2).Border(lipgloss.RoundedBorder()).BorderForeground(accent),
		Notice:   lipgloss.NewStyle().Bold(true).Foreground(success).MarginTop(1),
		Summary:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).MarginTop(1),
	}
}
