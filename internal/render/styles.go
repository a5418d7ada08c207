package render

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	status  lipgloss.Style
	active  lipgloss.Style
	row     lipgloss.Style
	name    lipgloss.Style
	number  lipgloss.Style
	hp      lipgloss.Style
	downed  lipgloss.Style
	detail  lipgloss.Style
	warning lipgloss.Style
	section lipgloss.Style
	empty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		status:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		row:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		name:    lipgloss.NewStyle().Width(24),
		number:  lipgloss.NewStyle().Width(6).Align(lipgloss.Right),
		hp:      lipgloss.NewStyle().Width(12).Align(lipgloss.Right),
		downed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section: lipgloss.NewStyle().MarginTop(1),
		empty:   lipgloss.NewStyle().Faint(true),
	}
}
