package items

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	item      lipgloss.Style
	detail    lipgloss.Style
	key       lipgloss.Style
	delayed   lipgloss.Style
	effect    lipgloss.Style
	section   lipgloss.Style
	empty     lipgloss.Style
	activated lipgloss.Style
	blocked   lipgloss.Style
	aborted   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		item:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		key:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		delayed:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		effect:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		section:   lipgloss.NewStyle().MarginTop(1),
		empty:     lipgloss.NewStyle().Faint(true),
		activated: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		blocked:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		aborted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
