package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	header  lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	empty   lipgloss.Style
	warn    lipgloss.Style

	badgeActive   lipgloss.Style
	badgeDraft    lipgloss.Style
	badgeArchived lipgloss.Style

	card lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		value:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		empty:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("240")),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		badgeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		badgeDraft:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		badgeArchived: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

func (s styles) badgeFor(status string) lipgloss.Style {
	switch status {
	case "active":
		return s.badgeActive
	case "draft":
		return s.badgeDraft
	default:
		return s.badgeArchived
	}
}
