package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for rendering.
type Styles struct {
	Title        lipgloss.Style
	Header       lipgloss.Style
	Category     lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	GrabbedItem  lipgloss.Style
	URL          lipgloss.Style
	Divider      lipgloss.Style
	Muted        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	InputLabel   lipgloss.Style
	Weather      lipgloss.Style
}

// DefaultStyles returns the default adaptive color styles.
func DefaultStyles() Styles {
	var (
		accent  = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
		text    = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
		subtle  = lipgloss.AdaptiveColor{Light: "245", Dark: "243"}
		faint   = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
		warn    = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
		danger  = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
		success = lipgloss.AdaptiveColor{Light: "28", Dark: "114"}
	)

	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Header: lipgloss.NewStyle().
			Foreground(subtle),
		Category: lipgloss.NewStyle().
			Bold(true).
			Foreground(text).
			MarginTop(1),
		Item: lipgloss.NewStyle().
			Foreground(text),
		SelectedItem: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		GrabbedItem: lipgloss.NewStyle().
			Bold(true).
			Foreground(warn),
		URL: lipgloss.NewStyle().
			Foreground(subtle),
		Divider: lipgloss.NewStyle().
			Foreground(faint),
		Muted: lipgloss.NewStyle().
			Foreground(subtle),
		Status: lipgloss.NewStyle().
			Foreground(success),
		Error: lipgloss.NewStyle().
			Foreground(danger),
		HintKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(text),
		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2),
		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1),
		InputLabel: lipgloss.NewStyle().
			Foreground(subtle),
		Weather: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
