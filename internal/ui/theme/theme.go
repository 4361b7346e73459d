package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/content"
)

// Color palette, after a night-time shack: amber dial, green tube glow.
var (
	Primary   = lipgloss.Color("#F59E0B") // Dial Amber
	Secondary = lipgloss.Color("#22D3EE") // Scope Cyan
	Accent    = lipgloss.Color("#A3E635") // Tube Green
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#FACC15") // Yellow
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1120") // Night
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Heading = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Toast = lipgloss.NewStyle().
		Foreground(BgDark).
		Background(Warning).
		Bold(true).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Missed = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// PlausibilityColor maps a level to its badge colour.
func PlausibilityColor(p content.Plausibility) color.Color {
	switch p {
	case content.VeryLikely:
		return Success
	case content.Likely:
		return Accent
	case content.Possible:
		return Warning
	case content.Unlikely:
		return Error
	default:
		return TextDim
	}
}

// Badge renders label in the colour of level p.
func Badge(p content.Plausibility, label string) string {
	return lipgloss.NewStyle().
		Foreground(PlausibilityColor(p)).
		Bold(true).
		Render("[" + label + "]")
}
