package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/ui/theme"
)

// Meter is a segmented bar in the style of a receiver's S-meter, used to
// show how far through the scenarios the operator is.
type Meter struct {
	Label    string
	Value    int
	Max      int
	Segments int
}

// NewMeter creates a meter for value out of max with one segment per step,
// capped at segments.
func NewMeter(label string, value, max, segments int) Meter {
	return Meter{Label: label, Value: value, Max: max, Segments: segments}
}

// Lit returns how many segments are lit.
func (m Meter) Lit() int {
	if m.Max <= 0 || m.Segments <= 0 {
		return 0
	}
	lit := m.Value * m.Segments / m.Max
	return min(max(lit, 0), m.Segments)
}

// View renders the meter.
func (m Meter) View() string {
	var b strings.Builder
	if m.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(m.Label))
		b.WriteString("  ")
	}

	lit := m.Lit()
	dark := max(m.Segments-lit, 0)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(strings.Repeat("▮", lit)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("▯", dark)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d", m.Value, m.Max)))
	return b.String()
}
