package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/ui/theme"
)

// ChecklistItem is one tickable row. Items sharing a Group are listed under
// a common heading.
type ChecklistItem struct {
	ID    string
	Label string
	Group string
}

// Checklist is a grouped multi-select list. It owns the cursor only; the
// ticked state lives with the caller and is passed to View.
type Checklist struct {
	Items  []ChecklistItem
	Cursor int

	offset int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update moves the cursor.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	case "home", "g":
		c.Cursor = 0
	case "end", "G":
		if len(c.Items) > 0 {
			c.Cursor = len(c.Items) - 1
		}
	}

	return c, nil
}

// Current returns the item under the cursor.
func (c Checklist) Current() (ChecklistItem, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return ChecklistItem{}, false
	}
	return c.Items[c.Cursor], true
}

// SetItems swaps the rows, keeping the cursor in range.
func (c *Checklist) SetItems(items []ChecklistItem) {
	c.Items = items
	if c.Cursor >= len(items) {
		c.Cursor = max(len(items)-1, 0)
	}
}

// View renders the list, windowed to height lines around the cursor when
// height > 0. checked reports the ticked state of an id; mark, when non-nil,
// returns a suffix such as a plausibility badge. heading maps a group key to
// its display name.
func (c *Checklist) View(height int, checked func(id string) bool, mark func(id string) string, heading func(group string) string) string {
	var lines []string
	cursorLine := 0
	group := ""
	for i, item := range c.Items {
		if item.Group != group || i == 0 {
			group = item.Group
			name := group
			if heading != nil {
				name = heading(group)
			}
			lines = append(lines, theme.Heading.Render(name))
		}

		box := "[ ]"
		if checked != nil && checked(item.ID) {
			box = "[x]"
		}
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == c.Cursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			cursorLine = len(lines)
		}
		line := style.Render(prefix + box + " " + item.Label)
		if mark != nil {
			if m := mark(item.ID); m != "" {
				line += " " + m
			}
		}
		lines = append(lines, line)
	}

	if height > 0 && len(lines) > height {
		c.adjustScroll(cursorLine, height)
		end := min(c.offset+height, len(lines))
		lines = lines[c.offset:end]
	} else {
		c.offset = 0
	}
	return strings.Join(lines, "\n")
}

// adjustScroll keeps the cursor line, and the heading above it when
// possible, inside the window.
func (c *Checklist) adjustScroll(cursorLine, height int) {
	if cursorLine-1 < c.offset {
		c.offset = max(cursorLine-1, 0)
	}
	if cursorLine >= c.offset+height {
		c.offset = cursorLine - height + 1
	}
}
