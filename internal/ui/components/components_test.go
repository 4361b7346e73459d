package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMenu_NavigatesAndSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "one"},
		{Label: "two", Disabled: true},
		{Label: "three"},
	})

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2 (disabled item skipped)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestMenu_SetLabelsKeepsSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Start"}, {Label: "Quit"}})
	m.Selected = 1
	m.SetLabels([]string{"Starten", "Beenden", "extra"})

	if m.Items[0].Label != "Starten" || m.Items[1].Label != "Beenden" {
		t.Errorf("labels = %q, %q", m.Items[0].Label, m.Items[1].Label)
	}
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if !strings.Contains(m.View(), "▸ Beenden") {
		t.Errorf("view should mark selected item:\n%s", m.View())
	}
}

func testItems() []ChecklistItem {
	return []ChecklistItem{
		{ID: "a", Label: "Alpha", Group: "g1"},
		{ID: "b", Label: "Bravo", Group: "g1"},
		{ID: "c", Label: "Charlie", Group: "g2"},
	}
}

func TestChecklist_CursorBounds(t *testing.T) {
	c := NewChecklist(testItems())

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 at top", c.Cursor)
	}
	for range 5 {
		c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if c.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 at bottom", c.Cursor)
	}
	item, ok := c.Current()
	if !ok || item.ID != "c" {
		t.Errorf("Current = %+v, %v", item, ok)
	}
}

func TestChecklist_ViewGroupsAndMarks(t *testing.T) {
	c := NewChecklist(testItems())
	view := c.View(0,
		func(id string) bool { return id == "b" },
		func(id string) string {
			if id == "c" {
				return "MISSED"
			}
			return ""
		},
		strings.ToUpper,
	)

	for _, want := range []string{"G1", "G2", "[ ] Alpha", "[x] Bravo", "MISSED"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Count(view, "G1") != 1 {
		t.Errorf("group heading repeated:\n%s", view)
	}
}

func TestChecklist_SetItemsClampsCursor(t *testing.T) {
	c := NewChecklist(testItems())
	c.Cursor = 2
	c.SetItems(testItems()[:1])
	if c.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", c.Cursor)
	}
	c.SetItems(nil)
	if _, ok := c.Current(); ok {
		t.Error("Current should be empty for no items")
	}
}

func TestChecklist_WindowFollowsCursor(t *testing.T) {
	c := NewChecklist(testItems())
	c.Cursor = 2

	view := c.View(2, nil, nil, nil)
	lines := strings.Split(view, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 visible lines, got %d:\n%s", len(lines), view)
	}
	if !strings.Contains(view, "Charlie") {
		t.Errorf("cursor row should be visible:\n%s", view)
	}
	if strings.Contains(view, "Alpha") {
		t.Errorf("first row should be scrolled away:\n%s", view)
	}
}

func TestMeter(t *testing.T) {
	tests := []struct {
		value, max, segments int
		want                 int
	}{
		{1, 7, 7, 1},
		{7, 7, 7, 7},
		{3, 6, 12, 6},
		{9, 7, 7, 7},
		{1, 0, 7, 0},
	}
	for _, tt := range tests {
		m := NewMeter("", tt.value, tt.max, tt.segments)
		if got := m.Lit(); got != tt.want {
			t.Errorf("Meter(%d/%d, %d).Lit() = %d, want %d", tt.value, tt.max, tt.segments, got, tt.want)
		}
	}

	view := NewMeter("S", 2, 7, 7).View()
	if !strings.Contains(view, "2/7") || !strings.Contains(view, "▮▮") {
		t.Errorf("unexpected meter view: %q", view)
	}
}
