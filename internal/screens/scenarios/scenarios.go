package scenarios

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/ui/layout"
	"github.com/abhisek/cqnothing/internal/ui/theme"
)

type rowKind int

const (
	rowDifficultyHeader rowKind = iota
	rowScenario
)

type row struct {
	kind       rowKind
	difficulty content.Difficulty
	scenario   content.Scenario
}

// StartFunc opens the question screen at the given scenario.
type StartFunc func(scenarioID string) screen.Screen

// ScenarioListScreen lists the scenarios grouped by difficulty.
type ScenarioListScreen struct {
	store        *content.Store
	lang         *i18n.Session
	start        StartFunc
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*ScenarioListScreen)(nil)
var _ screen.KeyHintProvider = (*ScenarioListScreen)(nil)

// New creates a ScenarioListScreen. Selecting a row pushes start(id).
func New(store *content.Store, lang *i18n.Session, start StartFunc) *ScenarioListScreen {
	var rows []row
	for _, d := range content.AllDifficulties() {
		list := store.ScenariosByDifficulty(d)
		if len(list) == 0 {
			continue
		}
		rows = append(rows, row{kind: rowDifficultyHeader, difficulty: d})
		for _, sc := range list {
			rows = append(rows, row{kind: rowScenario, difficulty: d, scenario: sc})
		}
	}

	s := &ScenarioListScreen{
		store: store,
		lang:  lang,
		start: start,
		rows:  rows,
	}

	// Set cursor to first scenario row
	for i, r := range s.rows {
		if r.kind == rowScenario {
			s.cursor = i
			break
		}
	}

	return s
}

func (s *ScenarioListScreen) Init() tea.Cmd {
	return nil
}

func (s *ScenarioListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "enter":
			return s, s.selectScenario()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ScenarioListScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	lang := s.lang.Language()
	var lines []string
	for i := s.scrollOffset; i < len(s.rows) && len(lines) < height; i++ {
		r := s.rows[i]
		switch r.kind {
		case rowDifficultyHeader:
			lines = append(lines, s.renderHeader(r.difficulty, lang, width))
		case rowScenario:
			lines = append(lines, s.renderScenarioRow(r.scenario, lang, i == s.cursor))
		}
	}

	return strings.Join(lines, "\n")
}

func (s *ScenarioListScreen) Title() string {
	return s.store.Message("menu.scenarios", s.lang.Language(), nil)
}

// KeyHints returns the key binding hints for the footer.
func (s *ScenarioListScreen) KeyHints() []layout.KeyHint {
	lang := s.lang.Language()
	return []layout.KeyHint{
		{Key: "↑↓", Description: s.store.Message("hint.navigate", lang, nil)},
		{Key: "Enter", Description: s.store.Message("menu.start", lang, nil)},
		{Key: "Esc", Description: s.store.Message("menu.back", lang, nil)},
	}
}

// Selected returns the scenario under the cursor.
func (s *ScenarioListScreen) Selected() (content.Scenario, bool) {
	if s.cursor < 0 || s.cursor >= len(s.rows) || s.rows[s.cursor].kind != rowScenario {
		return content.Scenario{}, false
	}
	return s.rows[s.cursor].scenario, true
}

func (s *ScenarioListScreen) selectScenario() tea.Cmd {
	sc, ok := s.Selected()
	if !ok || s.start == nil {
		return nil
	}
	next := s.start(sc.ID)
	if next == nil {
		return nil
	}
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

// moveCursor moves the cursor by delta, skipping headers.
func (s *ScenarioListScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowScenario {
			s.cursor = next
			return
		}
		next += delta
	}
}

// adjustScroll ensures the cursor is visible within the viewport.
func (s *ScenarioListScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	// Also show the header above the cursor if possible
	top := s.cursor
	if top > 0 && s.rows[top-1].kind == rowDifficultyHeader {
		top--
	}
	if top < s.scrollOffset {
		s.scrollOffset = top
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *ScenarioListScreen) renderHeader(d content.Difficulty, lang string, width int) string {
	label := " " + s.store.DifficultyLabel(d, lang) + " "
	ruleWidth := max(min(width-lipgloss.Width(label)-4, 40), 0)
	return theme.Heading.Render("──"+label) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", ruleWidth))
}

func (s *ScenarioListScreen) renderScenarioRow(sc content.Scenario, lang string, selected bool) string {
	prefix := "    "
	style := theme.Unselected
	if selected {
		prefix = "  ▸ "
		style = theme.Selected
	}
	band := s.store.EnumValue(content.EnumBands, sc.Band, lang)
	return style.Render(prefix+s.store.ScenarioTitle(sc, lang)) +
		"  " + theme.Hint.Render(band)
}
