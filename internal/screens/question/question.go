package question

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/quiz"
	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/screens/feedback"
	"github.com/abhisek/cqnothing/internal/ui/components"
	"github.com/abhisek/cqnothing/internal/ui/layout"
	"github.com/abhisek/cqnothing/internal/ui/theme"
)

// twoColumnWidth is the narrowest terminal that gets the card and the cause
// list side by side.
const twoColumnWidth = 100

type keyMap struct {
	Toggle   key.Binding
	Check    key.Binding
	Reset    key.Binding
	Next     key.Binding
	Previous key.Binding
}

var keys = keyMap{
	Toggle:   key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("Space", "btn.toggle")),
	Check:    key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("Enter", "btn.check")),
	Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "btn.reset")),
	Next:     key.NewBinding(key.WithKeys("n", "right"), key.WithHelp("→", "btn.next")),
	Previous: key.NewBinding(key.WithKeys("p", "left"), key.WithHelp("←", "btn.previous")),
}

// QuestionScreen shows one scenario and the tickable cause list.
type QuestionScreen struct {
	quiz  *quiz.Quiz
	list  components.Checklist
	toast string
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.Closer = (*QuestionScreen)(nil)

// New creates a QuestionScreen driving q. The screen owns q and closes it
// when the router drops the screen.
func New(q *quiz.Quiz) *QuestionScreen {
	s := &QuestionScreen{quiz: q}
	s.list = components.NewChecklist(s.items())
	return s
}

func (s *QuestionScreen) Init() tea.Cmd {
	return nil
}

// Close releases the quiz's language subscription.
func (s *QuestionScreen) Close() {
	s.quiz.Close()
}

func (s *QuestionScreen) msg(k string, params map[string]string) string {
	return s.quiz.Store().Message(k, s.quiz.Language(), params)
}

func (s *QuestionScreen) Title() string {
	_, index, total, ok := s.quiz.Current()
	if !ok {
		return s.msg("app.title", nil)
	}
	return s.msg("nav.scenario", nil) + " " + s.msg("nav.of", map[string]string{
		"current": strconv.Itoa(index + 1),
		"total":   strconv.Itoa(total),
	})
}

func (s *QuestionScreen) KeyHints() []layout.KeyHint {
	bindings := []key.Binding{keys.Toggle, keys.Check, keys.Reset}
	if s.quiz.HasPrevious() {
		bindings = append(bindings, keys.Previous)
	}
	if s.quiz.HasNext() {
		bindings = append(bindings, keys.Next)
	}
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: s.msg(h.Desc, nil)})
	}
	return hints
}

func (s *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedback.NextScenarioMsg:
		s.move(s.quiz.Next)
		return s, nil

	case tea.KeyMsg:
		s.toast = ""
		switch {
		case key.Matches(msg, keys.Toggle):
			if item, ok := s.list.Current(); ok {
				s.quiz.Toggle(item.ID)
			}
			return s, nil
		case key.Matches(msg, keys.Check):
			return s, s.check()
		case key.Matches(msg, keys.Reset):
			s.quiz.Reset()
			return s, nil
		case key.Matches(msg, keys.Next):
			s.move(s.quiz.Next)
			return s, nil
		case key.Matches(msg, keys.Previous):
			s.move(s.quiz.Previous)
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

func (s *QuestionScreen) check() tea.Cmd {
	if _, err := s.quiz.Check(); err != nil {
		s.toast = s.quiz.Advisory(err)
		if s.toast == "" {
			s.toast = err.Error()
		}
		return nil
	}
	next := feedback.New(s.quiz)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *QuestionScreen) move(step func() bool) {
	if step() {
		s.list.Cursor = 0
	}
}

// items lists every cause grouped by category, labelled in the current
// language.
func (s *QuestionScreen) items() []components.ChecklistItem {
	store := s.quiz.Store()
	lang := s.quiz.Language()
	var items []components.ChecklistItem
	for _, cat := range store.Categories() {
		for _, c := range store.CausesByCategory(cat) {
			items = append(items, components.ChecklistItem{
				ID:    c.ID,
				Label: store.CauseName(c.ID, lang),
				Group: string(cat),
			})
		}
	}
	return items
}

// mark returns the verdict badge for a cause once feedback exists.
func (s *QuestionScreen) mark(id string) string {
	fb, ok := s.quiz.Feedback()
	if !ok {
		return ""
	}
	for _, e := range fb.Plausible {
		if e.CauseID == id {
			return theme.Correct.Render("✓")
		}
	}
	for _, e := range fb.Unlikely {
		if e.CauseID == id {
			return theme.Incorrect.Render("✗")
		}
	}
	for _, e := range fb.Missed {
		if e.CauseID == id {
			return theme.Missed.Render("!")
		}
	}
	return ""
}

func (s *QuestionScreen) View(width, height int) string {
	sc, index, total, ok := s.quiz.Current()
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(quiz.ErrNoScenario.Error()))
	}

	store := s.quiz.Store()
	lang := s.quiz.Language()
	s.list.SetItems(s.items())

	twoCol := width >= twoColumnWidth
	cardWidth := width - 2
	if twoCol {
		cardWidth = width/2 - 2
	}
	card := RenderCard(store, sc, lang, cardWidth)

	var panel strings.Builder
	panel.WriteString(components.NewMeter(s.msg("nav.scenario", nil), index+1, total, total).View())
	panel.WriteString("\n\n")
	panel.WriteString(theme.Heading.Render(s.msg("question.main", nil)))
	panel.WriteString("\n")
	panel.WriteString(theme.Hint.Render(s.msg("question.hint", nil)))
	panel.WriteString("\n\n")

	listHeight := height - 6
	if !twoCol {
		listHeight -= lipgloss.Height(card)
	}
	if s.toast != "" {
		listHeight -= 2
	}
	listHeight = max(listHeight, 4)

	heading := func(g string) string { return store.CategoryName(content.Category(g), lang) }
	panel.WriteString(s.list.View(listHeight, s.quiz.IsSelected, s.mark, heading))
	if s.toast != "" {
		panel.WriteString("\n\n")
		panel.WriteString(theme.Toast.Render(s.toast))
	}

	var body string
	if twoCol {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			card,
			lipgloss.NewStyle().PaddingLeft(2).Width(width-cardWidth).Render(panel.String()))
	} else {
		body = card + "\n" + panel.String()
	}
	return lipgloss.NewStyle().MaxHeight(height).Render(body)
}

// RenderCard draws the scenario description: title, situation, the station
// facts and the observed symptoms.
func RenderCard(store *content.Store, sc content.Scenario, lang string, width int) string {
	msg := func(k string) string { return store.Message(k, lang, nil) }
	inner := max(width-6, 20)

	var b strings.Builder
	b.WriteString(theme.Selected.Render(store.ScenarioTitle(sc, lang)))
	b.WriteString("  ")
	b.WriteString(theme.Hint.Render(store.DifficultyLabel(sc.Difficulty, lang)))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Width(inner).Render(store.ScenarioSituation(sc, lang)))
	b.WriteString("\n\n")

	facts := []struct{ label, value string }{
		{msg("scenario.band"), store.EnumValue(content.EnumBands, sc.Band, lang)},
		{msg("scenario.time"), store.EnumValue(content.EnumTimes, sc.Time, lang)},
		{msg("scenario.season"), seasonLabel(store, sc, lang)},
		{msg("scenario.distance"), store.EnumValue(content.EnumDistances, sc.Distance, lang)},
		{msg("scenario.antenna"), store.EnumValue(content.EnumAntennas, sc.Antenna, lang)},
		{msg("scenario.power"), store.ScenarioPower(sc, lang)},
	}
	labelWidth := 0
	for _, f := range facts {
		labelWidth = max(labelWidth, lipgloss.Width(f.label))
	}
	for _, f := range facts {
		if f.value == "" {
			continue
		}
		b.WriteString(theme.Hint.Width(labelWidth + 2).Render(f.label))
		b.WriteString(theme.Body.Render(f.value))
		b.WriteString("\n")
	}

	if len(sc.Symptoms) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Heading.Render(msg("scenario.symptoms")))
		for _, sym := range sc.Symptoms {
			b.WriteString("\n")
			b.WriteString(theme.Body.Render("• " + store.EnumValue(content.EnumSymptoms, sym, lang)))
		}
	}

	return theme.Card.Width(width).Render(b.String())
}

func seasonLabel(store *content.Store, sc content.Scenario, lang string) string {
	if sc.Season == "" {
		return ""
	}
	return store.EnumValue(content.EnumSeasons, sc.Season, lang)
}
