package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/branding"
	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/evaluator"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/quiz"
	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/screens/question"
	"github.com/abhisek/cqnothing/internal/screens/scenarios"
	"github.com/abhisek/cqnothing/internal/ui/components"
	"github.com/abhisek/cqnothing/internal/ui/theme"
)

// Deps are the services the interactive screens share.
type Deps struct {
	Store    *content.Store
	Engine   *evaluator.Engine
	Session  *i18n.Session
	Branding branding.Branding
}

var menuKeys = []string{"menu.start", "menu.scenarios", "menu.language", "menu.quit"}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Action: func() tea.Cmd {
			next := h.StartQuiz("")
			if next == nil {
				return nil
			}
			return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}},
		{Action: func() tea.Cmd {
			list := scenarios.New(deps.Store, deps.Session, func(id string) screen.Screen {
				if next := h.StartQuiz(id); next != nil {
					return next
				}
				return nil
			})
			return func() tea.Msg { return router.PushScreenMsg{Screen: list} }
		}},
		{Action: func() tea.Cmd {
			deps.Session.Toggle()
			return nil
		}},
		{Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	if deps.Store.ScenarioCount() == 0 {
		items[0].Disabled = true
		items[1].Disabled = true
	}

	h.menu = components.NewMenu(items)
	h.relabel()
	return h
}

// StartQuiz opens a question screen at scenarioID, or at the first scenario
// when scenarioID is empty. It returns nil for an unknown id.
func (h *HomeScreen) StartQuiz(scenarioID string) *question.QuestionScreen {
	q := quiz.New(h.deps.Store, h.deps.Engine, h.deps.Session)
	if scenarioID != "" {
		if err := q.GotoID(scenarioID); err != nil {
			q.Close()
			return nil
		}
	}
	return question.New(q)
}

func (h *HomeScreen) msg(key string) string {
	return h.deps.Store.Message(key, h.deps.Session.Language(), nil)
}

func (h *HomeScreen) relabel() {
	labels := make([]string, len(menuKeys))
	for i, k := range menuKeys {
		labels[i] = h.msg(k)
	}
	h.menu.SetLabels(labels)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	h.relabel()

	var sections []string

	sections = append(sections, theme.Title.Render(h.msg("app.title")))
	sections = append(sections, theme.Subtitle.Render(h.msg("app.subtitle")))
	sections = append(sections, "")

	menuBox := theme.Card.
		Width(min(max(width-8, 30), 44)).
		Render(strings.TrimRight(h.menu.View(), "\n"))
	sections = append(sections, menuBox)

	sections = append(sections, "", theme.Hint.Render(h.msg("footer.tagline")))
	if b := h.deps.Branding; b.HasParentSite() || b.ParentSiteName != "" {
		line := b.Label()
		if b.HasParentSite() && b.ParentSiteURL != line {
			line += "  " + b.ParentSiteURL
		}
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(line))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return h.msg("app.title")
}
