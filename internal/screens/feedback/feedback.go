package feedback

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/evaluator"
	"github.com/abhisek/cqnothing/internal/quiz"
	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/ui/layout"
	"github.com/abhisek/cqnothing/internal/ui/theme"
)

// NextScenarioMsg asks the question screen underneath to advance.
type NextScenarioMsg struct{}

type keyMap struct {
	Back key.Binding
	Next key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(key.WithKeys("enter", "b")),
	Next: key.NewBinding(key.WithKeys("n", "right")),
}

// FeedbackScreen shows the evaluation of the current selection. It reads the
// feedback from the quiz on every render, so a language switch shows up
// immediately.
type FeedbackScreen struct {
	quiz     *quiz.Quiz
	viewport viewport.Model
}

var _ screen.Screen = (*FeedbackScreen)(nil)
var _ screen.KeyHintProvider = (*FeedbackScreen)(nil)

// New creates a FeedbackScreen for q, which must have feedback shown.
func New(q *quiz.Quiz) *FeedbackScreen {
	return &FeedbackScreen{
		quiz:     q,
		viewport: viewport.New(),
	}
}

func (s *FeedbackScreen) Init() tea.Cmd {
	return nil
}

func (s *FeedbackScreen) message(k string, params map[string]string) string {
	return s.quiz.Store().Message(k, s.quiz.Language(), params)
}

func (s *FeedbackScreen) msg(k string) string {
	return s.message(k, nil)
}

func (s *FeedbackScreen) Title() string {
	if fb, ok := s.quiz.Feedback(); ok {
		if sc, found := s.quiz.Store().Scenario(fb.ScenarioID); found {
			return s.quiz.Store().ScenarioTitle(sc, s.quiz.Language())
		}
	}
	return ""
}

func (s *FeedbackScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: s.msg("hint.scroll")},
		{Key: "Enter", Description: s.msg("btn.previous")},
	}
	if s.quiz.HasNext() {
		hints = append(hints, layout.KeyHint{Key: "n", Description: s.msg("btn.next")})
	}
	return hints
}

func (s *FeedbackScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(kmsg, keys.Next):
			if !s.quiz.HasNext() {
				return s, nil
			}
			return s, tea.Sequence(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return NextScenarioMsg{} },
			)
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *FeedbackScreen) View(width, height int) string {
	fb, ok := s.quiz.Feedback()
	if !ok {
		return ""
	}
	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	s.viewport.SetContent(Render(fb, s.message, width))
	return s.viewport.View()
}

// Render lays out fb for a terminal of the given width. message resolves UI
// string keys in the feedback language.
func Render(fb *evaluator.Feedback, message func(key string, params map[string]string) string, width int) string {
	msg := func(k string) string { return message(k, nil) }
	var b strings.Builder
	textWidth := min(max(width-8, 20), 76)

	center := func(str string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, str)
	}

	b.WriteString(center(summaryStyle(fb.Summary.Tag).Render(fb.SummaryText)))
	b.WriteString("\n")
	counts := message("feedback.count", map[string]string{
		"plausible": strconv.Itoa(len(fb.PlausibleFeedback)),
		"unlikely":  strconv.Itoa(len(fb.UnlikelyFeedback)),
		"missed":    strconv.Itoa(len(fb.MissedFeedback)),
	})
	b.WriteString(center(theme.Hint.Render(counts)))
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", textWidth))

	section := func(heading, icon string, style lipgloss.Style, entries []evaluator.CauseFeedback) {
		if len(entries) == 0 {
			return
		}
		b.WriteString("\n")
		b.WriteString(center(style.Render(heading)))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n")
		for _, e := range evaluator.ByRelevance(entries) {
			var card strings.Builder
			card.WriteString(style.Render(icon+" "+e.Name) + " " + theme.Badge(e.Plausibility, e.PlausibilityLabel))
			card.WriteString("\n")
			if e.Description != "" {
				card.WriteString(theme.Hint.Width(textWidth).Render(e.Description))
				card.WriteString("\n")
			}
			card.WriteString(theme.Body.Width(textWidth).Render(e.Explanation))
			if e.LearnMore != "" {
				card.WriteString("\n")
				card.WriteString(theme.Hint.Width(textWidth).Render(msg("feedback.learnMore") + ": " + e.LearnMore))
			}
			b.WriteString(center(card.String()))
			b.WriteString("\n\n")
		}
	}

	section(msg("feedback.plausible"), "✓", theme.Correct, fb.PlausibleFeedback)
	section(msg("feedback.unlikely"), "✗", theme.Incorrect, fb.UnlikelyFeedback)
	section(msg("feedback.missed"), "!", theme.Missed, fb.MissedFeedback)

	if fb.AhaHintText != "" {
		aha := theme.Card.
			BorderForeground(theme.Accent).
			Width(textWidth).
			Render(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(msg("feedback.aha")) +
				"\n" + fb.AhaHintText)
		b.WriteString(center(aha))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func summaryStyle(tag evaluator.Tag) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch tag {
	case evaluator.TagPerfect:
		return style.Foreground(theme.Success)
	case evaluator.TagPartial:
		return style.Foreground(theme.Warning)
	case evaluator.TagRethink:
		return style.Foreground(theme.Error)
	default:
		return style.Foreground(theme.TextDim)
	}
}
