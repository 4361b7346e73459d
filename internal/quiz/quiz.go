// Package quiz drives one pass through the scenario catalog: which scenario
// is shown, which causes are ticked, and whether feedback is on screen.
package quiz

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/evaluator"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/logging"
)

// MessageNoSelection is the UI string shown for ErrNoSelection.
const MessageNoSelection = "question.noneSelected"

var (
	// ErrNoSelection is the advisory returned by Check when nothing is ticked.
	ErrNoSelection = errors.New("no cause selected")
	// ErrNoScenario is returned when the catalog has no scenarios.
	ErrNoScenario = errors.New("no scenario available")
)

// Quiz is the interactive state. It is not safe for concurrent use; the TUI
// drives it from its update loop.
type Quiz struct {
	id     string
	store  *content.Store
	engine *evaluator.Engine
	lang   *i18n.Session
	logger *slog.Logger

	index       int
	selected    []string
	feedback    *evaluator.Feedback
	unsubscribe func()
}

// New starts a quiz at the first scenario. The quiz follows language changes
// on lang until Close.
func New(store *content.Store, engine *evaluator.Engine, lang *i18n.Session) *Quiz {
	id := uuid.NewString()
	q := &Quiz{
		id:     id,
		store:  store,
		engine: engine,
		lang:   lang,
		logger: logging.New("quiz").With("quiz_id", id),
	}
	q.unsubscribe = lang.OnChange(q.languageChanged)
	q.logger.Debug("quiz started", "scenarios", store.ScenarioCount(), "lang", lang.Language())
	return q
}

// Close detaches the quiz from its language session.
func (q *Quiz) Close() {
	if q.unsubscribe != nil {
		q.unsubscribe()
		q.unsubscribe = nil
	}
}

// ID identifies this quiz run in logs.
func (q *Quiz) ID() string { return q.id }

func (q *Quiz) Store() *content.Store { return q.store }

func (q *Quiz) Session() *i18n.Session { return q.lang }

// Language is the current display language.
func (q *Quiz) Language() string { return q.lang.Language() }

// Current returns the scenario on screen with its position and the total.
// ok is false when the catalog is empty.
func (q *Quiz) Current() (sc content.Scenario, index, total int, ok bool) {
	sc, ok = q.store.ScenarioAt(q.index)
	return sc, q.index, q.store.ScenarioCount(), ok
}

// Selected returns the ticked cause ids in the order they were ticked.
func (q *Quiz) Selected() []string {
	return slices.Clone(q.selected)
}

func (q *Quiz) IsSelected(causeID string) bool {
	return slices.Contains(q.selected, causeID)
}

// Toggle ticks or unticks causeID and reports whether it is now ticked.
// Any change hides feedback.
func (q *Quiz) Toggle(causeID string) bool {
	q.feedback = nil
	if i := slices.Index(q.selected, causeID); i >= 0 {
		q.selected = slices.Delete(q.selected, i, i+1)
		return false
	}
	q.selected = append(q.selected, causeID)
	return true
}

// Select replaces the selection, dropping repeats. Feedback is hidden.
func (q *Quiz) Select(ids []string) {
	q.feedback = nil
	sel := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(sel, id) {
			sel = append(sel, id)
		}
	}
	q.selected = sel
}

// Check evaluates the current selection in the session language and shows
// feedback. With nothing ticked it returns ErrNoSelection and leaves the
// state alone.
func (q *Quiz) Check() (*evaluator.Feedback, error) {
	sc, _, _, ok := q.Current()
	if !ok {
		return nil, ErrNoScenario
	}
	if !evaluator.HasSelection(q.selected) {
		return nil, ErrNoSelection
	}
	fb := q.engine.EvaluateWithFeedback(sc.ID, q.selected, q.lang.Language())
	q.feedback = &fb
	q.logger.Info("selection checked",
		"scenario", sc.ID,
		"selected", len(q.selected),
		"summary", fb.Summary.Tag,
		"rule", fb.Summary.Rule)
	return q.feedback, nil
}

// Feedback returns the feedback on screen, if any.
func (q *Quiz) Feedback() (*evaluator.Feedback, bool) {
	return q.feedback, q.feedback != nil
}

func (q *Quiz) FeedbackShown() bool { return q.feedback != nil }

// Reset clears the selection and hides feedback.
func (q *Quiz) Reset() {
	q.selected = nil
	q.feedback = nil
}

func (q *Quiz) HasNext() bool { return q.index+1 < q.store.ScenarioCount() }

func (q *Quiz) HasPrevious() bool { return q.index > 0 }

// Next moves to the following scenario. It returns false at the end.
func (q *Quiz) Next() bool {
	if !q.HasNext() {
		return false
	}
	q.load(q.index + 1)
	return true
}

// Previous moves to the preceding scenario. It returns false at the start.
func (q *Quiz) Previous() bool {
	if !q.HasPrevious() {
		return false
	}
	q.load(q.index - 1)
	return true
}

// Goto jumps to scenario position i.
func (q *Quiz) Goto(i int) error {
	if i < 0 || i >= q.store.ScenarioCount() {
		return fmt.Errorf("scenario index %d out of range [0,%d)", i, q.store.ScenarioCount())
	}
	q.load(i)
	return nil
}

// GotoID jumps to the scenario with the given id.
func (q *Quiz) GotoID(id string) error {
	i := q.store.ScenarioIndex(id)
	if i < 0 {
		return fmt.Errorf("scenario %q not found", id)
	}
	q.load(i)
	return nil
}

// Advisory returns the localized user message for an advisory error, or ""
// when err is not one.
func (q *Quiz) Advisory(err error) string {
	if errors.Is(err, ErrNoSelection) {
		return q.store.Message(MessageNoSelection, q.lang.Language(), nil)
	}
	return ""
}

func (q *Quiz) load(i int) {
	q.index = i
	q.Reset()
	q.logger.Debug("scenario loaded", "index", i)
}

// languageChanged re-renders visible feedback in the new language, keeping
// the selection.
func (q *Quiz) languageChanged(lang string) {
	if q.feedback == nil {
		return
	}
	fb := q.engine.EvaluateWithFeedback(q.feedback.ScenarioID, q.selected, lang)
	q.feedback = &fb
}
