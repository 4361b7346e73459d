// Package evaluator scores a cause selection against a scenario's answer key.
package evaluator

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/logging"
)

// Source is the read side of the content store the engine needs.
type Source interface {
	Scenario(id string) (content.Scenario, bool)
	CauseName(id, lang string) string
	CauseDescription(id, lang string) string
	CauseExplanation(id, lang string) string
	CauseLearnMore(id, lang string) string
	PlausibilityLabel(level content.Plausibility, lang string) string
	Message(key, lang string, params map[string]string) string
}

// Engine evaluates selections. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	src    Source
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the engine's logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an Engine reading from src.
func New(src Source, opts ...Option) *Engine {
	e := &Engine{src: src, logger: logging.New("evaluator")}
	for _, o := range opts {
		o(e)
	}
	return e
}

// HasSelection reports whether ids holds at least one cause.
func HasSelection(ids []string) bool {
	return len(ids) > 0
}

// Evaluate classifies selected against the scenario's mappings. It never
// panics and never fails: an unknown scenario yields an empty result tagged
// TagError.
func (e *Engine) Evaluate(scenarioID string, selected []string) Result {
	sc, ok := e.src.Scenario(scenarioID)
	if !ok {
		e.logger.Error("scenario not found", "scenario", scenarioID)
		res := emptyResult()
		res.Diagnostics = []Diagnostic{{
			Kind:       DiagScenarioNotFound,
			ScenarioID: scenarioID,
			Message:    fmt.Sprintf("scenario %q not found", scenarioID),
		}}
		return res
	}

	res := emptyResult()
	res.ScenarioID = sc.ID
	res.Selected = append(res.Selected, selected...)
	res.AhaHint = sc.AhaHint.Clone()

	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:       DiagDuplicateCause,
				ScenarioID: sc.ID,
				CauseID:    id,
				Message:    "duplicate selection ignored",
			})
			continue
		}
		seen[id] = true

		level, ok := sc.CauseMappings.Level(id)
		if !ok {
			e.logger.Warn("selected cause not mapped for scenario", "scenario", sc.ID, "cause", id)
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Kind:       DiagUnmappedCause,
				ScenarioID: sc.ID,
				CauseID:    id,
				Message:    fmt.Sprintf("cause %q has no mapping in scenario %q", id, sc.ID),
			})
			continue
		}

		entry := Entry{CauseID: id, Plausibility: level}
		if level.IsDistractor() {
			res.Unlikely = append(res.Unlikely, entry)
		} else {
			res.Plausible = append(res.Plausible, entry)
		}
	}

	for _, m := range sc.CauseMappings {
		if m.Level.IsHigh() && !seen[m.CauseID] {
			res.Missed = append(res.Missed, Entry{CauseID: m.CauseID, Plausibility: m.Level})
		}
	}

	res.Summary = Summarize(res.Plausible, res.Unlikely, res.Missed)
	return res
}

// Summarize applies the verdict table, first match wins:
//
//  1. a very_likely pick, nothing missed, no unlikely pick: perfect
//  2. a very_likely or likely pick, and something missed or an unlikely pick: partial
//  3. only possible-level picks: partial
//  4. no plausible pick at all: rethink
//  5. anything else: partial
func Summarize(plausible, unlikely, missed []Entry) Summary {
	hasVeryLikely := slices.ContainsFunc(plausible, func(e Entry) bool { return e.Plausibility == content.VeryLikely })
	hasHigh := slices.ContainsFunc(plausible, func(e Entry) bool { return e.Plausibility.IsHigh() })
	hasMissed := len(missed) > 0
	hasUnlikely := len(unlikely) > 0

	switch {
	case hasVeryLikely && !hasMissed && !hasUnlikely:
		return Summary{Tag: TagPerfect, MessageKey: MessagePerfect, Rule: 1}
	case hasHigh && (hasMissed || hasUnlikely):
		return Summary{Tag: TagPartial, MessageKey: MessagePartly, Rule: 2}
	case len(plausible) > 0 && !hasHigh:
		return Summary{Tag: TagPartial, MessageKey: MessagePartly, Rule: 3}
	case len(plausible) == 0:
		return Summary{Tag: TagRethink, MessageKey: MessageRethink, Rule: 4}
	default:
		return Summary{Tag: TagPartial, MessageKey: MessagePartly, Rule: 5}
	}
}

// EvaluateWithFeedback evaluates and resolves display text for every entry
// in lang. The embedded Result is exactly what Evaluate returns.
func (e *Engine) EvaluateWithFeedback(scenarioID string, selected []string, lang string) Feedback {
	res := e.Evaluate(scenarioID, selected)

	lang = i18n.NormalizeLanguage(lang)
	if lang == "" {
		lang = i18n.DefaultLanguage
	}

	fb := Feedback{
		Result:            res,
		Language:          lang,
		PlausibleFeedback: e.describe(res.Plausible, lang),
		UnlikelyFeedback:  e.describe(res.Unlikely, lang),
		MissedFeedback:    e.describe(res.Missed, lang),
		AhaHintText:       i18n.Resolve(res.AhaHint, lang, ""),
	}
	if res.Summary.MessageKey != "" {
		fb.SummaryText = e.src.Message(res.Summary.MessageKey, lang, nil)
	}
	return fb
}

func (e *Engine) describe(entries []Entry, lang string) []CauseFeedback {
	out := make([]CauseFeedback, 0, len(entries))
	for _, en := range entries {
		out = append(out, CauseFeedback{
			CauseID:           en.CauseID,
			Name:              e.src.CauseName(en.CauseID, lang),
			Description:       e.src.CauseDescription(en.CauseID, lang),
			Explanation:       e.src.CauseExplanation(en.CauseID, lang),
			LearnMore:         e.src.CauseLearnMore(en.CauseID, lang),
			Plausibility:      en.Plausibility,
			PlausibilityLabel: e.src.PlausibilityLabel(en.Plausibility, lang),
		})
	}
	return out
}

// ByRelevance returns a copy of entries ordered from very_likely down to
// unlikely. Entries of the same level keep their order.
func ByRelevance(entries []CauseFeedback) []CauseFeedback {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b CauseFeedback) int {
		return cmp.Compare(a.Plausibility.Rank(), b.Plausibility.Rank())
	})
	return out
}

func emptyResult() Result {
	return Result{
		Selected:  []string{},
		Plausible: []Entry{},
		Unlikely:  []Entry{},
		Missed:    []Entry{},
		Summary:   Summary{Tag: TagError},
	}
}
