package evaluator

import (
	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/i18n"
)

// Tag is the qualitative verdict of an evaluation.
type Tag string

const (
	TagPerfect Tag = "perfect"
	TagPartial Tag = "partial"
	TagRethink Tag = "rethink"
	TagError   Tag = "error"
)

// Message keys for each verdict, resolved by the presentation layer.
const (
	MessagePerfect = "feedback.perfect"
	MessagePartly  = "feedback.partly"
	MessageRethink = "feedback.rethink"
)

// Entry is one classified cause.
type Entry struct {
	CauseID      string               `json:"causeId"`
	Plausibility content.Plausibility `json:"plausibility"`
}

// Summary is the verdict plus the message key that describes it. Rule is the
// 1-based row of the decision table that matched, 0 for errors.
type Summary struct {
	Tag        Tag    `json:"type"`
	MessageKey string `json:"messageKey"`
	Rule       int    `json:"rule"`
}

// DiagnosticKind classifies an anomaly met during evaluation.
type DiagnosticKind string

const (
	DiagScenarioNotFound DiagnosticKind = "scenario_not_found"
	DiagUnmappedCause    DiagnosticKind = "unmapped_cause"
	DiagDuplicateCause   DiagnosticKind = "duplicate_selection"
)

// Diagnostic records an anomaly that was degraded around instead of failing.
type Diagnostic struct {
	Kind       DiagnosticKind `json:"kind"`
	ScenarioID string         `json:"scenarioId"`
	CauseID    string         `json:"causeId,omitempty"`
	Message    string         `json:"message"`
}

// Result is the outcome of one evaluation. Slices are never nil.
type Result struct {
	ScenarioID  string       `json:"scenarioId"`
	Selected    []string     `json:"selected"`
	Plausible   []Entry      `json:"plausible"`
	Unlikely    []Entry      `json:"unlikely"`
	Missed      []Entry      `json:"missed"`
	Summary     Summary      `json:"summary"`
	AhaHint     i18n.Text    `json:"ahaHint,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// CauseFeedback is an Entry with its display text resolved.
type CauseFeedback struct {
	CauseID           string               `json:"causeId"`
	Name              string               `json:"name"`
	Description       string               `json:"description"`
	Explanation       string               `json:"explanation"`
	LearnMore         string               `json:"learnMore,omitempty"`
	Plausibility      content.Plausibility `json:"plausibility"`
	PlausibilityLabel string               `json:"plausibilityLabel"`
}

// Feedback is a Result with presentation-ready text for one language.
type Feedback struct {
	Result
	Language          string          `json:"language"`
	PlausibleFeedback []CauseFeedback `json:"plausibleFeedback"`
	UnlikelyFeedback  []CauseFeedback `json:"unlikelyFeedback"`
	MissedFeedback    []CauseFeedback `json:"missedFeedback"`
	AhaHintText       string          `json:"ahaHintText,omitempty"`
	SummaryText       string          `json:"summaryText,omitempty"`
}
