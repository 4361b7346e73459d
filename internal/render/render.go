package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/evaluator"
)

const (
	explanationWidth = 60
	nameWidth        = 32
)

// Renderer writes domain values in one format and language.
type Renderer struct {
	w      io.Writer
	format Format
	store  *content.Store
	lang   string
}

// New returns a Renderer. The store supplies labels for table output.
func New(w io.Writer, f Format, store *content.Store, lang string) *Renderer {
	return &Renderer{w: w, format: f, store: store, lang: lang}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *Renderer) msg(key string) string {
	return r.store.Message(key, r.lang, nil)
}

// Feedback writes an evaluation with its verdict, classified causes and hint.
func (r *Renderer) Feedback(fb evaluator.Feedback) error {
	if r.format == FormatJSON {
		return JSON(r.w, fb)
	}

	title := fb.ScenarioID
	if sc, ok := r.store.Scenario(fb.ScenarioID); ok {
		title = r.store.ScenarioTitle(sc, r.lang)
	}

	t := NewTable(r.format)
	t.Title(fmt.Sprintf("%s: %s", title, fb.SummaryText))
	t.Header("", r.msg("table.cause"), r.msg("table.plausibility"), r.msg("table.explanation"))
	t.Columns(
		ColumnConfig{Number: 2, MaxWidth: nameWidth},
		ColumnConfig{Number: 4, MaxWidth: explanationWidth},
	)

	sections := []struct {
		mark  string
		key   string
		items []evaluator.CauseFeedback
	}{
		{"✓", "feedback.plausible", fb.PlausibleFeedback},
		{"✗", "feedback.unlikely", fb.UnlikelyFeedback},
		{"!", "feedback.missed", fb.MissedFeedback},
	}
	first := true
	for _, s := range sections {
		if len(s.items) == 0 {
			continue
		}
		if !first {
			t.Separator()
		}
		first = false
		t.Row(s.mark, r.msg(s.key), "", "")
		for _, c := range evaluator.ByRelevance(s.items) {
			t.Row("", r.causeCell(c), c.PlausibilityLabel, r.explanationCell(c))
		}
	}

	if _, err := fmt.Fprintln(r.w, t.String()); err != nil {
		return err
	}
	if fb.AhaHintText != "" {
		if _, err := fmt.Fprintf(r.w, "\n%s %s\n", r.msg("feedback.aha"), fb.AhaHintText); err != nil {
			return err
		}
	}
	for _, d := range fb.Diagnostics {
		if _, err := fmt.Fprintf(r.w, "warning: %s\n", d.Message); err != nil {
			return err
		}
	}
	return nil
}

// causeCell is the cause name with its description below it.
func (r *Renderer) causeCell(c evaluator.CauseFeedback) string {
	if c.Description == "" {
		return c.Name
	}
	return c.Name + "\n" + c.Description
}

// explanationCell is the explanation followed by the learn-more text.
func (r *Renderer) explanationCell(c evaluator.CauseFeedback) string {
	if c.LearnMore == "" {
		return c.Explanation
	}
	return c.Explanation + "\n\n" + r.msg("feedback.learnMore") + ": " + c.LearnMore
}

// Scenarios writes a one-line-per-scenario listing.
func (r *Renderer) Scenarios(list []content.Scenario) error {
	if r.format == FormatJSON {
		return JSON(r.w, list)
	}
	t := NewTable(r.format)
	t.Header("#", r.msg("table.id"), r.msg("nav.scenario"), r.msg("scenario.band"), r.msg("scenario.difficulty"))
	for i, sc := range list {
		t.Row(i+1, sc.ID, r.store.ScenarioTitle(sc, r.lang),
			r.store.EnumValue(content.EnumBands, sc.Band, r.lang),
			r.store.DifficultyLabel(sc.Difficulty, r.lang))
	}
	_, err := fmt.Fprintln(r.w, t.String())
	return err
}

// Scenario writes one scenario card followed by the cause ids to choose from.
func (r *Renderer) Scenario(sc content.Scenario) error {
	if r.format == FormatJSON {
		return JSON(r.w, sc)
	}

	symptoms := make([]string, len(sc.Symptoms))
	for i, s := range sc.Symptoms {
		symptoms[i] = r.store.EnumValue(content.EnumSymptoms, s, r.lang)
	}

	card := NewTable(r.format)
	card.Title(r.store.ScenarioTitle(sc, r.lang))
	card.Columns(ColumnConfig{Number: 2, MaxWidth: explanationWidth})
	card.Row(r.msg("scenario.band"), r.store.EnumValue(content.EnumBands, sc.Band, r.lang))
	card.Row(r.msg("scenario.time"), r.store.EnumValue(content.EnumTimes, sc.Time, r.lang))
	if sc.Season != "" {
		card.Row(r.msg("scenario.season"), r.store.EnumValue(content.EnumSeasons, sc.Season, r.lang))
	}
	card.Row(r.msg("scenario.distance"), r.store.EnumValue(content.EnumDistances, sc.Distance, r.lang))
	card.Row(r.msg("scenario.antenna"), r.store.EnumValue(content.EnumAntennas, sc.Antenna, r.lang))
	card.Row(r.msg("scenario.power"), r.store.ScenarioPower(sc, r.lang))
	card.Row(r.msg("scenario.symptoms"), strings.Join(symptoms, ", "))
	card.Row(r.msg("scenario.difficulty"), r.store.DifficultyLabel(sc.Difficulty, r.lang))
	card.Separator()
	card.Row("", r.store.ScenarioSituation(sc, r.lang))

	if _, err := fmt.Fprintln(r.w, card.String()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.w, "\n%s\n", r.msg("question.main")); err != nil {
		return err
	}
	return r.Causes(r.store.Causes())
}

// Causes writes causes grouped by category in display order.
func (r *Renderer) Causes(list []content.Cause) error {
	if r.format == FormatJSON {
		return JSON(r.w, list)
	}
	t := NewTable(r.format)
	t.Header(r.msg("table.id"), r.msg("table.category"), r.msg("table.name"), r.msg("table.description"))
	t.Columns(ColumnConfig{Number: 4, MaxWidth: explanationWidth})
	for _, cat := range content.AllCategories() {
		for _, c := range list {
			if c.Category == cat {
				t.Row(c.ID, r.store.CategoryName(cat, r.lang), r.store.CauseName(c.ID, r.lang), r.store.CauseDescription(c.ID, r.lang))
			}
		}
	}
	for _, c := range list {
		if !c.Category.Valid() {
			t.Row(c.ID, string(c.Category), r.store.CauseName(c.ID, r.lang), r.store.CauseDescription(c.ID, r.lang))
		}
	}
	_, err := fmt.Fprintln(r.w, t.String())
	return err
}

// Issues writes integrity findings.
func (r *Renderer) Issues(issues []content.Issue) error {
	if r.format == FormatJSON {
		if issues == nil {
			issues = []content.Issue{}
		}
		return JSON(r.w, issues)
	}
	t := NewTable(r.format)
	t.Header(r.msg("table.kind"), r.msg("table.subject"), r.msg("table.detail"))
	for _, is := range issues {
		t.Row(string(is.Kind), is.Subject, is.Detail)
	}
	_, err := fmt.Fprintln(r.w, t.String())
	return err
}

// Enums writes the labelled values of each enum type in types.
func (r *Renderer) Enums(types []string) error {
	if r.format == FormatJSON {
		out := make(map[string]map[string]string, len(types))
		for _, typ := range types {
			labels := make(map[string]string)
			for _, v := range r.store.EnumValues(typ) {
				labels[v] = r.store.EnumValue(typ, v, r.lang)
			}
			out[typ] = labels
		}
		return JSON(r.w, out)
	}
	t := NewTable(r.format)
	t.Header(r.msg("table.type"), r.msg("table.value"), r.msg("table.label"))
	for i, typ := range types {
		if i > 0 {
			t.Separator()
		}
		for _, v := range r.store.EnumValues(typ) {
			t.Row(typ, v, r.store.EnumValue(typ, v, r.lang))
		}
	}
	_, err := fmt.Fprintln(r.w, t.String())
	return err
}
