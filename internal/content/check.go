package content

import (
	"fmt"
	"strings"

	"github.com/abhisek/cqnothing/internal/i18n"
)

// IssueKind classifies a content integrity problem.
type IssueKind string

const (
	IssueDuplicateCause      IssueKind = "duplicate_cause"
	IssueDuplicateScenario   IssueKind = "duplicate_scenario"
	IssueUnknownCategory     IssueKind = "unknown_category"
	IssueDanglingMapping     IssueKind = "dangling_mapping"
	IssueUnknownPlausibility IssueKind = "unknown_plausibility"
	IssueUnknownDifficulty   IssueKind = "unknown_difficulty"
	IssueUnknownEnumValue    IssueKind = "unknown_enum_value"
	IssueNoAnswer            IssueKind = "no_highly_plausible"
	IssueMissingText         IssueKind = "missing_text"
)

// Issue is one integrity finding. Issues never prevent loading; evaluation
// degrades around them.
type Issue struct {
	Kind    IssueKind `json:"kind"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s: %s", i.Kind, i.Subject, i.Detail)
}

// Check walks the raw catalog and reports integrity problems in a stable
// order: causes first, then scenarios, then UI strings.
func (s *Store) Check() []Issue {
	var issues []Issue
	add := func(kind IssueKind, subject, format string, args ...any) {
		issues = append(issues, Issue{Kind: kind, Subject: subject, Detail: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]bool)
	for _, c := range s.raw.Causes {
		subject := "cause " + c.ID
		if seen[c.ID] {
			add(IssueDuplicateCause, subject, "id appears more than once, first occurrence wins")
			continue
		}
		seen[c.ID] = true

		if !c.Category.Valid() {
			add(IssueUnknownCategory, subject, "category %q is not one of %s", c.Category, joinCategories())
		}
		s.checkText(add, subject, "name", c.Name)
		s.checkText(add, subject, "description", c.Description)
		s.checkText(add, subject, "explanation", c.Explanation)
	}

	seen = make(map[string]bool)
	for _, sc := range s.raw.Scenarios {
		subject := "scenario " + sc.ID
		if seen[sc.ID] {
			add(IssueDuplicateScenario, subject, "id appears more than once, first occurrence wins")
			continue
		}
		seen[sc.ID] = true

		if !sc.Difficulty.Valid() {
			add(IssueUnknownDifficulty, subject, "difficulty %q", sc.Difficulty)
		}
		for _, ref := range scenarioEnumRefs(sc) {
			if ref.value == "" {
				continue
			}
			if !s.enums.Has(ref.enumType, ref.value) {
				add(IssueUnknownEnumValue, subject, "%s value %q has no label", ref.enumType, ref.value)
			}
		}
		for _, m := range sc.CauseMappings {
			if _, ok := s.causeIdx[m.CauseID]; !ok {
				add(IssueDanglingMapping, subject, "mapping references unknown cause %q", m.CauseID)
			}
			if !m.Level.Valid() {
				add(IssueUnknownPlausibility, subject, "cause %q has level %q", m.CauseID, m.Level)
			}
		}
		if len(sc.CauseMappings.HighlyPlausible()) == 0 {
			add(IssueNoAnswer, subject, "no cause is mapped very_likely or likely")
		}
		s.checkText(add, subject, "title", sc.Title)
		s.checkText(add, subject, "situation", sc.Situation)
	}

	for _, key := range s.strings.Keys() {
		t, _ := s.strings.Text(key)
		s.checkText(add, "string "+key, "text", t)
	}

	return issues
}

// Validate returns an error listing every Check issue, or nil.
func (s *Store) Validate() error {
	issues := s.Check()
	if len(issues) == 0 {
		return nil
	}
	errs := make([]string, len(issues))
	for i, is := range issues {
		errs[i] = is.String()
	}
	return fmt.Errorf("content validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func (s *Store) checkText(add func(IssueKind, string, string, ...any), subject, field string, t i18n.Text) {
	for _, lang := range s.supported {
		if !t.Has(lang) {
			add(IssueMissingText, subject, "%s has no %q text", field, lang)
		}
	}
}

type enumRef struct {
	enumType string
	value    string
}

func scenarioEnumRefs(sc Scenario) []enumRef {
	refs := []enumRef{
		{EnumBands, sc.Band},
		{EnumTimes, sc.Time},
		{EnumSeasons, sc.Season},
		{EnumDistances, sc.Distance},
		{EnumAntennas, sc.Antenna},
	}
	for _, sym := range sc.Symptoms {
		refs = append(refs, enumRef{EnumSymptoms, sym})
	}
	return refs
}

func joinCategories() string {
	names := make([]string, len(allCategories))
	for i, c := range allCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
