package content

import (
	"slices"

	"github.com/abhisek/cqnothing/internal/i18n"
)

// Store is the frozen, indexed content. All accessors return copies, so a
// Store is safe for concurrent readers.
type Store struct {
	raw Catalog

	causes      []Cause
	causeIdx    map[string]int
	scenarios   []Scenario
	scenarioIdx map[string]int

	categories map[Category]i18n.Text
	levels     map[Plausibility]i18n.Text
	enums      i18n.EnumCatalog
	strings    *i18n.Strings
	translator *i18n.Translator

	defaultLanguage string
	supported       []string
}

// New indexes cat. Duplicate ids keep their first occurrence; Check reports
// the rest.
func New(cat Catalog) *Store {
	cat = cloneCatalog(cat)
	s := &Store{
		raw:         cat,
		causeIdx:    make(map[string]int, len(cat.Causes)),
		scenarioIdx: make(map[string]int, len(cat.Scenarios)),
		categories:  cat.Categories,
		levels:      cat.PlausibilityLevels,
		enums:       cat.Enums,
		strings:     i18n.NewStrings(cat.Strings),
	}
	s.translator = i18n.NewTranslator(s.enums, s.strings)

	for _, c := range cat.Causes {
		if _, dup := s.causeIdx[c.ID]; dup {
			continue
		}
		s.causeIdx[c.ID] = len(s.causes)
		s.causes = append(s.causes, c)
	}
	for _, sc := range cat.Scenarios {
		if _, dup := s.scenarioIdx[sc.ID]; dup {
			continue
		}
		s.scenarioIdx[sc.ID] = len(s.scenarios)
		s.scenarios = append(s.scenarios, sc)
	}

	s.defaultLanguage = i18n.NormalizeLanguage(cat.DefaultLanguage)
	if s.defaultLanguage == "" {
		s.defaultLanguage = i18n.DefaultLanguage
	}
	for _, l := range cat.SupportedLanguages {
		if l = i18n.NormalizeLanguage(l); l != "" && !slices.Contains(s.supported, l) {
			s.supported = append(s.supported, l)
		}
	}
	if len(s.supported) == 0 {
		s.supported = []string{s.defaultLanguage}
	}
	return s
}

// Causes returns every cause in catalog order.
func (s *Store) Causes() []Cause {
	out := make([]Cause, len(s.causes))
	for i, c := range s.causes {
		out[i] = c.clone()
	}
	return out
}

// Cause looks up a cause by id.
func (s *Store) Cause(id string) (Cause, bool) {
	i, ok := s.causeIdx[id]
	if !ok {
		return Cause{}, false
	}
	return s.causes[i].clone(), true
}

// CausesByCategory returns the causes in category, in catalog order.
func (s *Store) CausesByCategory(category Category) []Cause {
	out := []Cause{}
	for _, c := range s.causes {
		if c.Category == category {
			out = append(out, c.clone())
		}
	}
	return out
}

// Categories returns the known categories in display order.
func (s *Store) Categories() []Category {
	return AllCategories()
}

// Scenarios returns every scenario in catalog order.
func (s *Store) Scenarios() []Scenario {
	out := make([]Scenario, len(s.scenarios))
	for i, sc := range s.scenarios {
		out[i] = sc.clone()
	}
	return out
}

// Scenario looks up a scenario by id.
func (s *Store) Scenario(id string) (Scenario, bool) {
	i, ok := s.scenarioIdx[id]
	if !ok {
		return Scenario{}, false
	}
	return s.scenarios[i].clone(), true
}

// ScenarioAt returns the scenario at catalog position i.
func (s *Store) ScenarioAt(i int) (Scenario, bool) {
	if i < 0 || i >= len(s.scenarios) {
		return Scenario{}, false
	}
	return s.scenarios[i].clone(), true
}

// ScenarioIndex returns the catalog position of id, or -1.
func (s *Store) ScenarioIndex(id string) int {
	if i, ok := s.scenarioIdx[id]; ok {
		return i
	}
	return -1
}

func (s *Store) ScenarioCount() int {
	return len(s.scenarios)
}

// ScenariosByDifficulty returns the scenarios of difficulty d, in catalog
// order.
func (s *Store) ScenariosByDifficulty(d Difficulty) []Scenario {
	out := []Scenario{}
	for _, sc := range s.scenarios {
		if sc.Difficulty == d {
			out = append(out, sc.clone())
		}
	}
	return out
}

// RelevantCauses returns the ids mapped to any level but unlikely, in
// mapping order. Unknown scenarios yield an empty slice.
func (s *Store) RelevantCauses(scenarioID string) []string {
	i, ok := s.scenarioIdx[scenarioID]
	if !ok {
		return []string{}
	}
	return s.scenarios[i].CauseMappings.Relevant()
}

// HighlyPlausibleCauses returns the ids mapped to very_likely or likely, in
// mapping order. Unknown scenarios yield an empty slice.
func (s *Store) HighlyPlausibleCauses(scenarioID string) []string {
	i, ok := s.scenarioIdx[scenarioID]
	if !ok {
		return []string{}
	}
	return s.scenarios[i].CauseMappings.HighlyPlausible()
}

// DefaultLanguage is the strings catalog's default display language.
func (s *Store) DefaultLanguage() string {
	return s.defaultLanguage
}

// SupportedLanguages lists the display languages in catalog order.
func (s *Store) SupportedLanguages() []string {
	return slices.Clone(s.supported)
}

// Message resolves a UI string with optional {{param}} substitution.
func (s *Store) Message(key, lang string, params map[string]string) string {
	return s.translator.T(lang, i18n.StringLookup{Key: key, Params: params})
}

// EnumTypes lists the enum types that have labels, sorted.
func (s *Store) EnumTypes() []string {
	return s.enums.Types()
}

// EnumValues lists the labelled values of enumType, sorted. An unknown
// type yields nil.
func (s *Store) EnumValues(enumType string) []string {
	return s.enums.Values(enumType)
}

func cloneCatalog(cat Catalog) Catalog {
	out := Catalog{
		Categories:         make(map[Category]i18n.Text, len(cat.Categories)),
		PlausibilityLevels: make(map[Plausibility]i18n.Text, len(cat.PlausibilityLevels)),
		Enums:              make(i18n.EnumCatalog, len(cat.Enums)),
		Strings:            make(map[string]i18n.Text, len(cat.Strings)),
		DefaultLanguage:    cat.DefaultLanguage,
		SupportedLanguages: slices.Clone(cat.SupportedLanguages),
	}
	for k, t := range cat.Categories {
		out.Categories[k] = t.Clone()
	}
	for k, t := range cat.PlausibilityLevels {
		out.PlausibilityLevels[k] = t.Clone()
	}
	for typ, values := range cat.Enums {
		m := make(map[string]i18n.Text, len(values))
		for v, t := range values {
			m[v] = t.Clone()
		}
		out.Enums[typ] = m
	}
	for k, t := range cat.Strings {
		out.Strings[k] = t.Clone()
	}
	for _, c := range cat.Causes {
		out.Causes = append(out.Causes, c.clone())
	}
	for _, sc := range cat.Scenarios {
		out.Scenarios = append(out.Scenarios, sc.clone())
	}
	return out
}
