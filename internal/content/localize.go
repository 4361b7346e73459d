package content

import "github.com/abhisek/cqnothing/internal/i18n"

// CauseName returns the localized name of a cause, or the id when the cause
// or its text is missing.
func (s *Store) CauseName(id, lang string) string {
	c, ok := s.lookupCause(id)
	if !ok {
		return id
	}
	return i18n.Resolve(c.Name, lang, id)
}

func (s *Store) CauseDescription(id, lang string) string {
	c, _ := s.lookupCause(id)
	return i18n.Resolve(c.Description, lang, "")
}

func (s *Store) CauseExplanation(id, lang string) string {
	c, _ := s.lookupCause(id)
	return i18n.Resolve(c.Explanation, lang, "")
}

// CauseLearnMore returns "" when the cause has no learn-more text.
func (s *Store) CauseLearnMore(id, lang string) string {
	c, _ := s.lookupCause(id)
	return i18n.Resolve(c.LearnMore, lang, "")
}

// CategoryName falls back to the category key.
func (s *Store) CategoryName(key Category, lang string) string {
	return i18n.Resolve(s.categories[key], lang, string(key))
}

// EnumValue returns the label of an enumerated value, falling back to the
// value itself.
func (s *Store) EnumValue(enumType, value, lang string) string {
	return s.translator.T(lang, i18n.EnumLookup{Type: enumType, Value: value})
}

// PlausibilityLabel falls back to the level string.
func (s *Store) PlausibilityLabel(level Plausibility, lang string) string {
	return i18n.Resolve(s.levels[level], lang, string(level))
}

// DifficultyLabel resolves difficulty.<d> from the strings catalog.
func (s *Store) DifficultyLabel(d Difficulty, lang string) string {
	key := "difficulty." + string(d)
	if !s.strings.Has(key) {
		return string(d)
	}
	return s.strings.Lookup(key, lang, nil)
}

// ScenarioTitle falls back to the scenario id.
func (s *Store) ScenarioTitle(sc Scenario, lang string) string {
	return i18n.Resolve(sc.Title, lang, sc.ID)
}

func (s *Store) ScenarioSituation(sc Scenario, lang string) string {
	return i18n.Resolve(sc.Situation, lang, "")
}

func (s *Store) ScenarioPower(sc Scenario, lang string) string {
	return i18n.Resolve(sc.Power, lang, "")
}

func (s *Store) lookupCause(id string) (Cause, bool) {
	i, ok := s.causeIdx[id]
	if !ok {
		logger().Warn("unknown cause", "cause", id)
		return Cause{}, false
	}
	return s.causes[i], true
}
