package content

import "testing"

func TestStore_LocalizedAccessors(t *testing.T) {
	s := New(testCatalog())

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"name requested", s.CauseName("A", "de"), "Ursache A"},
		{"name en", s.CauseName("A", "en"), "Cause A"},
		{"name unknown lang", s.CauseName("A", "fr"), "Cause A"},
		{"name unknown cause", s.CauseName("Z", "de"), "Z"},
		{"description", s.CauseDescription("B", "de"), "Beschreibung B"},
		{"description unknown", s.CauseDescription("Z", "de"), ""},
		{"explanation", s.CauseExplanation("C", "en"), "Explanation C"},
		{"learn more en fallback", s.CauseLearnMore("A", "de"), "More A"},
		{"learn more absent", s.CauseLearnMore("B", "de"), ""},
		{"category", s.CategoryName(CategoryPropagation, "de"), "Ausbreitung"},
		{"category en fallback", s.CategoryName(CategoryEquipment, "de"), "Equipment"},
		{"category key fallback", s.CategoryName(CategoryOperator, "de"), "operator"},
		{"enum", s.EnumValue(EnumTimes, "night", "de"), "Nacht"},
		{"enum value fallback", s.EnumValue(EnumTimes, "noon", "de"), "noon"},
		{"enum type fallback", s.EnumValue("weather", "rain", "de"), "rain"},
		{"level", s.PlausibilityLabel(VeryLikely, "de"), "Sehr wahrscheinlich"},
		{"level en fallback", s.PlausibilityLabel(Likely, "de"), "Likely"},
		{"level raw fallback", s.PlausibilityLabel(Unlikely, "de"), "unlikely"},
		{"difficulty", s.DifficultyLabel(Beginner, "de"), "Einsteiger"},
		{"difficulty raw", s.DifficultyLabel(Advanced, "de"), "advanced"},
		{"message", s.Message("feedback.perfect", "en", nil), "Perfect!"},
		{"message missing", s.Message("feedback.nope", "en", nil), "feedback.nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestStore_ScenarioText(t *testing.T) {
	s := New(testCatalog())
	s1, _ := s.Scenario("S1")
	s2, _ := s.Scenario("S2")

	if got := s.ScenarioTitle(s1, "de"); got != "Szenario eins" {
		t.Errorf("title = %q", got)
	}
	if got := s.ScenarioTitle(s2, "de"); got != "Scenario two" {
		t.Errorf("title en fallback = %q", got)
	}
	if got := s.ScenarioTitle(Scenario{ID: "bare"}, "de"); got != "bare" {
		t.Errorf("title id fallback = %q", got)
	}
	if got := s.ScenarioSituation(s2, "de"); got != "Rauschen" {
		t.Errorf("situation = %q", got)
	}
	if got := s.ScenarioPower(s2, "de"); got != "" {
		t.Errorf("power = %q, want empty", got)
	}
}
