package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_CleanCatalog(t *testing.T) {
	cat := testCatalog()
	// S2 lacks German title and power text; give it one to make the catalog clean.
	cat.Scenarios[1].Title = txt("Szenario zwei", "Scenario two")
	s := New(cat)
	assert.Empty(t, s.Check())
	assert.NoError(t, s.Validate())
}

func TestCheck_ReportsIssues(t *testing.T) {
	cat := testCatalog()
	cat.Causes = append(cat.Causes,
		Cause{ID: "A", Category: CategoryPropagation, Name: txt("x", "x"), Description: txt("x", "x"), Explanation: txt("x", "x")},
		Cause{ID: "W", Category: "weather", Name: txt("Wetter", "Weather"), Description: txt("d", "d"), Explanation: txt("e", "e")},
	)
	cat.Scenarios = append(cat.Scenarios,
		Scenario{
			ID:         "S3",
			Title:      txt("Drei", "Three"),
			Situation:  txt("s", "s"),
			Band:       "11m",
			Time:       "night",
			Distance:   "dx",
			Antenna:    "dipole",
			Symptoms:   []string{"band_silent", "smoke"},
			Difficulty: "expert",
			CauseMappings: CauseMappings{
				{CauseID: "A", Level: "certain"},
				{CauseID: "ghost", Level: Possible},
			},
		},
		Scenario{ID: "S1", Title: txt("d", "d"), Situation: txt("d", "d"), Difficulty: Beginner},
	)

	issues := New(cat).Check()
	kinds := map[IssueKind][]string{}
	for _, is := range issues {
		kinds[is.Kind] = append(kinds[is.Kind], is.Subject)
	}

	assert.Equal(t, []string{"cause A"}, kinds[IssueDuplicateCause])
	assert.Equal(t, []string{"cause W"}, kinds[IssueUnknownCategory])
	assert.Equal(t, []string{"scenario S1"}, kinds[IssueDuplicateScenario])
	assert.Equal(t, []string{"scenario S3"}, kinds[IssueUnknownDifficulty])
	assert.Equal(t, []string{"scenario S3", "scenario S3"}, kinds[IssueUnknownEnumValue], "11m and smoke")
	assert.Equal(t, []string{"scenario S3"}, kinds[IssueDanglingMapping])
	assert.Equal(t, []string{"scenario S3"}, kinds[IssueUnknownPlausibility])
	assert.Equal(t, []string{"scenario S3"}, kinds[IssueNoAnswer])
	assert.Equal(t, []string{"scenario S2"}, kinds[IssueMissingText], "S2 title has no German text")

	err := New(cat).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "content validation failed")
	assert.Contains(t, err.Error(), `mapping references unknown cause "ghost"`)
}

func TestCheck_UIStringsNeedEveryLanguage(t *testing.T) {
	cat := testCatalog()
	cat.Scenarios[1].Title = txt("Szenario zwei", "Scenario two")
	cat.Strings["btn.check"] = txt("", "Check")

	issues := New(cat).Check()
	require.Len(t, issues, 1)
	assert.Equal(t, IssueMissingText, issues[0].Kind)
	assert.Equal(t, "string btn.check", issues[0].Subject)
	assert.Contains(t, issues[0].Detail, `"de"`)
}

func TestStore_EnumListing(t *testing.T) {
	s := New(testCatalog())
	types := s.EnumTypes()
	assert.Contains(t, types, EnumBands)
	assert.Nil(t, s.EnumValues("moods"))
	for _, v := range s.EnumValues(EnumBands) {
		assert.NotEqual(t, v, s.EnumValue(EnumBands, v, "xx"), "every listed value has a label")
	}
}
