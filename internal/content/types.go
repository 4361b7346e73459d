// Package content holds the cause and scenario catalogs the quiz is built
// from, and the localized accessors over them.
package content

import (
	"slices"

	"github.com/abhisek/cqnothing/internal/i18n"
)

// Category groups causes for display.
type Category string

const (
	CategoryPropagation  Category = "propagation"
	CategoryTiming       Category = "timing"
	CategoryEquipment    Category = "equipment"
	CategoryInterference Category = "interference"
	CategoryOperator     Category = "operator"
)

var allCategories = []Category{
	CategoryPropagation,
	CategoryTiming,
	CategoryEquipment,
	CategoryInterference,
	CategoryOperator,
}

// AllCategories returns the known categories in display order.
func AllCategories() []Category {
	return slices.Clone(allCategories)
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return slices.Contains(allCategories, c)
}

// Plausibility grades how well a cause explains a scenario.
type Plausibility string

const (
	VeryLikely Plausibility = "very_likely"
	Likely     Plausibility = "likely"
	Possible   Plausibility = "possible"
	Unlikely   Plausibility = "unlikely"
)

var allPlausibilities = []Plausibility{VeryLikely, Likely, Possible, Unlikely}

// AllPlausibilities returns the levels from most to least relevant.
func AllPlausibilities() []Plausibility {
	return slices.Clone(allPlausibilities)
}

func (p Plausibility) Valid() bool {
	return slices.Contains(allPlausibilities, p)
}

// IsHigh reports whether p belongs to the correct-answer set.
func (p Plausibility) IsHigh() bool {
	return p == VeryLikely || p == Likely
}

// IsDistractor reports whether p marks a cause that does not fit.
func (p Plausibility) IsDistractor() bool {
	return p == Unlikely
}

// Rank is 0 for very_likely up to 3 for unlikely, and 4 for unknown levels.
func (p Plausibility) Rank() int {
	if i := slices.Index(allPlausibilities, p); i >= 0 {
		return i
	}
	return len(allPlausibilities)
}

// Difficulty is a scenario's rough level.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

var allDifficulties = []Difficulty{Beginner, Intermediate, Advanced}

// AllDifficulties returns the difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return slices.Clone(allDifficulties)
}

func (d Difficulty) Valid() bool {
	return slices.Contains(allDifficulties, d)
}

// Cause is a candidate explanation for a failed contact.
type Cause struct {
	ID          string    `json:"id" yaml:"id"`
	Category    Category  `json:"category" yaml:"category"`
	Name        i18n.Text `json:"name" yaml:"name"`
	Description i18n.Text `json:"description" yaml:"description"`
	Explanation i18n.Text `json:"explanation" yaml:"explanation"`
	LearnMore   i18n.Text `json:"learnMore,omitempty" yaml:"learnMore,omitempty"`
}

func (c Cause) clone() Cause {
	c.Name = c.Name.Clone()
	c.Description = c.Description.Clone()
	c.Explanation = c.Explanation.Clone()
	c.LearnMore = c.LearnMore.Clone()
	return c
}

// Scenario is one troubleshooting situation with its answer key.
type Scenario struct {
	ID            string        `json:"id" yaml:"id"`
	Title         i18n.Text     `json:"title" yaml:"title"`
	Situation     i18n.Text     `json:"situation" yaml:"situation"`
	Band          string        `json:"band" yaml:"band"`
	Time          string        `json:"time" yaml:"time"`
	Season        string        `json:"season,omitempty" yaml:"season,omitempty"`
	Distance      string        `json:"distance" yaml:"distance"`
	Antenna       string        `json:"antenna" yaml:"antenna"`
	Power         i18n.Text     `json:"power" yaml:"power"`
	Symptoms      []string      `json:"symptoms" yaml:"symptoms"`
	Difficulty    Difficulty    `json:"difficulty" yaml:"difficulty"`
	CauseMappings CauseMappings `json:"causeMappings" yaml:"causeMappings"`
	AhaHint       i18n.Text     `json:"ahaHint,omitempty" yaml:"ahaHint,omitempty"`
}

func (s Scenario) clone() Scenario {
	s.Title = s.Title.Clone()
	s.Situation = s.Situation.Clone()
	s.Power = s.Power.Clone()
	s.Symptoms = slices.Clone(s.Symptoms)
	s.CauseMappings = slices.Clone(s.CauseMappings)
	s.AhaHint = s.AhaHint.Clone()
	return s
}

// Enum type names used by the scenarios catalog.
const (
	EnumBands     = "bands"
	EnumTimes     = "times"
	EnumDistances = "distances"
	EnumAntennas  = "antennas"
	EnumSymptoms  = "symptoms"
	EnumSeasons   = "seasons"
)

// Catalog is the decoded content before indexing.
type Catalog struct {
	Categories         map[Category]i18n.Text
	Causes             []Cause
	Scenarios          []Scenario
	Enums              i18n.EnumCatalog
	PlausibilityLevels map[Plausibility]i18n.Text
	Strings            map[string]i18n.Text
	DefaultLanguage    string
	SupportedLanguages []string
}
