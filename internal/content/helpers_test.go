package content

import "github.com/abhisek/cqnothing/internal/i18n"

func txt(de, en string) i18n.Text {
	t := i18n.Text{}
	if de != "" {
		t["de"] = de
	}
	if en != "" {
		t["en"] = en
	}
	return t
}

func testCatalog() Catalog {
	return Catalog{
		Categories: map[Category]i18n.Text{
			CategoryPropagation: txt("Ausbreitung", "Propagation"),
			CategoryEquipment:   txt("", "Equipment"),
		},
		Causes: []Cause{
			{ID: "A", Category: CategoryPropagation, Name: txt("Ursache A", "Cause A"), Description: txt("Beschreibung A", "Description A"), Explanation: txt("Erklärung A", "Explanation A"), LearnMore: txt("", "More A")},
			{ID: "B", Category: CategoryEquipment, Name: txt("Ursache B", "Cause B"), Description: txt("Beschreibung B", "Description B"), Explanation: txt("Erklärung B", "Explanation B")},
			{ID: "C", Category: CategoryPropagation, Name: txt("Ursache C", "Cause C"), Description: txt("Beschreibung C", "Description C"), Explanation: txt("Erklärung C", "Explanation C")},
		},
		Scenarios: []Scenario{
			{
				ID:         "S1",
				Title:      txt("Szenario eins", "Scenario one"),
				Situation:  txt("Stille", "Silence"),
				Band:       "20m",
				Time:       "night",
				Distance:   "dx",
				Antenna:    "dipole",
				Power:      txt("100 W", "100 W"),
				Symptoms:   []string{"band_silent"},
				Difficulty: Beginner,
				CauseMappings: CauseMappings{
					{CauseID: "A", Level: VeryLikely},
					{CauseID: "B", Level: Likely},
					{CauseID: "C", Level: Unlikely},
				},
				AhaHint: txt("Aha eins", "Aha one"),
			},
			{
				ID:         "S2",
				Title:      txt("", "Scenario two"),
				Situation:  txt("Rauschen", "Noise"),
				Band:       "40m",
				Time:       "night",
				Distance:   "dx",
				Antenna:    "dipole",
				Symptoms:   []string{},
				Difficulty: Advanced,
				CauseMappings: CauseMappings{
					{CauseID: "C", Level: Possible},
					{CauseID: "B", Level: Likely},
					{CauseID: "A", Level: Unlikely},
				},
			},
		},
		Enums: i18n.EnumCatalog{
			EnumBands:     {"20m": txt("20 m", "20 m"), "40m": txt("40 m", "40 m")},
			EnumTimes:     {"night": txt("Nacht", "Night")},
			EnumDistances: {"dx": txt("Fernverbindung", "Long haul")},
			EnumAntennas:  {"dipole": txt("Dipol", "Dipole")},
			EnumSymptoms:  {"band_silent": txt("Band still", "Band silent")},
		},
		PlausibilityLevels: map[Plausibility]i18n.Text{
			VeryLikely: txt("Sehr wahrscheinlich", "Very likely"),
			Likely:     txt("", "Likely"),
		},
		Strings: map[string]i18n.Text{
			"feedback.perfect":    txt("Perfekt!", "Perfect!"),
			"difficulty.beginner": txt("Einsteiger", "Beginner"),
		},
		DefaultLanguage:    "de",
		SupportedLanguages: []string{"de", "en"},
	}
}
