package content

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, 17, len(s.Causes()))
	assert.Equal(t, 7, s.ScenarioCount())
	assert.Equal(t, "de", s.DefaultLanguage())
	assert.Equal(t, []string{"de", "en"}, s.SupportedLanguages())

	sc, ok := s.Scenario("dead_ten_meters")
	require.True(t, ok)
	assert.Equal(t, []string{"muf_too_low", "solar_minimum"}, s.HighlyPlausibleCauses(sc.ID))
	assert.Equal(t, "10 m", s.EnumValue(EnumBands, sc.Band, "en"))
	assert.Equal(t, "Mittag", s.EnumValue(EnumTimes, sc.Time, "de"))

	for _, c := range s.Causes() {
		assert.True(t, c.Category.Valid(), "cause %s category %q", c.ID, c.Category)
	}
}

func TestLoadEmbedded_PassesCheck(t *testing.T) {
	s, err := LoadEmbedded()
	require.NoError(t, err)
	if issues := s.Check(); len(issues) != 0 {
		t.Errorf("embedded content has %d issues:\n%v", len(issues), issues)
	}
	assert.NoError(t, s.Validate())
}

const yamlCauses = `
categories:
  propagation: {de: Ausbreitung, en: Propagation}
causes:
  - id: skip
    category: propagation
    name: {de: Tote Zone, en: Skip zone}
    description: {en: Gap}
    explanation: {en: Too far}
`

const yamlScenarios = `
scenarios:
  - id: y1
    title: {en: YAML scenario}
    situation: {en: Quiet}
    band: 20m
    time: midday
    distance: regional
    antenna: yagi
    power: {en: 5 W}
    symptoms: [no_replies]
    difficulty: beginner
    causeMappings:
      skip: very_likely
      ghost: likely
      mystery: unlikely
enums:
  bands:
    20m: {en: 20 m}
plausibilityLevels:
  very_likely: {en: Very likely}
`

const yamlStrings = `
defaultLanguage: en
supportedLanguages: [en]
strings:
  btn.check: {en: Check}
`

func TestLoadFS_YAML(t *testing.T) {
	fsys := fstest.MapFS{
		"content/causes.yaml":    {Data: []byte(yamlCauses)},
		"content/scenarios.yml":  {Data: []byte(yamlScenarios)},
		"content/strings.yaml":   {Data: []byte(yamlStrings)},
		"content/unrelated.json": {Data: []byte(`{}`)},
	}
	s, err := LoadFS(fsys, "content")
	require.NoError(t, err)

	sc, ok := s.Scenario("y1")
	require.True(t, ok)
	assert.Equal(t, []string{"skip", "ghost", "mystery"}, sc.CauseMappings.IDs())
	assert.Equal(t, "Skip zone", s.CauseName("skip", "en"))
	assert.Equal(t, "en", s.DefaultLanguage())
	assert.Equal(t, "Check", s.Message("btn.check", "de", nil))
}

func TestLoadFS_SchemaRejection(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		file    string
		content string
	}{
		{"causes missing list", DocCauses, "causes.json", `{"categories":{}}`},
		{"cause without id", DocCauses, "causes.json", `{"categories":{},"causes":[{"category":"timing","name":{"en":"x"}}]}`},
		{"scenario level not string", DocScenarios, "scenarios.json", `{"scenarios":[{"id":"s","title":{},"situation":{},"band":"","time":"","distance":"","antenna":"","power":{},"symptoms":[],"difficulty":"beginner","causeMappings":{"a":1}}]}`},
		{"strings wrong type", DocStrings, "strings.json", `{"strings":{"k":"not a text map"}}`},
		{"broken json", DocCauses, "causes.json", `{"categories":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"causes.json":    {Data: []byte(`{"categories":{},"causes":[]}`)},
				"scenarios.json": {Data: []byte(`{"scenarios":[]}`)},
				"strings.json":   {Data: []byte(`{"strings":{}}`)},
			}
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}

			_, err := LoadFS(fsys, ".")
			require.Error(t, err)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %T", err)
			assert.Equal(t, tt.doc, loadErr.Document)
		})
	}
}

func TestLoadFS_DuplicateMappingKey(t *testing.T) {
	fsys := fstest.MapFS{
		"causes.json":    {Data: []byte(`{"categories":{},"causes":[]}`)},
		"scenarios.json": {Data: []byte(`{"scenarios":[{"id":"s","title":{},"situation":{},"band":"","time":"","distance":"","antenna":"","power":{},"symptoms":[],"difficulty":"beginner","causeMappings":{"a":"likely","a":"unlikely"}}]}`)},
		"strings.json":   {Data: []byte(`{"strings":{}}`)},
	}
	_, err := LoadFS(fsys, ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate cause")
}

func TestLoadFS_MissingDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"causes.json": {Data: []byte(`{"categories":{},"causes":[]}`)},
	}
	_, err := LoadFS(fsys, ".")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoDocument))

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, DocScenarios, loadErr.Document)
}

func TestLoadDir_FallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenarios.yaml"), []byte(yamlScenarios), 0o644))

	s, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, 1, s.ScenarioCount())
	assert.Equal(t, 17, len(s.Causes()), "causes come from the embedded catalog")
	assert.Equal(t, "de", s.DefaultLanguage(), "strings come from the embedded catalog")

	kinds := map[IssueKind]int{}
	for _, is := range s.Check() {
		kinds[is.Kind]++
	}
	assert.Equal(t, 3, kinds[IssueDanglingMapping], "skip, ghost and mystery are not in the embedded causes catalog")
}

func TestLoadDir_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "strings.json"), []byte(`{"defaultLanguage": 7, "strings": {}}`), 0o644))

	_, err := LoadDir(dir)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr), "expected *LoadError, got %v", err)
	assert.Equal(t, DocStrings, loadErr.Document)
	assert.Equal(t, "strings.json", loadErr.Path)
}

func TestSchema(t *testing.T) {
	for _, doc := range []string{DocCauses, DocScenarios, DocStrings} {
		raw, err := Schema(doc)
		require.NoError(t, err, doc)
		assert.Contains(t, string(raw), `"$schema"`)
	}
	_, err := Schema("nope")
	assert.Error(t, err)
}
