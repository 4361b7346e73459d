package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("lang", "", "")
	fs.String("content-dir", "", "")
	fs.String("log-level", "", "")
	fs.String("log-format", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(New(""))
	require.NoError(t, err)

	want := Default()
	want.File = DefaultFile()
	assert.Equal(t, want, cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
language: en
content_dir: /srv/quiz
log:
  level: debug
branding:
  parent_site_name: DARC OV Musterstadt
  parent_site_url: https://example.org
`)
	cfg, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "/srv/quiz", cfg.ContentDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, "DARC OV Musterstadt", cfg.Branding.ParentSiteName)
	assert.Equal(t, "https://example.org", cfg.Branding.ParentSiteURL)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "language: en\nlog:\n  level: debug\n  format: json\n")

	t.Setenv("CQNOTHING_LOG_LEVEL", "error")
	t.Setenv("CQNOTHING_LANGUAGE", "de")

	v := New(path)
	fs := testFlags()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"--lang", "en"}))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language, "flag beats env")
	assert.Equal(t, "error", cfg.Log.Level, "env beats file")
	assert.Equal(t, "json", cfg.Log.Format, "file beats default")
}

func TestLoad_EnvNested(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CQNOTHING_BRANDING_PARENT_SITE_NAME", "Club")

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, "Club", cfg.Branding.ParentSiteName)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "log:\n  level: loud\n  format: xml\n")
	_, err := Load(New(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
}

func TestConfig_YAML(t *testing.T) {
	cfg := Default()
	cfg.Language = "de"
	out, err := cfg.YAML()
	require.NoError(t, err)
	s := string(out)
	assert.True(t, strings.Contains(s, "language: de"), s)
	assert.True(t, strings.Contains(s, "level: warn"), s)
	assert.True(t, strings.Contains(s, "parent_site_name:"), s)
}

func TestDefaultDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "cqnothing"), DefaultDir())
}

func TestSaveLanguage_CreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SaveLanguage(DefaultFile(), "en"))

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, DefaultFile(), cfg.File)
}

func TestSaveLanguage_KeepsOtherKeys(t *testing.T) {
	path := writeConfig(t, "language: de\nlog:\n  level: debug\nbranding:\n  parent_site_name: Club\n")

	cfg, err := Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)

	require.NoError(t, SaveLanguage(cfg.File, "en"))

	cfg, err = Load(New(path))
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Club", cfg.Branding.ParentSiteName)
}
