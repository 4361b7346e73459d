package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/evaluator"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/screens/home"
	"github.com/abhisek/cqnothing/internal/screens/welcome"
)

func testOptions(t *testing.T, skipSplash bool) Options {
	t.Helper()
	store, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	return Options{
		Deps: home.Deps{
			Store:   store,
			Engine:  evaluator.New(store),
			Session: i18n.NewSession(store.SupportedLanguages(), store.DefaultLanguage()),
		},
		SkipSplash: skipSplash,
	}
}

func sized(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestApp_StartsOnSplash(t *testing.T) {
	m := newAppModel(testOptions(t, false))
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
	if m.Init() == nil {
		t.Error("splash should start its animation")
	}
}

func TestApp_SkipSplash(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("expected home screen, got %T", m.router.Active())
	}
}

func TestApp_LanguageKeyTogglesSession(t *testing.T) {
	opts := testOptions(t, true)
	m := sized(newAppModel(opts), 100, 30)

	updated, _ := m.Update(tea.KeyPressMsg{Code: 'L', Text: "L"})
	m = updated.(AppModel)
	if opts.Session.Language() != "en" {
		t.Fatalf("language = %q, want en", opts.Session.Language())
	}
	if !strings.Contains(m.render(), "[EN]") {
		t.Error("header should show the active language")
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := sized(newAppModel(testOptions(t, true)), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}
}

func TestApp_EscAtRootIsNoop(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on the root screen should do nothing")
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t, true))
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestApp_FooterHintsAreLocalized(t *testing.T) {
	opts := testOptions(t, true)
	m := sized(newAppModel(opts), 100, 30)

	descs := func() []string {
		var out []string
		for _, h := range m.footerHints() {
			out = append(out, h.Description)
		}
		return out
	}

	got := strings.Join(descs(), "|")
	if !strings.Contains(got, "Navigieren") || !strings.Contains(got, "Auswählen") {
		t.Errorf("German footer = %q", got)
	}

	opts.Session.SetLanguage("en")
	got = strings.Join(descs(), "|")
	if !strings.Contains(got, "Navigate") || !strings.Contains(got, "Select") {
		t.Errorf("English footer = %q", got)
	}
}
