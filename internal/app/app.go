package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/screens/home"
	"github.com/abhisek/cqnothing/internal/screens/welcome"
	"github.com/abhisek/cqnothing/internal/ui/layout"
)

// Options configure the interactive program.
type Options struct {
	home.Deps

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the splash or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen { return home.New(opts.Deps) }

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		lang := opts.Session.Language()
		initial = welcome.New(homeFactory,
			opts.Store.Message("app.subtitle", lang, nil),
			opts.Store.Message("menu.pressKey", lang, nil))
	}
	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "L", "ctrl+l":
			m.opts.Session.Toggle()
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) footerHints() []layout.KeyHint {
	lang := m.opts.Session.Language()
	langHint := layout.KeyHint{Key: "L", Description: m.opts.Store.Message("a11y.languageToggle", lang, nil)}

	active := m.router.Active()
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints := p.KeyHints()
		if m.router.Depth() > 1 {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: m.opts.Store.Message("menu.back", lang, nil)})
		}
		return append(hints, langHint)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: m.opts.Store.Message("menu.back", lang, nil)},
			langHint,
			{Key: "Ctrl+C", Description: m.opts.Store.Message("menu.quit", lang, nil)},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: m.opts.Store.Message("hint.navigate", lang, nil)},
		{Key: "Enter", Description: m.opts.Store.Message("hint.select", lang, nil)},
		langHint,
		{Key: "Ctrl+C", Description: m.opts.Store.Message("menu.quit", lang, nil)},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render composes the frame for the current terminal size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.HeaderInfo{
		Brand:    m.opts.Branding.Label(),
		Language: m.opts.Session.Language(),
	}, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
