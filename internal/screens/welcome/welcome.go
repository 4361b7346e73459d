package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/router"
	"github.com/abhisek/cqnothing/internal/screen"
	"github.com/abhisek/cqnothing/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const antennaArt = `      │
    ──┼──
   ───┼───
  ────┼────
      │
      │
  ════╧════`

// waveFrames radiate outward from the mast.
var waveFrames = []string{")", "))", ")))"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	tagline      string
	hint         string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by
// homeFactory. tagline and hint are shown once the banner is up.
func New(homeFactory func() screen.Screen, tagline, hint string) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		tagline:     tagline,
		hint:        hint,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	homeScreen := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: homeScreen}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.TextDim).Render(antennaArt)

	// Phase 2+: waves off the top of the mast
	if w.elapsed >= phase1End {
		frame := waveFrames[w.tickCount%len(waveFrames)]
		wave := lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)
		lines := strings.Split(rendered, "\n")
		lines[0] = lines[0] + "  " + wave
		if len(lines) > 2 {
			lines[2] = lines[2] + " " + wave
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	// Phase 3+: banner + tagline
	if w.elapsed >= phase2End {
		sections = append(sections, "", RenderBanner(width), "")

		if w.tagline != "" {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render(w.tagline))
		}
		if w.hint != "" {
			sections = append(sections, "", lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Italic(true).
				Render(w.hint))
		}
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
