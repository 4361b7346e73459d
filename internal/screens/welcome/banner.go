package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cqnothing/internal/ui/theme"
)

const bannerArt = `
  ██████╗  ██████╗       ███╗   ██╗ ██████╗ ████████╗██╗  ██╗
 ██╔════╝ ██╔═══██╗      ████╗  ██║██╔═══██╗╚══██╔══╝██║  ██║
 ██║      ██║   ██║      ██╔██╗ ██║██║   ██║   ██║   ███████║
 ██║      ██║▄▄ ██║      ██║╚██╗██║██║   ██║   ██║   ██╔══██║
 ╚██████╗ ╚██████╔╝ ██╗  ██║ ╚████║╚██████╔╝   ██║   ██║  ██║
  ╚═════╝  ╚══▀▀═╝  ╚═╝  ╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝`

const bannerCompact = "C Q . . .   N O T H I N G"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 64

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
