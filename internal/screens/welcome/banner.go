package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/ascendquiz/ascendquiz/internal/ui/theme"
)

const bannerArt = `
  █████╗ ███████╗ ██████╗███████╗███╗   ██╗██████╗
 ██╔══██╗██╔════╝██╔════╝██╔════╝████╗  ██║██╔══██╗
 ███████║███████╗██║     █████╗  ██╔██╗ ██║██║  ██║
 ██╔══██║╚════██║██║     ██╔══╝  ██║╚██╗██║██║  ██║
 ██║  ██║███████║╚██████╗███████╗██║ ╚████║██████╔╝
 ╚═╝  ╚═╝╚══════╝ ╚═════╝╚══════╝╚═╝  ╚═══╝╚═════╝
                    Q U I Z`

const bannerCompact = "A S C E N D Q U I Z"

// RenderBanner returns the ASCEND banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 54 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 54 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
