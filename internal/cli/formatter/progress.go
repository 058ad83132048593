package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampBar(pct float64, width int) (float64, int, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return pct, filled, width - filled
}

// RenderApproval renders an approval bar like [████░░░░] 54% from a vote
// tally. Green above two thirds approval, yellow above one third, red below.
// A card without votes renders an empty dim bar.
func RenderApproval(approved, rejected, width int) string {
	total := approved + rejected
	if total <= 0 {
		_, _, empty := clampBar(0, width)
		return fmt.Sprintf("[%s]  --", StyleDim.Render(strings.Repeat(emptyBlock, empty)))
	}

	pct, filled, empty := clampBar(float64(approved)/float64(total), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderShareBar renders a bar without brackets or percentage, drawn in the
// given style. Used by the category distribution.
func RenderShareBar(pct float64, width int, style lipgloss.Style) string {
	_, filled, empty := clampBar(pct, width)
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
