package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pathwise/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// DefaultBarWidth is the bar width used by the progress views.
const DefaultBarWidth = 20

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampFraction(pct)
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, false), pct*100)
}

// RenderCompactBar renders only the blocks, without brackets or percentage.
// dim renders the bar uncolored-muted regardless of the fill level.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampFraction(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}
	return style.Render(bar)
}

// RenderCurriculumProgress renders the bar for a curriculum's completion.
// The percentage is the rounded integer value, not the bar fill.
func RenderCurriculumProgress(p domain.Progress, width int) string {
	pct, ok := p.Percent()
	if !ok {
		return fmt.Sprintf("[%s] %s", RenderCompactBar(0, width, true), Dim("--"))
	}
	return fmt.Sprintf("[%s] %d%%", RenderCompactBar(p.Fraction(), width, false), pct)
}

func clampFraction(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
