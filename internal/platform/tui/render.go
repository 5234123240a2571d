package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/boulder-tui/boulder/internal/core"
)

// ansiCodes maps each core.Color to a terminal color. ColorDefault keeps
// the terminal's own foreground.
var ansiCodes = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// palette holds one lipgloss style per core.Color.
var palette = func() [len(ansiCodes)]lipgloss.Style {
	var p [len(ansiCodes)]lipgloss.Style
	for c, code := range ansiCodes {
		p[c] = lipgloss.NewStyle()
		if code != "" {
			p[c] = p[c].Foreground(lipgloss.Color(code))
		}
	}
	return p
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color are styled as a single run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		renderRow(&sb, &run, s, y)
	}
	return sb.String()
}

// renderRow appends row y of s to sb, using run as scratch space.
func renderRow(sb, run *strings.Builder, s *core.Screen, y int) {
	x := 0
	for x < s.Width() {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				break
			}
			run.WriteRune(cell.Rune)
		}
		if color == core.ColorDefault {
			sb.WriteString(run.String())
			continue
		}
		sb.WriteString(styleFor(color).Render(run.String()))
	}
}
