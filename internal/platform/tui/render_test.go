package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/boulder-tui/boulder/internal/core"
)

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "L:01")
	s.SetWithColor(1, 1, 'R', core.ColorBrightYellow)
	s.SetWithColor(2, 1, '*', core.ColorBrightCyan)

	lines := strings.Split(RenderScreen(s), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if got := lipgloss.Width(lines[0]); got != 6 {
		t.Errorf("row width = %d, expected 6", got)
	}
	for _, want := range []string{"L:01", "R", "*"} {
		if !strings.Contains(RenderScreen(s), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		if ansiCodes[c] == "" {
			t.Errorf("no terminal color for %v", c)
		}
	}
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q", got)
	}
}
