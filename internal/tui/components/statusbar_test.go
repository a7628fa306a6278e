package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(StatusBarProps{Width: 40, Left: "tick", Right: "? help"})

	if w := lipgloss.Width(bar); w != 40 {
		t.Errorf("width = %d, want 40", w)
	}
	plain := ansi.Strip(bar)
	if !strings.HasPrefix(plain, " tick") || !strings.HasSuffix(plain, "? help ") {
		t.Errorf("unexpected bar %q", plain)
	}
}

func TestRenderStatusBar_Narrow(t *testing.T) {
	plain := ansi.Strip(RenderStatusBar(StatusBarProps{Width: 5, Left: "tick", Right: "help"}))
	if plain != " tick help " {
		t.Errorf("narrow bar = %q", plain)
	}
}
