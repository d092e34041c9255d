package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(20, 3)
	s.DrawText(0, 0, "Score: 12")
	s.DrawTextColored(2, 1, "2048", core.ColorTile2048)
	s.DrawTextColored(0, 2, "game over", core.ColorRed)

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, want 3", lines)
	}
	for _, want := range []string{"Score: 12", "2048", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorTileSuper; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestBellFeedback(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		cue     session.Cue
		want    string
	}{
		{"merge rings", true, session.CueMerge, "\a"},
		{"win rings", true, session.CueWin, "\a"},
		{"slide is silent", true, session.CueMove, ""},
		{"disabled", false, session.CueWin, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewBellFeedback(&buf, tt.enabled).Cue(tt.cue)
			if buf.String() != tt.want {
				t.Errorf("wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
