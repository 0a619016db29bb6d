package game

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyIntent(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Intent
	}{
		{tcell.KeyUp, 0, IntentMoveUp},
		{tcell.KeyDown, 0, IntentMoveDown},
		{tcell.KeyLeft, 0, IntentMoveLeft},
		{tcell.KeyRight, 0, IntentMoveRight},
		{tcell.KeyRune, 'w', IntentMoveUp},
		{tcell.KeyRune, 'A', IntentMoveLeft},
		{tcell.KeyRune, 's', IntentMoveDown},
		{tcell.KeyRune, 'd', IntentMoveRight},
		{tcell.KeyRune, 'f', IntentToggleFog},
		{tcell.KeyRune, 'r', IntentRegenerate},
		{tcell.KeyRune, 'q', IntentQuit},
		{tcell.KeyEscape, 0, IntentQuit},
		{tcell.KeyRune, 'x', IntentNone},
		{tcell.KeyTab, 0, IntentNone},
	}
	for _, tt := range tests {
		if got := KeyIntent(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyIntent(%v, %q) = %v, want %v", tt.key, tt.r, got, tt.want)
		}
	}
}

func TestStatusLine(t *testing.T) {
	g := newTestGame(t)
	line := g.statusLine("")
	for _, want := range []string{"HP 100", "fog on", "seed 12345"} {
		if !strings.Contains(line, want) {
			t.Errorf("statusLine() = %q, missing %q", line, want)
		}
	}
	g.ToggleFog()
	if line := g.statusLine(""); !strings.Contains(line, "fog off") {
		t.Errorf("statusLine() = %q, want fog off", line)
	}
	if got := g.statusLine("boom"); got != "boom" {
		t.Errorf("statusLine(\"boom\") = %q", got)
	}
}
