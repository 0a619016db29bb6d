package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

// Run executes the main game loop on screen until the player quits. Input is
// handled one event at a time; each event is fully applied before the next
// frame is drawn.
func (g *Game) Run(ctx context.Context, screen *ui.Screen, palette *gamedata.Palette) error {
	renderer := ui.NewRenderer(screen, palette)
	status := ""

	for {
		renderer.Render(ui.View{
			Grid:   g.level.Grid,
			Player: g.player,
			Fog:    g.fog,
			Status: g.statusLine(status),
		})

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			in := KeyIntent(ev.Key(), ev.Rune())
			if in == IntentQuit {
				return nil
			}
			status = ""
			if err := g.Handle(ctx, in); err != nil {
				status = "regenerate failed: " + err.Error()
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			// Screen finalized.
			return nil
		}
	}
}

// KeyIntent maps a key press to an intent: arrows or WASD move, f toggles
// fog, r regenerates, q or Escape quits.
func KeyIntent(key tcell.Key, r rune) Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentQuit
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyRight:
		return IntentMoveRight
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return IntentMoveUp
		case 's', 'S':
			return IntentMoveDown
		case 'a', 'A':
			return IntentMoveLeft
		case 'd', 'D':
			return IntentMoveRight
		case 'f', 'F':
			return IntentToggleFog
		case 'r', 'R':
			return IntentRegenerate
		case 'q', 'Q':
			return IntentQuit
		}
	}
	return IntentNone
}

func (g *Game) statusLine(msg string) string {
	if msg != "" {
		return msg
	}
	fog := "on"
	if !g.fog {
		fog = "off"
	}
	p := g.player
	return fmt.Sprintf("HP %d  ATK %d  DEF %d  floor %d  fog %s  seed %d",
		p.Stats.HP, p.Stats.Attack, p.Stats.Defense, g.level.Floor, fog, g.seed)
}
