// Package game provides level lifecycle, player intents and the main loop.
package game

import "github.com/samdwyer/dungeoncrawl/internal/world"

// Intent is a discrete request from the player.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentToggleFog
	IntentRegenerate
	IntentQuit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentMoveUp:
		return "move_up"
	case IntentMoveDown:
		return "move_down"
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentToggleFog:
		return "toggle_fog"
	case IntentRegenerate:
		return "regenerate"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Direction returns the movement direction of a move intent.
func (i Intent) Direction() (world.Direction, bool) {
	switch i {
	case IntentMoveUp:
		return world.Up, true
	case IntentMoveDown:
		return world.Down, true
	case IntentMoveLeft:
		return world.Left, true
	case IntentMoveRight:
		return world.Right, true
	}
	return 0, false
}
