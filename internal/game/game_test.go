package game

import (
	"context"
	"testing"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestNewPlacesPlayerAtSpawn(t *testing.T) {
	g := newTestGame(t)
	if g.Position() != g.Level().Spawn {
		t.Errorf("Position() = %v, want spawn %v", g.Position(), g.Level().Spawn)
	}
	if !g.Fog() {
		t.Error("Fog() = false, want fog on by default")
	}
	if g.Seed() != 12345 {
		t.Errorf("Seed() = %d, want 12345", g.Seed())
	}
	if g.Player().Stats.HP != 100 {
		t.Errorf("player HP = %d, want 100", g.Player().Stats.HP)
	}
}

func TestNewRandomSeed(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = 0
	g, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if g.Seed() == 0 {
		t.Error("Seed() = 0, want a generated seed")
	}
}

func TestNewInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.HallDensity = 0
	if _, err := New(context.Background(), cfg); err == nil {
		t.Error("New() with invalid config = nil error")
	}
}

func TestGameReproducibility(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)
	if g1.Player().ID != g2.Player().ID {
		t.Errorf("player IDs differ: %v != %v", g1.Player().ID, g2.Player().ID)
	}
	if g1.Level().Spawn != g2.Level().Spawn {
		t.Errorf("spawns differ: %v != %v", g1.Level().Spawn, g2.Level().Spawn)
	}
}

func TestToggleFogKeepsSeen(t *testing.T) {
	g := newTestGame(t)
	_, before := g.Level().Grid.Counts()

	if g.ToggleFog() {
		t.Error("ToggleFog() = true, want false after first toggle")
	}
	if !g.ToggleFog() {
		t.Error("ToggleFog() = false, want true after second toggle")
	}
	if _, after := g.Level().Grid.Counts(); after != before {
		t.Errorf("seen tiles = %d after toggling, want %d", after, before)
	}
}

func TestMoveMonotonic(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()
	grid := g.Level().Grid

	open, seen := grid.Counts()
	dirs := world.AllDirections()
	for i := 0; i < 500; i++ {
		g.Move(ctx, dirs[(i*7+i/3)%4])

		pos := g.Position()
		if grid.IsSolid(pos.X, pos.Y) {
			t.Fatalf("step %d: player on solid tile %v", i, pos)
		}
		o, s := grid.Counts()
		if o != open {
			t.Fatalf("step %d: open tiles changed %d -> %d", i, open, o)
		}
		if s < seen {
			t.Fatalf("step %d: seen tiles dropped %d -> %d", i, seen, s)
		}
		seen = s
	}
}

func TestHandleIntents(t *testing.T) {
	g := newTestGame(t)
	ctx := context.Background()

	if err := g.Handle(ctx, IntentToggleFog); err != nil {
		t.Fatalf("Handle(toggle) error = %v", err)
	}
	if g.Fog() {
		t.Error("Fog() = true after IntentToggleFog")
	}

	before := g.Level()
	if err := g.Handle(ctx, IntentRegenerate); err != nil {
		t.Fatalf("Handle(regenerate) error = %v", err)
	}
	if g.Level() == before {
		t.Error("IntentRegenerate did not swap the level")
	}
	if g.Position() != g.Level().Spawn {
		t.Errorf("Position() = %v after regenerate, want %v", g.Position(), g.Level().Spawn)
	}

	for _, in := range []Intent{IntentMoveUp, IntentMoveDown, IntentMoveLeft, IntentMoveRight, IntentNone, IntentQuit} {
		if err := g.Handle(ctx, in); err != nil {
			t.Errorf("Handle(%v) error = %v", in, err)
		}
	}
}

func TestRegenerateFailureKeepsLevel(t *testing.T) {
	g := newTestGame(t)
	before := g.Level()
	pos := g.Position()

	g.cfg.GridSize = 12
	g.cfg.RoomSize = world.Range{Min: 6, Max: 6}
	g.cfg.RoomCount = world.Range{Min: 4, Max: 4}
	g.cfg.MaxPlacementAttempts = 10
	g.cfg.GenerationRetries = 0

	if err := g.Regenerate(context.Background()); err == nil {
		t.Fatal("Regenerate() = nil, want error")
	}
	if g.Level() != before {
		t.Error("failed Regenerate() replaced the level")
	}
	if g.Position() != pos {
		t.Error("failed Regenerate() moved the player")
	}
}

func TestReachableFromSpawn(t *testing.T) {
	g := newTestGame(t)
	spawn := g.Level().Spawn
	if !g.Reachable(spawn, spawn) {
		t.Error("Reachable(spawn, spawn) = false")
	}
	if g.Reachable(spawn, world.Point{X: -1, Y: 0}) {
		t.Error("Reachable() off the grid = true")
	}
}

func TestIntentString(t *testing.T) {
	tests := []struct {
		in   Intent
		want string
	}{
		{IntentNone, "none"},
		{IntentMoveUp, "move_up"},
		{IntentMoveRight, "move_right"},
		{IntentToggleFog, "toggle_fog"},
		{IntentRegenerate, "regenerate"},
		{IntentQuit, "quit"},
		{Intent(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Intent(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, ok := IntentQuit.Direction(); ok {
		t.Error("IntentQuit.Direction() ok = true")
	}
	if d, ok := IntentMoveLeft.Direction(); !ok || d != world.Left {
		t.Errorf("IntentMoveLeft.Direction() = %v, %v", d, ok)
	}
}
