package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Game holds the entire game state: the live level, the player and the fog
// flag. It is not safe for concurrent use.
type Game struct {
	cfg    Config
	seed   int64
	rng    *rand.Rand
	log    *slog.Logger
	level  *Level
	player *entity.Player
	fog    bool
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// New creates a new game instance and generates its first level.
func New(ctx context.Context, cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		cfg:  cfg,
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
		log:  discardLogger(),
		fog:  true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.player = entity.NewPlayer(entity.NewID(g.rng), 0, 0)

	if err := g.Regenerate(ctx); err != nil {
		return nil, err
	}
	return g, nil
}

// Seed returns the seed the game's random stream started from.
func (g *Game) Seed() int64 { return g.seed }

// Config returns the configuration the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Level returns the live level.
func (g *Game) Level() *Level { return g.level }

// Player returns the player.
func (g *Game) Player() *entity.Player { return g.player }

// Position returns the player's position as a grid point.
func (g *Game) Position() world.Point {
	return world.Point{X: g.player.X, Y: g.player.Y}
}

// Fog reports whether unseen tiles should be drawn hidden.
func (g *Game) Fog() bool { return g.fog }

// ToggleFog flips the fog flag and returns the new value. It never changes
// which tiles have been seen.
func (g *Game) ToggleFog() bool {
	g.fog = !g.fog
	return g.fog
}

// Regenerate builds a new level and swaps it in, moving the player to its
// spawn point. On failure the current level stays live.
func (g *Game) Regenerate(ctx context.Context) error {
	lvl, err := Generate(ctx, g.cfg, g.rng, g.log)
	if err != nil {
		g.log.Error("level generation failed", "seed", g.seed, "err", err)
		return err
	}
	g.level = lvl
	g.player.MoveTo(lvl.Spawn.X, lvl.Spawn.Y)
	g.log.Info("level ready",
		"seed", g.seed,
		"rooms", len(lvl.Rooms),
		"monsters", len(lvl.Monsters),
		"treasures", len(lvl.Treasures),
	)
	return nil
}

// Move attempts to step the player one tile in dir and reports whether the
// player moved. The area around the resulting position is always revealed.
func (g *Game) Move(ctx context.Context, dir world.Direction) bool {
	_, span := telemetry.Tracer("game").Start(ctx, "player.move")
	defer span.End()

	pos, moved := world.Move(g.level.Grid, g.Position(), dir, g.cfg.VisibilityRadius)
	g.player.MoveTo(pos.X, pos.Y)

	span.SetAttributes(
		attribute.String("move.direction", dir.String()),
		attribute.Bool("move.accepted", moved),
		attribute.Int("player.x", pos.X),
		attribute.Int("player.y", pos.Y),
	)
	return moved
}

// Handle applies a single intent. Quit and None are ignored here; the caller
// owns the loop.
func (g *Game) Handle(ctx context.Context, in Intent) error {
	if dir, ok := in.Direction(); ok {
		g.Move(ctx, dir)
		return nil
	}
	switch in {
	case IntentToggleFog:
		g.ToggleFog()
	case IntentRegenerate:
		return g.Regenerate(ctx)
	}
	return nil
}

// Reachable reports whether a 4-way path over open tiles joins a and b on
// the live level.
func (g *Game) Reachable(a, b world.Point) bool {
	return world.Reachable(g.level.Grid, a, b)
}
