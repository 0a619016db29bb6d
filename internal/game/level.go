package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Level is one fully generated and lit dungeon level.
type Level struct {
	Grid  *world.Grid
	Rooms []world.Room
	Walls []world.WallAdjacency

	Treasures []*entity.Treasure
	Monsters  []*entity.Monster

	Spawn     world.Point // Where the player enters
	SpawnRoom int

	Connectivity world.ConnectReport
	Floor        int
}

// Generate builds a complete level: rooms are placed, carved and connected,
// entities dropped, and the spawn point lit. Placement that runs out of
// attempts is retried up to cfg.GenerationRetries times on the same random
// stream before an error wrapping world.ErrGenerationExhausted is returned.
// Unroutable corridors are logged but do not fail generation.
func Generate(ctx context.Context, cfg Config, rng *rand.Rand, log *slog.Logger) (*Level, error) {
	if log == nil {
		log = discardLogger()
	}
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	if err := cfg.Validate(); err != nil {
		return nil, failSpan(span, fmt.Errorf("invalid config: %w", err))
	}
	finder, err := world.NewFinder(cfg.PathAlgorithm, cfg.Diagonal)
	if err != nil {
		return nil, failSpan(span, err)
	}

	rooms, err := placeRooms(ctx, cfg, rng, log)
	if err != nil {
		return nil, failSpan(span, err)
	}

	grid := world.NewGrid(cfg.GridSize)

	_, carveSpan := tracer.Start(ctx, "rooms.carve")
	walls := world.CarveRooms(grid, rooms)
	carveSpan.End()

	_, connectSpan := tracer.Start(ctx, "corridors.connect")
	report := world.ConnectRooms(rng, grid, rooms, walls, world.ConnectOptions{
		HallDensity: cfg.HallDensity,
		Finder:      finder,
	})
	connectSpan.SetAttributes(
		attribute.String("corridors.algorithm", cfg.PathAlgorithm),
		attribute.Int("corridors.pairs", len(report.Pairs)),
		attribute.Int("corridors.carved", report.Carved),
		attribute.Int("corridors.failed", len(report.Failed)),
	)
	if err := report.Err(); err != nil {
		connectSpan.AddEvent("partial_connectivity", trace.WithAttributes(
			attribute.Int("corridors.failed", len(report.Failed)),
		))
		log.Warn("level has unreachable rooms", "err", err)
	}
	connectSpan.End()

	_, popSpan := tracer.Start(ctx, "entities.populate")
	treasures := cfg.TreasureCount.Sample(rng)
	monsters := cfg.MonsterCount.Sample(rng)
	pop := world.Populate(rng, grid, rooms, treasures, monsters, cfg.Floor)
	popSpan.SetAttributes(
		attribute.Int("entities.treasures", len(pop.Treasures)),
		attribute.Int("entities.monsters", len(pop.Monsters)),
	)
	popSpan.End()

	spawnRoom := rng.Intn(len(rooms))
	spawn := rooms[spawnRoom].Center()
	revealed := world.Reveal(grid, spawn, cfg.VisibilityRadius)

	lvl := &Level{
		Grid:         grid,
		Rooms:        rooms,
		Walls:        walls,
		Treasures:    pop.Treasures,
		Monsters:     pop.Monsters,
		Spawn:        spawn,
		SpawnRoom:    spawnRoom,
		Connectivity: report,
		Floor:        cfg.Floor,
	}

	span.SetAttributes(
		attribute.Int("level.grid_size", cfg.GridSize),
		attribute.Int("level.rooms", len(rooms)),
		attribute.Int("level.spawn_x", spawn.X),
		attribute.Int("level.spawn_y", spawn.Y),
		attribute.Int("fov.revealed", revealed),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.Debug("level generated",
		"rooms", len(rooms),
		"corridor_tiles", report.Carved,
		"treasures", len(pop.Treasures),
		"monsters", len(pop.Monsters),
		"spawn", spawn.String(),
	)
	return lvl, nil
}

// placeRooms runs room placement, retrying after exhaustion.
func placeRooms(ctx context.Context, cfg Config, rng *rand.Rand, log *slog.Logger) ([]world.Room, error) {
	_, span := telemetry.Tracer("world").Start(ctx, "rooms.place")
	defer span.End()

	var lastErr error
	for attempt := 0; attempt <= cfg.GenerationRetries; attempt++ {
		rooms, err := world.PlaceRooms(rng, cfg.GridSize, cfg.RoomCount, cfg.RoomSize, cfg.MaxPlacementAttempts)
		if err == nil {
			span.SetAttributes(
				attribute.Int("rooms.placed", len(rooms)),
				attribute.Int("rooms.attempts", attempt+1),
			)
			return rooms, nil
		}
		if !errors.Is(err, world.ErrGenerationExhausted) {
			return nil, failSpan(span, err)
		}
		lastErr = err
		log.Debug("room placement exhausted, retrying", "attempt", attempt+1, "err", err)
		span.AddEvent("placement_exhausted", trace.WithAttributes(
			attribute.Int("rooms.placed", len(rooms)),
		))
	}
	return nil, failSpan(span, fmt.Errorf("generate level after %d attempts: %w", cfg.GenerationRetries+1, lastErr))
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
