package game

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvSeed                 = "DUNGEON_SEED"
	EnvGridSize             = "DUNGEON_GRID_SIZE"
	EnvRoomCount            = "DUNGEON_ROOM_COUNT"
	EnvRoomSize             = "DUNGEON_ROOM_SIZE"
	EnvHallDensity          = "DUNGEON_HALL_DENSITY"
	EnvTreasureCount        = "DUNGEON_TREASURE_COUNT"
	EnvMonsterCount         = "DUNGEON_MONSTER_COUNT"
	EnvVisibilityRadius     = "DUNGEON_VISIBILITY_RADIUS"
	EnvDiagonal             = "DUNGEON_DIAGONAL"
	EnvPathAlgorithm        = "DUNGEON_PATH_ALGORITHM"
	EnvMaxPlacementAttempts = "DUNGEON_MAX_PLACEMENT_ATTEMPTS"
	EnvGenerationRetries    = "DUNGEON_GENERATION_RETRIES"
	EnvFloor                = "DUNGEON_FLOOR"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	GridSize      int         // Side length of the square tile grid
	RoomCount     world.Range // Rooms per level, drawn once per level
	RoomSize      world.Range // Room edge length
	HallDensity   int         // Corridor endpoints sampled per room
	TreasureCount world.Range
	MonsterCount  world.Range

	VisibilityRadius int

	// Diagonal allows 8-way corridor steps.
	Diagonal bool
	// PathAlgorithm is "bidirectional" or "astar".
	PathAlgorithm string

	MaxPlacementAttempts int // Samples per room before the size bound drops
	GenerationRetries    int // Extra placement runs after exhaustion
	Floor                int // Difficulty multiplier for monsters and treasure
}

// DefaultConfig returns the stock generation settings.
func DefaultConfig() Config {
	return Config{
		GridSize:             50,
		RoomCount:            world.Range{Min: 12, Max: 17},
		RoomSize:             world.Range{Min: 6, Max: 10},
		HallDensity:          1,
		TreasureCount:        world.Range{Min: 3, Max: 8},
		MonsterCount:         world.Range{Min: 10, Max: 20},
		VisibilityRadius:     world.DefaultVisibilityRadius,
		PathAlgorithm:        world.AlgorithmBidirectional,
		MaxPlacementAttempts: world.DefaultMaxAttempts,
		GenerationRetries:    3,
		Floor:                1,
	}
}

// Validate reports the first setting that cannot produce a level.
func (c Config) Validate() error {
	ranges := []struct {
		name string
		r    world.Range
	}{
		{"room count", c.RoomCount},
		{"room size", c.RoomSize},
		{"treasure count", c.TreasureCount},
		{"monster count", c.MonsterCount},
	}
	for _, rg := range ranges {
		if !rg.r.Valid() || rg.r.Min < 0 {
			return fmt.Errorf("invalid %s range %s", rg.name, rg.r)
		}
	}

	switch {
	case c.RoomCount.Min < 1:
		return fmt.Errorf("room count must be at least 1, got %d", c.RoomCount.Min)
	case c.RoomSize.Min < 2:
		return fmt.Errorf("room size must be at least 2, got %d", c.RoomSize.Min)
	case c.GridSize < c.RoomSize.Max+4:
		return fmt.Errorf("grid size %d too small for rooms up to %d", c.GridSize, c.RoomSize.Max)
	case c.HallDensity < 1:
		return fmt.Errorf("hall density must be at least 1, got %d", c.HallDensity)
	case c.VisibilityRadius < 0:
		return fmt.Errorf("visibility radius must not be negative, got %d", c.VisibilityRadius)
	case c.MaxPlacementAttempts < 1:
		return fmt.Errorf("max placement attempts must be positive, got %d", c.MaxPlacementAttempts)
	case c.GenerationRetries < 0:
		return fmt.Errorf("generation retries must not be negative, got %d", c.GenerationRetries)
	case c.Floor < 1:
		return fmt.Errorf("floor must be at least 1, got %d", c.Floor)
	}

	if _, err := world.NewFinder(c.PathAlgorithm, c.Diagonal); err != nil {
		return err
	}
	return nil
}

// ConfigFromEnv overlays environment variables on DefaultConfig.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	err := cfg.ApplyEnv(os.LookupEnv)
	return cfg, err
}

// ApplyEnv overwrites fields whose variable is set according to lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvGridSize, &c.GridSize},
		{EnvHallDensity, &c.HallDensity},
		{EnvVisibilityRadius, &c.VisibilityRadius},
		{EnvMaxPlacementAttempts, &c.MaxPlacementAttempts},
		{EnvGenerationRetries, &c.GenerationRetries},
		{EnvFloor, &c.Floor},
	}
	for _, f := range ints {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}

	ranges := []struct {
		key string
		dst *world.Range
	}{
		{EnvRoomCount, &c.RoomCount},
		{EnvRoomSize, &c.RoomSize},
		{EnvTreasureCount, &c.TreasureCount},
		{EnvMonsterCount, &c.MonsterCount},
	}
	for _, f := range ranges {
		v, ok := lookup(f.key)
		if !ok {
			continue
		}
		r, err := world.ParseRange(v)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = r
	}

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvDiagonal); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDiagonal, err)
		}
		c.Diagonal = b
	}
	if v, ok := lookup(EnvPathAlgorithm); ok {
		c.PathAlgorithm = strings.ToLower(strings.TrimSpace(v))
	}
	return nil
}
