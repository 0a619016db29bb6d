// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// Symbols used when no palette is supplied.
const (
	symFloor    = '.'
	symWall     = '#'
	symRock     = ' '
	symUnseen   = '~'
	symPlayer   = '@'
	symMonster  = 'M'
	symTreasure = '$'
)

// Options controls what Dump writes.
type Options struct {
	RevealedOnly bool              // Print only the map of seen tiles
	Color        bool              // Colour glyphs with ANSI escapes from Palette
	Palette      *gamedata.Palette // Glyph source; nil uses plain ASCII
}

// Dump writes a debug dump of the current level: metadata, legend, the map
// (seen tiles and full layout), rooms, corridors and entities. The format is
// plain "key: value" sections so dumps diff cleanly between seeds.
func Dump(w io.Writer, g *game.Game, opts Options) error {
	lvl := g.Level()
	if lvl == nil || lvl.Grid == nil {
		return errors.New("no level")
	}
	if opts.Color && opts.Palette == nil {
		return errors.New("colour dump needs a palette")
	}
	d := &dumper{w: w, opts: opts, lvl: lvl, player: g.Player()}

	d.println("=== MAP DUMP (level layout, corridors, entities) ===")
	d.println("")

	// --- Metadata ---
	open, seen := lvl.Grid.Counts()
	cfg := g.Config()
	d.println("--- Metadata ---")
	d.printf("seed: %d\n", g.Seed())
	d.printf("floor: %d\n", lvl.Floor)
	d.printf("grid_size: %d\n", lvl.Grid.Size)
	d.printf("coordinate_system: x,y (0-based, x=column, y=row)\n")
	d.printf("rooms: %d\n", len(lvl.Rooms))
	d.printf("path_algorithm: %s\n", cfg.PathAlgorithm)
	d.printf("diagonal: %v\n", cfg.Diagonal)
	d.printf("hall_density: %d\n", cfg.HallDensity)
	d.printf("open_tiles: %d\n", open)
	d.printf("seen_tiles: %d\n", seen)
	d.printf("spawn: %s\n", lvl.Spawn)
	d.printf("spawn_room: %d\n", lvl.SpawnRoom)
	if d.player != nil {
		d.printf("player: (%d,%d)\n", d.player.X, d.player.Y)
		d.printf("player_stats: hp=%d atk=%d def=%d\n", d.player.Stats.HP, d.player.Stats.Attack, d.player.Stats.Defense)
	}
	d.println("")

	// --- Legend ---
	d.println("--- Legend ---")
	d.printf("%c = floor  %c = wall  %c = rock  %c = unseen  %c = player  %c = monster  %c = treasure\n",
		d.tileRune(gamedata.TileFloor, symFloor),
		d.tileRune(gamedata.TileWall, symWall),
		d.tileRune(gamedata.TileRock, symRock),
		symUnseen,
		d.entityRune(entity.KindPlayer, symPlayer),
		d.entityRune(entity.KindMonster, symMonster),
		d.entityRune(entity.KindTreasure, symTreasure))
	d.println("")

	d.printf("--- Map (seen tiles only; unseen = %c) ---\n", symUnseen)
	d.writeGrid(true)
	d.println("")
	if opts.RevealedOnly {
		return d.err
	}

	d.println("--- Map (full layout) ---")
	d.writeGrid(false)
	d.println("")

	// --- Rooms ---
	d.println("--- Rooms ---")
	for _, r := range lvl.Rooms {
		b := r.Bounds()
		d.printf("  id: %d center: %s size: %dx%d bounds: [%d,%d)x[%d,%d) wall_candidates: %d\n",
			r.ID, r.Center(), r.Width, r.Height, b.StartX, b.EndX, b.StartY, b.EndY, len(lvl.Walls[r.ID]))
	}
	d.println("")

	// --- Corridors ---
	report := lvl.Connectivity
	d.println("--- Corridors ---")
	d.printf("pairs: %d routed: %d failed: %d carved: %d\n",
		len(report.Pairs), len(report.Routed()), len(report.Failed), report.Carved)
	for _, p := range report.Pairs {
		status := "routed"
		if p.Path == nil {
			status = "failed"
		}
		d.printf("  from: %d to: %d start: %s end: %s length: %d status: %s\n",
			p.From, p.To, p.Start, p.End, len(p.Path), status)
	}
	d.println("")

	// --- Entities ---
	d.println("--- Entities ---")
	d.println("Monsters:")
	for _, m := range lvl.Monsters {
		placed := lvl.Grid.Tile(m.X, m.Y).Occupant == entity.Occupant(m)
		d.printf("  x: %d y: %d room: %d modifier: %.2f hp: %d atk: %d def: %d placed: %v\n",
			m.X, m.Y, m.RoomIndex, m.Modifier, m.Stats.HP, m.Stats.Attack, m.Stats.Defense, placed)
	}
	d.println("Treasures:")
	for _, t := range lvl.Treasures {
		placed := lvl.Grid.Tile(t.X, t.Y).Occupant == entity.Occupant(t)
		d.printf("  x: %d y: %d room: %d drops: %d placed: %v\n",
			t.X, t.Y, t.RoomIndex, t.DropCount, placed)
	}
	return d.err
}

// dumper accumulates the first write error so each section stays linear.
type dumper struct {
	w      io.Writer
	opts   Options
	lvl    *game.Level
	player *entity.Player
	err    error
}

func (d *dumper) printf(format string, a ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, a...)
}

func (d *dumper) println(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, s)
}

// writeGrid writes one row of glyphs per grid row with the player overlaid.
func (d *dumper) writeGrid(seenOnly bool) {
	grid := d.lvl.Grid
	for y := 0; y < grid.Size; y++ {
		for x := 0; x < grid.Size; x++ {
			if d.player != nil && d.player.X == x && d.player.Y == y {
				d.printf("%s", d.paint(d.entityDef(entity.KindPlayer), symPlayer))
				continue
			}
			def, sym := d.cell(grid.Tile(x, y), seenOnly)
			d.printf("%s", d.paint(def, sym))
		}
		d.println("")
	}
}

// cell returns the palette entry and fallback symbol for a tile.
func (d *dumper) cell(t *world.Tile, seenOnly bool) (*gamedata.GlyphDef, rune) {
	switch {
	case t == nil || (seenOnly && !t.Seen):
		return nil, symUnseen
	case t.Solid && t.IsWall:
		return d.tileDef(gamedata.TileWall), symWall
	case t.Solid:
		return d.tileDef(gamedata.TileRock), symRock
	case t.Occupant != nil:
		kind := t.Occupant.Kind()
		fallback := symTreasure
		if kind == entity.KindMonster {
			fallback = symMonster
		}
		return d.entityDef(kind), fallback
	default:
		return d.tileDef(gamedata.TileFloor), symFloor
	}
}

func (d *dumper) tileDef(key string) *gamedata.GlyphDef {
	if d.opts.Palette == nil {
		return nil
	}
	def, ok := d.opts.Palette.Tiles[key]
	if !ok {
		return nil
	}
	return &def
}

func (d *dumper) entityDef(kind entity.Kind) *gamedata.GlyphDef {
	if d.opts.Palette == nil {
		return nil
	}
	def, ok := d.opts.Palette.Entities[kind.String()]
	if !ok {
		return nil
	}
	return &def
}

func (d *dumper) tileRune(key string, fallback rune) rune {
	if def := d.tileDef(key); def != nil {
		return def.Rune()
	}
	return fallback
}

func (d *dumper) entityRune(kind entity.Kind, fallback rune) rune {
	if def := d.entityDef(kind); def != nil {
		return def.Rune()
	}
	return fallback
}

// paint renders one glyph, coloured from def when colour output is on.
func (d *dumper) paint(def *gamedata.GlyphDef, fallback rune) string {
	if def == nil {
		return string(fallback)
	}
	glyph := string(def.Rune())
	if !d.opts.Color {
		return glyph
	}
	if def.BG != "" {
		return color.HEX(def.BG, true).Sprint(color.HEX(def.FG).Sprint(glyph))
	}
	return color.HEX(def.FG).Sprint(glyph)
}
