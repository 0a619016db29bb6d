package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Tile palette keys.
const (
	TileFloor  = "floor"
	TileWall   = "wall"
	TileRock   = "rock"
	TileUnseen = "unseen"
)

// GlyphDef describes how one kind of cell or entity is drawn.
type GlyphDef struct {
	Glyph string `json:"glyph"`
	FG    string `json:"fg"`
	BG    string `json:"bg,omitempty"`
	Bold  bool   `json:"bold,omitempty"`
}

// Rune returns the first rune of Glyph, or a space when empty.
func (g GlyphDef) Rune() rune {
	for _, r := range g.Glyph {
		return r
	}
	return ' '
}

// Palette maps tile and entity kinds to glyphs and colours.
type Palette struct {
	Background string              `json:"background"`
	Tiles      map[string]GlyphDef `json:"tiles"`
	Entities   map[string]GlyphDef `json:"entities"`
}

// LoadPalette loads the embedded palette.json.
func LoadPalette() (*Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks that every required key is present with parseable colours.
func (p *Palette) Validate() error {
	if _, err := ParseHexColor(p.Background); err != nil {
		return fmt.Errorf("palette background: %w", err)
	}
	for _, key := range []string{TileFloor, TileWall, TileRock, TileUnseen} {
		def, ok := p.Tiles[key]
		if !ok {
			return fmt.Errorf("palette missing tile %q", key)
		}
		if err := def.validate(); err != nil {
			return fmt.Errorf("palette tile %q: %w", key, err)
		}
	}
	for _, key := range []string{"player", "monster", "treasure"} {
		def, ok := p.Entities[key]
		if !ok {
			return fmt.Errorf("palette missing entity %q", key)
		}
		if err := def.validate(); err != nil {
			return fmt.Errorf("palette entity %q: %w", key, err)
		}
	}
	return nil
}

func (g GlyphDef) validate() error {
	if _, err := ParseHexColor(g.FG); err != nil {
		return err
	}
	if g.BG != "" {
		if _, err := ParseHexColor(g.BG); err != nil {
			return err
		}
	}
	return nil
}

// Tile returns the definition for a tile key.
func (p *Palette) Tile(key string) GlyphDef {
	return p.Tiles[key]
}

// Entity returns the definition for an entity kind name.
func (p *Palette) Entity(kind string) GlyphDef {
	return p.Entities[kind]
}

// Style builds the tcell style for def on the palette background.
func (p *Palette) Style(def GlyphDef) tcell.Style {
	bg := def.BG
	if bg == "" {
		bg = p.Background
	}
	style := tcell.StyleDefault.
		Foreground(MustParseHexColor(def.FG)).
		Background(MustParseHexColor(bg))
	if def.Bold {
		style = style.Bold(true)
	}
	return style
}
