package gamedata

import (
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	tests := []struct {
		def  GlyphDef
		want rune
	}{
		{p.Tile(TileFloor), '.'},
		{p.Tile(TileWall), '#'},
		{p.Entity("player"), '@'},
		{p.Entity("monster"), 'M'},
		{p.Entity("treasure"), '$'},
	}
	for _, tt := range tests {
		if got := tt.def.Rune(); got != tt.want {
			t.Errorf("Rune() = %q, want %q", got, tt.want)
		}
	}
}

func TestPaletteValidate(t *testing.T) {
	p := MustLoadPalette()
	delete(p.Entities, "monster")
	if err := p.Validate(); err == nil {
		t.Error("Validate() without a monster entry = nil, want error")
	}

	p = MustLoadPalette()
	p.Tiles[TileWall] = GlyphDef{Glyph: "#", FG: "nothex"}
	if err := p.Validate(); err == nil {
		t.Error("Validate() with a bad colour = nil, want error")
	}
}

func TestPaletteStyle(t *testing.T) {
	p := MustLoadPalette()
	fg, bg, attr := p.Style(p.Entity("monster")).Decompose()
	if fg != tcell.NewRGBColor(0xFF, 0, 0) {
		t.Errorf("monster fg = %v, want red", fg)
	}
	if bg != MustParseHexColor(p.Background) {
		t.Errorf("monster bg = %v, want palette background", bg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("monster style is not bold")
	}

	_, bg, _ = p.Style(p.Tile(TileUnseen)).Decompose()
	if bg != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("unseen bg = %v, want black", bg)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		wantErr bool
	}{
		{"#2B2B2B", 0x2b, 0x2b, 0x2b, false},
		{"ff8000", 0xff, 0x80, 0x00, false},
		{"#fff", 0xff, 0xff, 0xff, false},
		{"#12345", 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, true},
	}
	for _, tt := range tests {
		r, g, b, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("ParseHex(%q) = %d,%d,%d, want %d,%d,%d", tt.in, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.json":  {Data: []byte(`{"background":"#000000"}`)},
		"bad.json": {Data: []byte(`{`)},
	}
	p, err := LoadFS[Palette](fsys, "ok.json")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	if p.Background != "#000000" {
		t.Errorf("Background = %q, want #000000", p.Background)
	}
	if _, err := LoadFS[Palette](fsys, "bad.json"); err == nil {
		t.Error("LoadFS() on invalid JSON = nil error")
	}
	if _, err := LoadFS[Palette](fsys, "missing.json"); err == nil {
		t.Error("LoadFS() on missing file = nil error")
	}
}
