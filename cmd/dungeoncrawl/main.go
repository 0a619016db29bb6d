// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/devtools"
	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

func main() {
	seed := flag.Int64("seed", 0, "level seed (0 picks one from the clock)")
	dump := flag.Bool("dump", false, "print a map dump of the first level and exit")
	revealed := flag.Bool("revealed", false, "with -dump, print only the seen map")
	colour := flag.Bool("color", false, "with -dump, colour glyphs from the palette")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	ctx := context.Background()

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	logger, closeLog, err := newLogger(*logPath, *dump)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	g, err := game.New(ctx, cfg, game.WithLogger(logger))
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	palette := gamedata.MustLoadPalette()

	if *dump {
		opts := devtools.Options{RevealedOnly: *revealed, Color: *colour, Palette: palette}
		if err := devtools.Dump(os.Stdout, g, opts); err != nil {
			log.Fatalf("Dump failed: %v", err)
		}
		return
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to open screen: %v", err)
	}
	defer screen.Close()

	if err := g.Run(ctx, screen, palette); err != nil {
		screen.Close()
		log.Fatalf("Game error: %v", err)
	}
}

// newLogger logs to path when given. Otherwise a dump run logs to stderr and
// an interactive run discards logs so they do not corrupt the screen.
func newLogger(path string, dump bool) (*slog.Logger, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
	}
	var w io.Writer = io.Discard
	if dump {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, nil)), func() {}, nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONCRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	dataset := os.Getenv("HONEYCOMB_DUNGEONCRAWL_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
