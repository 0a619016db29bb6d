// Package gamedata provides the embedded display palette and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the JSON data files at build time.
//
//go:embed palette.json
var dataFS embed.FS
