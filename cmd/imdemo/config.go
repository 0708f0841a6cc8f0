package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/imdraw"
)

// config is the demo configuration. Values come from defaults, then an
// optional TOML file, then command-line flags that were set explicitly.
type config struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	MaxVertices int    `toml:"max_vertices"`
	Segments    int    `toml:"segments"`
	Background  string `toml:"background"`
	Debug       bool   `toml:"debug"`
}

func defaultConfig() config {
	return config{
		Width:       800,
		Height:      600,
		MaxVertices: imdraw.DefaultMaxVertices,
		Segments:    32,
		Background:  "#1a1a1aff",
	}
}

// loadConfig reads a TOML file over cfg. Keys absent from the file keep
// their current values.
func loadConfig(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// validate checks values the renderer would otherwise reject at startup.
func (c config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, imdraw.ErrInvalidDimensions)
	}
	if c.MaxVertices <= 0 {
		return fmt.Errorf("max vertices %d: %w", c.MaxVertices, imdraw.ErrInvalidDimensions)
	}
	if c.Segments < 0 {
		return fmt.Errorf("negative segment count %d", c.Segments)
	}
	if _, err := imdraw.Hex(c.Background); err != nil {
		return err
	}
	return nil
}
