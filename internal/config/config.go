// Package config loads pipeline settings from a JSON file with CLI flag
// overrides. The clustering and suppression thresholds are deliberately
// configurable: they encode tuned visual behavior, and product owns them.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"runtime"

	"github.com/lucasb-eyer/go-colorful"

	"lightscape-compositor/internal/spatial"
)

// Config holds all configurable paths and tuning knobs.
type Config struct {
	// Paths
	OutputDir  string `json:"output_dir"`
	SpritePath string `json:"sprite_path,omitempty"`

	// Encoding / execution
	JPEGQuality int `json:"jpeg_quality"`
	Workers     int `json:"workers"`

	// Sprite overlay
	SpriteScale float64 `json:"sprite_scale"`

	// Mask generation
	GapThreshold float64 `json:"gap_threshold"`
	MaskFeather  int     `json:"mask_feather"`

	// Suppression
	BeamRadiusRatio float64 `json:"beam_radius_ratio"`
	EaveBandRatio   float64 `json:"eave_band_ratio"`
	EaveClamp       float64 `json:"eave_clamp"`

	// Per-fixture-type glow color overrides, hex strings like "#ffd6a5".
	GlowColors map[string]string `json:"glow_colors,omitempty"`
}

// Load reads a JSON config file. Fields not set in the file keep their zero
// values until Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Quality   int
	Workers   int
}

// Resolve applies CLI flag overrides, then fills remaining empty fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Quality > 0 {
		c.JPEGQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	if c.OutputDir == "" {
		c.OutputDir = "out"
	}
	if c.JPEGQuality <= 0 {
		c.JPEGQuality = 92
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.SpriteScale <= 0 {
		c.SpriteScale = 0.2
	}
}

// GlowOverrides parses the configured hex colors into per-type overrides.
// A bad hex string is an error: a silently wrong glow color is worse than a
// failed run.
func (c *Config) GlowOverrides() (map[spatial.FixtureType]color.NRGBA, error) {
	if len(c.GlowColors) == 0 {
		return nil, nil
	}
	out := make(map[spatial.FixtureType]color.NRGBA, len(c.GlowColors))
	for t, hex := range c.GlowColors {
		cc, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("config: glow color for %q: %w", t, err)
		}
		r, g, b := cc.RGB255()
		out[spatial.FixtureType(t)] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}
