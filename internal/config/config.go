package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/boardforge/hexboard/internal/board"
)

// Config holds every knob for one board generation run. A zero Seed means
// "pick one at random"; an empty Bias means "pick a random non-water
// biome".
type Config struct {
	HexSize      float64 `yaml:"hex_size"`      // hex radius in points
	Margin       float64 `yaml:"margin"`        // page margin in points
	LegendSize   float64 `yaml:"legend_size"`   // legend swatch size in points
	Bias         string  `yaml:"bias"`          // primary biome bias, or empty
	BiasStrength float64 `yaml:"bias_strength"`
	MinBiomes    int     `yaml:"min_biomes"` // diversity target
	MaxAttempts  int     `yaml:"max_attempts"`
	Seed         int64   `yaml:"seed"`
	OutDir       string  `yaml:"out_dir"` // artifact directory
}

// Default returns the stock letter-page profile.
func Default() Config {
	return Config{
		HexSize:      25,
		Margin:       36,
		LegendSize:   12,
		BiasStrength: 0.35,
		MinBiomes:    3,
		MaxAttempts:  5,
		OutDir:       ".",
	}
}

// Load reads a board profile from a YAML file. Fields absent from the file
// keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations no generation attempt should run with.
// The only construction-time failure is a bias outside the non-water biome
// set.
func (c Config) Validate() error {
	if c.Bias == "" {
		return nil
	}
	b, err := board.ParseBiome(c.Bias)
	if err != nil {
		return fmt.Errorf("invalid bias: %w", err)
	}
	if !b.IsPrimary() {
		return fmt.Errorf("bias must be one of %v, got %q", board.Primary, c.Bias)
	}
	return nil
}

// BiasBiome returns the configured bias target. An empty bias yields
// (0, false) and the caller picks a random primary biome instead.
func (c Config) BiasBiome() (board.Biome, bool) {
	if c.Bias == "" {
		return 0, false
	}
	b, err := board.ParseBiome(c.Bias)
	if err != nil {
		return 0, false
	}
	return b, true
}
