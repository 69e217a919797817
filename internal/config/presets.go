package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/bounce/internal/dynamo"
)

var Presets = map[string]func() *Config{
	"default": DefaultConfig,
	"trio": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "Bouncy Balls"
		cfg.Bodies = []BodyConfig{
			{Kind: "disc", X: 120, Y: 100, VX: 4, Radius: 16, Color: "#53cf6b"},
			{Kind: "disc", X: 376, Y: 276, Radius: 24, Color: DefaultColor},
			{Kind: "disc", X: 600, Y: 150, VX: -6, VY: -2, Radius: 40, Color: "#5373cf"},
		}
		return cfg
	},
	"floor": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "Rolling"
		cfg.Bodies = []BodyConfig{
			{Kind: "disc", X: 100, Y: float64(DefaultHeight) - 2*DefaultRadius, VX: 12, Radius: DefaultRadius, Color: DefaultColor},
		}
		return cfg
	},
	"corner": func() *Config {
		cfg := DefaultConfig()
		cfg.Title = "Corner"
		cfg.Bodies = []BodyConfig{
			{Kind: "disc", X: 700, Y: 450, VX: 20, VY: 20, Radius: DefaultRadius, Color: DefaultColor},
		}
		return cfg
	},
	"retro": func() *Config {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 640, 360
		cfg.Bodies = []BodyConfig{CenteredDisc(640, 360, 12, DefaultColor)}
		return cfg
	},
}

// GetPreset returns a fresh copy of the named scene.
func GetPreset(name string) (*Config, error) {
	fn, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", dynamo.ErrUnknownPreset, name, ListPresets())
	}
	return fn(), nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
