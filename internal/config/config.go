package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/bounce/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle  = "Bouncy Ball"
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultFPS    = 60
	DefaultRadius = 24.0
	DefaultColor  = "#cf5353"

	DefaultGravity       = 0.5
	DefaultAirResistance = 0.01
	DefaultDt            = 1.0
	DefaultGroundDrag    = 0.1
	DefaultGroundSpeed   = 1.0
)

type Config struct {
	Title           string        `yaml:"title"`
	Width           int           `yaml:"width"`
	Height          int           `yaml:"height"`
	FPS             int           `yaml:"fps"`
	GroundTolerance float64       `yaml:"ground_tolerance"`
	Physics         PhysicsConfig `yaml:"physics"`
	Bodies          []BodyConfig  `yaml:"bodies"`
}

type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	AirResistance float64 `yaml:"air_resistance"`
	Dt            float64 `yaml:"dt"`
	GroundDrag    float64 `yaml:"ground_drag"`
	GroundSpeed   float64 `yaml:"ground_speed"`
}

type BodyConfig struct {
	Kind   string  `yaml:"kind"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
	Color  string  `yaml:"color"`
}

func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:       DefaultGravity,
		AirResistance: DefaultAirResistance,
		Dt:            DefaultDt,
		GroundDrag:    DefaultGroundDrag,
		GroundSpeed:   DefaultGroundSpeed,
	}
}

// DefaultConfig is a single ball centered in an 800x600 window.
func DefaultConfig() *Config {
	return &Config{
		Title:   DefaultTitle,
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Physics: DefaultPhysics(),
		Bodies:  []BodyConfig{CenteredDisc(DefaultWidth, DefaultHeight, DefaultRadius, DefaultColor)},
	}
}

// CenteredDisc places a disc's bounding box so the disc sits in the middle
// of a width x height viewport.
func CenteredDisc(width, height int, radius float64, color string) BodyConfig {
	return BodyConfig{
		Kind:   "disc",
		X:      float64(width/2) - radius,
		Y:      float64(height/2) - radius,
		Radius: radius,
		Color:  color,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Bodies = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Bodies) == 0 {
		cfg.Bodies = []BodyConfig{CenteredDisc(cfg.Width, cfg.Height, DefaultRadius, DefaultColor)}
	}
	for i := range cfg.Bodies {
		if cfg.Bodies[i].Kind == "" {
			cfg.Bodies[i].Kind = "disc"
		}
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Viewport() dynamo.Viewport {
	return dynamo.Viewport{Width: c.Width, Height: c.Height}
}

func (c *Config) Validate() error {
	var errs []error
	if !c.Viewport().Valid() {
		errs = append(errs, fmt.Errorf("%w: got %dx%d", dynamo.ErrInvalidViewport, c.Width, c.Height))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.Physics.Dt <= 0 {
		errs = append(errs, fmt.Errorf("physics dt must be positive, got %f", c.Physics.Dt))
	}
	if c.GroundTolerance < 0 {
		errs = append(errs, fmt.Errorf("ground tolerance must not be negative, got %f", c.GroundTolerance))
	}
	for i, b := range c.Bodies {
		if b.Radius <= 0 {
			errs = append(errs, fmt.Errorf("%w: body %d radius must be positive, got %f", dynamo.ErrInvalidBody, i, b.Radius))
		}
	}
	return errors.Join(errs...)
}

// FrameDuration is the wall-clock time budget of one frame.
func (c *Config) FrameDuration() (time.Duration, error) {
	if c.FPS <= 0 {
		return 0, fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return time.Second / time.Duration(c.FPS), nil
}
