// Package scene turns a configuration into a ready-to-run engine.
package scene

import (
	"fmt"

	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/sim"
)

// Physics converts the configured constants into engine parameters.
func Physics(cfg *config.Config) sim.Physics {
	p := cfg.Physics
	return sim.Physics{
		Gravity:       p.Gravity,
		AirResistance: p.AirResistance,
		Dt:            p.Dt,
		GroundDrag:    p.GroundDrag,
		GroundSpeed:   p.GroundSpeed,
	}
}

// Build creates an engine for cfg and adds its bodies in declaration order.
func Build(cfg *config.Config, r *Registry, opts ...sim.Option) (*sim.Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRegistry()
	}

	opts = append([]sim.Option{sim.WithPhysics(Physics(cfg))}, opts...)
	eng, err := sim.New(cfg.Viewport(), opts...)
	if err != nil {
		return nil, err
	}

	for i, bc := range cfg.Bodies {
		b, err := r.Build(bc, cfg)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		eng.AddBody(b)
	}
	return eng, nil
}
