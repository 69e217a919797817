package scene

import (
	"fmt"
	"sort"

	"github.com/san-kum/bounce/internal/config"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/physics"
)

// Factory builds a body from its scene definition.
type Factory func(bc config.BodyConfig, cfg *config.Config) (dynamo.Body, error)

type Registry struct {
	bodies map[string]Factory
}

func NewRegistry() *Registry {
	r := &Registry{
		bodies: make(map[string]Factory),
	}

	r.bodies["disc"] = func(bc config.BodyConfig, cfg *config.Config) (dynamo.Body, error) {
		if bc.Radius <= 0 {
			return nil, fmt.Errorf("%w: disc radius must be positive, got %f", dynamo.ErrInvalidBody, bc.Radius)
		}
		d := physics.NewDisc(dynamo.Vec2{X: bc.X, Y: bc.Y}, bc.Radius, bc.Color)
		d.Phys.Vel = dynamo.Vec2{X: bc.VX, Y: bc.VY}
		d.GroundTolerance = cfg.GroundTolerance
		return d, nil
	}

	return r
}

func (r *Registry) Register(kind string, fn Factory) {
	r.bodies[kind] = fn
}

func (r *Registry) Build(bc config.BodyConfig, cfg *config.Config) (dynamo.Body, error) {
	fn, ok := r.bodies[bc.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", dynamo.ErrUnknownBody, bc.Kind)
	}
	return fn(bc, cfg)
}

func (r *Registry) Kinds() []string {
	names := make([]string, 0, len(r.bodies))
	for name := range r.bodies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
