package metrics

import (
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/sim"
)

// Metric is a frame observer that reduces a run to a single number.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Defaults returns the metrics reported by the trace command.
func Defaults(gravity float64) []Metric {
	return []Metric{
		NewEnergy(gravity),
		NewBounces(),
		NewGroundTime(0),
	}
}

// extent is the distance from a body's position to its bottom edge, using
// the same convention as the collision pass.
func extent(b dynamo.Body) float64 {
	s := b.CollisionShape()
	switch s.Kind {
	case dynamo.ShapeCircle:
		return 2 * s.Radius
	case dynamo.ShapeRect:
		return s.Height
	default:
		return 0
	}
}
