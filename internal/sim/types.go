package sim

import (
	"log/slog"

	"github.com/san-kum/bounce/internal/dynamo"
)

// Physics holds the constants of the frame pipeline.
type Physics struct {
	Gravity       float64 `json:"gravity"`
	AirResistance float64 `json:"air_resistance"`
	Dt            float64 `json:"dt"`
	// GroundDrag is the fraction of horizontal speed lost per bounce while rolling.
	GroundDrag float64 `json:"ground_drag"`
	// GroundSpeed is the largest post-bounce |vy| still treated as rolling.
	GroundSpeed float64 `json:"ground_speed"`
}

func DefaultPhysics() Physics {
	return Physics{
		Gravity:       0.5,
		AirResistance: 0.01,
		Dt:            1.0,
		GroundDrag:    0.1,
		GroundSpeed:   1.0,
	}
}

// Surface is the presentation collaborator the run loop pulls from.
type Surface interface {
	IsOpen() bool
	IsKeyDown(k dynamo.Key) bool
	PressedKeys() dynamo.KeySet
	Present(buf []uint32, width, height int) error
}

// Observer is notified once per frame after every body has been drawn.
type Observer interface {
	OnFrame(frame int, bodies []dynamo.Body)
}

// ContactObserver is notified whenever a body touches a viewport edge.
type ContactObserver interface {
	OnContact(frame, index int, c Contact)
}

// Contact records which edges a body hit during collision resolution.
type Contact struct {
	Left, Right, Top, Bottom bool
	// OnGround is the pre-clamp floor test that gates ground drag.
	OnGround bool
}

func (c Contact) Any() bool {
	return c.Left || c.Right || c.Top || c.Bottom
}

type Option func(*Engine)

func WithPhysics(p Physics) Option {
	return func(e *Engine) { e.physics = p }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.AddObserver(o) }
}
