package sim

import (
	"math"

	"github.com/san-kum/bounce/internal/dynamo"
)

// ResolveCollisions keeps a circle-shaped body inside the viewport,
// reflecting its velocity off every edge it crossed. X is tested before Y.
// Other shapes are left alone.
func ResolveCollisions(b dynamo.Body, vp dynamo.Viewport, p Physics) Contact {
	shape := b.CollisionShape()
	if shape.Kind != dynamo.ShapeCircle {
		return Contact{}
	}

	st := b.State()
	pos, vel := st.Pos, st.Vel
	diameter := 2.0 * shape.Radius
	width, height := float64(vp.Width), float64(vp.Height)
	bounce := b.Bounciness()

	c := Contact{OnGround: pos.Y+diameter >= height}

	onX := func() {
		vel.X = -vel.X * bounce
	}
	onY := func() {
		vel.Y = -vel.Y * bounce

		// rolling on the floor
		if c.OnGround && math.Abs(vel.Y) <= p.GroundSpeed {
			vel.X -= vel.X * p.GroundDrag
		}
	}

	if pos.X <= 0 {
		pos.X = 0
		c.Left = true
		onX()
	}
	if pos.X+diameter > width {
		pos.X = width - diameter
		c.Right = true
		onX()
	}

	// the ceiling clamps to the diameter, not to 0
	if pos.Y-diameter < 0 {
		pos.Y = diameter
		c.Top = true
		onY()
	}
	if pos.Y+diameter > height {
		pos.Y = height - diameter
		c.Bottom = true
		onY()
	}

	st.Pos, st.Vel = pos, vel
	return c
}
