package physics

import (
	"math"

	"github.com/san-kum/bounce/internal/dynamo"
)

const (
	// KeyboardXBoost is added to the horizontal velocity every frame A or D is held.
	KeyboardXBoost = 0.2
	// KeyboardYBoost is the upward impulse of a jump.
	KeyboardYBoost = 16.0

	discWeight     = 0.8
	discBounciness = 0.6
)

type Disc struct {
	dynamo.BodyBase

	Radius   float64
	Diameter float64
	Color    dynamo.Color

	// GroundTolerance widens the on-ground test used for jumping. Zero keeps
	// the exact comparison of the bottom edge against the floor.
	GroundTolerance float64
}

// NewDisc creates a disc at rest whose bounding box starts at pos.
func NewDisc(pos dynamo.Vec2, radius float64, colorHex string) *Disc {
	d := &Disc{
		Radius:   radius,
		Diameter: radius * 2,
		Color:    ParseHexColor(colorHex),
	}
	d.Phys.Pos = pos
	return d
}

func (d *Disc) WeightFactor() float64 { return discWeight }

func (d *Disc) Bounciness() float64 { return discBounciness }

func (d *Disc) CollisionShape() dynamo.CollisionShape {
	return dynamo.Circle(d.Radius)
}

func (d *Disc) HandleInput(keys dynamo.KeySet, env dynamo.Environment) {
	if keys.Has(dynamo.KeyA) {
		d.Phys.Vel.X -= KeyboardXBoost
	}
	if keys.Has(dynamo.KeyD) {
		d.Phys.Vel.X += KeyboardXBoost
	}

	// jump only while moving up off the floor bounce
	if keys.Has(dynamo.KeyW) && d.Phys.Vel.Y < 0 && d.OnGround(env) {
		d.Phys.Vel.Y -= KeyboardYBoost
	}
}

// OnGround reports whether the bottom edge sits on the floor of env.
func (d *Disc) OnGround(env dynamo.Environment) bool {
	bottom := d.Phys.Pos.Y + d.Diameter
	floor := float64(env.Viewport.Height)
	if d.GroundTolerance > 0 {
		return math.Abs(bottom-floor) <= d.GroundTolerance
	}
	return bottom == floor
}

// Rasterize draws the disc into a diameter x diameter grid centered at
// (radius, radius).
func (d *Disc) Rasterize() dynamo.Raster {
	size := int(d.Diameter)
	r := dynamo.NewRaster(size, size)

	h, k := d.Radius, d.Radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) - h
			dy := float64(y) - k
			if math.Sqrt(dx*dx+dy*dy) <= d.Radius {
				r.Set(x, y, d.Color)
			}
		}
	}
	return r
}
