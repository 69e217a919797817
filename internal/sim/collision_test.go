package sim

import (
	"math"
	"testing"

	"github.com/san-kum/bounce/internal/dynamo"
)

type testDisc struct {
	dynamo.BodyBase
	radius float64
	bounce float64
}

func newTestDisc(pos, vel dynamo.Vec2) *testDisc {
	d := &testDisc{radius: 24, bounce: 0.6}
	d.Phys.Pos = pos
	d.Phys.Vel = vel
	return d
}

func (d *testDisc) WeightFactor() float64 { return 0.8 }
func (d *testDisc) Bounciness() float64   { return d.bounce }
func (d *testDisc) CollisionShape() dynamo.CollisionShape {
	return dynamo.Circle(d.radius)
}
func (d *testDisc) Rasterize() dynamo.Raster {
	size := int(2 * d.radius)
	r := dynamo.NewRaster(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r.Set(x, y, 0xffffff)
		}
	}
	return r
}

var viewport = dynamo.Viewport{Width: 800, Height: 600}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestResolveCollisionsEdges(t *testing.T) {
	tests := []struct {
		name    string
		pos     dynamo.Vec2
		vel     dynamo.Vec2
		wantPos dynamo.Vec2
		wantVel dynamo.Vec2
		want    Contact
	}{
		{
			name:    "free flight",
			pos:     dynamo.Vec2{X: 376, Y: 276},
			vel:     dynamo.Vec2{X: 1, Y: 1},
			wantPos: dynamo.Vec2{X: 376, Y: 276},
			wantVel: dynamo.Vec2{X: 1, Y: 1},
		},
		{
			name:    "left",
			pos:     dynamo.Vec2{X: -3, Y: 276},
			vel:     dynamo.Vec2{X: -5, Y: 0},
			wantPos: dynamo.Vec2{X: 0, Y: 276},
			wantVel: dynamo.Vec2{X: 3, Y: 0},
			want:    Contact{Left: true},
		},
		{
			name:    "right",
			pos:     dynamo.Vec2{X: 760, Y: 276},
			vel:     dynamo.Vec2{X: 5, Y: 0},
			wantPos: dynamo.Vec2{X: 752, Y: 276},
			wantVel: dynamo.Vec2{X: -3, Y: 0},
			want:    Contact{Right: true},
		},
		{
			name:    "ceiling clamps to diameter",
			pos:     dynamo.Vec2{X: 376, Y: 40},
			vel:     dynamo.Vec2{X: 0, Y: -10},
			wantPos: dynamo.Vec2{X: 376, Y: 48},
			wantVel: dynamo.Vec2{X: 0, Y: 6},
			want:    Contact{Top: true},
		},
		{
			name:    "floor hard bounce keeps horizontal speed",
			pos:     dynamo.Vec2{X: 376, Y: 560},
			vel:     dynamo.Vec2{X: 2, Y: 10},
			wantPos: dynamo.Vec2{X: 376, Y: 552},
			wantVel: dynamo.Vec2{X: 2, Y: -6},
			want:    Contact{Bottom: true, OnGround: true},
		},
		{
			name:    "corner",
			pos:     dynamo.Vec2{X: 790, Y: 590},
			vel:     dynamo.Vec2{X: 10, Y: 10},
			wantPos: dynamo.Vec2{X: 752, Y: 552},
			wantVel: dynamo.Vec2{X: -6, Y: -6},
			want:    Contact{Right: true, Bottom: true, OnGround: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDisc(tt.pos, tt.vel)
			got := ResolveCollisions(d, viewport, DefaultPhysics())

			if got != tt.want {
				t.Errorf("contact = %+v, want %+v", got, tt.want)
			}
			if !approx(d.Phys.Pos.X, tt.wantPos.X) || !approx(d.Phys.Pos.Y, tt.wantPos.Y) {
				t.Errorf("pos = %+v, want %+v", d.Phys.Pos, tt.wantPos)
			}
			if !approx(d.Phys.Vel.X, tt.wantVel.X) || !approx(d.Phys.Vel.Y, tt.wantVel.Y) {
				t.Errorf("vel = %+v, want %+v", d.Phys.Vel, tt.wantVel)
			}
		})
	}
}

func TestResolveCollisionsGroundDrag(t *testing.T) {
	d := newTestDisc(dynamo.Vec2{X: 376, Y: 552.5}, dynamo.Vec2{X: 2, Y: 0.5})

	ResolveCollisions(d, viewport, DefaultPhysics())

	if !approx(d.Phys.Vel.Y, -0.3) {
		t.Errorf("expected reflected vy -0.3, got %f", d.Phys.Vel.Y)
	}
	if !approx(d.Phys.Vel.X, 1.8) {
		t.Errorf("expected ground drag to leave vx 1.8, got %f", d.Phys.Vel.X)
	}
}

func TestResolveCollisionsIdempotent(t *testing.T) {
	starts := []struct{ pos, vel dynamo.Vec2 }{
		{dynamo.Vec2{X: 790, Y: 590}, dynamo.Vec2{X: 10, Y: 10}},
		{dynamo.Vec2{X: 376, Y: 40}, dynamo.Vec2{X: 3, Y: -10}},
		{dynamo.Vec2{X: 376, Y: 552.5}, dynamo.Vec2{X: 2, Y: 0.5}},
		{dynamo.Vec2{X: 100, Y: 300}, dynamo.Vec2{X: -1, Y: 2}},
	}

	for _, s := range starts {
		d := newTestDisc(s.pos, s.vel)
		ResolveCollisions(d, viewport, DefaultPhysics())
		pos, vel := d.Phys.Pos, d.Phys.Vel

		if c := ResolveCollisions(d, viewport, DefaultPhysics()); c.Any() {
			t.Errorf("second pass from %+v reported contact %+v", s.pos, c)
		}
		if d.Phys.Pos != pos || d.Phys.Vel != vel {
			t.Errorf("second pass from %+v changed state: %+v/%+v -> %+v/%+v",
				s.pos, pos, vel, d.Phys.Pos, d.Phys.Vel)
		}
	}
}

func TestResolveCollisionsBounds(t *testing.T) {
	for x := -100.0; x <= 900; x += 37 {
		for y := -100.0; y <= 700; y += 41 {
			d := newTestDisc(dynamo.Vec2{X: x, Y: y}, dynamo.Vec2{X: 3, Y: -4})
			ResolveCollisions(d, viewport, DefaultPhysics())

			p := d.Phys.Pos
			if p.X < 0 || p.X+48 > 800 || p.Y < 48 || p.Y+48 > 600 {
				t.Fatalf("start (%.0f,%.0f) resolved out of bounds: %+v", x, y, p)
			}
		}
	}
}

type testBox struct{ testDisc }

func (b *testBox) CollisionShape() dynamo.CollisionShape { return dynamo.Rect(10, 10) }

func TestResolveCollisionsIgnoresRect(t *testing.T) {
	b := &testBox{}
	b.Phys.Pos = dynamo.Vec2{X: -50, Y: 900}
	b.Phys.Vel = dynamo.Vec2{X: -1, Y: 1}

	if c := ResolveCollisions(b, viewport, DefaultPhysics()); c.Any() {
		t.Errorf("rect shapes should not collide, got %+v", c)
	}
	if b.Phys.Pos != (dynamo.Vec2{X: -50, Y: 900}) {
		t.Errorf("rect body moved: %+v", b.Phys.Pos)
	}
}
