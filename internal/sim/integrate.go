package sim

import "github.com/san-kum/bounce/internal/dynamo"

// IntegrateVelocity applies gravity and then air drag. Drag acts on the
// already-updated vertical velocity.
func IntegrateVelocity(b dynamo.Body, p Physics) {
	st := b.State()
	vel := st.Vel

	vel.Y += p.Gravity * b.WeightFactor() * p.Dt

	drag := 1.0 - p.AirResistance*p.Dt
	vel.X *= drag
	vel.Y *= drag

	st.Vel = vel
}

// IntegratePosition is an explicit Euler step on the position.
func IntegratePosition(b dynamo.Body, p Physics) {
	st := b.State()
	st.Pos = st.Pos.Add(st.Vel.Scale(p.Dt))
}
