package metrics

import "github.com/san-kum/bounce/internal/dynamo"

// Energy averages the total mechanical energy of all bodies per frame, with
// potential energy measured from the floor and unit mass.
type Energy struct {
	name        string
	gravity     float64
	samples     int
	totalEnergy float64
}

func NewEnergy(gravity float64) *Energy {
	return &Energy{
		name:    "energy",
		gravity: gravity,
	}
}

func (e *Energy) Name() string { return e.name }

func (e *Energy) OnFrame(frame int, bodies []dynamo.Body) {
	sum := 0.0
	for _, b := range bodies {
		st := b.State()
		if st.Env == nil {
			continue
		}
		v := st.Vel
		ke := 0.5 * (v.X*v.X + v.Y*v.Y)
		height := float64(st.Env.Viewport.Height) - (st.Pos.Y + extent(b))
		pe := e.gravity * b.WeightFactor() * height
		sum += ke + pe
	}
	e.totalEnergy += sum
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.totalEnergy / float64(e.samples)
}

func (e *Energy) Reset() {
	e.totalEnergy = 0
	e.samples = 0
}
