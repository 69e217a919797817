package metrics

import "github.com/san-kum/bounce/internal/dynamo"

// GroundTime is the fraction of frames one body ends resting on the floor.
type GroundTime struct {
	name     string
	index    int
	grounded int
	samples  int
}

func NewGroundTime(index int) *GroundTime {
	return &GroundTime{
		name:  "ground_time",
		index: index,
	}
}

func (g *GroundTime) Name() string { return g.name }

func (g *GroundTime) OnFrame(frame int, bodies []dynamo.Body) {
	if g.index < 0 || g.index >= len(bodies) {
		return
	}
	b := bodies[g.index]
	st := b.State()
	if st.Env == nil {
		return
	}
	g.samples++
	if st.Pos.Y+extent(b) >= float64(st.Env.Viewport.Height) {
		g.grounded++
	}
}

func (g *GroundTime) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return float64(g.grounded) / float64(g.samples)
}

func (g *GroundTime) Reset() {
	g.grounded = 0
	g.samples = 0
}
