package metrics

import "github.com/san-kum/bounce/internal/dynamo"

// Trace records how high one body sits above the floor on every frame.
type Trace struct {
	name   string
	index  int
	limit  int
	values []float64
}

func NewTrace(index int) *Trace {
	return &Trace{name: "height", index: index, values: make([]float64, 0, 256)}
}

// NewRollingTrace keeps only the last limit samples.
func NewRollingTrace(index, limit int) *Trace {
	t := NewTrace(index)
	t.limit = limit
	return t
}

func (t *Trace) Name() string { return t.name }

func (t *Trace) OnFrame(frame int, bodies []dynamo.Body) {
	if t.index < 0 || t.index >= len(bodies) {
		return
	}
	b := bodies[t.index]
	st := b.State()
	if st.Env == nil {
		return
	}
	t.values = append(t.values, float64(st.Env.Viewport.Height)-(st.Pos.Y+extent(b)))
	if t.limit > 0 && len(t.values) > t.limit {
		t.values = append(t.values[:0], t.values[len(t.values)-t.limit:]...)
	}
}

func (t *Trace) Values() []float64 { return t.values }

// Value is the most recent height.
func (t *Trace) Value() float64 {
	if len(t.values) == 0 {
		return 0
	}
	return t.values[len(t.values)-1]
}

func (t *Trace) Reset() { t.values = t.values[:0] }
