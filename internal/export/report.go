// Package export writes the results of a headless run for use outside the
// terminal: a JSON report and an SVG plot of the traced body.
package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/metrics"
	"github.com/san-kum/bounce/internal/sim"
)

type BodyReport struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
}

type Report struct {
	Title   string             `json:"title"`
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Frames  int                `json:"frames"`
	Physics sim.Physics        `json:"physics"`
	Traced  int                `json:"traced"`
	Heights []float64          `json:"heights"`
	Metrics map[string]float64 `json:"metrics"`
	Bodies  []BodyReport       `json:"bodies"`
}

// NewReport snapshots the engine after a run.
func NewReport(title string, eng *sim.Engine, trace *metrics.Trace, traced int, ms []metrics.Metric) *Report {
	vp := eng.Viewport()
	r := &Report{
		Title:   title,
		Width:   vp.Width,
		Height:  vp.Height,
		Frames:  eng.Frame(),
		Physics: eng.Physics(),
		Traced:  traced,
		Metrics: make(map[string]float64, len(ms)),
		Bodies:  make([]BodyReport, 0, len(eng.Bodies())),
	}
	if trace != nil {
		r.Heights = append([]float64(nil), trace.Values()...)
	}
	for _, m := range ms {
		r.Metrics[m.Name()] = m.Value()
	}
	for _, b := range eng.Bodies() {
		st := b.State()
		r.Bodies = append(r.Bodies, BodyReport{
			Kind: kindOf(b),
			X:    st.Pos.X,
			Y:    st.Pos.Y,
			VX:   st.Vel.X,
			VY:   st.Vel.Y,
		})
	}
	return r
}

func kindOf(b dynamo.Body) string {
	return b.CollisionShape().Kind.String()
}

func WriteJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func ExportJSON(path string, r *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, r)
}

func ExportSVG(path string, r *Report, width, height int) error {
	return os.WriteFile(path, []byte(TraceToSVG(r.Heights, width, height, "#00ff00")), 0o644)
}
