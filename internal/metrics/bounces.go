package metrics

import (
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/sim"
)

// Bounces counts edge contacts across all bodies.
type Bounces struct {
	name  string
	count int
	edges map[string]int
}

func NewBounces() *Bounces {
	return &Bounces{
		name:  "bounces",
		edges: make(map[string]int),
	}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) OnFrame(frame int, bodies []dynamo.Body) {}

func (b *Bounces) OnContact(frame, index int, c sim.Contact) {
	for edge, hit := range map[string]bool{"left": c.Left, "right": c.Right, "top": c.Top, "bottom": c.Bottom} {
		if hit {
			b.count++
			b.edges[edge]++
		}
	}
}

// Edge returns the number of contacts with one edge ("left", "right", "top", "bottom").
func (b *Bounces) Edge(name string) int { return b.edges[name] }

func (b *Bounces) Value() float64 { return float64(b.count) }

func (b *Bounces) Reset() {
	b.count = 0
	b.edges = make(map[string]int)
}
