package sim

import (
	"math"

	"github.com/san-kum/bounce/internal/dynamo"
)

// Composite copies the filled cells of r into buf with the raster origin at
// pos. Cells falling outside the viewport are dropped.
func Composite(buf []uint32, vp dynamo.Viewport, r dynamo.Raster, pos dynamo.Vec2) {
	if len(buf) < vp.Size() {
		return
	}
	ox := int(math.Floor(pos.X))
	oy := int(math.Floor(pos.Y))

	for dy := 0; dy < r.Height; dy++ {
		y := oy + dy
		if y < 0 || y >= vp.Height {
			continue
		}
		for dx := 0; dx < r.Width; dx++ {
			x := ox + dx
			if x < 0 || x >= vp.Width {
				continue
			}
			if cell := r.At(dx, dy); cell.Filled {
				buf[y*vp.Width+x] = uint32(cell.Color)
			}
		}
	}
}
