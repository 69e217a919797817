package viz

import (
	"math"
	"strings"

	"github.com/san-kum/bounce/internal/dynamo"
)

// Frame is a pixel buffer downsampled onto a grid of dots.
type Frame struct {
	Width, Height int
	Dots          []uint32
}

func (f Frame) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Dots[y*f.Width+x]
}

// Sample fits buf onto at most dotsW x dotsH dots with nearest-neighbour
// sampling, keeping the aspect ratio. The viewport is never upscaled.
func Sample(buf []uint32, vp dynamo.Viewport, dotsW, dotsH int) Frame {
	if dotsW <= 0 || dotsH <= 0 || !vp.Valid() || len(buf) < vp.Size() {
		return Frame{}
	}

	scale := math.Max(float64(vp.Width)/float64(dotsW), float64(vp.Height)/float64(dotsH))
	if scale < 1 {
		scale = 1
	}

	w := int(math.Ceil(float64(vp.Width) / scale))
	h := int(math.Ceil(float64(vp.Height) / scale))
	w, h = min(w, dotsW), min(h, dotsH)

	f := Frame{Width: w, Height: h, Dots: make([]uint32, w*h)}
	for y := 0; y < h; y++ {
		py := int(float64(y) * scale)
		for x := 0; x < w; x++ {
			px := int(float64(x) * scale)
			if vp.Contains(px, py) {
				f.Dots[y*w+x] = buf[py*vp.Width+px]
			}
		}
	}
	return f
}

// RenderBlocks draws buf into cols x rows terminal cells using upper half
// blocks, so every cell shows two vertically stacked dots.
func RenderBlocks(buf []uint32, vp dynamo.Viewport, cols, rows int, styles cellStyles) string {
	f := Sample(buf, vp, cols, rows*2)
	if styles == nil {
		styles = make(cellStyles)
	}

	var b strings.Builder
	for y := 0; y < f.Height; y += 2 {
		for x := 0; x < f.Width; x++ {
			top, bottom := f.At(x, y), f.At(x, y+1)
			if top == 0 && bottom == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(styles.get(top, bottom).Render("▀"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderBraille draws every non-empty pixel of buf as a Braille dot.
func RenderBraille(buf []uint32, vp dynamo.Viewport, cols, rows int) string {
	f := Sample(buf, vp, cols*2, rows*4)
	c := NewCanvas((f.Width+1)/2, (f.Height+3)/4)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) != 0 {
				c.Set(x, y)
			}
		}
	}
	return BrailleStyle.Render(c.String())
}
