package sim

import "github.com/san-kum/bounce/internal/dynamo"

// Headless is an offscreen Surface that stays open for a fixed number of
// frames and replays a key schedule.
type Headless struct {
	Frames int
	// Script maps a frame index to the keys held during that frame.
	Script map[int]dynamo.KeySet

	presented int
	last      []uint32
}

func NewHeadless(frames int) *Headless {
	return &Headless{Frames: frames, Script: make(map[int]dynamo.KeySet)}
}

// Hold presses keys for frames [from, to).
func (h *Headless) Hold(from, to int, keys ...dynamo.Key) *Headless {
	for f := from; f < to; f++ {
		set, ok := h.Script[f]
		if !ok {
			set = dynamo.NewKeySet()
			h.Script[f] = set
		}
		for _, k := range keys {
			set[k] = struct{}{}
		}
	}
	return h
}

func (h *Headless) IsOpen() bool { return h.presented < h.Frames }

func (h *Headless) IsKeyDown(k dynamo.Key) bool {
	return h.PressedKeys().Has(k)
}

func (h *Headless) PressedKeys() dynamo.KeySet {
	if set, ok := h.Script[h.presented]; ok {
		return set
	}
	return dynamo.NewKeySet()
}

func (h *Headless) Present(buf []uint32, width, height int) error {
	if len(h.last) != len(buf) {
		h.last = make([]uint32, len(buf))
	}
	copy(h.last, buf)
	h.presented++
	return nil
}

// Presented returns the number of frames handed to the surface.
func (h *Headless) Presented() int { return h.presented }

// Last returns a copy-on-present of the most recent buffer.
func (h *Headless) Last() []uint32 { return h.last }
