// Package gui presents the engine in a native window using Ebitengine.
package gui

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/san-kum/bounce/internal/dynamo"
	"github.com/san-kum/bounce/internal/sim"
)

var keymap = map[dynamo.Key]ebiten.Key{
	dynamo.KeyA:      ebiten.KeyA,
	dynamo.KeyD:      ebiten.KeyD,
	dynamo.KeyS:      ebiten.KeyS,
	dynamo.KeyW:      ebiten.KeyW,
	dynamo.KeySpace:  ebiten.KeySpace,
	dynamo.KeyLeft:   ebiten.KeyArrowLeft,
	dynamo.KeyRight:  ebiten.KeyArrowRight,
	dynamo.KeyUp:     ebiten.KeyArrowUp,
	dynamo.KeyDown:   ebiten.KeyArrowDown,
	dynamo.KeyEscape: ebiten.KeyEscape,
}

// Window is both the ebiten.Game driving the engine and the sim.Surface it
// presents to. Ebiten owns the loop, so Update does what sim.Engine.Run
// does for pull-style surfaces.
type Window struct {
	engine *sim.Engine
	pixels []byte
	log    *slog.Logger
}

func NewWindow(eng *sim.Engine, log *slog.Logger) *Window {
	if log == nil {
		log = slog.Default()
	}
	return &Window{
		engine: eng,
		pixels: make([]byte, eng.Viewport().Size()*4),
		log:    log,
	}
}

func (w *Window) IsOpen() bool { return !ebiten.IsWindowBeingClosed() }

func (w *Window) IsKeyDown(k dynamo.Key) bool {
	key, ok := keymap[k]
	return ok && ebiten.IsKeyPressed(key)
}

func (w *Window) PressedKeys() dynamo.KeySet {
	keys := dynamo.NewKeySet()
	for k, key := range keymap {
		if ebiten.IsKeyPressed(key) {
			keys[k] = struct{}{}
		}
	}
	return keys
}

func (w *Window) Present(buf []uint32, width, height int) error {
	if len(buf) != width*height {
		return fmt.Errorf("buffer holds %d pixels, want %dx%d", len(buf), width, height)
	}
	w.pixels = dynamo.EncodeRGBA(buf, w.pixels)
	return nil
}

func (w *Window) Update() error {
	if !w.IsOpen() || w.IsKeyDown(dynamo.KeyEscape) {
		w.log.Info("window closed", "frames", w.engine.Frame())
		return ebiten.Termination
	}

	w.engine.Step(w.PressedKeys())

	vp := w.engine.Viewport()
	if err := w.Present(w.engine.Buffer(), vp.Width, vp.Height); err != nil {
		return &dynamo.FrameError{Frame: w.engine.Frame() - 1, Wrapped: err}
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	screen.WritePixels(w.pixels)
}

// Layout pins the logical screen to the viewport; ebiten stretches it to the
// window keeping the aspect ratio.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := w.engine.Viewport()
	return vp.Width, vp.Height
}

// Run opens a window titled title and blocks until it is closed or Escape
// is pressed. fps paces the simulation.
func Run(eng *sim.Engine, title string, fps int, log *slog.Logger) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	vp := eng.Viewport()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(vp.Width, vp.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(fps)

	if err := ebiten.RunGame(NewWindow(eng, log)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

var (
	_ sim.Surface = (*Window)(nil)
	_ ebiten.Game = (*Window)(nil)
)
