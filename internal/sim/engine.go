package sim

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/bounce/internal/dynamo"
)

// Engine owns the pixel buffer, the viewport and the bodies, and advances
// them one frame per Step.
type Engine struct {
	viewport  dynamo.Viewport
	buffer    []uint32
	bodies    []dynamo.Body
	physics   Physics
	observers []Observer
	log       *slog.Logger
	frame     int
}

func New(vp dynamo.Viewport, opts ...Option) (*Engine, error) {
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: got %dx%d", dynamo.ErrInvalidViewport, vp.Width, vp.Height)
	}

	e := &Engine{
		viewport:  vp,
		buffer:    make([]uint32, vp.Size()),
		bodies:    make([]dynamo.Body, 0),
		physics:   DefaultPhysics(),
		observers: make([]Observer, 0),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddBody appends b; insertion order is also draw order.
func (e *Engine) AddBody(b dynamo.Body) {
	if b == nil {
		e.log.Warn("ignoring nil body")
		return
	}
	e.bodies = append(e.bodies, b)
	e.log.Debug("body added", "index", len(e.bodies)-1, "shape", b.CollisionShape().Kind)
}

func (e *Engine) AddObserver(o Observer) {
	if o != nil {
		e.observers = append(e.observers, o)
	}
}

func (e *Engine) Bodies() []dynamo.Body      { return e.bodies }
func (e *Engine) Viewport() dynamo.Viewport { return e.viewport }
func (e *Engine) Buffer() []uint32          { return e.buffer }
func (e *Engine) Physics() Physics          { return e.physics }

// Frame returns the number of frames stepped so far.
func (e *Engine) Frame() int { return e.frame }

// Step clears the buffer and runs every body through the pipeline in
// insertion order: velocity, position, collisions, environment, input,
// rasterize.
func (e *Engine) Step(keys dynamo.KeySet) {
	if keys == nil {
		keys = dynamo.NewKeySet()
	}
	clear(e.buffer)

	frame := e.frame
	env := dynamo.Environment{Viewport: e.viewport}

	for i, b := range e.bodies {
		IntegrateVelocity(b, e.physics)
		IntegratePosition(b, e.physics)

		if c := ResolveCollisions(b, e.viewport, e.physics); c.Any() {
			e.notifyContact(frame, i, c)
		}

		st := b.State()
		snapshot := env
		st.Env = &snapshot

		b.HandleInput(keys, env)

		Composite(e.buffer, e.viewport, b.Rasterize(), st.Pos)
	}

	e.frame++
	for _, o := range e.observers {
		o.OnFrame(frame, e.bodies)
	}
}

func (e *Engine) notifyContact(frame, index int, c Contact) {
	for _, o := range e.observers {
		if co, ok := o.(ContactObserver); ok {
			co.OnContact(frame, index, c)
		}
	}
}

// Run steps the engine until the surface closes, Escape is held or ctx is
// done. Only presentation failures are returned as errors.
func (e *Engine) Run(ctx context.Context, s Surface) error {
	e.log.Info("simulation started",
		"width", e.viewport.Width,
		"height", e.viewport.Height,
		"bodies", len(e.bodies),
	)

	for s.IsOpen() && !s.IsKeyDown(dynamo.KeyEscape) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		e.Step(s.PressedKeys())

		if err := s.Present(e.buffer, e.viewport.Width, e.viewport.Height); err != nil {
			e.log.Error("present failed", "frame", e.frame-1, "err", err)
			return &dynamo.FrameError{Frame: e.frame - 1, Wrapped: err}
		}
	}

	e.log.Info("simulation stopped", "frames", e.frame)
	return nil
}
