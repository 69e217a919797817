package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidViewport indicates a viewport with a non-positive dimension.
	ErrInvalidViewport = errors.New("dynamo: viewport dimensions must be positive")

	// ErrInvalidBody indicates a body definition that cannot be simulated.
	ErrInvalidBody = errors.New("dynamo: invalid body")

	// ErrUnknownBody indicates a body kind missing from the registry.
	ErrUnknownBody = errors.New("dynamo: unknown body kind")

	// ErrUnknownPreset indicates a scene preset that does not exist.
	ErrUnknownPreset = errors.New("dynamo: unknown preset")

	// ErrSurfaceClosed indicates the presentation surface went away mid-frame.
	ErrSurfaceClosed = errors.New("dynamo: presentation surface closed")
)

// FrameError wraps a presentation failure with the frame it happened on.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
