// Package viz presents the engine in a terminal using Bubble Tea.
//
// The pixel buffer is downsampled to the terminal size and drawn either
// with colored half blocks (two pixels per cell) or with a monochrome
// Braille [Canvas] (eight dots per cell).
//
// # Key Bindings
//
//	A/D   - Push left / right
//	W     - Jump
//	Tab   - Toggle half-block / Braille rendering
//	Esc   - Quit
//
// # Held Keys
//
// Terminals only report key presses, never releases. A key counts as held
// for a short window after each press; auto-repeat keeps it held while the
// key stays down.
package viz
