// Package dynamo provides the shared primitives of the body simulation.
//
// The package defines the types every other package agrees on:
//
//   - [Vec2]: position / velocity pair in viewport pixels
//   - [PhysicalState]: mutable kinematic state owned by a body
//   - [Body]: capability interface implemented by every simulated entity
//   - [CollisionShape]: geometric kind used for boundary collision
//   - [Raster]: a body's self-rendered image in local coordinates
//   - [KeySet]: the set of keys held during a frame
//
// # Example
//
//	disc := physics.NewDisc(dynamo.Vec2{X: 376, Y: 276}, 24, "#cf5353")
//	eng, _ := sim.New(dynamo.Viewport{Width: 800, Height: 600})
//	eng.AddBody(disc)
//	eng.Step(dynamo.NewKeySet())
//
// # Thread Safety
//
// Bodies are mutated in place by the engine. Nothing here is safe for
// concurrent use; the frame loop is single-threaded.
package dynamo
