// Package physics provides the concrete bodies of the simulation.
//
// Each body implements the [dynamo.Body] interface and embeds
// [dynamo.BodyBase] for the shared physical state:
//
//   - [Disc]: filled circle steered with A/D and W (jump)
//
// Colors are given as "#RRGGBB" strings and parsed with [ParseHexColor].
//
// # Ground Contact
//
// A disc only jumps while resting on the floor. The floor test compares the
// disc's bottom edge to the viewport height exactly; set
// [Disc.GroundTolerance] to accept small drift instead:
//
//	d := physics.NewDisc(dynamo.Vec2{X: 10, Y: 10}, 24, "#cf5353")
//	d.GroundTolerance = 0.5
package physics
