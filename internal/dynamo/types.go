package dynamo

import (
	"math"
	"sort"
)

const (
	// DefaultBounciness is the restitution used by bodies that do not override it.
	DefaultBounciness = 0.8
	// DefaultRectBounciness is reserved for rectangle-shaped bodies.
	DefaultRectBounciness = 0.5
)

// Vec2 is used both as a position (origin top-left, y down) and as a
// velocity in pixels per step.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vec2) Scale(factor float64) Vec2 {
	return Vec2{X: v.X * factor, Y: v.Y * factor}
}

func (v Vec2) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func (v Viewport) Size() int { return v.Width * v.Height }

func (v Viewport) Contains(x, y int) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

func (v Viewport) Valid() bool { return v.Width > 0 && v.Height > 0 }

// Environment is what a body knows about the world it lives in.
type Environment struct {
	Viewport Viewport
}

// PhysicalState is the kinematic state owned by each body. Env is nil until
// the engine has run the body through its first frame.
type PhysicalState struct {
	Pos Vec2
	Vel Vec2
	Env *Environment
}

type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	// ShapeRect is declared for future bodies; the engine has no collision
	// response for it yet.
	ShapeRect
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

type CollisionShape struct {
	Kind   ShapeKind
	Radius float64
	Width  float64
	Height float64
}

func Circle(radius float64) CollisionShape {
	return CollisionShape{Kind: ShapeCircle, Radius: radius}
}

func Rect(width, height float64) CollisionShape {
	return CollisionShape{Kind: ShapeRect, Width: width, Height: height}
}

// Color is a packed 0xRRGGBB value.
type Color uint32

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Cell is one raster pixel. Unfilled cells are transparent, so true black
// can still be drawn.
type Cell struct {
	Color  Color
	Filled bool
}

// Raster is a row-major image in the body's local frame, origin at the
// top-left corner of its bounding box.
type Raster struct {
	Width, Height int
	cells         []Cell
}

func NewRaster(w, h int) Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Raster{Width: w, Height: h, cells: make([]Cell, w*h)}
}

func (r Raster) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return
	}
	r.cells[y*r.Width+x] = Cell{Color: c, Filled: true}
}

func (r Raster) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= r.Width || y >= r.Height {
		return Cell{}
	}
	return r.cells[y*r.Width+x]
}

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyD
	KeyS
	KeyW
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEscape
)

var keyNames = map[Key]string{
	KeyA:      "a",
	KeyD:      "d",
	KeyS:      "s",
	KeyW:      "w",
	KeySpace:  "space",
	KeyLeft:   "left",
	KeyRight:  "right",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyEscape: "esc",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name as printed by String back to its Key.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// KeySet holds the keys pressed during the current frame.
type KeySet map[Key]struct{}

func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

func (s KeySet) Keys() []Key {
	keys := make([]Key, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Body is the capability set every simulated entity provides to the engine.
type Body interface {
	// State exposes the body's kinematic state for the engine to mutate.
	State() *PhysicalState
	// WeightFactor scales gravity for this body.
	WeightFactor() float64
	// Bounciness is the restitution applied on boundary collision.
	Bounciness() float64
	CollisionShape() CollisionShape
	Rasterize() Raster
	// HandleInput may only mutate the body's own state.
	HandleInput(keys KeySet, env Environment)
}

// BodyBase carries the physical state and the default behaviour shared by
// all bodies. Concrete bodies embed it and override what they need.
type BodyBase struct {
	Phys PhysicalState
}

func (b *BodyBase) State() *PhysicalState { return &b.Phys }

func (b *BodyBase) Bounciness() float64 { return DefaultBounciness }

func (b *BodyBase) HandleInput(keys KeySet, env Environment) {}
