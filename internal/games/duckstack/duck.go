package duckstack

// DuckState is the lifecycle variant of a duck: Hovering, Dragged, Falling or
// Static.
type DuckState interface {
	duckState()
}

// Hovering ducks oscillate around AnchorX near the top of the camera.
type Hovering struct {
	AnchorX float64
	Phase   float64 // radians
	Speed   float64 // rad/s
}

// Dragged ducks follow the pointer and do not oscillate.
type Dragged struct{}

// Falling ducks accelerate downward; PrevY feeds the swept landing check.
type Falling struct {
	PrevY float64
	VY    float64
}

// Static ducks are part of the stack.
type Static struct{}

func (Hovering) duckState() {}
func (Dragged) duckState()  {}
func (Falling) duckState()  {}
func (Static) duckState()   {}

// Squish is the transient landing scale. {1, 1} is at rest.
type Squish struct {
	X, Y float64
}

// Duck is a placed or in-play duck. X is the horizontal center and Y the
// bottom edge, both in design-space pixels with y growing downward.
type Duck struct {
	X, Y       float64
	W, H       float64
	MergeLevel int // grows only on the base duck
	Primary    string
	Secondary  string
	Squish     Squish
	State      DuckState
}

// IsHovering reports whether the duck is waiting to be dropped.
func (d Duck) IsHovering() bool {
	_, ok := d.State.(Hovering)
	return ok
}

// IsDragged reports whether the duck follows the pointer.
func (d Duck) IsDragged() bool {
	_, ok := d.State.(Dragged)
	return ok
}

// IsFalling reports whether the duck is in free fall.
func (d Duck) IsFalling() bool {
	_, ok := d.State.(Falling)
	return ok
}

// IsStatic reports whether the duck has settled on the stack.
func (d Duck) IsStatic() bool {
	_, ok := d.State.(Static)
	return ok
}

// Top returns the y of the duck's top edge.
func (d Duck) Top() float64 {
	return d.Y - d.H
}

// Area is the duck's mass proxy for center-of-mass calculations.
func (d Duck) Area() float64 {
	return d.W * d.H
}

// newStackDuck creates a duck in the given level's colors.
func newStackDuck(x, y, w, h float64, lvl LevelConfig, state DuckState) Duck {
	return Duck{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Primary:   lvl.Primary,
		Secondary: lvl.Secondary,
		Squish:    Squish{X: 1, Y: 1},
		State:     state,
	}
}
