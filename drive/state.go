package drive

// Movement distances in pixels per key-down.
const (
	ForwardDistance  = 5
	BackwardDistance = 2
)

// Headings in degrees. Screen Y grows downward, so up is 270.
const (
	AngleRight = 0
	AngleDown  = 90
	AngleLeft  = 180
	AngleUp    = 270
)

// EntityState is the position offset and rotation of one car. Values are
// unbounded.
type EntityState struct {
	X     float64
	Y     float64
	Angle float64
}

// Transform converts the state to its visual transform.
func (s EntityState) Transform() Transform {
	return Transform{X: s.X, Y: s.Y, Rotation: s.Angle}
}

// Binding lists the keys driving one car, tested in field order.
type Binding struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
}

var (
	WASD   = Binding{Up: KeyW, Down: KeyS, Left: KeyA, Right: KeyD}
	Arrows = Binding{Up: KeyArrowUp, Down: KeyArrowDown, Left: KeyArrowLeft, Right: KeyArrowRight}
)

// Step applies at most one movement to s: the first key of b found in held,
// in the order up, down, left, right. Diagonal movement is impossible.
func Step(s EntityState, held KeySet, b Binding) EntityState {
	switch {
	case held.Has(b.Up):
		s.Angle = AngleUp
		s.Y -= ForwardDistance
	case held.Has(b.Down):
		s.Angle = AngleDown
		s.Y += BackwardDistance
	case held.Has(b.Left):
		s.Angle = AngleLeft
		s.X -= ForwardDistance
	case held.Has(b.Right):
		s.Angle = AngleRight
		s.X += ForwardDistance
	}
	return s
}
