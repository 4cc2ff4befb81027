package drive

import (
	"fmt"
	"strconv"
)

// Transform is a 2D pixel translation followed by a rotation in degrees.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

// String formats t the way a CSS transform property reads,
// e.g. "translate(5px, -3px) rotate(90deg)".
func (t Transform) String() string {
	return fmt.Sprintf("translate(%spx, %spx) rotate(%sdeg)", formatNumber(t.X), formatNumber(t.Y), formatNumber(t.Rotation))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Target is a visual element whose transform can be set.
type Target interface {
	SetTransform(t Transform)
}

// TargetFunc adapts a function to Target.
type TargetFunc func(t Transform)

func (f TargetFunc) SetTransform(t Transform) {
	f(t)
}
