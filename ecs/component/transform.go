package component

// Transform is an element's offset from its anchor in pixels and its
// rotation in degrees.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]("transform")
