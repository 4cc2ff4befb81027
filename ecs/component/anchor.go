package component

// Anchor is where an element's centre sits on the surface before its
// transform applies.
type Anchor struct {
	X float64
	Y float64
}

var AnchorComponent = NewComponent[Anchor]("anchor")
