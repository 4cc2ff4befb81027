package component

// Car marks an element that shows one driven car. Slot is the car's index
// in the drive updater.
type Car struct {
	Slot int
	Name string
}

var CarComponent = NewComponent[Car]("car")

// TransformText holds the last projected transform in CSS notation.
type TransformText struct {
	Value string
}

var TransformTextComponent = NewComponent[TransformText]("transform_text")
