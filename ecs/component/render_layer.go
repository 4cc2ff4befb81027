package component

type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]("render_layer")
