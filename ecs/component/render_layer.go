package component

// RenderLayer orders sprites; lower indices are drawn first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
