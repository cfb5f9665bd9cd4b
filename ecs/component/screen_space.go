package component

// ScreenSpace marks renderable entities whose transform is in screen pixels
// and that are drawn above the world.
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
