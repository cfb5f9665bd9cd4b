package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is drawn centered on the entity transform unless an origin is set.
// A non-nil Tint multiplies the image colors.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Tint    color.Color
	Hidden  bool
}

var SpriteComponent = NewComponent[Sprite]()
