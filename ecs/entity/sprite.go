package entity

import (
	"image/color"

	"github.com/milk9111/waveshooter/assets"
	"github.com/milk9111/waveshooter/ecs/component"
	"github.com/milk9111/waveshooter/prefabs"
)

// buildSprite creates a centered placeholder sprite sized to the collider
// unless the spec overrides the size.
func buildSprite(spec prefabs.SpriteSpec, width, height float64, fallback color.Color) *component.Sprite {
	w, h := int(width), int(height)
	if spec.Width > 0 {
		w = spec.Width
	}
	if spec.Height > 0 {
		h = spec.Height
	}
	img := assets.Rect(w, h, spec.Color.Or(fallback))
	return &component.Sprite{
		Image:   img,
		OriginX: float64(w) / 2,
		OriginY: float64(h) / 2,
	}
}
