package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/waveshooter/ecs"
	"github.com/milk9111/waveshooter/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// basicfont glyphs are 13px tall; HUD font sizes scale from that.
const baseFontSize = 13.0

type RenderSystem struct {
	background color.Color
	face       *text.GoXFace
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{
		background: background,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if r.background != nil {
		screen.Fill(r.background)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Hidden {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Translate(t.X, t.Y)
		if s.Tint != nil {
			op.ColorScale.ScaleWithColor(s.Tint)
		}

		screen.DrawImage(s.Image, op)
	}

	r.drawHUD(w, screen)
}

func (r *RenderSystem) drawHUD(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.HealthTextComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, hud *component.HealthText, t *component.Transform) {
		if hud.Text == "" {
			return
		}
		scale := 1.0
		if hud.FontSize > 0 {
			scale = hud.FontSize / baseFontSize
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(t.X, t.Y)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, hud.Text, r.face, op)
	})
}
