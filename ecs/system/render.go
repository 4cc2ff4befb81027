package system

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
)

type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Update(*ecs.World) {}

// Draw renders every anchored sprite, rotated about its origin and moved by
// its transform.
func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := ecs.Query(w,
		component.TransformComponent.Kind(),
		component.SpriteComponent.Kind(),
		component.AnchorComponent.Kind(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		return layerOf(w, entities[i]) < layerOf(w, entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		a, _ := ecs.Get(w, e, component.AnchorComponent.Kind())
		if t == nil || s == nil || a == nil || s.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Rotate(t.Rotation * math.Pi / 180)
		op.GeoM.Translate(a.X+t.X, a.Y+t.Y)
		op.Filter = ebiten.FilterLinear

		screen.DrawImage(s.Image, op)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
