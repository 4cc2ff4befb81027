package entity

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
	"github.com/milk9111/twocars/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"car":          addCar,
	"anchor":       addAnchor,
	"transform":    addTransform,
	"sprite":       addSprite,
	"render_layer": addRenderLayer,
}

var componentBuildOrder = []string{
	"car",
	"anchor",
	"transform",
	"sprite",
	"render_layer",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, prefabPath, spec)
}

// BuildEntityFromSpec builds an entity from an already decoded prefab. On
// error the partially built entity is destroyed.
func BuildEntityFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	for _, name := range componentBuildOrder {
		raw, ok := spec.Components[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
	}

	return e, nil
}

type carSpec = prefabs.CarComponentSpec

func addCar(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[carSpec](raw)
	if err != nil {
		return fmt.Errorf("decode car spec: %w", err)
	}
	if spec.Slot < 0 || spec.Slot >= drive.EntityCount {
		return fmt.Errorf("car slot %d out of range [0, %d)", spec.Slot, drive.EntityCount)
	}
	name := spec.Name
	if name == "" {
		name = ctx.PrefabPath
	}
	if err := ecs.Add(w, e, component.CarComponent.Kind(), &component.Car{Slot: spec.Slot, Name: name}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.TransformTextComponent.Kind(), &component.TransformText{
		Value: drive.Transform{}.String(),
	})
}

type anchorSpec = prefabs.AnchorComponentSpec

func addAnchor(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[anchorSpec](raw)
	if err != nil {
		return fmt.Errorf("decode anchor spec: %w", err)
	}
	return ecs.Add(w, e, component.AnchorComponent.Kind(), &component.Anchor{X: spec.X, Y: spec.Y})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("sprite size %dx%d must be positive", spec.Width, spec.Height)
	}

	img := carImage(spec)
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Image:   img,
		OriginX: float64(spec.Width) / 2,
		OriginY: float64(spec.Height) / 2,
	})
}

func carImage(spec spriteSpec) *ebiten.Image {
	body := spec.Color.Color
	if body == nil {
		body = color.White
	}
	img := ebiten.NewImage(spec.Width, spec.Height)
	img.Fill(body)

	nose := spec.NoseWidth
	if nose <= 0 || nose > spec.Width || spec.NoseColor.Color == nil {
		return img
	}
	if sub, ok := img.SubImage(image.Rect(spec.Width-nose, 0, spec.Width, spec.Height)).(*ebiten.Image); ok {
		sub.Fill(spec.NoseColor.Color)
	}
	return img
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render_layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}
