package system

import (
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
	"go.uber.org/zap"
)

// ProjectSystem drains the updater's refresh once per frame and writes the
// car states onto the car entities.
type ProjectSystem struct {
	updater *drive.Updater
	logger  *zap.Logger
	renders int
}

func NewProjectSystem(updater *drive.Updater, logger *zap.Logger) *ProjectSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectSystem{updater: updater, logger: logger}
}

func (p *ProjectSystem) Update(w *ecs.World) {
	if p == nil || p.updater == nil || w == nil {
		return
	}

	targets := make([]drive.Target, drive.EntityCount)
	ecs.ForEach(w, component.CarComponent.Kind(), func(e ecs.Entity, car *component.Car) {
		if car.Slot < 0 || car.Slot >= len(targets) {
			return
		}
		targets[car.Slot] = carTarget{w: w, e: e}
	})

	if p.updater.Flush(targets...) {
		p.renders++
		p.logger.Debug("refresh", zap.Int("renders", p.renders))
	}
}

// Renders returns how many refreshes have been projected.
func (p *ProjectSystem) Renders() int {
	return p.renders
}

type carTarget struct {
	w *ecs.World
	e ecs.Entity
}

func (c carTarget) SetTransform(t drive.Transform) {
	if tr, ok := ecs.Get(c.w, c.e, component.TransformComponent.Kind()); ok {
		tr.X, tr.Y, tr.Rotation = t.X, t.Y, t.Rotation
	} else {
		_ = ecs.Add(c.w, c.e, component.TransformComponent.Kind(), &component.Transform{X: t.X, Y: t.Y, Rotation: t.Rotation})
	}

	if text, ok := ecs.Get(c.w, c.e, component.TransformTextComponent.Kind()); ok {
		text.Value = t.String()
	} else {
		_ = ecs.Add(c.w, c.e, component.TransformTextComponent.Kind(), &component.TransformText{Value: t.String()})
	}
}
