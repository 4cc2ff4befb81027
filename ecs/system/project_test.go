package system

import (
	"testing"

	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCar(t *testing.T, w *ecs.World, slot int) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.CarComponent.Kind(), &component.Car{Slot: slot}))
	require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	return e
}

func TestProjectSystemWritesOnRefresh(t *testing.T) {
	w := ecs.NewWorld()
	car := newCar(t, w, 0)
	car2 := newCar(t, w, 1)

	u := drive.NewUpdater()
	p := NewProjectSystem(u, nil)

	p.Update(w)
	require.Equal(t, 0, p.Renders())
	_, ok := ecs.Get(w, car2, component.TransformTextComponent.Kind())
	require.False(t, ok, "nothing projected before a key-down")

	u.OnKeyDown(drive.KeyArrowRight)
	u.OnKeyDown(drive.KeyArrowRight)
	p.Update(w)
	require.Equal(t, 1, p.Renders())

	tr, _ := ecs.Get(w, car2, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{X: 10}, *tr)
	text, _ := ecs.Get(w, car2, component.TransformTextComponent.Kind())
	assert.Equal(t, "translate(10px, 0px) rotate(0deg)", text.Value)

	tr, _ = ecs.Get(w, car, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{}, *tr)

	p.Update(w)
	assert.Equal(t, 1, p.Renders())
}

func TestProjectSystemMissingCar(t *testing.T) {
	w := ecs.NewWorld()
	car2 := newCar(t, w, 1)
	stray := newCar(t, w, 7)

	u := drive.NewUpdater()
	p := NewProjectSystem(u, nil)
	u.OnKeyDown(drive.KeyW)
	u.OnKeyDown(drive.KeyArrowDown)
	p.Update(w)

	tr, _ := ecs.Get(w, car2, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{Y: 2, Rotation: 90}, *tr)
	tr, _ = ecs.Get(w, stray, component.TransformComponent.Kind())
	assert.Equal(t, component.Transform{}, *tr)
}
