package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
	"github.com/milk9111/twocars/ecs/entity"
	"github.com/milk9111/twocars/ecs/system"
	"github.com/milk9111/twocars/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestGame wires a game without a window, sprites or HUD.
func newTestGame() *Game {
	updater := drive.NewUpdater()
	g := &Game{
		world:   ecs.NewWorld(),
		updater: updater,
		project: system.NewProjectSystem(updater, nil),
		cars:    map[string]ecs.Entity{},
		logger:  zap.NewNop(),
	}
	g.scheduler = ecs.NewScheduler(
		system.NewDriveSystem(updater, g.logger, g.hotkey),
		g.project,
	)
	return g
}

func pushKey(g *Game, k drive.Key) {
	g.world.Events().Push(ecs.Event{Type: ecs.EventKey, Data: ecs.KeyEvent{Key: string(k), Down: true}})
}

func carSpec(slot int) prefabs.EntityBuildSpec {
	return prefabs.EntityBuildSpec{Components: map[string]any{
		"car":       map[string]any{"slot": slot},
		"transform": map[string]any{},
	}}
}

func TestHotkeyTogglesHUD(t *testing.T) {
	g := newTestGame()
	g.showHUD = true

	g.hotkey(keyToggleHUD)
	assert.False(t, g.showHUD)
	g.hotkey(keyToggleHUD)
	assert.True(t, g.showHUD)

	g.hotkey("q")
	assert.True(t, g.showHUD)
	assert.False(t, g.quit)
}

func TestUpdateTerminatesOnQuitKey(t *testing.T) {
	g := newTestGame()

	require.NoError(t, g.Update())

	pushKey(g, keyQuit)
	err := g.Update()
	require.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, g.quit)
	assert.Equal(t, 2, g.frames)
}

func TestUpdateDirectionalKeysNeverReachHotkeys(t *testing.T) {
	g := newTestGame()
	e, err := entity.NewCarFromSpec(g.world, "car.yaml", carSpec(0))
	require.NoError(t, err)
	g.cars["car.yaml"] = e

	pushKey(g, drive.KeyD)
	require.NoError(t, g.Update())
	assert.False(t, g.quit)

	text, ok := ecs.Get(g.world, e, component.TransformTextComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "translate(5px, 0px) rotate(0deg)", text.Value)
}

func TestReloadIgnoresUnknownPrefab(t *testing.T) {
	g := newTestGame()
	e, err := entity.NewCarFromSpec(g.world, "car.yaml", carSpec(0))
	require.NoError(t, err)
	g.cars["car.yaml"] = e

	g.reload("other.yaml")
	assert.Equal(t, map[string]ecs.Entity{"car.yaml": e}, g.cars)
	assert.True(t, ecs.IsAlive(g.world, e))
}

func TestBuildCars(t *testing.T) {
	slots := map[string]int{"car.yaml": 0, "car2.yaml": 1, "clone.yaml": 0}
	build := func(w *ecs.World, name string) (ecs.Entity, error) {
		return entity.NewCarFromSpec(w, name, carSpec(slots[name]))
	}

	cases := []struct {
		name  string
		names []string
		want  string
	}{
		{name: "ok", names: []string{"car.yaml", "car2.yaml"}},
		{name: "listed_twice", names: []string{"car.yaml", "car.yaml"}, want: `car prefab "car.yaml" listed twice`},
		{name: "shared_slot", names: []string{"car.yaml", "clone.yaml"}, want: "slot 0 already used"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			cars, err := buildCars(w, c.names, build)
			if c.want != "" {
				require.ErrorContains(t, err, c.want)
				assert.Nil(t, cars)
				return
			}
			require.NoError(t, err)
			assert.Len(t, cars, len(c.names))
			for _, name := range c.names {
				car, ok := ecs.Get(w, cars[name], component.CarComponent.Kind())
				require.True(t, ok)
				assert.Equal(t, slots[name], car.Slot)
			}
		})
	}
}
