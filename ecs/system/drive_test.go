package system

import (
	"testing"

	"github.com/milk9111/twocars/drive"
	"github.com/milk9111/twocars/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func push(w *ecs.World, key string, down, repeat bool) {
	w.Events().Push(ecs.Event{Type: ecs.EventKey, Data: ecs.KeyEvent{Key: key, Down: down, Repeat: repeat}})
}

func TestDriveSystemAppliesEventsInOrder(t *testing.T) {
	w := ecs.NewWorld()
	u := drive.NewUpdater()
	s := NewDriveSystem(u, nil, nil)

	push(w, "d", true, false)
	push(w, "w", true, false)
	push(w, "d", false, false)
	push(w, "w", false, false)
	push(w, "s", true, false)
	s.Update(w)

	assert.Equal(t, drive.EntityState{X: 5, Y: -3, Angle: 90}, u.State(0))
	assert.Equal(t, []drive.Key{drive.KeyS}, u.Held().Keys())
	assert.Equal(t, 0, w.Events().Len())
}

func TestDriveSystemFallback(t *testing.T) {
	w := ecs.NewWorld()
	u := drive.NewUpdater()
	var got []drive.Key
	s := NewDriveSystem(u, nil, func(k drive.Key) { got = append(got, k) })

	push(w, "ArrowUp", true, false)
	push(w, "F1", true, false)
	push(w, "F1", true, true)
	push(w, "F1", false, false)
	push(w, "w", true, true)
	w.Events().Push(ecs.Event{Type: "other", Data: 3})
	s.Update(w)

	require.Equal(t, []drive.Key{"F1"}, got)
	// ArrowUp stays held, so every later key-down moves car2 again.
	assert.Equal(t, drive.EntityState{Y: -20, Angle: 270}, u.State(1))
	assert.Equal(t, drive.EntityState{Y: -5, Angle: 270}, u.State(0))
}

func TestDriveSystemNil(t *testing.T) {
	var s *DriveSystem
	s.Update(ecs.NewWorld())
	NewDriveSystem(nil, nil, nil).Update(ecs.NewWorld())
}
