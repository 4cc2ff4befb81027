package entity

import (
	"fmt"

	"github.com/milk9111/twocars/ecs"
	"github.com/milk9111/twocars/ecs/component"
)

func NewCar(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return 0, err
	}
	return checkCar(w, e, prefabPath, 0)
}

// NewCarFromSpec builds a car that must not share its slot with a car
// already in w.
func NewCarFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	e, err := BuildEntityFromSpec(w, prefabPath, spec)
	if err != nil {
		return 0, err
	}
	return checkCar(w, e, prefabPath, 0)
}

// ReplaceCar rebuilds a car from its prefab and carries the projected
// transform over from old, which is then destroyed. If the rebuild fails
// old is kept.
func ReplaceCar(w *ecs.World, old ecs.Entity, prefabPath string) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefabPath)
	if err != nil {
		return old, err
	}
	return replaceCar(w, old, e, prefabPath)
}

func ReplaceCarFromSpec(w *ecs.World, old ecs.Entity, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	e, err := BuildEntityFromSpec(w, prefabPath, spec)
	if err != nil {
		return old, err
	}
	return replaceCar(w, old, e, prefabPath)
}

func replaceCar(w *ecs.World, old, e ecs.Entity, prefabPath string) (ecs.Entity, error) {
	if _, err := checkCar(w, e, prefabPath, old); err != nil {
		return old, err
	}
	if t, ok := ecs.Get(w, old, component.TransformComponent.Kind()); ok {
		copied := *t
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &copied); err != nil {
			ecs.DestroyEntity(w, e)
			return old, fmt.Errorf("car: carry transform: %w", err)
		}
	}
	if text, ok := ecs.Get(w, old, component.TransformTextComponent.Kind()); ok {
		copied := *text
		if err := ecs.Add(w, e, component.TransformTextComponent.Kind(), &copied); err != nil {
			ecs.DestroyEntity(w, e)
			return old, fmt.Errorf("car: carry transform text: %w", err)
		}
	}
	ecs.DestroyEntity(w, old)
	return e, nil
}

// checkCar destroys e unless it is a car whose slot is free, not counting
// skip.
func checkCar(w *ecs.World, e ecs.Entity, prefabPath string, skip ecs.Entity) (ecs.Entity, error) {
	car, ok := ecs.Get(w, e, component.CarComponent.Kind())
	if !ok {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("car: prefab %q has no car component", prefabPath)
	}
	if other, ok := SlotOwner(w, car.Slot, e, skip); ok {
		ecs.DestroyEntity(w, e)
		name := ""
		if c, ok := ecs.Get(w, other, component.CarComponent.Kind()); ok {
			name = c.Name
		}
		return 0, fmt.Errorf("car: prefab %q: slot %d already used by %q", prefabPath, car.Slot, name)
	}
	return e, nil
}

// SlotOwner returns the car entity driving slot, ignoring the entities in
// except.
func SlotOwner(w *ecs.World, slot int, except ...ecs.Entity) (ecs.Entity, bool) {
	var owner ecs.Entity
	found := false
	ecs.ForEach(w, component.CarComponent.Kind(), func(e ecs.Entity, car *component.Car) {
		if found || car.Slot != slot {
			return
		}
		for _, x := range except {
			if e == x {
				return
			}
		}
		owner, found = e, true
	})
	return owner, found
}
