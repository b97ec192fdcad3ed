package entity

import (
	"fmt"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
)

// part attaches one component to an entity under construction.
type part func(w *ecs.World, e ecs.Entity) error

func with[T any](handle component.ComponentHandle[T], value *T) part {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, handle, value)
	}
}

// build creates an entity from parts. On failure the half-built entity is
// destroyed so no partial entities leak into the world.
func build(w *ecs.World, name string, parts ...part) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	for i, p := range parts {
		if err := p(w, e); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("%s: add component %d: %w", name, i, err)
		}
	}
	return e, nil
}

func transformAt(x, y float64) *component.Transform {
	return &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}
}
