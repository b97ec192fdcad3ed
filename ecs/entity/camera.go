package entity

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/jakecoffman/cp"
)

func NewCamera(w *ecs.World, at cp.Vector) (ecs.Entity, error) {
	return build(w, "camera",
		with(component.CameraTagComponent, &component.CameraTag{}),
		with(component.TransformComponent, transformAt(at.X, at.Y)),
		with(component.CameraComponent, &component.Camera{Zoom: 1, Smoothness: 0.15}),
	)
}
