package entity

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/jakecoffman/cp"
)

type PlayerSpec struct {
	Position     cp.Vector
	Radius       float64
	Mass         float64
	MaxSpeed     float64
	Acceleration float64
	Color        color.Color
}

func NewPlayer(w *ecs.World, spec PlayerSpec) (ecs.Entity, error) {
	return build(w, "player",
		with(component.PlayerTagComponent, &component.PlayerTag{}),
		with(component.PlayerComponent, &component.Player{Mass: spec.Mass, Radius: spec.Radius}),
		with(component.TransformComponent, transformAt(spec.Position.X, spec.Position.Y)),
		with(component.InputComponent, &component.Input{}),
		with(component.CharacterControllerComponent, &component.CharacterController{
			Acceleration: spec.Acceleration,
			MaxSpeed:     spec.MaxSpeed,
		}),
		with(component.PhysicsBodyComponent, &component.PhysicsBody{Radius: spec.Radius, Mass: spec.Mass}),
		with(component.CollisionLayerComponent, ptr(component.PlayerLayer)),
		with(component.SpriteComponent, &component.Sprite{Texture: "player", Color: spec.Color, Width: spec.Radius * 2, Height: spec.Radius * 2, Circle: true}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerActor}),
	)
}

func ptr[T any](v T) *T {
	return &v
}
