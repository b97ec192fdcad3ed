package entity

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/jakecoffman/cp"
)

const ProjectileRadius = 5.0

func NewProjectile(w *ecs.World, at cp.Vector, p component.Projectile, tint color.Color) (ecs.Entity, error) {
	layer := component.ProjectileLayer
	if p.Reflected {
		layer = component.ReflectedProjectileLayer
	}
	return build(w, "projectile",
		roomObject(),
		with(component.ProjectileComponent, &p),
		with(component.TransformComponent, transformAt(at.X, at.Y)),
		with(component.PhysicsBodyComponent, &component.PhysicsBody{Radius: ProjectileRadius, Mass: 0.1, Sensor: true}),
		with(component.CollisionLayerComponent, &layer),
		with(component.SpriteComponent, &component.Sprite{Texture: "projectile", Color: tint, Width: ProjectileRadius * 2, Height: ProjectileRadius * 2, Circle: true}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerProjectileSprite}),
	)
}
