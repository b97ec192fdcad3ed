package entity

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

type EnemySpec struct {
	Position     cp.Vector
	Stats        room.EnemyStats
	SpawnerIndex int
	Radius       float64
	Boss         *room.BossStats
	Final        bool
	// WanderDelay is the initial wander timer.
	WanderDelay float64
}

func NewEnemy(w *ecs.World, spec EnemySpec) (ecs.Entity, error) {
	scale := 1.0
	if spec.Boss != nil && spec.Boss.Scale > 0 {
		scale = spec.Boss.Scale
	}
	radius := spec.Radius * scale
	stats := spec.Stats

	parts := []part{
		roomObject(),
		with(component.EnemyTagComponent, &component.EnemyTag{}),
		with(component.EnemyStatsComponent, &stats),
		with(component.EnemyHealthComponent, &component.EnemyHealth{Current: stats.Health, Max: stats.Health}),
		with(component.EnemyStateComponent, &component.EnemyState{Mode: component.EnemyWander}),
		with(component.WanderStateComponent, &component.WanderState{Timer: spec.WanderDelay}),
		with(component.SpawnerIndexComponent, &component.SpawnerIndex{Index: spec.SpawnerIndex}),
		with(component.TransformComponent, transformAt(spec.Position.X, spec.Position.Y)),
		with(component.CharacterControllerComponent, &component.CharacterController{Acceleration: 10, MaxSpeed: stats.Speed}),
		with(component.PhysicsBodyComponent, &component.PhysicsBody{Radius: radius, Mass: stats.Mass}),
		with(component.CollisionLayerComponent, ptr(component.EnemyLayer)),
		with(component.SpriteComponent, &component.Sprite{Texture: stats.Kind.String(), Color: stats.Color.Or(colornames.Crimson), Width: radius * 2, Height: radius * 2, Circle: true}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerActor}),
	}
	if stats.Kind == room.KindRanged {
		parts = append(parts, with(component.ProjectileLauncherComponent, &component.ProjectileLauncher{Delay: stats.Projectile.Delay}))
	}
	if spec.Boss != nil {
		parts = append(parts,
			with(component.BossTagComponent, &component.BossTag{}),
			with(component.BossComponent, &component.Boss{Stats: *spec.Boss}),
		)
		if spec.Final {
			parts = append(parts, with(component.FinalBossTagComponent, &component.FinalBossTag{}))
		}
	}
	return build(w, "enemy", parts...)
}
