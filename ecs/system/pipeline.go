package system

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/WaterFace/wizards-spiral/text"
)

// Pipeline is the fixed per-tick system order: input and steering, physics,
// collision consumers, damage and deaths, skills, cycle and room changes,
// then presentation and sound.
type Pipeline struct {
	*ecs.Scheduler

	Physics    *PhysicsSystem
	Skills     *SkillSystem
	Transition *RoomTransitionSystem
	Camera     *CameraSystem
	Render     *RenderSystem
	HUD        *HUDSystem
	Audio      *AudioSystem
}

// NewPipeline builds the gameplay systems. The input system is optional so
// tests can drive Input components directly.
func NewPipeline(g *state.Game, catalog *text.Catalog, withInput bool) *Pipeline {
	p := &Pipeline{
		Physics:    NewPhysicsSystem(g),
		Skills:     NewSkillSystem(g),
		Transition: NewRoomTransitionSystem(g),
		Camera:     NewCameraSystem(g),
		Audio:      NewAudioSystem(g),
	}
	p.Render = NewRenderSystem(p.Camera)
	p.HUD = NewHUDSystem(g, catalog)

	p.Scheduler = ecs.NewScheduler()
	if withInput {
		p.Add(NewInputSystem())
	}
	p.Add(NewPlayerControllerSystem(g))
	p.Add(NewEnemyAISystem(g))
	p.Add(NewCharacterControllerSystem(g))
	p.Add(p.Physics)
	p.Add(NewWallExitSystem(g))
	p.Add(NewCombatSystem(g))
	p.Add(NewProjectileSystem(g))
	p.Add(NewDamageSystem(g))
	p.Add(NewEnemyDeathSystem(g))
	p.Add(p.Skills)
	p.Add(NewCycleSystem(g))
	p.Add(p.Transition)
	p.Add(p.Camera)
	p.Add(NewWhiteFlashSystem())
	p.Add(NewTTLSystem())
	p.Add(NewNoticeSystem(g, catalog))
	p.Add(p.Audio)
	return p
}
