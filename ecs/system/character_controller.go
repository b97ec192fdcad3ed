package system

import (
	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/state"
)

// CharacterControllerSystem eases every controlled body's velocity toward
// Direction * MaxSpeed. Knockback applied on top of it decays the same way.
type CharacterControllerSystem struct {
	game *state.Game
}

func NewCharacterControllerSystem(g *state.Game) *CharacterControllerSystem {
	return &CharacterControllerSystem{game: g}
}

func (s *CharacterControllerSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.game.Phase.Simulating() {
		return
	}

	ecs.ForEach2(w, component.CharacterControllerComponent, component.PhysicsBodyComponent, func(e ecs.Entity, ctrl *component.CharacterController, bodyComp *component.PhysicsBody) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		target := ctrl.Direction.Clamp(1).Mult(ctrl.MaxSpeed)
		t := common.Clamp(ctrl.Acceleration*s.game.Dt, 0, 1)
		bodyComp.Body.SetVelocityVector(bodyComp.Body.Velocity().Lerp(target, t))
	})
}
