package system

import (
	"math"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

// EnemyAISystem switches enemies between Wander and Chase and steers them.
type EnemyAISystem struct {
	game *state.Game
}

func NewEnemyAISystem(g *state.Game) *EnemyAISystem {
	return &EnemyAISystem{game: g}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.game.Phase.Simulating() {
		return
	}

	playerPos, hasPlayer := playerPosition(w)
	if hasPlayer {
		s.alert(w, playerPos)
	}

	ecs.ForEach4(w, component.EnemyStateComponent, component.EnemyStatsComponent, component.TransformComponent, component.CharacterControllerComponent,
		func(e ecs.Entity, st *component.EnemyState, stats *room.EnemyStats, t *component.Transform, ctrl *component.CharacterController) {
			pos := t.Position()
			switch st.Mode {
			case component.EnemyWander:
				wander, ok := ecs.Get(w, e, component.WanderStateComponent)
				if !ok {
					ctrl.Direction = cp.Vector{}
					return
				}
				ctrl.Direction = s.wander(pos, wander)
			case component.EnemyChase:
				if !hasPlayer {
					ctrl.Direction = cp.Vector{}
					return
				}
				ctrl.Direction = s.chase(pos, playerPos, stats.EffectiveDesiredDistance())
			}
		})
}

// alert applies the Wander/Chase hysteresis: an enemy starts chasing inside
// its alert radius and gives up only beyond its chase radius.
func (s *EnemyAISystem) alert(w *ecs.World, playerPos cp.Vector) {
	ecs.ForEach3(w, component.EnemyStateComponent, component.EnemyStatsComponent, component.TransformComponent,
		func(e ecs.Entity, st *component.EnemyState, stats *room.EnemyStats, t *component.Transform) {
			dist2 := playerPos.DistanceSq(t.Position())
			switch {
			case st.Mode == component.EnemyWander && dist2 <= stats.AlertRadius*stats.AlertRadius:
				st.Mode = component.EnemyChase
				s.game.Events.Alerts.Push(state.EnemyAlertEvent{Enemy: e, Kind: state.Alerted})
			case st.Mode == component.EnemyChase && dist2 > stats.ChaseRadius*stats.ChaseRadius:
				st.Mode = component.EnemyWander
				s.game.Events.Alerts.Push(state.EnemyAlertEvent{Enemy: e, Kind: state.TooFar})
			}
		})
}

func (s *EnemyAISystem) wander(pos cp.Vector, wander *component.WanderState) cp.Vector {
	cfg := s.game.Config.Wander
	wander.Timer -= s.game.Dt
	if wander.Timer <= 0 {
		wander.Target = s.game.Rand.InCircle(pos, cfg.Radius)
		wander.HasTarget = true
		wander.Timer = s.game.Rand.Range(cfg.MinDelay, cfg.MaxDelay)
	}
	if !wander.HasTarget || wander.Target.Distance(pos) < cfg.CloseEnough {
		return cp.Vector{}
	}
	return wander.Target.Sub(pos).Clamp(1).Mult(0.5)
}

// chase moves toward the player when farther than desired and away when
// closer, holding still inside the close-enough band.
func (s *EnemyAISystem) chase(pos, playerPos cp.Vector, desired float64) cp.Vector {
	actual := playerPos.Distance(pos)
	if math.Abs(actual-desired) < s.game.Config.Wander.CloseEnough {
		return cp.Vector{}
	}
	sign := 1.0
	if actual < desired {
		sign = -1
	}
	return playerPos.Sub(pos).Clamp(1).Mult(sign)
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent)
}

func playerPosition(w *ecs.World) (cp.Vector, bool) {
	e, ok := playerEntity(w)
	if !ok {
		return cp.Vector{}, false
	}
	return position(w, e)
}

func position(w *ecs.World, e ecs.Entity) (cp.Vector, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return cp.Vector{}, false
	}
	return t.Position(), true
}
