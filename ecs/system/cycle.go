package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
)

// CycleSystem runs the player death timer and the RestartCycle and Outro
// phases.
type CycleSystem struct {
	game *state.Game
}

func NewCycleSystem(g *state.Game) *CycleSystem {
	return &CycleSystem{game: g}
}

func (s *CycleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g := s.game

	switch g.Phase {
	case state.InGame:
		if !g.Dead {
			return
		}
		g.DeathTimer -= g.Dt
		if g.DeathTimer <= 0 {
			g.SetPhase(state.RestartCycle)
		}
	case state.RestartCycle:
		s.restart(w)
	case state.Outro:
		s.outro(w)
	}
}

// resetCycle folds the cycle's progress into stored values and forgets every
// room layout.
func (s *CycleSystem) resetCycle() {
	g := s.game
	g.Skills.EndCycle()
	g.Cache.Reset()
	g.Dead = false
	g.DeathTimer = 0
	g.HealTimer = 0
	g.SpeedTimer = 0
}

func (s *CycleSystem) restart(w *ecs.World) {
	g := s.game
	s.resetCycle()
	g.Won = false
	g.Health = state.Health{Current: g.MaxHealth(), Max: g.MaxHealth()}
	g.Cycles++
	g.Persist()
	g.Skills.UnlockSkill(skills.Armor)
	log.Printf("[cycle] starting cycle %d", g.Cycles)

	if _, err := entity.NewRoomChangeRequest(w, g.Config.StartRoom, nil); err != nil {
		panic("cycle system: request start room: " + err.Error())
	}
	g.SetPhase(state.RoomTransition)
}

func (s *CycleSystem) outro(w *ecs.World) {
	g := s.game
	s.resetCycle()
	g.Won = true
	g.Persist()
	log.Printf("[cycle] final boss defeated after %d cycles", g.Cycles)

	for _, e := range ecs.Entities(w) {
		ecs.DestroyEntity(w, e)
	}
	g.Current = nil
	g.Events.Clear()
	g.SetPhase(state.MainMenu)
}
