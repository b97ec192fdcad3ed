package system

import (
	"image/color"
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
	"golang.org/x/image/colornames"
)

// EnemyDeathSystem records deaths in the room cache, replaces the enemy with
// a corpse and handles boss rewards.
type EnemyDeathSystem struct {
	game *state.Game
}

func NewEnemyDeathSystem(g *state.Game) *EnemyDeathSystem {
	return &EnemyDeathSystem{game: g}
}

func (s *EnemyDeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g := s.game
	for _, ev := range g.Events.Deaths.Drain() {
		if err := g.Cache.MarkSpawnerInactive(g.CurrentRoomName(), ev.SpawnerIndex); err != nil {
			log.Printf("[enemy] warning: %v", err)
		}

		if pos, ok := position(w, ev.Enemy); ok {
			radius := g.Config.EnemyRadius
			if body, ok := ecs.Get(w, ev.Enemy, component.PhysicsBodyComponent); ok && body.Radius > 0 {
				radius = body.Radius
			}
			var tint color.Color = colornames.Darkred
			if sprite, ok := ecs.Get(w, ev.Enemy, component.SpriteComponent); ok && sprite.Color != nil {
				tint = sprite.Color
			}
			if _, err := entity.NewCorpse(w, pos, radius, tint); err != nil {
				log.Printf("[enemy] warning: corpse: %v", err)
			}
		}

		if ev.Boss {
			s.bossDefeated(w, ev)
		}
		ecs.DestroyEntity(w, ev.Enemy)
	}
}

func (s *EnemyDeathSystem) bossDefeated(w *ecs.World, ev state.EnemyDeathEvent) {
	g := s.game
	boss, ok := ecs.Get(w, ev.Enemy, component.BossComponent)
	if !ok {
		return
	}
	log.Printf("[enemy] boss %s defeated", boss.Stats.Name)
	if boss.Stats.SkillUnlocked != nil {
		g.Events.Unlocks.Push(*boss.Stats.SkillUnlocked)
	}
	if ev.Final || boss.Stats.Name == g.Config.FinalBoss {
		g.SetPhase(state.Outro)
	}
}
