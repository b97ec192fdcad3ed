package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

// CombatSystem resolves player/enemy contacts into knockback and damage.
type CombatSystem struct {
	game *state.Game
}

func NewCombatSystem(g *state.Game) *CombatSystem { return &CombatSystem{game: g} }

func (s *CombatSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g := s.game
	contacts := g.Events.Contacts.Drain()
	if !g.Phase.Simulating() {
		return
	}

	for _, c := range contacts {
		playerPos, ok := position(w, c.Player)
		if !ok {
			log.Printf("[combat] warning: contact with missing player %s", c.Player)
			continue
		}
		enemyPos, ok := position(w, c.Enemy)
		if !ok {
			log.Printf("[combat] warning: contact with missing enemy %s", c.Enemy)
			continue
		}
		stats, ok := ecs.Get(w, c.Enemy, component.EnemyStatsComponent)
		if !ok {
			continue
		}

		dir := common.Direction(enemyPos, playerPos)
		playerMass := float64(g.Skills.Mass())
		enemyMass := stats.Mass
		if enemyMass <= 0 {
			enemyMass = 1
		}
		knock := g.Config.Knockback
		addImpulse(w, c.Player, dir.Mult(knock*enemyMass/playerMass))
		addImpulse(w, c.Enemy, dir.Mult(-knock*playerMass/enemyMass))

		g.Events.Damage.Push(state.DamageEvent{Target: state.DamagePlayer, Entity: c.Player, Amount: stats.MeleeDamage, Blockable: true})
		g.Events.Damage.Push(state.DamageEvent{Target: state.DamageEnemy, Entity: c.Enemy, Amount: float64(g.Skills.AttackDamage())})
		g.Events.XP.Push(state.XPEvent{Kind: state.XPMeleeAttack, Amount: 1})
		g.Events.Sounds.Push(state.SoundMeleeHit)
		g.Events.XP.Push(state.XPEvent{Kind: state.XPMeleeCollision, Amount: 1})
	}
}

// addImpulse accumulates onto any impulse not yet applied this tick.
func addImpulse(w *ecs.World, e ecs.Entity, v cp.Vector) {
	if imp, ok := ecs.Get(w, e, component.ImpulseComponent); ok {
		imp.X += v.X
		imp.Y += v.Y
		return
	}
	if err := ecs.Add(w, e, component.ImpulseComponent, &component.Impulse{X: v.X, Y: v.Y}); err != nil {
		log.Printf("[combat] warning: impulse on %s: %v", e, err)
	}
}
