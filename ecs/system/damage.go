package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
	"golang.org/x/image/colornames"
)

const (
	hitFlashFrames   = 12
	hitFlashInterval = 3
	hitShakeFrames   = 10
	hitShakeStrength = 4.0
)

// DamageSystem applies queued damage to the player and enemies. Player hits
// can be blocked by the shield; enemies reaching zero health are reported
// once as deaths.
type DamageSystem struct {
	game *state.Game
}

func NewDamageSystem(g *state.Game) *DamageSystem {
	return &DamageSystem{game: g}
}

func (s *DamageSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	events := s.game.Events.Damage.Drain()
	if !s.game.Phase.Simulating() {
		return
	}
	for _, ev := range events {
		switch ev.Target {
		case state.DamagePlayer:
			s.damagePlayer(w, ev)
		case state.DamageEnemy:
			s.damageEnemy(w, ev)
		}
	}
}

func (s *DamageSystem) damagePlayer(w *ecs.World, ev state.DamageEvent) {
	g := s.game
	if g.Dead {
		return
	}
	if ev.Blockable && g.Rand.Chance(float64(g.Skills.BlockChance())) {
		g.Events.XP.Push(state.XPEvent{Kind: state.XPBlocked, Amount: ev.Amount})
		g.Events.Notices.Push(state.Notice{Kind: state.NoticeBlocked, Amount: ev.Amount})
		return
	}

	taken := ev.Amount * float64(g.Skills.DamageTakenFraction())
	g.Health.Current -= taken
	g.Events.XP.Push(state.XPEvent{Kind: state.XPPlayerDamaged, Amount: taken})
	flash(w, ev.Entity)
	if cam, ok := w.First(component.CameraComponent); ok {
		_ = ecs.Add(w, cam, component.CameraShakeRequestComponent, &component.CameraShakeRequest{Frames: hitShakeFrames, Intensity: hitShakeStrength})
	}

	if g.Health.Current > 0 {
		return
	}
	g.Health.Current = 0
	g.Dead = true
	g.DeathTimer = g.Config.DeathDelay
	g.Events.Sounds.Push(state.SoundDeath)
	log.Printf("[player] died in %s", g.CurrentRoomName())

	if pos, ok := position(w, ev.Entity); ok {
		if _, err := entity.NewCorpse(w, pos, g.Config.Player.Radius, g.Config.Player.Color.Or(colornames.Cornflowerblue)); err != nil {
			log.Printf("[player] warning: corpse: %v", err)
		}
	}
	ecs.DestroyEntity(w, ev.Entity)
}

func (s *DamageSystem) damageEnemy(w *ecs.World, ev state.DamageEvent) {
	health, ok := ecs.Get(w, ev.Entity, component.EnemyHealthComponent)
	if !ok {
		log.Printf("[combat] warning: damage for missing enemy %s", ev.Entity)
		return
	}
	wasAlive := health.Current > 0
	health.Current -= ev.Amount
	flash(w, ev.Entity)
	if !wasAlive || health.Current > 0 {
		return
	}

	death := state.EnemyDeathEvent{
		Enemy: ev.Entity,
		Boss:  ecs.Has(w, ev.Entity, component.BossTagComponent),
		Final: ecs.Has(w, ev.Entity, component.FinalBossTagComponent),
	}
	if idx, ok := ecs.Get(w, ev.Entity, component.SpawnerIndexComponent); ok {
		death.SpawnerIndex = idx.Index
	}
	s.game.Events.Deaths.Push(death)
	s.game.Events.Sounds.Push(state.SoundDeath)
}

func flash(w *ecs.World, e ecs.Entity) {
	_ = ecs.Add(w, e, component.WhiteFlashComponent, &component.WhiteFlash{Frames: hitFlashFrames, Interval: hitFlashInterval})
}
