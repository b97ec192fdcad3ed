package system

import (
	"image/color"
	"log"
	"math"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// ProjectileSystem launches enemy projectiles, steers and expires them, and
// resolves their hits including mirror reflections.
type ProjectileSystem struct {
	game *state.Game
}

func NewProjectileSystem(g *state.Game) *ProjectileSystem {
	return &ProjectileSystem{game: g}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil || !s.game.Phase.Simulating() {
		return
	}
	s.launch(w)
	s.steer(w)
	s.resolveHits(w)
}

func (s *ProjectileSystem) launch(w *ecs.World) {
	player, hasPlayer := playerEntity(w)
	playerPos, _ := position(w, player)

	ecs.ForEach4(w, component.ProjectileLauncherComponent, component.EnemyStateComponent, component.EnemyStatsComponent, component.TransformComponent,
		func(e ecs.Entity, launcher *component.ProjectileLauncher, st *component.EnemyState, stats *room.EnemyStats, t *component.Transform) {
			if st.Mode != component.EnemyChase || !hasPlayer {
				launcher.Timer = 0
				return
			}
			launcher.Timer += s.game.Dt
			if launcher.Timer < launcher.Delay {
				return
			}
			launcher.Timer = 0

			from := t.Position()
			ps := stats.Projectile
			p := component.Projectile{
				Source:   uint64(e),
				Target:   uint64(player),
				Speed:    ps.Speed,
				Damage:   ps.Damage,
				Lifetime: ps.Lifetime,
				Homing:   ps.Homing,
				Velocity: common.Direction(from, playerPos).Mult(ps.Speed),
			}
			if _, err := entity.NewProjectile(w, from, p, s.tint()); err != nil {
				log.Printf("[projectile] warning: launch: %v", err)
			}
		})
}

func (s *ProjectileSystem) tint() color.Color {
	if s.game.Current == nil {
		return colornames.Orange
	}
	return s.game.Current.Assets.Projectile.Tint.Or(colornames.Orange)
}

// steer ages projectiles, turns homing ones toward their target and writes
// their velocity to the body.
func (s *ProjectileSystem) steer(w *ecs.World) {
	dt := s.game.Dt
	ecs.ForEach3(w, component.ProjectileComponent, component.TransformComponent, component.PhysicsBodyComponent,
		func(e ecs.Entity, p *component.Projectile, t *component.Transform, bodyComp *component.PhysicsBody) {
			p.Age += dt
			if p.Age >= p.Lifetime {
				ecs.DestroyEntity(w, e)
				return
			}

			if p.Homing > 0 {
				if targetPos, ok := position(w, ecs.Entity(p.Target)); ok {
					p.Velocity = turnToward(p.Velocity, targetPos.Sub(t.Position()), p.Homing*dt).Mult(p.Speed)
				}
			}
			if bodyComp.Body != nil {
				bodyComp.Body.SetVelocityVector(p.Velocity)
			}
		})
}

// turnToward rotates the direction of v toward want by at most maxAngle
// radians and returns a unit vector.
func turnToward(v, want cp.Vector, maxAngle float64) cp.Vector {
	if want.LengthSq() == 0 {
		return v.Normalize()
	}
	if v.LengthSq() == 0 {
		return want.Normalize()
	}
	cur := v.ToAngle()
	delta := want.ToAngle() - cur
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	delta = common.Clamp(delta, -maxAngle, maxAngle)
	return cp.ForAngle(cur + delta)
}

func (s *ProjectileSystem) resolveHits(w *ecs.World) {
	g := s.game
	for _, hit := range g.Events.ProjectileHits.Drain() {
		p, ok := ecs.Get(w, hit.Projectile, component.ProjectileComponent)
		if !ok {
			// Already consumed by an earlier hit this tick.
			continue
		}
		proj := *p
		from, _ := position(w, hit.Projectile)
		ecs.DestroyEntity(w, hit.Projectile)

		if hit.Target != 0 {
			g.Events.Sounds.Push(state.SoundProjectileHit)
		}
		switch {
		case hit.Target == 0:
		case ecs.Has(w, hit.Target, component.PlayerTagComponent):
			if g.Rand.Chance(float64(g.Skills.ReflectChance())) {
				s.reflect(w, hit.Target, proj)
				continue
			}
			g.Events.Damage.Push(state.DamageEvent{Target: state.DamagePlayer, Entity: hit.Target, Amount: proj.Damage, Blockable: true})
		case ecs.Has(w, hit.Target, component.EnemyTagComponent):
			g.Events.Damage.Push(state.DamageEvent{Target: state.DamageEnemy, Entity: hit.Target, Amount: proj.Damage})
		default:
			log.Printf("[projectile] warning: hit at %v on unknown target %s", from, hit.Target)
		}
	}
}

// reflect fires a player-owned copy back at the projectile's source.
func (s *ProjectileSystem) reflect(w *ecs.World, player ecs.Entity, proj component.Projectile) {
	g := s.game
	playerPos, _ := position(w, player)

	var dir cp.Vector
	if sourcePos, ok := position(w, ecs.Entity(proj.Source)); ok {
		dir = common.Direction(playerPos, sourcePos)
	}
	if dir.LengthSq() == 0 {
		dir = g.Rand.UnitVector()
	}

	reflected := component.Projectile{
		Source:    proj.Target,
		Target:    proj.Source,
		Speed:     proj.Speed,
		Damage:    float64(g.Skills.AttackDamage()),
		Lifetime:  proj.Lifetime,
		Homing:    proj.Homing,
		Velocity:  dir.Mult(proj.Speed),
		Reflected: true,
	}
	if _, err := entity.NewProjectile(w, playerPos, reflected, colornames.Lightskyblue); err != nil {
		log.Printf("[projectile] warning: reflect: %v", err)
		return
	}
	g.Events.XP.Push(state.XPEvent{Kind: state.XPReflected, Amount: 1})
	g.Events.Notices.Push(state.Notice{Kind: state.NoticeReflected})
}
