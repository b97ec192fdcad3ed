package system

import (
	"math"
	"testing"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

func TestTurnToward(t *testing.T) {
	tests := []struct {
		name    string
		v, want cp.Vector
		max     float64
		expect  cp.Vector
	}{
		{"limited turn", cp.Vector{X: 2}, cp.Vector{Y: 1}, math.Pi / 4, cp.ForAngle(math.Pi / 4)},
		{"reaches target", cp.Vector{X: 1}, cp.Vector{X: 1, Y: 1}, math.Pi, cp.Vector{X: 1, Y: 1}.Normalize()},
		{"wraps the short way", cp.ForAngle(0.9 * math.Pi), cp.ForAngle(-0.9 * math.Pi), 0.1 * math.Pi, cp.ForAngle(math.Pi)},
		{"no target", cp.Vector{X: 3}, cp.Vector{}, 1, cp.Vector{X: 1}},
		{"no velocity", cp.Vector{}, cp.Vector{Y: -5}, 1, cp.Vector{Y: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := turnToward(tc.v, tc.want, tc.max)
			if got.Distance(tc.expect) > 1e-9 {
				t.Fatalf("expected %v, got %v", tc.expect, got)
			}
		})
	}
}

func rangedStats() room.EnemyStats {
	s := meleeStats()
	s.Kind = room.KindRanged
	s.DesiredDistance = 60
	s.Projectile = room.ProjectileStats{Damage: 6, Speed: 200, Lifetime: 10, Delay: 0.5}
	return s
}

func TestProjectileLaunchWhileChasing(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	testPlayer(t, w, cp.Vector{})
	e := testEnemy(t, w, cp.Vector{X: 50}, rangedStats())
	s := NewProjectileSystem(g)

	for i := 0; i < 40; i++ {
		s.Update(w)
	}
	if got := count(w, component.ProjectileComponent); got != 0 {
		t.Fatalf("expected no projectiles while wandering, got %d", got)
	}

	st, _ := ecs.Get(w, e, component.EnemyStateComponent)
	st.Mode = component.EnemyChase
	for i := 0; i < 40; i++ {
		s.Update(w)
	}
	projectiles := w.Query(component.ProjectileComponent)
	if len(projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(projectiles))
	}
	p, _ := ecs.Get(w, projectiles[0], component.ProjectileComponent)
	if ecs.Entity(p.Source) != e || p.Damage != 6 || p.Velocity.X >= 0 {
		t.Fatalf("unexpected projectile %+v", p)
	}
}

func TestProjectileExpires(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	e, err := entity.NewProjectile(w, cp.Vector{}, component.Projectile{Speed: 10, Lifetime: 0.1, Velocity: cp.Vector{X: 10}}, colornames.Orange)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}
	s := NewProjectileSystem(g)
	for i := 0; i < 10; i++ {
		s.Update(w)
	}
	if ecs.IsAlive(w, e) {
		t.Fatalf("expected projectile past its lifetime destroyed")
	}
}

func TestProjectileHits(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []state.DamageTarget
	}{
		{"wall", "wall", nil},
		{"player", "player", []state.DamageTarget{state.DamagePlayer}},
		{"enemy", "enemy", []state.DamageTarget{state.DamageEnemy}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			w := ecs.NewWorld()
			player := testPlayer(t, w, cp.Vector{})
			enemy := testEnemy(t, w, cp.Vector{X: 100}, rangedStats())
			proj, err := entity.NewProjectile(w, cp.Vector{X: 10}, component.Projectile{Source: uint64(enemy), Target: uint64(player), Damage: 6, Speed: 1, Lifetime: 5}, colornames.Orange)
			if err != nil {
				t.Fatalf("NewProjectile: %v", err)
			}

			var target ecs.Entity
			switch tc.target {
			case "player":
				target = player
			case "enemy":
				target = enemy
			}
			g.Events.ProjectileHits.Push(state.ProjectileHit{Projectile: proj, Target: target})
			g.Events.ProjectileHits.Push(state.ProjectileHit{Projectile: proj, Target: target})
			NewProjectileSystem(g).resolveHits(w)

			if ecs.IsAlive(w, proj) {
				t.Fatalf("expected projectile destroyed on hit")
			}
			damage := g.Events.Damage.Drain()
			if len(damage) != len(tc.want) {
				t.Fatalf("expected %d damage events, got %+v", len(tc.want), damage)
			}
			for i, d := range damage {
				if d.Target != tc.want[i] || d.Amount != 6 {
					t.Fatalf("unexpected damage %+v", d)
				}
			}
		})
	}
}

func TestProjectileMirrorReflects(t *testing.T) {
	g := newTestGame(t)
	g.Skills = skills.Restore(map[skills.Skill]uint64{skills.Mirror: 1000}, nil, map[skills.Skill]bool{skills.Mirror: true})
	w := ecs.NewWorld()
	player := testPlayer(t, w, cp.Vector{})
	enemy := testEnemy(t, w, cp.Vector{X: 100}, rangedStats())

	const hits = 100
	for i := 0; i < hits; i++ {
		proj, err := entity.NewProjectile(w, cp.Vector{X: 10}, component.Projectile{Source: uint64(enemy), Target: uint64(player), Damage: 6, Speed: 200, Lifetime: 5}, colornames.Orange)
		if err != nil {
			t.Fatalf("NewProjectile: %v", err)
		}
		g.Events.ProjectileHits.Push(state.ProjectileHit{Projectile: proj, Target: player})
	}
	NewProjectileSystem(g).resolveHits(w)

	reflected := w.Query(component.ProjectileComponent)
	damaged := g.Events.Damage.Len()
	if len(reflected) == 0 || damaged == 0 || len(reflected)+damaged != hits {
		t.Fatalf("expected hits split between reflections and damage, got %d and %d", len(reflected), damaged)
	}
	p, _ := ecs.Get(w, reflected[0], component.ProjectileComponent)
	if !p.Reflected || ecs.Entity(p.Target) != enemy || p.Velocity.X <= 0 {
		t.Fatalf("expected reflection aimed back at the source, got %+v", p)
	}
	layer, _ := ecs.Get(w, reflected[0], component.CollisionLayerComponent)
	if *layer != component.ReflectedProjectileLayer {
		t.Fatalf("expected reflected projectile layer")
	}
	if got := g.Events.Notices.Len(); got != len(reflected) {
		t.Fatalf("expected %d reflect notices, got %d", len(reflected), got)
	}
}
