package system

import (
	"fmt"
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

type TransitionPhase int

const (
	TransitionIdle TransitionPhase = iota
	TransitionRequested
	TransitionResolving
	TransitionDespawning
	TransitionSpawning
	TransitionDone
)

func (p TransitionPhase) String() string {
	switch p {
	case TransitionRequested:
		return "requested"
	case TransitionResolving:
		return "resolving"
	case TransitionDespawning:
		return "despawning"
	case TransitionSpawning:
		return "spawning"
	case TransitionDone:
		return "done"
	}
	return "idle"
}

// RoomTransitionSystem consumes RoomChangeRequest entities. A transition runs
// every phase within one Update: the old room is fully despawned before the
// new one is spawned.
type RoomTransitionSystem struct {
	game  *state.Game
	phase TransitionPhase

	req     component.RoomChangeRequest
	next    room.Current
	spawnAt cp.Vector
}

func NewRoomTransitionSystem(g *state.Game) *RoomTransitionSystem {
	return &RoomTransitionSystem{game: g}
}

// Phase is the phase the last Update finished in.
func (s *RoomTransitionSystem) Phase() TransitionPhase {
	if s == nil {
		return TransitionIdle
	}
	return s.phase
}

func (s *RoomTransitionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.phase = TransitionIdle
	for s.Step(w) {
	}
}

// Step advances one phase and reports whether there is more to do this tick.
func (s *RoomTransitionSystem) Step(w *ecs.World) bool {
	g := s.game
	switch s.phase {
	case TransitionIdle:
		req, ok := s.takeRequest(w)
		if !ok {
			return false
		}
		s.req = req
		s.phase = TransitionRequested
		g.SetPhase(state.RoomTransition)
	case TransitionRequested:
		s.phase = TransitionResolving
	case TransitionResolving:
		s.resolve()
		s.phase = TransitionDespawning
	case TransitionDespawning:
		s.despawn(w)
		s.phase = TransitionSpawning
	case TransitionSpawning:
		s.spawn(w)
		s.phase = TransitionDone
	case TransitionDone:
		g.SetPhase(state.InGame)
		return false
	}
	return true
}

// takeRequest returns the first pending request and destroys every request.
func (s *RoomTransitionSystem) takeRequest(w *ecs.World) (component.RoomChangeRequest, bool) {
	var first component.RoomChangeRequest
	found := false
	for _, e := range w.Query(component.RoomChangeRequestComponent) {
		req, ok := ecs.Get(w, e, component.RoomChangeRequestComponent)
		if ok && !found {
			first = *req
			found = true
		} else if ok {
			log.Printf("[room] warning: dropping extra request for %s", req.Target)
		}
		ecs.DestroyEntity(w, e)
	}
	return first, found
}

func (s *RoomTransitionSystem) resolve() {
	g := s.game
	cur, err := g.Rooms.Resolve(s.req.Target)
	if err != nil {
		panic("room transition system: " + err.Error())
	}
	s.next = cur
	s.spawnAt = EntryPoint(cur.Info.Rect, s.req.ComingFrom, s.req.HasComingFrom, g.Config.EntryMargin)
}

// EntryPoint is where the player appears in rect: the center, or when
// entering through a wall, pulled toward that wall to margin units from it.
func EntryPoint(rect room.Rect, comingFrom room.Direction, hasComingFrom bool, margin float64) cp.Vector {
	center := rect.Center()
	if !hasComingFrom {
		return center
	}
	half := rect.HalfSize()
	dir := comingFrom.Vector()
	return center.Add(cp.Vector{X: dir.X * (half.X - margin), Y: dir.Y * (half.Y - margin)})
}

func (s *RoomTransitionSystem) despawn(w *ecs.World) {
	for _, e := range w.Query(component.RoomObjectComponent) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.PlayerTagComponent) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.CameraTagComponent) {
		ecs.DestroyEntity(w, e)
	}

	ev := &s.game.Events
	ev.WallHits.Clear()
	ev.Contacts.Clear()
	ev.ProjectileHits.Clear()
	ev.Damage.Clear()
	ev.Alerts.Clear()
}

func (s *RoomTransitionSystem) spawn(w *ecs.World) {
	g := s.game
	cfg := g.Config
	cur := s.next
	info := cur.Info

	g.Health.Max = g.MaxHealth()
	if g.Health.Current > g.Health.Max {
		g.Health.Current = g.Health.Max
	}

	must(entity.NewPlayer(w, entity.PlayerSpec{
		Position:     s.spawnAt,
		Radius:       cfg.Player.Radius,
		Mass:         float64(g.Skills.Mass()),
		MaxSpeed:     cfg.Player.BaseSpeed * float64(g.Skills.SpeedMultiplier()),
		Acceleration: cfg.Player.Acceleration,
		Color:        cfg.Player.Color.Or(colornames.Cornflowerblue),
	}))
	must(entity.NewCamera(w, s.spawnAt))

	must(entity.NewFloor(w, info.Rect, cur.Assets.Floor))
	for _, d := range room.Directions() {
		must(entity.NewWall(w, info.Rect, d, cfg.WallThickness))
	}

	layout, created := g.Cache.GetOrCreate(info.Name, func() room.State {
		return room.Generate(info, cfg.InteriorMargin, g.Rand)
	})
	for _, at := range layout.Obstacles {
		must(entity.NewObstacle(w, at, cfg.ObstacleRadius, cur.Assets.Obstacle))
	}
	enemies := 0
	for i, sp := range layout.Spawners {
		must(entity.NewSpawner(w, i, sp))
		if !sp.Active {
			continue
		}
		must(entity.NewEnemy(w, s.enemySpec(cur, i, sp)))
		enemies++
	}

	g.Current = &cur
	log.Printf("[room] entered %s (fresh=%v, enemies=%d/%d)", info.Name, created, enemies, len(layout.Spawners))
}

func (s *RoomTransitionSystem) enemySpec(cur room.Current, index int, sp room.SpawnerState) entity.EnemySpec {
	g := s.game
	spec := entity.EnemySpec{
		Position:     sp.Position,
		SpawnerIndex: index,
		Radius:       g.Config.EnemyRadius,
		WanderDelay:  g.Rand.Range(g.Config.Wander.MinDelay, g.Config.Wander.MaxDelay),
	}
	switch sp.Type {
	case room.SpawnerMelee:
		spec.Stats = cur.MeleeStats
	case room.SpawnerRanged:
		spec.Stats = cur.RangedStats
	case room.SpawnerBoss:
		if cur.BossStats == nil {
			panic(fmt.Sprintf("room transition system: %s has a boss spawner but no boss stats", cur.Info.Name))
		}
		boss := *cur.BossStats
		spec.Stats = boss.Stats
		spec.Boss = &boss
		spec.Final = boss.Name == g.Config.FinalBoss
	}
	return spec
}

func must(_ ecs.Entity, err error) {
	if err != nil {
		panic("room transition system: spawn: " + err.Error())
	}
}
