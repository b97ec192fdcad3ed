package system

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/savedata"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

func newTestGame(t *testing.T) *state.Game {
	t.Helper()
	rooms, err := room.LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	g := state.New(content.DefaultConfig(), rooms, common.NewRand(7), &savedata.MemoryStore{})
	g.Health = state.Health{Current: g.MaxHealth(), Max: g.MaxHealth()}
	g.Phase = state.InGame
	return g
}

// enterRoom requests name and runs one transition.
func enterRoom(t *testing.T, g *state.Game, w *ecs.World, name string, from *room.Direction) *RoomTransitionSystem {
	t.Helper()
	if _, err := entity.NewRoomChangeRequest(w, name, from); err != nil {
		t.Fatalf("NewRoomChangeRequest: %v", err)
	}
	s := NewRoomTransitionSystem(g)
	s.Update(w)
	return s
}

func count(w *ecs.World, kind component.Identified) int {
	return len(w.Query(kind))
}

func mustPlayer(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e, ok := playerEntity(w)
	if !ok {
		t.Fatalf("expected a player entity")
	}
	return e
}

func testPlayer(t *testing.T, w *ecs.World, at cp.Vector) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, entity.PlayerSpec{Position: at, Radius: 16, Mass: 1, MaxSpeed: 150, Acceleration: 10})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return e
}

func testEnemy(t *testing.T, w *ecs.World, at cp.Vector, stats room.EnemyStats) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, entity.EnemySpec{Position: at, Stats: stats, Radius: 16, WanderDelay: 10})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	return e
}

func meleeStats() room.EnemyStats {
	return room.EnemyStats{
		Kind:        room.KindMelee,
		MeleeDamage: 5,
		Health:      20,
		Speed:       60,
		Mass:        2,
		AlertRadius: 75,
		ChaseRadius: 100,
	}
}

func dir(d room.Direction) *room.Direction {
	return &d
}
