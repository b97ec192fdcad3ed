package entity

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/jakecoffman/cp"
)

func TestWallRectsSurroundRoom(t *testing.T) {
	rect := room.Rect{X: -400, Y: -300, W: 800, H: 600}
	tests := []struct {
		dir  room.Direction
		want room.Rect
	}{
		{room.North, room.Rect{X: -500, Y: -400, W: 1000, H: 100}},
		{room.South, room.Rect{X: -500, Y: 300, W: 1000, H: 100}},
		{room.East, room.Rect{X: 400, Y: -300, W: 100, H: 600}},
		{room.West, room.Rect{X: -500, Y: -300, W: 100, H: 600}},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := WallRect(rect, tc.dir, 100); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestNewEnemyBoss(t *testing.T) {
	w := ecs.NewWorld()
	stats := room.EnemyStats{Kind: room.KindRanged, Health: 50, Mass: 2, Projectile: room.ProjectileStats{Delay: 1.5}}
	boss := &room.BossStats{Name: "The Wizard", Scale: 2, Stats: stats}

	e, err := NewEnemy(w, EnemySpec{Position: cp.Vector{X: 10}, Stats: stats, SpawnerIndex: 3, Radius: 16, Boss: boss, Final: true})
	if err != nil {
		t.Fatalf("NewEnemy: %v", err)
	}
	for name, ok := range map[string]bool{
		"room object": ecs.Has(w, e, component.RoomObjectComponent),
		"boss tag":    ecs.Has(w, e, component.BossTagComponent),
		"final boss":  ecs.Has(w, e, component.FinalBossTagComponent),
		"launcher":    ecs.Has(w, e, component.ProjectileLauncherComponent),
	} {
		if !ok {
			t.Fatalf("expected %s on boss", name)
		}
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if body.Radius != 32 {
		t.Fatalf("expected scaled radius 32, got %v", body.Radius)
	}
	idx, _ := ecs.Get(w, e, component.SpawnerIndexComponent)
	if idx.Index != 3 {
		t.Fatalf("expected spawner index 3, got %d", idx.Index)
	}
	health, _ := ecs.Get(w, e, component.EnemyHealthComponent)
	if health.Current != 50 {
		t.Fatalf("expected health 50, got %v", health.Current)
	}
}

func TestRoomChangeRequest(t *testing.T) {
	w := ecs.NewWorld()
	south := room.South
	e, err := NewRoomChangeRequest(w, "Dark Forest", &south)
	if err != nil {
		t.Fatal(err)
	}
	req, ok := ecs.Get(w, e, component.RoomChangeRequestComponent)
	if !ok || req.Target != "Dark Forest" || !req.HasComingFrom || req.ComingFrom != room.South {
		t.Fatalf("unexpected request %+v", req)
	}
	if ecs.Has(w, e, component.RoomObjectComponent) {
		t.Fatalf("requests must survive room teardown")
	}
}
