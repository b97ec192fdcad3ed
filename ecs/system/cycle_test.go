package system

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/savedata"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
)

func TestCycleRestart(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	enterRoom(t, g, w, "Dark Forest", nil)

	g.Skills.UnlockSkill(skills.Sword)
	if err := g.Skills.AddXP(skills.Sword, 3); err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	level := g.Skills.Get(skills.Sword)
	g.Dead = true
	g.Health.Current = 0
	g.SetPhase(state.RestartCycle)

	NewCycleSystem(g).Update(w)

	if g.Phase != state.RoomTransition {
		t.Fatalf("expected RoomTransition, got %s", g.Phase)
	}
	if g.Cycles != 1 {
		t.Fatalf("expected cycle 1, got %d", g.Cycles)
	}
	if g.Dead || g.Health.Current != g.MaxHealth() {
		t.Fatalf("expected revived player at full health, got dead=%v health=%v", g.Dead, g.Health.Current)
	}
	if g.Cache.Len() != 0 {
		t.Fatalf("expected room cache cleared, got %d rooms", g.Cache.Len())
	}
	if g.Skills.GetHighest(skills.Sword) != level {
		t.Fatalf("expected sword level %d folded into stored, got %d", level, g.Skills.GetHighest(skills.Sword))
	}
	if !g.Skills.GetUnlocked(skills.Armor) {
		t.Fatalf("expected armor unlocked")
	}

	reqs := w.Query(component.RoomChangeRequestComponent)
	if len(reqs) != 1 {
		t.Fatalf("expected one room change request, got %d", len(reqs))
	}
	req, _ := ecs.Get(w, reqs[0], component.RoomChangeRequestComponent)
	if req.Target != g.Config.StartRoom || req.HasComingFrom {
		t.Fatalf("expected request for %s at center, got %+v", g.Config.StartRoom, req)
	}

	saved, found, err := savedata.Load(g.Store)
	if err != nil || !found {
		t.Fatalf("expected save written, found=%v err=%v", found, err)
	}
	if saved.Cycles != 1 {
		t.Fatalf("expected saved cycle 1, got %d", saved.Cycles)
	}

	NewRoomTransitionSystem(g).Update(w)
	if g.Phase != state.InGame || g.CurrentRoomName() != g.Config.StartRoom {
		t.Fatalf("expected InGame in %s, got %s in %q", g.Config.StartRoom, g.Phase, g.CurrentRoomName())
	}
}

func TestBossDefeatUnlocksSkill(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	enterRoom(t, g, w, "Goblin Camp", nil)

	boss, ok := w.First(component.BossTagComponent)
	if !ok {
		t.Fatalf("expected a boss in Goblin Camp")
	}
	g.Events.Damage.Push(state.DamageEvent{Target: state.DamageEnemy, Entity: boss, Amount: 1e6})
	NewDamageSystem(g).Update(w)
	NewEnemyDeathSystem(g).Update(w)
	NewSkillSystem(g).Update(w)

	if !g.Skills.GetUnlocked(skills.Sword) {
		t.Fatalf("expected sword unlocked by the Goblin King")
	}
	notices := g.Events.Notices.Drain()
	if len(notices) != 1 || notices[0].Kind != state.NoticeUnlocked || notices[0].Skill != skills.Sword {
		t.Fatalf("unexpected notices %+v", notices)
	}
	if g.Phase != state.InGame {
		t.Fatalf("expected play to continue, got %s", g.Phase)
	}
}

func TestFinalBossEndsGame(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	enterRoom(t, g, w, "Wizard's Tower", nil)

	boss, ok := w.First(component.FinalBossTagComponent)
	if !ok {
		t.Fatalf("expected the final boss in Wizard's Tower")
	}
	g.Events.Damage.Push(state.DamageEvent{Target: state.DamageEnemy, Entity: boss, Amount: 1e6})
	NewDamageSystem(g).Update(w)
	NewEnemyDeathSystem(g).Update(w)
	if g.Phase != state.Outro {
		t.Fatalf("expected Outro, got %s", g.Phase)
	}

	g.Cycles = 4
	NewCycleSystem(g).Update(w)
	if g.Phase != state.MainMenu || !g.Won {
		t.Fatalf("expected MainMenu with a win, got %s won=%v", g.Phase, g.Won)
	}
	if got := len(ecs.Entities(w)); got != 0 {
		t.Fatalf("expected world cleared, got %d entities", got)
	}
	if g.Current != nil {
		t.Fatalf("expected no current room")
	}
	saved, found, err := savedata.Load(g.Store)
	if err != nil || !found || saved.Cycles != 4 {
		t.Fatalf("expected save with 4 cycles, found=%v err=%v saved=%+v", found, err, saved)
	}
}
