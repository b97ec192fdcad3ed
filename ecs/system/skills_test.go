package system

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

func TestXPRules(t *testing.T) {
	src, err := content.LoadScript(content.XPRulesFile)
	if err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
	rules, err := newXPRules(src)
	if err != nil {
		t.Fatalf("newXPRules: %v", err)
	}

	tests := []struct {
		ev   state.XPEvent
		want []xpAward
	}{
		{state.XPEvent{Kind: state.XPMeleeAttack, Amount: 1}, []xpAward{{skills.Sword, 1}}},
		{state.XPEvent{Kind: state.XPMeleeCollision, Amount: 1}, []xpAward{{skills.Pants, 0.5}}},
		{state.XPEvent{Kind: state.XPPlayerDamaged, Amount: 12}, []xpAward{{skills.Armor, 1}}},
		{state.XPEvent{Kind: state.XPBlocked, Amount: 3}, []xpAward{{skills.Shield, 1}}},
		{state.XPEvent{Kind: state.XPReflected, Amount: 1}, []xpAward{{skills.Mirror, 1}}},
		{state.XPEvent{Kind: state.XPHealed, Amount: 20}, []xpAward{{skills.Healing, 2}}},
		{state.XPEvent{Kind: state.XPHealed, Amount: 400}, []xpAward{{skills.Healing, 5}}},
		{state.XPEvent{Kind: state.XPMoved, Amount: 1}, []xpAward{{skills.Speed, 0.25}}},
		{state.XPEvent{Kind: "sneezed", Amount: 1}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.ev.Kind, func(t *testing.T) {
			got, err := rules.awards(tc.ev)
			if err != nil {
				t.Fatalf("awards: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestXPRulesRejectsBadScripts(t *testing.T) {
	tests := map[string]string{
		"syntax error":   "awards := [",
		"missing awards": "x := 1",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := newXPRules([]byte(src)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestXPRulesRejectsUnknownSkill(t *testing.T) {
	rules, err := newXPRules([]byte(`awards := [{skill: "juggling", xp: 1}]`))
	if err != nil {
		t.Fatalf("newXPRules: %v", err)
	}
	if _, err := rules.awards(state.XPEvent{Kind: "anything"}); err == nil {
		t.Fatalf("expected unknown skill error")
	}
}

func TestSkillSystemUnlockAndLevelUp(t *testing.T) {
	g := newTestGame(t)
	w := ecs.NewWorld()
	s := NewSkillSystem(g)

	g.Events.XP.Push(state.XPEvent{Kind: state.XPMeleeAttack, Amount: 1})
	s.Update(w)
	if g.Skills.GetXP(skills.Sword) != 0 || g.Skills.Get(skills.Sword) != 0 {
		t.Fatalf("expected locked sword to ignore xp")
	}

	g.Events.Unlocks.Push(skills.Sword)
	g.Events.XP.Push(state.XPEvent{Kind: state.XPMeleeAttack, Amount: 1})
	s.Update(w)
	if g.Skills.Get(skills.Sword) != 1 {
		t.Fatalf("expected sword level 1, got %d", g.Skills.Get(skills.Sword))
	}

	notices := g.Events.Notices.Drain()
	want := []state.NoticeKind{state.NoticeUnlocked, state.NoticeLevelUp}
	if len(notices) != len(want) {
		t.Fatalf("expected %d notices, got %+v", len(want), notices)
	}
	for i, n := range notices {
		if n.Kind != want[i] || n.Skill != skills.Sword {
			t.Fatalf("unexpected notice %+v", n)
		}
	}

	g.Events.Unlocks.Push(skills.Sword)
	s.Update(w)
	if got := g.Events.Notices.Len(); got != 0 {
		t.Fatalf("expected no notice for a repeat unlock, got %d", got)
	}
}

func TestSkillSystemHealing(t *testing.T) {
	tests := []struct {
		name     string
		unlocked bool
		healed   bool
	}{
		{"locked", false, false},
		{"unlocked", true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			if tc.unlocked {
				g.Skills.UnlockSkill(skills.Healing)
			}
			g.Health.Current = g.MaxHealth() / 2
			g.HealTimer = g.Config.HealInterval
			w := ecs.NewWorld()
			testPlayer(t, w, cp.Vector{})

			NewSkillSystem(g).Update(w)
			if got := g.Health.Current > g.MaxHealth()/2; got != tc.healed {
				t.Fatalf("expected healed=%v, health %v", tc.healed, g.Health.Current)
			}
			if g.HealTimer >= g.Config.HealInterval {
				t.Fatalf("expected heal timer to wrap, got %v", g.HealTimer)
			}
		})
	}
}

func TestSkillSystemHealingCapsAtMax(t *testing.T) {
	g := newTestGame(t)
	g.Skills = skills.Restore(map[skills.Skill]uint64{skills.Healing: 1000}, nil, map[skills.Skill]bool{skills.Healing: true})
	g.Health.Current = g.MaxHealth() - 1
	g.HealTimer = g.Config.HealInterval
	w := ecs.NewWorld()

	NewSkillSystem(g).Update(w)
	if g.Health.Current != g.MaxHealth() {
		t.Fatalf("expected health capped at %v, got %v", g.MaxHealth(), g.Health.Current)
	}
}
