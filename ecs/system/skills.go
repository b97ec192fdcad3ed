package system

import (
	"log"
	"math"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
)

// Below this speed the player counts as standing still.
const movingSpeed = 1.0

// SkillSystem feeds gameplay events through the xp rules into the ledger,
// applies unlocks, runs the heal and speed timers and reports level-ups.
type SkillSystem struct {
	game  *state.Game
	rules *xpRules
}

// NewSkillSystem loads the xp rules script. A script that fails to load is
// a content error.
func NewSkillSystem(g *state.Game) *SkillSystem {
	rules, err := loadXPRules()
	if err != nil {
		panic("skill system: " + err.Error())
	}
	return &SkillSystem{game: g, rules: rules}
}

// ReloadRules swaps in an edited rules script, keeping the old one on error.
func (s *SkillSystem) ReloadRules() error {
	rules, err := loadXPRules()
	if err != nil {
		return err
	}
	s.rules = rules
	log.Printf("[skills] xp rules reloaded")
	return nil
}

func (s *SkillSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g := s.game

	for _, sk := range g.Events.Unlocks.Drain() {
		if g.Skills.GetUnlocked(sk) {
			continue
		}
		g.Skills.UnlockSkill(sk)
		log.Printf("[skills] unlocked %s", sk)
		g.Events.Notices.Push(state.Notice{Kind: state.NoticeUnlocked, Skill: sk})
	}

	if g.Phase.Simulating() && !g.Dead {
		s.heal()
		s.speed(w)
	}

	for _, ev := range g.Events.XP.Drain() {
		awards, err := s.rules.awards(ev)
		if err != nil {
			log.Printf("[skills] warning: %v", err)
			continue
		}
		for _, a := range awards {
			if err := g.Skills.AddXP(a.Skill, a.XP); err != nil {
				log.Printf("[skills] error: %s xp %v from %s refused: %v", a.Skill, a.XP, ev.Kind, err)
			}
		}
	}

	for _, lu := range g.Skills.DrainLevelups() {
		log.Printf("[skills] %s +%d (now %d)", lu.Skill, lu.Levels, g.Skills.Get(lu.Skill))
		g.Events.Notices.Push(state.Notice{Kind: state.NoticeLevelUp, Skill: lu.Skill, Levels: lu.Levels})
	}
}

func (s *SkillSystem) heal() {
	g := s.game
	interval := g.Config.HealInterval
	if interval <= 0 {
		return
	}
	g.HealTimer += g.Dt
	if g.HealTimer < interval {
		return
	}
	g.HealTimer -= interval
	if !g.Skills.GetUnlocked(skills.Healing) {
		return
	}

	maxHealth := g.MaxHealth()
	amount := math.Min(float64(g.Skills.HealingFraction())*maxHealth, maxHealth-g.Health.Current)
	if amount <= 0 {
		return
	}
	g.Health.Current += amount
	g.Events.XP.Push(state.XPEvent{Kind: state.XPHealed, Amount: amount})
	g.Events.Notices.Push(state.Notice{Kind: state.NoticeHealed, Amount: amount})
}

// speed awards one "moved" event per second the player spends moving.
func (s *SkillSystem) speed(w *ecs.World) {
	g := s.game
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.PhysicsBodyComponent)
	if !ok || body.Body == nil || body.Body.Velocity().Length() < movingSpeed {
		return
	}
	g.SpeedTimer += g.Dt
	for g.SpeedTimer >= 1 {
		g.SpeedTimer--
		g.Events.XP.Push(state.XPEvent{Kind: state.XPMoved, Amount: 1})
	}
}
