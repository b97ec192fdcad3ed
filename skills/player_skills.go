package skills

import (
	"errors"
	"math"
)

var (
	ErrNonFiniteXP = errors.New("skills: non-finite xp")
	// ErrXPPrecision is returned when xp is too large for a level-up to
	// change it at float32 precision.
	ErrXPPrecision = errors.New("skills: xp beyond float32 precision")
)

type LevelUp struct {
	Skill  Skill
	Levels uint64
}

// PlayerSkills is the skill ledger. Stored values survive cycles; delta values
// are what the current cycle has earned and fold into stored on EndCycle.
type PlayerSkills struct {
	storedLevels [skillCount]uint64
	deltaLevels  [skillCount]uint64
	storedXP     [skillCount]float32
	deltaXP      [skillCount]float32
	levelups     [skillCount]uint64
	unlocked     [skillCount]bool
}

func New() *PlayerSkills {
	return &PlayerSkills{}
}

// Restore builds a ledger from persisted per-skill state. Delta values start at zero.
func Restore(levels map[Skill]uint64, xp map[Skill]float32, unlocked map[Skill]bool) *PlayerSkills {
	p := New()
	for _, s := range All() {
		p.storedLevels[s] = levels[s]
		p.storedXP[s] = xp[s]
		p.unlocked[s] = unlocked[s]
	}
	return p
}

// Get returns the total level of a skill.
func (p *PlayerSkills) Get(s Skill) uint64 {
	if p == nil || !s.Valid() {
		return 0
	}
	return p.storedLevels[s] + p.deltaLevels[s]
}

// GetHighest returns the level as of the start of the current cycle.
func (p *PlayerSkills) GetHighest(s Skill) uint64 {
	if p == nil || !s.Valid() {
		return 0
	}
	return p.storedLevels[s]
}

func (p *PlayerSkills) GetXP(s Skill) float32 {
	if p == nil || !s.Valid() {
		return 0
	}
	return p.storedXP[s] + p.deltaXP[s]
}

// GetStoredXP returns the xp carried over from previous cycles.
func (p *PlayerSkills) GetStoredXP(s Skill) float32 {
	if p == nil || !s.Valid() {
		return 0
	}
	return p.storedXP[s]
}

func (p *PlayerSkills) GetUnlocked(s Skill) bool {
	if p == nil || !s.Valid() {
		return false
	}
	return p.unlocked[s]
}

// UnlockSkill is idempotent.
func (p *PlayerSkills) UnlockSkill(s Skill) {
	if p == nil || !s.Valid() {
		return
	}
	p.unlocked[s] = true
}

// XPNeeded returns the xp required to gain one level from the given total level.
func XPNeeded(level uint64) float32 {
	return 1 + float32(level)/5
}

// AddXP adds a base amount of xp, scaled by a catch-up bonus based on the
// highest stored level, and processes level-ups. Locked skills discard the
// xp. A refused grant (non-finite, or too large to level through) leaves the
// ledger untouched.
func (p *PlayerSkills) AddXP(s Skill, base float32) error {
	if p == nil || !s.Valid() || !p.unlocked[s] {
		return nil
	}

	scaled := base * float32(1+math.Sqrt(float64(p.storedLevels[s])/100))
	delta := p.deltaXP[s] + scaled
	if !finite(delta) || !finite(p.storedXP[s]+delta) {
		return ErrNonFiniteXP
	}

	before := *p
	p.deltaXP[s] = delta
	for {
		deltaXP, storedXP := p.deltaXP[s], p.storedXP[s]
		if !p.subtractXP(s, XPNeeded(p.Get(s))) {
			return nil
		}
		if p.deltaXP[s] == deltaXP && p.storedXP[s] == storedXP {
			*p = before
			return ErrXPPrecision
		}
		p.deltaLevels[s]++
		p.levelups[s]++
	}
}

// subtractXP removes xp from delta first, then stored. It reports false and
// changes nothing when the total is short.
func (p *PlayerSkills) subtractXP(s Skill, xp float32) bool {
	if p.GetXP(s) < xp {
		return false
	}
	if p.deltaXP[s] >= xp {
		p.deltaXP[s] -= xp
		return true
	}
	xp -= p.deltaXP[s]
	p.deltaXP[s] = 0
	p.storedXP[s] = max(p.storedXP[s]-xp, 0)
	return true
}

// DrainLevelups returns the pending level-up counts and zeroes them.
func (p *PlayerSkills) DrainLevelups() []LevelUp {
	if p == nil {
		return nil
	}
	var out []LevelUp
	for _, s := range All() {
		if p.levelups[s] == 0 {
			continue
		}
		out = append(out, LevelUp{Skill: s, Levels: p.levelups[s]})
		p.levelups[s] = 0
	}
	return out
}

// EndCycle folds this cycle's progress into stored progress.
func (p *PlayerSkills) EndCycle() {
	if p == nil {
		return
	}
	for _, s := range All() {
		p.storedLevels[s] += p.deltaLevels[s]
		p.deltaLevels[s] = 0
		p.storedXP[s] += p.deltaXP[s]
		p.deltaXP[s] = 0
	}
}

// DiscardCycle drops this cycle's progress, leaving stored values and unlocks.
func (p *PlayerSkills) DiscardCycle() {
	if p == nil {
		return
	}
	p.deltaLevels = [skillCount]uint64{}
	p.deltaXP = [skillCount]float32{}
	p.levelups = [skillCount]uint64{}
}

func finite(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
