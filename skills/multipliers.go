package skills

import "math"

func (p *PlayerSkills) level(s Skill) float64 {
	return float64(p.Get(s))
}

// AttackDamage is the damage the player deals per melee hit or reflection.
func (p *PlayerSkills) AttackDamage() float32 {
	return float32(10 + (1.0/30.0)*math.Pow(p.level(Sword), 1.8))
}

// DamageTakenFraction is in (0, 1].
func (p *PlayerSkills) DamageTakenFraction() float32 {
	return float32(1 / (1 + p.level(Armor)/100))
}

func (p *PlayerSkills) BlockChance() float32 {
	if !p.GetUnlocked(Shield) {
		return 0
	}
	l := p.level(Shield)
	return float32(0.65 - 500/(l*l+1000))
}

func (p *PlayerSkills) ReflectChance() float32 {
	if !p.GetUnlocked(Mirror) {
		return 0
	}
	l := p.level(Mirror)
	return float32(0.75 - 700/(l*l+1000))
}

// Mass divides incoming knockback and multiplies outgoing knockback.
func (p *PlayerSkills) Mass() float32 {
	return float32(1 + math.Sqrt(p.level(Pants)/10))
}

func (p *PlayerSkills) MaxHealthMultiplier() float32 {
	return float32(1 + math.Sqrt(p.level(Pants)/50))
}

// HealingFraction is the share of max health restored per heal tick.
func (p *PlayerSkills) HealingFraction() float32 {
	l := p.level(Healing)
	return float32(0.5 - 98/(l*l+200))
}

func (p *PlayerSkills) SpeedMultiplier() float32 {
	return float32(1 + math.Log2(p.level(Speed)+1)/math.Log2(25))
}
