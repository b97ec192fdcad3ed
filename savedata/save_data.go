package savedata

import (
	"github.com/WaterFace/wizards-spiral/skills"
)

// SaveData is the flat persisted record. Only cycle-boundary state is kept:
// stored levels and xp, never the in-cycle deltas.
type SaveData struct {
	ArmorLevel    uint64  `yaml:"armor_level"`
	ArmorXP       float32 `yaml:"armor_xp"`
	ArmorUnlocked bool    `yaml:"armor_unlocked"`

	SwordLevel    uint64  `yaml:"sword_level"`
	SwordXP       float32 `yaml:"sword_xp"`
	SwordUnlocked bool    `yaml:"sword_unlocked"`

	ShieldLevel    uint64  `yaml:"shield_level"`
	ShieldXP       float32 `yaml:"shield_xp"`
	ShieldUnlocked bool    `yaml:"shield_unlocked"`

	PantsLevel    uint64  `yaml:"pants_level"`
	PantsXP       float32 `yaml:"pants_xp"`
	PantsUnlocked bool    `yaml:"pants_unlocked"`

	MirrorLevel    uint64  `yaml:"mirror_level"`
	MirrorXP       float32 `yaml:"mirror_xp"`
	MirrorUnlocked bool    `yaml:"mirror_unlocked"`

	HealingLevel    uint64  `yaml:"healing_level"`
	HealingXP       float32 `yaml:"healing_xp"`
	HealingUnlocked bool    `yaml:"healing_unlocked"`

	SpeedLevel    uint64  `yaml:"speed_level"`
	SpeedXP       float32 `yaml:"speed_xp"`
	SpeedUnlocked bool    `yaml:"speed_unlocked"`

	Cycles     uint64 `yaml:"cycles"`
	AudioMuted bool   `yaml:"audio_muted"`
}

func (d *SaveData) fields(s skills.Skill) (*uint64, *float32, *bool) {
	switch s {
	case skills.Armor:
		return &d.ArmorLevel, &d.ArmorXP, &d.ArmorUnlocked
	case skills.Sword:
		return &d.SwordLevel, &d.SwordXP, &d.SwordUnlocked
	case skills.Shield:
		return &d.ShieldLevel, &d.ShieldXP, &d.ShieldUnlocked
	case skills.Pants:
		return &d.PantsLevel, &d.PantsXP, &d.PantsUnlocked
	case skills.Mirror:
		return &d.MirrorLevel, &d.MirrorXP, &d.MirrorUnlocked
	case skills.Healing:
		return &d.HealingLevel, &d.HealingXP, &d.HealingUnlocked
	default:
		return &d.SpeedLevel, &d.SpeedXP, &d.SpeedUnlocked
	}
}

// FromResources snapshots the persistent part of the game state.
func FromResources(p *skills.PlayerSkills, cycles uint64, muted bool) SaveData {
	d := SaveData{Cycles: cycles, AudioMuted: muted}
	for _, s := range skills.All() {
		level, xp, unlocked := d.fields(s)
		*level = p.GetHighest(s)
		*xp = p.GetStoredXP(s)
		*unlocked = p.GetUnlocked(s)
	}
	return d
}

// ToResources rebuilds the ledger, cycle count and mute flag.
func (d SaveData) ToResources() (*skills.PlayerSkills, uint64, bool) {
	levels := make(map[skills.Skill]uint64)
	xps := make(map[skills.Skill]float32)
	unlocks := make(map[skills.Skill]bool)
	for _, s := range skills.All() {
		level, xp, unlocked := d.fields(s)
		levels[s] = *level
		xps[s] = *xp
		unlocks[s] = *unlocked
	}
	return skills.Restore(levels, xps, unlocks), d.Cycles, d.AudioMuted
}
