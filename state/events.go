package state

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/skills"
)

// WallHit is emitted when the player starts touching a room wall.
type WallHit struct {
	Player ecs.Entity
	Wall   ecs.Entity
}

// Contact is emitted when the player and an enemy start touching.
type Contact struct {
	Player ecs.Entity
	Enemy  ecs.Entity
}

// ProjectileHit is emitted when a projectile starts touching anything it
// collides with. Target is zero for walls and obstacles.
type ProjectileHit struct {
	Projectile ecs.Entity
	Target     ecs.Entity
}

type DamageTarget int

const (
	DamagePlayer DamageTarget = iota
	DamageEnemy
)

type DamageEvent struct {
	Target DamageTarget
	Entity ecs.Entity
	Amount float64
	// Blockable is false for damage the shield cannot stop.
	Blockable bool
}

type AlertKind int

const (
	Alerted AlertKind = iota
	TooFar
)

type EnemyAlertEvent struct {
	Enemy ecs.Entity
	Kind  AlertKind
}

type EnemyDeathEvent struct {
	Enemy        ecs.Entity
	SpawnerIndex int
	Boss         bool
	Final        bool
}

// XPEvent is a gameplay occurrence the xp rules turn into awards.
type XPEvent struct {
	Kind   string
	Amount float64
}

const (
	XPPlayerDamaged  = "player_damaged"
	XPMeleeAttack    = "melee_attack"
	XPMeleeCollision = "melee_collision"
	XPBlocked        = "blocked"
	XPReflected      = "reflected"
	XPHealed         = "healed"
	XPMoved          = "moved"
)

type NoticeKind int

const (
	NoticeLevelUp NoticeKind = iota
	NoticeUnlocked
	NoticeBlocked
	NoticeReflected
	NoticeHealed
)

// Notice is a HUD-facing message about something the player should see.
type Notice struct {
	Kind   NoticeKind
	Skill  skills.Skill
	Levels uint64
	Amount float64
}

// Sound is a one-shot effect for the audio system.
type Sound int

const (
	SoundMeleeHit Sound = iota
	SoundProjectileHit
	SoundShieldBlock
	SoundDeath
	SoundNewSkill
	SoundReflect
	SoundHeal
	// SoundRunning loops while the player moves; it is never queued.
	SoundRunning
)

var soundNames = [...]string{
	SoundMeleeHit:      "melee_hit",
	SoundProjectileHit: "projectile_hit",
	SoundShieldBlock:   "shield_block",
	SoundDeath:         "death",
	SoundNewSkill:      "new_skill",
	SoundReflect:       "projectile_reflect",
	SoundHeal:          "heal",
	SoundRunning:       "running",
}

// Sounds lists every sound in declaration order.
func Sounds() []Sound {
	out := make([]Sound, len(soundNames))
	for i := range soundNames {
		out[i] = Sound(i)
	}
	return out
}

func (s Sound) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// Events bundles the per-tick queues. Each queue has one consumer.
type Events struct {
	WallHits       ecs.Queue[WallHit]
	Contacts       ecs.Queue[Contact]
	ProjectileHits ecs.Queue[ProjectileHit]
	Damage         ecs.Queue[DamageEvent]
	Alerts         ecs.Queue[EnemyAlertEvent]
	Deaths         ecs.Queue[EnemyDeathEvent]
	XP             ecs.Queue[XPEvent]
	Unlocks        ecs.Queue[skills.Skill]
	Notices        ecs.Queue[Notice]
	Sounds         ecs.Queue[Sound]
}

func (e *Events) Clear() {
	e.WallHits.Clear()
	e.Contacts.Clear()
	e.ProjectileHits.Clear()
	e.Damage.Clear()
	e.Alerts.Clear()
	e.Deaths.Clear()
	e.XP.Clear()
	e.Unlocks.Clear()
	e.Notices.Clear()
	e.Sounds.Clear()
}
