package room

import (
	"fmt"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/skills"
	"gopkg.in/yaml.v3"
)

type EnemyKind int

const (
	KindMelee EnemyKind = iota
	KindRanged
)

func (k EnemyKind) String() string {
	if k == KindRanged {
		return "ranged"
	}
	return "melee"
}

func (k *EnemyKind) UnmarshalYAML(value *yaml.Node) error {
	switch value.Value {
	case "melee", "":
		*k = KindMelee
	case "ranged":
		*k = KindRanged
	default:
		return fmt.Errorf("room: unknown enemy kind %q", value.Value)
	}
	return nil
}

type ProjectileStats struct {
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	// Homing is the turn rate toward the target in radians per second.
	Homing float64 `yaml:"homing"`
	// Delay is the time between shots.
	Delay float64 `yaml:"delay"`
}

type EnemyStats struct {
	Kind            EnemyKind          `yaml:"kind"`
	MeleeDamage     float64            `yaml:"melee_damage"`
	Projectile      ProjectileStats    `yaml:"projectile"`
	Health          float64            `yaml:"health"`
	Speed           float64            `yaml:"speed"`
	Mass            float64            `yaml:"mass"`
	AlertRadius     float64            `yaml:"alert_radius"`
	ChaseRadius     float64            `yaml:"chase_radius"`
	DesiredDistance float64            `yaml:"desired_distance"`
	Color           *content.YAMLColor `yaml:"color"`
}

// EffectiveDesiredDistance is zero for melee enemies.
func (s EnemyStats) EffectiveDesiredDistance() float64 {
	if s.Kind == KindMelee {
		return 0
	}
	return s.DesiredDistance
}

func (s EnemyStats) Validate() error {
	if s.Health <= 0 {
		return fmt.Errorf("health must be positive")
	}
	if s.Mass <= 0 {
		return fmt.Errorf("mass must be positive")
	}
	if s.ChaseRadius < s.AlertRadius {
		return fmt.Errorf("chase_radius %v below alert_radius %v", s.ChaseRadius, s.AlertRadius)
	}
	if s.Kind == KindRanged && (s.Projectile.Delay <= 0 || s.Projectile.Speed <= 0 || s.Projectile.Lifetime <= 0) {
		return fmt.Errorf("ranged enemy needs projectile delay, speed and lifetime")
	}
	return nil
}

type BossStats struct {
	Name          string        `yaml:"name"`
	SkillUnlocked *skills.Skill `yaml:"skill_unlocked"`
	Scale         float64       `yaml:"scale"`
	Stats         EnemyStats    `yaml:"stats"`
}

// EnemyFile is the layout of enemies.yaml.
type EnemyFile struct {
	Enemies map[string]EnemyStats `yaml:"enemies"`
	Bosses  map[string]BossStats  `yaml:"bosses"`
}

type roomFile struct {
	Rooms []Definition `yaml:"rooms"`
}
