package content

import "fmt"

type WanderConfig struct {
	MinDelay    float64 `yaml:"min_delay"`
	MaxDelay    float64 `yaml:"max_delay"`
	Radius      float64 `yaml:"radius"`
	CloseEnough float64 `yaml:"close_enough"`
}

type PlayerConfig struct {
	BaseHealth   float64    `yaml:"base_health"`
	BaseSpeed    float64    `yaml:"base_speed"`
	Acceleration float64    `yaml:"acceleration"`
	Radius       float64    `yaml:"radius"`
	Color        *YAMLColor `yaml:"color"`
}

// Config holds gameplay tunables.
type Config struct {
	StartRoom      string       `yaml:"start_room"`
	FinalBoss      string       `yaml:"final_boss"`
	InteriorMargin float64      `yaml:"interior_margin"`
	EntryMargin    float64      `yaml:"entry_margin"`
	WallThickness  float64      `yaml:"wall_thickness"`
	HealInterval   float64      `yaml:"heal_interval"`
	DeathDelay     float64      `yaml:"death_delay"`
	Knockback      float64      `yaml:"knockback"`
	EnemyRadius    float64      `yaml:"enemy_radius"`
	ObstacleRadius float64      `yaml:"obstacle_radius"`
	Wander         WanderConfig `yaml:"wander"`
	Player         PlayerConfig `yaml:"player"`
}

func DefaultConfig() Config {
	return Config{
		StartRoom:      "Lovely Cottage",
		FinalBoss:      "The Wizard",
		InteriorMargin: 0.2,
		EntryMargin:    64,
		WallThickness:  100,
		HealInterval:   5,
		DeathDelay:     2,
		Knockback:      300,
		EnemyRadius:    16,
		ObstacleRadius: 16,
		Wander: WanderConfig{
			MinDelay:    2.5,
			MaxDelay:    4,
			Radius:      75,
			CloseEnough: 16,
		},
		Player: PlayerConfig{
			BaseHealth:   100,
			BaseSpeed:    150,
			Acceleration: 10,
			Radius:       16,
		},
	}
}

// LoadConfig reads config.yaml over the defaults.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	spec, err := LoadSpec[Config](ConfigFile)
	if err != nil {
		return cfg, err
	}
	cfg.merge(spec)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) merge(o Config) {
	if o.StartRoom != "" {
		c.StartRoom = o.StartRoom
	}
	if o.FinalBoss != "" {
		c.FinalBoss = o.FinalBoss
	}
	setIfPositive(&c.InteriorMargin, o.InteriorMargin)
	setIfPositive(&c.EntryMargin, o.EntryMargin)
	setIfPositive(&c.WallThickness, o.WallThickness)
	setIfPositive(&c.HealInterval, o.HealInterval)
	setIfPositive(&c.DeathDelay, o.DeathDelay)
	setIfPositive(&c.Knockback, o.Knockback)
	setIfPositive(&c.EnemyRadius, o.EnemyRadius)
	setIfPositive(&c.ObstacleRadius, o.ObstacleRadius)
	setIfPositive(&c.Wander.MinDelay, o.Wander.MinDelay)
	setIfPositive(&c.Wander.MaxDelay, o.Wander.MaxDelay)
	setIfPositive(&c.Wander.Radius, o.Wander.Radius)
	setIfPositive(&c.Wander.CloseEnough, o.Wander.CloseEnough)
	setIfPositive(&c.Player.BaseHealth, o.Player.BaseHealth)
	setIfPositive(&c.Player.BaseSpeed, o.Player.BaseSpeed)
	setIfPositive(&c.Player.Acceleration, o.Player.Acceleration)
	setIfPositive(&c.Player.Radius, o.Player.Radius)
	if o.Player.Color != nil {
		c.Player.Color = o.Player.Color
	}
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func (c Config) Validate() error {
	if c.InteriorMargin >= 1 {
		return fmt.Errorf("content: interior_margin %v must be below 1", c.InteriorMargin)
	}
	if c.Wander.MaxDelay < c.Wander.MinDelay {
		return fmt.Errorf("content: wander max_delay %v below min_delay %v", c.Wander.MaxDelay, c.Wander.MinDelay)
	}
	return nil
}
