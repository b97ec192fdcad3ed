package room

import (
	"github.com/WaterFace/wizards-spiral/content"
	"github.com/jakecoffman/cp"
)

// Rect is a world-space rectangle given by its top-left corner and size.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) HalfSize() cp.Vector {
	return cp.Vector{X: r.W / 2, Y: r.H / 2}
}

// BB converts to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.X + r.W, T: r.Y + r.H}
}

func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Info is the static description of a room. It is immutable once loaded.
type Info struct {
	Name      string `yaml:"name"`
	Rect      Rect   `yaml:"rect"`
	Melee     int    `yaml:"melee"`
	Ranged    int    `yaml:"ranged"`
	Obstacles int    `yaml:"obstacles"`
	Boss      bool   `yaml:"boss"`
	North     string `yaml:"north"`
	South     string `yaml:"south"`
	East      string `yaml:"east"`
	West      string `yaml:"west"`
}

// Link returns the room reached through the wall in direction d.
func (i Info) Link(d Direction) (string, bool) {
	var name string
	switch d {
	case North:
		name = i.North
	case South:
		name = i.South
	case East:
		name = i.East
	case West:
		name = i.West
	}
	return name, name != ""
}

type Texture struct {
	Name string             `yaml:"texture"`
	Tint *content.YAMLColor `yaml:"tint"`
}

// Assets names the textures and stat records a room uses.
type Assets struct {
	Floor       Texture `yaml:"floor"`
	Obstacle    Texture `yaml:"obstacle"`
	Melee       Texture `yaml:"melee"`
	Ranged      Texture `yaml:"ranged"`
	Projectile  Texture `yaml:"projectile"`
	MeleeStats  string  `yaml:"melee_stats"`
	RangedStats string  `yaml:"ranged_stats"`
	BossStats   string  `yaml:"boss_stats"`
}

// Definition is one entry of rooms.yaml.
type Definition struct {
	Info   `yaml:",inline"`
	Assets Assets `yaml:"assets"`
}

// Current is the resolved room the player is in.
type Current struct {
	Info        Info
	Assets      Assets
	MeleeStats  EnemyStats
	RangedStats EnemyStats
	BossStats   *BossStats
}
