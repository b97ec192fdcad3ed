package component

import (
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/jakecoffman/cp"
)

type EnemyMode int

const (
	EnemyWander EnemyMode = iota
	EnemyChase
)

func (m EnemyMode) String() string {
	if m == EnemyChase {
		return "chase"
	}
	return "wander"
}

type EnemyState struct {
	Mode EnemyMode
}

var EnemyStateComponent = NewComponent[EnemyState]()

var EnemyStatsComponent = NewComponent[room.EnemyStats]()

type EnemyHealth struct {
	Current float64
	Max     float64
}

var EnemyHealthComponent = NewComponent[EnemyHealth]()

// WanderState picks a new nearby target whenever Timer runs out.
type WanderState struct {
	Timer     float64
	Target    cp.Vector
	HasTarget bool
}

var WanderStateComponent = NewComponent[WanderState]()

// ProjectileLauncher fires when Timer reaches Delay.
type ProjectileLauncher struct {
	Delay float64
	Timer float64
}

var ProjectileLauncherComponent = NewComponent[ProjectileLauncher]()
