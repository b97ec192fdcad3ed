package component

import "github.com/WaterFace/wizards-spiral/room"

// Boss carries the boss record of the enemy it is attached to.
type Boss struct {
	Stats room.BossStats
}

var BossComponent = NewComponent[Boss]()
