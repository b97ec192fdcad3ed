package component

import "github.com/WaterFace/wizards-spiral/room"

type Wall struct {
	Direction room.Direction
}

var WallComponent = NewComponent[Wall]()
