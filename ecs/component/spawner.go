package component

import "github.com/WaterFace/wizards-spiral/room"

type Spawner struct {
	Type   room.SpawnerType
	Index  int
	Active bool
}

var SpawnerComponent = NewComponent[Spawner]()

// SpawnerIndex ties an enemy back to the spawner that produced it.
type SpawnerIndex struct {
	Index int
}

var SpawnerIndexComponent = NewComponent[SpawnerIndex]()
