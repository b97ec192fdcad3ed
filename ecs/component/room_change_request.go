package component

import "github.com/WaterFace/wizards-spiral/room"

// RoomChangeRequest is a one-shot request entity asking the room transition
// system to move the player to Target. Only the first request seen in a
// tick is honoured.
type RoomChangeRequest struct {
	Target        string
	ComingFrom    room.Direction
	HasComingFrom bool
}

var RoomChangeRequestComponent = NewComponent[RoomChangeRequest]()
