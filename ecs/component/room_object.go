package component

// RoomObject marks entities owned by the current room. Every one of them is
// destroyed when the player leaves the room.
type RoomObject struct{}

var RoomObjectComponent = NewComponent[RoomObject]()
