package component

import "github.com/jakecoffman/cp"

// CharacterController steers a body toward Direction * MaxSpeed. Direction
// has length at most 1; shorter vectors move slower.
type CharacterController struct {
	Acceleration float64
	MaxSpeed     float64
	Direction    cp.Vector
}

var CharacterControllerComponent = NewComponent[CharacterController]()
