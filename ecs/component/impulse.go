package component

// Impulse accumulates knockback for the physics system to apply on its next
// step. The physics system removes the component afterwards.
type Impulse struct {
	X float64
	Y float64
}

var ImpulseComponent = NewComponent[Impulse]()
