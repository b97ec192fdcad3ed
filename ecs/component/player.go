package component

// Player holds per-body player tunables derived from skills at spawn time.
type Player struct {
	Mass   float64
	Radius float64
}

var PlayerComponent = NewComponent[Player]()
