package component

import "github.com/jakecoffman/cp"

// Projectile source and target are entity handles; either may be gone.
type Projectile struct {
	Source    uint64
	Target    uint64
	Speed     float64
	Damage    float64
	Lifetime  float64
	Age       float64
	Homing    float64
	Velocity  cp.Vector
	Reflected bool
}

var ProjectileComponent = NewComponent[Projectile]()
