package component

const (
	LayerPlayer uint32 = 1 << iota
	LayerEnemy
	LayerWall
	LayerObstacle
	LayerProjectile
	LayerReflectedProjectile
)

// CollisionLayer declares an entity's collision category and the categories
// it collides with.
type CollisionLayer struct {
	Category uint32
	Mask     uint32
}

var (
	PlayerLayer = CollisionLayer{
		Category: LayerPlayer,
		Mask:     LayerEnemy | LayerWall | LayerObstacle | LayerProjectile,
	}
	EnemyLayer = CollisionLayer{
		Category: LayerEnemy,
		Mask:     LayerEnemy | LayerPlayer | LayerWall | LayerObstacle | LayerReflectedProjectile,
	}
	WallLayer = CollisionLayer{
		Category: LayerWall,
		Mask:     LayerPlayer | LayerEnemy | LayerProjectile | LayerReflectedProjectile,
	}
	ObstacleLayer = CollisionLayer{
		Category: LayerObstacle,
		Mask:     LayerPlayer | LayerEnemy | LayerProjectile | LayerReflectedProjectile,
	}
	ProjectileLayer = CollisionLayer{
		Category: LayerProjectile,
		Mask:     LayerPlayer | LayerWall | LayerObstacle,
	}
	ReflectedProjectileLayer = CollisionLayer{
		Category: LayerReflectedProjectile,
		Mask:     LayerEnemy | LayerWall | LayerObstacle,
	}
)

var CollisionLayerComponent = NewComponent[CollisionLayer]()
