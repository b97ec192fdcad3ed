package system

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeWall
	collisionTypeObstacle
	collisionTypeProjectile
)

// Fraction of its velocity a free body keeps each second.
const spaceDamping = 0.2

type PhysicsSystem struct {
	game          *state.Game
	space         *cp.Space
	handlersReady bool

	entities map[ecs.Entity]*bodyInfo
	owners   map[*cp.Shape]shapeOwner
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

type shapeOwner struct {
	entity ecs.Entity
	kind   cp.CollisionType
}

func NewPhysicsSystem(g *state.Game) *PhysicsSystem {
	return &PhysicsSystem{
		game:     g,
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
		owners:   make(map[*cp.Shape]shapeOwner),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	space.SetDamping(spaceDamping)
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || !ps.game.Phase.Simulating() {
		return
	}

	if ps.space == nil {
		ps.space = newSpace()
		ps.handlersReady = false
	}

	ps.ensureHandlers()
	ps.syncEntities(w)
	ps.applyImpulses(w)

	ps.space.Step(ps.game.Dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	pairs := [][2]cp.CollisionType{
		{collisionTypePlayer, collisionTypeWall},
		{collisionTypePlayer, collisionTypeEnemy},
		{collisionTypeProjectile, collisionTypePlayer},
		{collisionTypeProjectile, collisionTypeEnemy},
		{collisionTypeProjectile, collisionTypeWall},
		{collisionTypeProjectile, collisionTypeObstacle},
	}
	for _, pair := range pairs {
		handler := ps.space.NewCollisionHandler(pair[0], pair[1])
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return true
			}
			shapeA, shapeB := arb.Shapes()
			sys.begin(sys.owners[shapeA], sys.owners[shapeB])
			return true
		}
	}

	ps.handlersReady = true
}

// begin routes a collision start to the queue of the pair's consumer.
func (ps *PhysicsSystem) begin(a, b shapeOwner) {
	if a.kind > b.kind {
		a, b = b, a
	}
	events := &ps.game.Events
	switch {
	case a.kind == collisionTypePlayer && b.kind == collisionTypeWall:
		events.WallHits.Push(state.WallHit{Player: a.entity, Wall: b.entity})
	case a.kind == collisionTypePlayer && b.kind == collisionTypeEnemy:
		events.Contacts.Push(state.Contact{Player: a.entity, Enemy: b.entity})
	case b.kind == collisionTypeProjectile:
		target := a.entity
		if a.kind == collisionTypeWall || a.kind == collisionTypeObstacle {
			target = 0
		}
		events.ProjectileHits.Push(state.ProjectileHit{Projectile: b.entity, Target: target})
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	if ps.space == nil {
		return
	}

	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent, component.TransformComponent) {
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			continue
		}
		if _, exists := ps.entities[e]; exists {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}

		layer := component.CollisionLayer{Category: ^uint32(0), Mask: ^uint32(0)}
		if l, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
			layer = *l
		}

		info := ps.createBodyInfo(transform, bodyComp, layer)
		if info == nil {
			continue
		}
		kind := collisionTypeFor(w, e)
		for _, shape := range info.shapes {
			shape.SetCollisionType(kind)
			shape.UserData = e
			ps.owners[shape] = shapeOwner{entity: e, kind: kind}
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shapes[0]
	}
}

func collisionTypeFor(w *ecs.World, e ecs.Entity) cp.CollisionType {
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent):
		return collisionTypePlayer
	case ecs.Has(w, e, component.EnemyTagComponent):
		return collisionTypeEnemy
	case ecs.Has(w, e, component.WallComponent):
		return collisionTypeWall
	case ecs.Has(w, e, component.ProjectileComponent):
		return collisionTypeProjectile
	default:
		return collisionTypeObstacle
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	if ps.space == nil {
		return nil
	}

	width := bodyComp.Width
	height := bodyComp.Height
	radius := bodyComp.Radius
	if radius <= 0 && (width <= 0 || height <= 0) {
		radius = 16
	}

	filter := cp.NewShapeFilter(cp.NO_GROUP, uint(layer.Category), uint(layer.Mask))
	info := &bodyInfo{static: bodyComp.Static}

	if bodyComp.Static {
		var shape *cp.Shape
		if radius > 0 {
			shape = cp.NewCircle(ps.space.StaticBody, radius, transform.Position())
		} else {
			bb := cp.BB{
				L: transform.X - width/2,
				B: transform.Y - height/2,
				R: transform.X + width/2,
				T: transform.Y + height/2,
			}
			shape = cp.NewBox2(ps.space.StaticBody, bb, 0)
		}
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		shape.SetFilter(filter)
		shape.SetSensor(bodyComp.Sensor)
		ps.space.AddShape(shape)

		info.body = ps.space.StaticBody
		info.shapes = []*cp.Shape{shape}
		return info
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Top-down actors never rotate.
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(transform.Position())

	var shape *cp.Shape
	if radius > 0 {
		shape = cp.NewCircle(body, radius, cp.Vector{})
	} else {
		shape = cp.NewBox(body, width, height, 0)
	}
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetFilter(filter)
	shape.SetSensor(bodyComp.Sensor)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info.body = body
	info.shapes = []*cp.Shape{shape}
	return info
}

// applyImpulses consumes pending Impulse components.
func (ps *PhysicsSystem) applyImpulses(w *ecs.World) {
	ecs.ForEach2(w, component.ImpulseComponent, component.PhysicsBodyComponent, func(e ecs.Entity, imp *component.Impulse, bodyComp *component.PhysicsBody) {
		if bodyComp.Body != nil && !bodyComp.Static {
			bodyComp.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: imp.X, Y: imp.Y}, bodyComp.Body.Position())
		}
		ecs.Remove(w, e, component.ImpulseComponent)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent, component.TransformComponent, func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Body == nil || bodyComp.Static {
			return
		}
		transform.SetPosition(bodyComp.Body.Position())
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}

		for _, shape := range info.shapes {
			if shape == nil || ps.space == nil {
				continue
			}
			ps.space.RemoveShape(shape)
			delete(ps.owners, shape)
		}
		if info.body != nil && !info.static && ps.space != nil {
			ps.space.RemoveBody(info.body)
		}

		delete(ps.entities, e)
	}
}

// BodyCount reports how many entities currently have bodies in the space.
func (ps *PhysicsSystem) BodyCount() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}
