package entity

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

func roomObject() part {
	return with(component.RoomObjectComponent, &component.RoomObject{})
}

func NewFloor(w *ecs.World, rect room.Rect, tex room.Texture) (ecs.Entity, error) {
	c := rect.Center()
	return build(w, "floor",
		roomObject(),
		with(component.FloorTagComponent, &component.FloorTag{}),
		with(component.TransformComponent, transformAt(c.X, c.Y)),
		with(component.SpriteComponent, &component.Sprite{Texture: tex.Name, Color: tex.Tint.Or(colornames.Darkolivegreen), Width: rect.W, Height: rect.H}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerFloor}),
	)
}

// WallRect returns the box of thickness t sitting just outside rect on side d.
func WallRect(rect room.Rect, d room.Direction, t float64) room.Rect {
	switch d {
	case room.North:
		return room.Rect{X: rect.X - t, Y: rect.Y - t, W: rect.W + 2*t, H: t}
	case room.South:
		return room.Rect{X: rect.X - t, Y: rect.Y + rect.H, W: rect.W + 2*t, H: t}
	case room.East:
		return room.Rect{X: rect.X + rect.W, Y: rect.Y, W: t, H: rect.H}
	default:
		return room.Rect{X: rect.X - t, Y: rect.Y, W: t, H: rect.H}
	}
}

func NewWall(w *ecs.World, rect room.Rect, d room.Direction, thickness float64) (ecs.Entity, error) {
	box := WallRect(rect, d, thickness)
	c := box.Center()
	return build(w, "wall",
		roomObject(),
		with(component.WallComponent, &component.Wall{Direction: d}),
		with(component.TransformComponent, transformAt(c.X, c.Y)),
		with(component.PhysicsBodyComponent, &component.PhysicsBody{Width: box.W, Height: box.H, Static: true}),
		with(component.CollisionLayerComponent, ptr(component.WallLayer)),
	)
}

func NewObstacle(w *ecs.World, at cp.Vector, radius float64, tex room.Texture) (ecs.Entity, error) {
	return build(w, "obstacle",
		roomObject(),
		with(component.ObstacleTagComponent, &component.ObstacleTag{}),
		with(component.TransformComponent, transformAt(at.X, at.Y)),
		with(component.PhysicsBodyComponent, &component.PhysicsBody{Radius: radius, Static: true}),
		with(component.CollisionLayerComponent, ptr(component.ObstacleLayer)),
		with(component.SpriteComponent, &component.Sprite{Texture: tex.Name, Color: tex.Tint.Or(colornames.Saddlebrown), Width: radius * 2, Height: radius * 4}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerObstacleSprite}),
	)
}

func NewSpawner(w *ecs.World, index int, st room.SpawnerState) (ecs.Entity, error) {
	return build(w, "spawner",
		roomObject(),
		with(component.TransformComponent, transformAt(st.Position.X, st.Position.Y)),
		with(component.SpawnerComponent, &component.Spawner{Type: st.Type, Index: index, Active: st.Active}),
	)
}

func NewCorpse(w *ecs.World, at cp.Vector, radius float64, tint color.Color) (ecs.Entity, error) {
	return build(w, "corpse",
		roomObject(),
		with(component.CorpseTagComponent, &component.CorpseTag{}),
		with(component.TransformComponent, transformAt(at.X, at.Y)),
		with(component.SpriteComponent, &component.Sprite{Texture: "corpse", Color: darken(tint), Width: radius * 2, Height: radius}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerCorpse}),
	)
}

func NewRoomChangeRequest(w *ecs.World, target string, comingFrom *room.Direction) (ecs.Entity, error) {
	req := &component.RoomChangeRequest{Target: target}
	if comingFrom != nil {
		req.ComingFrom = *comingFrom
		req.HasComingFrom = true
	}
	return build(w, "room change request", with(component.RoomChangeRequestComponent, req))
}

func darken(c color.Color) color.Color {
	if c == nil {
		return colornames.Dimgray
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r / 2), G: uint16(g / 2), B: uint16(b / 2), A: uint16(a)}
}
