package entity

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/jakecoffman/cp"
)

func NewFloatingText(w *ecs.World, at cp.Vector, text string, c color.Color, frames int) (ecs.Entity, error) {
	return build(w, "floating text",
		with(component.TransformComponent, transformAt(at.X, at.Y)),
		with(component.FloatingTextComponent, &component.FloatingText{Text: text, Color: c, Rise: 0.5}),
		with(component.TTLComponent, &component.TTL{Frames: frames}),
		with(component.RenderLayerComponent, &component.RenderLayer{Index: component.LayerText}),
	)
}
