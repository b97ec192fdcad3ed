package system

import (
	"image/color"
	"sort"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"
)

// RenderSystem draws sprites as flat shapes plus floating text, in render
// layer order.
type RenderSystem struct {
	camera *CameraSystem
	face   ebtext.Face
}

func NewRenderSystem(camera *CameraSystem) *RenderSystem {
	return &RenderSystem{camera: camera, face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := r.view(w)

	entities := w.Query(component.TransformComponent, component.RenderLayerComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent)
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent)
		if li.Index != lj.Index {
			return li.Index < lj.Index
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		at := view.toScreen(t.Position())

		if s, ok := ecs.Get(w, e, component.SpriteComponent); ok {
			c := s.Color
			if c == nil {
				c = color.White
			}
			if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent); ok && wf.On {
				c = color.White
			}
			drawShape(screen, at, s, view.zoom, c)
		}
		if ft, ok := ecs.Get(w, e, component.FloatingTextComponent); ok {
			r.drawText(screen, ft.Text, at, ft.Color)
		}
	}
}

func (r *RenderSystem) drawText(screen *ebiten.Image, msg string, at cp.Vector, c color.Color) {
	width, _ := ebtext.Measure(msg, r.face, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(at.X-width/2, at.Y)
	if c != nil {
		op.ColorScale.ScaleWithColor(c)
	}
	ebtext.Draw(screen, msg, r.face, op)
}

func drawShape(screen *ebiten.Image, at cp.Vector, s *component.Sprite, zoom float64, c color.Color) {
	w := float32(s.Width * zoom)
	h := float32(s.Height * zoom)
	if s.Circle {
		vector.FillCircle(screen, float32(at.X), float32(at.Y), w/2, c, true)
		return
	}
	vector.FillRect(screen, float32(at.X)-w/2, float32(at.Y)-h/2, w, h, c, false)
}

type viewport struct {
	center cp.Vector
	zoom   float64
}

func (r *RenderSystem) view(w *ecs.World) viewport {
	v := viewport{zoom: 1}
	camEntity, ok := w.First(component.CameraComponent)
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
		v.center = t.Position()
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent); ok && cam.Zoom > 0 {
		v.zoom = cam.Zoom
	}
	if r.camera != nil {
		v.center = v.center.Add(r.camera.Offset)
	}
	return v
}

func (v viewport) toScreen(p cp.Vector) cp.Vector {
	return p.Sub(v.center).Mult(v.zoom).Add(cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2})
}
