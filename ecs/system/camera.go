package system

import (
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

// CameraSystem eases the camera toward the player and applies shake
// requests. The camera transform holds the world point at screen center.
type CameraSystem struct {
	game  *state.Game
	shake component.CameraShakeRequest
	// Offset is the current shake displacement, read by the renderer.
	Offset cp.Vector
}

func NewCameraSystem(g *state.Game) *CameraSystem {
	return &CameraSystem{game: g}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	camEntity, ok := w.First(component.CameraComponent)
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}

	if req, ok := ecs.Get(w, camEntity, component.CameraShakeRequestComponent); ok {
		if req.Intensity >= cs.shake.Intensity || cs.shake.Frames <= 0 {
			cs.shake = *req
		}
		ecs.Remove(w, camEntity, component.CameraShakeRequestComponent)
	}
	cs.Offset = cp.Vector{}
	if cs.shake.Frames > 0 && cs.game.Phase.Simulating() {
		cs.shake.Frames--
		// Deterministic; must not draw from the gameplay RNG.
		angle := float64(cs.shake.Frames) * 2.4
		cs.Offset = cp.ForAngle(angle).Mult(cs.shake.Intensity)
	}

	target, ok := playerPosition(w)
	if !ok {
		return
	}
	t := cam.Smoothness
	if t <= 0 || t > 1 {
		t = 1
	}
	camTransform.SetPosition(camTransform.Position().Lerp(target, t))
}
