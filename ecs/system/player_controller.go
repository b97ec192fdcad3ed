package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/jakecoffman/cp"
)

// PlayerControllerSystem turns input into a desired direction and handles
// the pause and mute toggles.
type PlayerControllerSystem struct {
	game *state.Game
}

func NewPlayerControllerSystem(g *state.Game) *PlayerControllerSystem {
	return &PlayerControllerSystem{game: g}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	g := p.game

	entities := w.Query(
		component.PlayerTagComponent,
		component.InputComponent,
		component.CharacterControllerComponent,
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent)
		if !ok {
			continue
		}
		ctrl, ok := ecs.Get(w, e, component.CharacterControllerComponent)
		if !ok {
			continue
		}

		if input.MutePressed && (g.Phase == state.InGame || g.Phase == state.Paused) {
			g.Muted = !g.Muted
			log.Printf("[player] muted=%v", g.Muted)
			g.Persist()
		}
		if input.PausePressed {
			switch g.Phase {
			case state.InGame:
				g.SetPhase(state.Paused)
			case state.Paused:
				g.SetPhase(state.InGame)
			}
		}

		if !g.Phase.Simulating() || g.Dead {
			ctrl.Direction = cp.Vector{}
			continue
		}
		ctrl.Direction = cp.Vector{X: input.MoveX, Y: input.MoveY}.Clamp(1)
	}
}
