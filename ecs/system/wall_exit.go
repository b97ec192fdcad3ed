package system

import (
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/state"
)

// WallExitSystem turns the player touching a linked wall into a room change
// request. At most one request is made per tick.
type WallExitSystem struct {
	game *state.Game
}

func NewWallExitSystem(g *state.Game) *WallExitSystem {
	return &WallExitSystem{game: g}
}

func (s *WallExitSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	hits := s.game.Events.WallHits.Drain()
	if !s.game.Phase.Simulating() || s.game.Current == nil {
		return
	}

	for _, hit := range hits {
		wall, ok := ecs.Get(w, hit.Wall, component.WallComponent)
		if !ok {
			continue
		}
		target, ok := s.game.Current.Info.Link(wall.Direction)
		if !ok {
			continue
		}
		comingFrom := wall.Direction.Opposite()
		if _, err := entity.NewRoomChangeRequest(w, target, &comingFrom); err != nil {
			log.Printf("[room] warning: request %s: %v", target, err)
			continue
		}
		log.Printf("[room] %s wall of %s leads to %s", wall.Direction, s.game.CurrentRoomName(), target)
		return
	}
}
