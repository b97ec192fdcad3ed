package system

import (
	"fmt"
	"image/color"
	"log"

	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/WaterFace/wizards-spiral/text"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

const (
	noticeFrames = 60
	alertFrames  = 30
)

var (
	noticeOffset = cp.Vector{Y: -24}
	alertOffset  = cp.Vector{Y: -20}
)

// NoticeSystem turns notices and enemy alerts into floating text and
// notices into sounds.
type NoticeSystem struct {
	game    *state.Game
	catalog *text.Catalog
}

func NewNoticeSystem(g *state.Game, catalog *text.Catalog) *NoticeSystem {
	return &NoticeSystem{game: g, catalog: catalog}
}

func (s *NoticeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	g := s.game

	for _, a := range g.Events.Alerts.Drain() {
		if a.Kind != state.Alerted {
			continue
		}
		if pos, ok := position(w, a.Enemy); ok {
			s.spawn(w, pos.Add(alertOffset), "!", colornames.Yellow, alertFrames)
		}
	}

	notices := g.Events.Notices.Drain()
	for _, n := range notices {
		if snd, ok := noticeSound(n.Kind); ok {
			g.Events.Sounds.Push(snd)
		}
	}

	pos, ok := playerPosition(w)
	if !ok {
		return
	}
	for i, n := range notices {
		msg, c := s.describe(n)
		if msg == "" {
			continue
		}
		at := pos.Add(noticeOffset).Add(cp.Vector{Y: float64(-14 * i)})
		s.spawn(w, at, msg, c, noticeFrames)
	}
}

func noticeSound(k state.NoticeKind) (state.Sound, bool) {
	switch k {
	case state.NoticeUnlocked:
		return state.SoundNewSkill, true
	case state.NoticeBlocked:
		return state.SoundShieldBlock, true
	case state.NoticeReflected:
		return state.SoundReflect, true
	case state.NoticeHealed:
		return state.SoundHeal, true
	}
	return 0, false
}

func (s *NoticeSystem) describe(n state.Notice) (string, color.Color) {
	c := s.catalog
	switch n.Kind {
	case state.NoticeLevelUp:
		return c.Get("hud.level_up", c.Skill(n.Skill), n.Levels), colornames.Gold
	case state.NoticeUnlocked:
		return c.Get("hud.unlocked", c.Skill(n.Skill)), colornames.Violet
	case state.NoticeBlocked:
		return c.Skill(skills.Shield), colornames.Silver
	case state.NoticeReflected:
		return c.Skill(skills.Mirror), colornames.Lightskyblue
	case state.NoticeHealed:
		return fmt.Sprintf("+%.0f", n.Amount), colornames.Limegreen
	}
	return "", nil
}

func (s *NoticeSystem) spawn(w *ecs.World, at cp.Vector, msg string, c color.Color, frames int) {
	if _, err := entity.NewFloatingText(w, at, msg, c, frames); err != nil {
		log.Printf("[notice] warning: %v", err)
	}
}
