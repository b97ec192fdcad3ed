package system

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/WaterFace/wizards-spiral/text"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 12
	hudLineHeight = 16
	healthBarW    = 160
	healthBarH    = 10
)

// HUDSystem draws screen-space status: room name, health, cycle count and
// the skills overlay while its key is held.
type HUDSystem struct {
	game    *state.Game
	catalog *text.Catalog
	face    ebtext.Face
}

func NewHUDSystem(g *state.Game, catalog *text.Catalog) *HUDSystem {
	return &HUDSystem{game: g, catalog: catalog, face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUDSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil || h.game.Current == nil {
		return
	}
	g := h.game
	c := h.catalog

	h.line(screen, g.CurrentRoomName(), hudMargin, hudMargin, colornames.White)
	h.line(screen, c.Get("hud.cycle", g.Cycles), hudMargin, hudMargin+hudLineHeight, colornames.Lightgray)

	y := float32(hudMargin + 2*hudLineHeight + 4)
	frac := 0.0
	if g.Health.Max > 0 {
		frac = common.Clamp(g.Health.Current/g.Health.Max, 0, 1)
	}
	vector.FillRect(screen, hudMargin, y, healthBarW, healthBarH, colornames.Darkred, false)
	vector.FillRect(screen, hudMargin, y, float32(healthBarW*frac), healthBarH, colornames.Limegreen, false)
	h.line(screen, c.Get("hud.health", g.Health.Current, g.Health.Max), hudMargin+healthBarW+8, float64(y)-2, colornames.White)

	if g.Dead {
		h.centered(screen, c.Get("hud.dead"), common.BaseHeight/2, colornames.Crimson)
	}
	if h.skillsHeld(w) {
		h.skillsOverlay(screen)
	}
}

func (h *HUDSystem) skillsHeld(w *ecs.World) bool {
	player, ok := playerEntity(w)
	if !ok {
		return false
	}
	input, ok := ecs.Get(w, player, component.InputComponent)
	return ok && input.SkillsHeld
}

func (h *HUDSystem) skillsOverlay(screen *ebiten.Image) {
	g := h.game
	c := h.catalog
	all := skills.All()

	const width = 320
	height := float32(hudLineHeight*(len(all)+2) + 8)
	x := float32(common.BaseWidth-width) / 2
	y := (float32(common.BaseHeight) - height) / 2
	vector.FillRect(screen, x, y, width, height, color.NRGBA{A: 200}, false)

	lineX := float64(x) + 12
	lineY := float64(y) + 8
	h.line(screen, c.Get("hud.skills_title"), lineX, lineY, colornames.Gold)
	for i, s := range all {
		ly := lineY + float64(hudLineHeight*(i+1))
		if !g.Skills.GetUnlocked(s) {
			h.line(screen, c.Get("hud.locked", c.Skill(s)), lineX, ly, colornames.Gray)
			continue
		}
		level := g.Skills.Get(s)
		msg := c.Get("hud.skill_line", c.Skill(s), level, g.Skills.GetXP(s), skills.XPNeeded(level))
		h.line(screen, msg, lineX, ly, colornames.White)
	}
}

func (h *HUDSystem) line(screen *ebiten.Image, msg string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, msg, h.face, op)
}

func (h *HUDSystem) centered(screen *ebiten.Image, msg string, y float64, c color.Color) {
	width, _ := ebtext.Measure(msg, h.face, 0)
	h.line(screen, msg, (common.BaseWidth-width)/2, y, c)
}
