package main

import (
	"image/color"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/state"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	menuTextColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	menuTitleColor = color.NRGBA{R: 0xe8, G: 0xc1, B: 0x70, A: 0xff}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenuUI builds a centered panel with a title, an optional subtitle and a
// column of buttons. The buttons use colored nine-slices so no theme fonts
// need loading.
func newMenuUI(title, subtitle string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	hoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x4a, G: 0x4a, B: 0x5a, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: menuTextColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, menuTitleColor),
		widget.TextOpts.WidgetOpts(centered),
	))
	if subtitle != "" {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(subtitle, &face, menuTextColor),
			widget.TextOpts.WidgetOpts(centered),
		))
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: hoverImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered, widget.WidgetOpts.MinSize(180, 0)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

// NewMainMenuUI offers Continue when there is progress to continue from.
func NewMainMenuUI(g *Game) *ebitenui.UI {
	c := g.catalog
	s := g.state

	subtitle := c.Get("hud.cycle", s.Cycles)
	if s.Won {
		subtitle = c.Get("outro.victory")
	}

	var buttons []menuButton
	if s.Cycles > 0 && !s.Won {
		buttons = append(buttons, menuButton{c.Get("menu.continue"), func() { g.Begin(false) }})
	}
	buttons = append(buttons,
		menuButton{c.Get("menu.new_game"), func() { g.Begin(true) }},
		menuButton{muteLabel(g), func() { g.ToggleMute() }},
		menuButton{c.Get("menu.quit"), func() { g.quit = true }},
	)
	return newMenuUI(c.Get("menu.title"), subtitle, buttons)
}

func NewPauseUI(g *Game) *ebitenui.UI {
	c := g.catalog
	return newMenuUI(c.Get("menu.paused"), "", []menuButton{
		{c.Get("menu.resume"), func() { g.state.SetPhase(state.InGame) }},
		{muteLabel(g), func() { g.ToggleMute() }},
		{c.Get("menu.main_menu"), func() { g.ToMainMenu() }},
	})
}

func muteLabel(g *Game) string {
	if g.state.Muted {
		return g.catalog.Get("menu.unmute")
	}
	return g.catalog.Get("menu.mute")
}
