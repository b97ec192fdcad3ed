package main

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/ecs"
	"github.com/WaterFace/wizards-spiral/ecs/component"
	"github.com/WaterFace/wizards-spiral/ecs/entity"
	"github.com/WaterFace/wizards-spiral/ecs/system"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/savedata"
	"github.com/WaterFace/wizards-spiral/skills"
	"github.com/WaterFace/wizards-spiral/state"
	"github.com/WaterFace/wizards-spiral/text"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"
)

const appName = "wizards-spiral"

var backgroundColor = color.NRGBA{R: 0x14, G: 0x12, B: 0x1c, A: 0xff}

type Options struct {
	Debug   bool
	Seed    uint64
	Room    string
	NewGame bool
	Lang    string
	Watch   bool
}

type Game struct {
	frames int
	debug  bool
	quit   bool

	state    *state.Game
	world    *ecs.World
	pipeline *system.Pipeline
	catalog  *text.Catalog

	menu      *ebitenui.UI
	pause     *ebitenui.UI
	lastPhase state.Phase

	watcher   *content.Watcher
	clipboard bool
	// startRoom is the -room override, kept across content reloads.
	startRoom string
}

// NewGame loads content and the save slot. Content errors are returned;
// a missing or broken save only costs progress.
func NewGame(opts Options) (*Game, error) {
	cfg, err := content.LoadConfig()
	if err != nil {
		return nil, err
	}
	rooms, err := room.LoadRegistry()
	if err != nil {
		return nil, err
	}
	if opts.Room != "" {
		if _, ok := rooms.Room(opts.Room); !ok {
			return nil, fmt.Errorf("%w: %q", room.ErrUnknownRoom, opts.Room)
		}
		cfg.StartRoom = opts.Room
	}

	var store savedata.Store
	if s, err := savedata.OpenGdataStore(appName); err != nil {
		log.Printf("[save] warning: %v; progress will not be kept", err)
		store = &savedata.MemoryStore{}
	} else {
		store = s
	}

	rng := common.NewRand(opts.Seed)
	log.Printf("[game] seed %d", rng.Seed())

	s := state.New(cfg, rooms, rng, store)
	if !opts.NewGame {
		data, found, err := savedata.Load(store)
		if err != nil {
			log.Printf("[save] warning: %v", err)
		}
		if found {
			s.ApplySave(data)
			log.Printf("[save] loaded: %d cycles", s.Cycles)
		}
	}

	catalog := text.LoadOrDefault(opts.Lang)
	g := &Game{
		debug:     opts.Debug,
		state:     s,
		world:     ecs.NewWorld(),
		pipeline:  system.NewPipeline(s, catalog, true),
		catalog:   catalog,
		lastPhase: s.Phase,
		startRoom: opts.Room,
	}
	g.menu = NewMainMenuUI(g)
	g.pause = NewPauseUI(g)

	if bank, err := loadSoundBank(); err != nil {
		log.Printf("[audio] warning: sound disabled: %v", err)
	} else {
		g.pipeline.Audio.Bank = bank
	}

	if err := clipboard.Init(); err != nil {
		log.Printf("[game] warning: clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}

	if opts.Watch {
		w, err := content.NewWatcher(content.WatchDirs()...)
		if err != nil {
			log.Printf("[content] warning: watch disabled: %v", err)
		} else {
			g.watcher = w
			log.Printf("[content] watching %v", content.WatchDirs())
		}
	}
	return g, nil
}

// Begin starts play from the start room. A fresh start wipes the ledger and
// cycle count but keeps the mute setting.
func (g *Game) Begin(fresh bool) {
	s := g.state
	if fresh {
		s.ApplySave(savedata.SaveData{AudioMuted: s.Muted})
		s.Persist()
	}
	g.clearWorld()
	s.Cache.Reset()
	s.Won = false
	s.Dead = false
	s.DeathTimer = 0
	s.Skills.UnlockSkill(skills.Armor)
	s.Health = state.Health{Current: s.MaxHealth(), Max: s.MaxHealth()}

	if _, err := entity.NewRoomChangeRequest(g.world, s.Config.StartRoom, nil); err != nil {
		log.Printf("[game] error: %v", err)
		return
	}
	s.SetPhase(state.RoomTransition)
}

// ToMainMenu abandons the current cycle. Stored progress is untouched; the
// cycle's unsaved deltas are lost.
func (g *Game) ToMainMenu() {
	s := g.state
	g.clearWorld()
	s.Current = nil
	s.Dead = false
	s.RevertToSave()
	s.SetPhase(state.MainMenu)
}

func (g *Game) ToggleMute() {
	s := g.state
	s.Muted = !s.Muted
	log.Printf("[player] muted=%v", s.Muted)
	s.Persist()
	g.menu = NewMainMenuUI(g)
	g.pause = NewPauseUI(g)
}

func (g *Game) clearWorld() {
	for _, e := range ecs.Entities(g.world) {
		ecs.DestroyEntity(g.world, e)
	}
	g.state.Events.Clear()
}

func (g *Game) Update() error {
	if g.quit {
		g.close()
		return ebiten.Termination
	}
	g.frames++
	g.pollContent()

	switch g.state.Phase {
	case state.MainMenu:
		g.menu.Update()
	case state.Paused:
		g.pause.Update()
		g.pipeline.Update(g.world)
	default:
		g.pipeline.Update(g.world)
	}
	g.handleCopy()

	if p := g.state.Phase; p != g.lastPhase {
		if p == state.MainMenu || p == state.Paused {
			g.menu = NewMainMenuUI(g)
			g.pause = NewPauseUI(g)
		}
		g.lastPhase = p
	}
	return nil
}

// handleCopy puts a reproduction line on the clipboard.
func (g *Game) handleCopy() {
	player, ok := g.world.First(component.PlayerTagComponent)
	if !ok {
		return
	}
	input, ok := ecs.Get(g.world, player, component.InputComponent)
	if !ok || !input.CopyPressed {
		return
	}
	s := g.state
	line := fmt.Sprintf("seed=%d room=%q cycle=%d", s.Rand.Seed(), s.CurrentRoomName(), s.Cycles)
	if !g.clipboard {
		log.Printf("[game] %s", line)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(line))
	log.Printf("[game] copied %s", line)
}

// pollContent applies edits reported by the watcher. A broken edit is
// reported and the running content kept.
func (g *Game) pollContent() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[content] warning: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(name string) {
	log.Printf("[content] %s changed", filepath.Base(name))
	switch filepath.Ext(name) {
	case ".tengo":
		if err := g.pipeline.Skills.ReloadRules(); err != nil {
			log.Printf("[content] error: %v", err)
		}
	case ".po":
		if err := g.catalog.Reload(); err != nil {
			log.Printf("[content] error: %v", err)
			return
		}
		g.menu = NewMainMenuUI(g)
		g.pause = NewPauseUI(g)
	default:
		rooms, err := room.LoadRegistry()
		if err != nil {
			log.Printf("[content] error: %v", err)
			return
		}
		cfg, err := content.LoadConfig()
		if err != nil {
			log.Printf("[content] error: %v", err)
			return
		}
		if g.startRoom != "" {
			cfg.StartRoom = g.startRoom
		}
		g.state.Rooms = rooms
		g.state.Config = cfg
		log.Printf("[content] %d rooms reloaded; applies from the next room", len(rooms.Names()))
	}
}

func (g *Game) close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.state.Phase {
	case state.MainMenu:
		g.menu.Draw(screen)
	default:
		g.pipeline.Render.Draw(g.world, screen)
		g.pipeline.HUD.Draw(g.world, screen)
		if g.state.Phase == state.Paused {
			g.pause.Draw(screen)
		}
	}

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f  phase: %s  bodies: %d", ebiten.ActualFPS(), g.state.Phase, g.pipeline.Physics.BodyCount()), 4, common.BaseHeight-16)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
