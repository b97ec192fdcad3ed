package state

import (
	"log"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/WaterFace/wizards-spiral/content"
	"github.com/WaterFace/wizards-spiral/room"
	"github.com/WaterFace/wizards-spiral/savedata"
	"github.com/WaterFace/wizards-spiral/skills"
)

// TickDelta is the fixed simulation step in seconds.
const TickDelta = 1.0 / 60.0

type Health struct {
	Current float64
	Max     float64
}

// Game is the state shared by every system. It is owned by the game loop and
// injected into systems; nothing here is global.
type Game struct {
	Config content.Config
	Rand   *common.Rand
	Skills *skills.PlayerSkills
	Rooms  *room.Registry
	Cache  *room.PersistentRoomState
	Store  savedata.Store

	Current *room.Current
	Phase   Phase
	Cycles  uint64
	Muted   bool
	Health  Health

	// DeathTimer counts down while the player is dead.
	DeathTimer float64
	Dead       bool
	HealTimer  float64
	SpeedTimer float64
	// Won is set when the final boss falls and cleared by the next cycle.
	Won bool

	Events Events
	Dt     float64
}

func New(cfg content.Config, rooms *room.Registry, rng *common.Rand, store savedata.Store) *Game {
	return &Game{
		Config: cfg,
		Rand:   rng,
		Skills: skills.New(),
		Rooms:  rooms,
		Cache:  room.NewPersistentRoomState(),
		Store:  store,
		Phase:  MainMenu,
		Dt:     TickDelta,
	}
}

// SetPhase logs and applies a phase change.
func (g *Game) SetPhase(p Phase) {
	if g == nil || g.Phase == p {
		return
	}
	log.Printf("[state] %s -> %s", g.Phase, p)
	g.Phase = p
}

// MaxHealth is the player's max health under the current skills.
func (g *Game) MaxHealth() float64 {
	return g.Config.Player.BaseHealth * float64(g.Skills.MaxHealthMultiplier())
}

// ApplySave replaces the ledger, cycle count and mute flag with saved values.
func (g *Game) ApplySave(d savedata.SaveData) {
	g.Skills, g.Cycles, g.Muted = d.ToResources()
}

// Persist writes the save slot. Failures are logged and otherwise ignored.
func (g *Game) Persist() {
	if err := savedata.Save(g.Store, savedata.FromResources(g.Skills, g.Cycles, g.Muted)); err != nil {
		log.Printf("[state] warning: %v", err)
	}
}

// RevertToSave drops the running cycle's progress by reloading the save slot.
// When the slot is missing or unreadable the in-memory stored values are kept
// instead, so a failed read never costs stored levels.
func (g *Game) RevertToSave() {
	data, found, err := savedata.Load(g.Store)
	if err != nil {
		log.Printf("[save] warning: %v", err)
	}
	if err != nil || !found {
		g.Skills.DiscardCycle()
		return
	}
	g.ApplySave(data)
}

func (g *Game) CurrentRoomName() string {
	if g == nil || g.Current == nil {
		return ""
	}
	return g.Current.Info.Name
}
