package room

import (
	"errors"
	"fmt"

	"github.com/WaterFace/wizards-spiral/common"
	"github.com/jakecoffman/cp"
)

var (
	ErrDuplicateRoomState = errors.New("room: duplicate room state")
	ErrUnknownSpawner     = errors.New("room: unknown spawner")
	ErrNilRoomState       = errors.New("room: nil persistent room state")
)

type SpawnerType int

const (
	SpawnerMelee SpawnerType = iota
	SpawnerRanged
	SpawnerBoss
)

func (t SpawnerType) String() string {
	switch t {
	case SpawnerRanged:
		return "ranged"
	case SpawnerBoss:
		return "boss"
	}
	return "melee"
}

type SpawnerState struct {
	Position cp.Vector
	Type     SpawnerType
	// Active is false once the spawner's enemy died this cycle.
	Active bool
}

type State struct {
	Spawners  []SpawnerState
	Obstacles []cp.Vector
}

// Generate places spawners and obstacles uniformly inside the room rect,
// shrunk by margin on each axis. Spawners come first in melee, ranged, boss
// order, then obstacles, all drawn from rng.
func Generate(info Info, margin float64, rng *common.Rand) State {
	center := info.Rect.Center()
	half := info.Rect.HalfSize().Mult(1 - margin)

	var st State
	add := func(n int, t SpawnerType) {
		for i := 0; i < n; i++ {
			st.Spawners = append(st.Spawners, SpawnerState{Position: rng.InRect(center, half), Type: t, Active: true})
		}
	}
	add(info.Melee, SpawnerMelee)
	add(info.Ranged, SpawnerRanged)
	if info.Boss {
		add(1, SpawnerBoss)
	}
	for i := 0; i < info.Obstacles; i++ {
		st.Obstacles = append(st.Obstacles, rng.InRect(center, half))
	}
	return st
}

// PersistentRoomState caches each room's layout for the rest of the cycle.
type PersistentRoomState struct {
	rooms map[string]*State
}

func NewPersistentRoomState() *PersistentRoomState {
	return &PersistentRoomState{rooms: make(map[string]*State)}
}

func (p *PersistentRoomState) Get(name string) (*State, bool) {
	if p == nil {
		return nil, false
	}
	st, ok := p.rooms[name]
	return st, ok
}

// GetOrCreate returns the cached state for name, calling generate and
// caching its result only when none exists. created reports which happened.
func (p *PersistentRoomState) GetOrCreate(name string, generate func() State) (st *State, created bool) {
	if existing, ok := p.Get(name); ok {
		return existing, false
	}
	fresh := generate()
	if err := p.Insert(name, fresh); err != nil {
		panic("room: insert after miss: " + err.Error())
	}
	return p.rooms[name], true
}

// Insert refuses to overwrite an existing entry.
func (p *PersistentRoomState) Insert(name string, st State) error {
	if p == nil {
		return ErrNilRoomState
	}
	if p.rooms == nil {
		p.rooms = make(map[string]*State)
	}
	if _, ok := p.rooms[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoomState, name)
	}
	p.rooms[name] = &st
	return nil
}

func (p *PersistentRoomState) MarkSpawnerInactive(name string, index int) error {
	st, ok := p.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoom, name)
	}
	if index < 0 || index >= len(st.Spawners) {
		return fmt.Errorf("%w: %q index %d", ErrUnknownSpawner, name, index)
	}
	st.Spawners[index].Active = false
	return nil
}

// Reset forgets every room; the next visit regenerates its layout.
func (p *PersistentRoomState) Reset() {
	if p == nil {
		return
	}
	clear(p.rooms)
}

func (p *PersistentRoomState) Len() int {
	if p == nil {
		return 0
	}
	return len(p.rooms)
}
