package room

import (
	"errors"
	"fmt"
	"sort"

	"github.com/WaterFace/wizards-spiral/content"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrUnknownRoom  = errors.New("room: unknown room")
	ErrMissingStats = errors.New("room: missing enemy stats")
)

// Registry holds every room definition and enemy stat record. It is filled
// once during loading and read-only afterwards.
type Registry struct {
	rooms   map[string]Definition
	order   []string
	enemies map[string]EnemyStats
	bosses  map[string]BossStats
}

// LoadRegistry reads rooms.yaml and enemies.yaml through the content loader.
func LoadRegistry() (*Registry, error) {
	rooms, err := content.LoadSpec[roomFile](content.RoomsFile)
	if err != nil {
		return nil, err
	}
	enemies, err := content.LoadSpec[EnemyFile](content.EnemiesFile)
	if err != nil {
		return nil, err
	}
	return NewRegistry(rooms.Rooms, enemies)
}

// NewRegistry validates the definitions and builds a registry. Every problem
// found is reported in the returned error.
func NewRegistry(defs []Definition, enemies EnemyFile) (*Registry, error) {
	r := &Registry{
		rooms:   make(map[string]Definition, len(defs)),
		enemies: make(map[string]EnemyStats, len(enemies.Enemies)),
		bosses:  make(map[string]BossStats, len(enemies.Bosses)),
	}
	var errs []error

	for name, stats := range enemies.Enemies {
		if err := stats.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("room: enemy %q: %w", name, err))
		}
		r.enemies[name] = stats
	}
	for name, boss := range enemies.Bosses {
		if boss.Name == "" {
			boss.Name = name
		}
		if boss.Scale <= 0 {
			boss.Scale = 1
		}
		if err := boss.Stats.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("room: boss %q: %w", name, err))
		}
		r.bosses[name] = boss
	}

	names := mapset.New[string]()
	for _, def := range defs {
		if def.Name == "" {
			errs = append(errs, errors.New("room: definition without a name"))
			continue
		}
		if names.Has(def.Name) {
			errs = append(errs, fmt.Errorf("room: duplicate room %q", def.Name))
			continue
		}
		names.Put(def.Name)
		r.rooms[def.Name] = def
		r.order = append(r.order, def.Name)
	}

	for _, name := range r.order {
		def := r.rooms[name]
		if def.Rect.W <= 0 || def.Rect.H <= 0 {
			errs = append(errs, fmt.Errorf("room: %q has an empty rect", name))
		}
		if def.Melee < 0 || def.Ranged < 0 || def.Obstacles < 0 {
			errs = append(errs, fmt.Errorf("room: %q has a negative count", name))
		}
		for _, d := range Directions() {
			if link, ok := def.Link(d); ok && !names.Has(link) {
				errs = append(errs, fmt.Errorf("room: %q %s link to %q: %w", name, d, link, ErrUnknownRoom))
			}
		}
		if _, ok := r.enemies[def.Assets.MeleeStats]; !ok {
			errs = append(errs, fmt.Errorf("room: %q melee stats %q: %w", name, def.Assets.MeleeStats, ErrMissingStats))
		}
		if _, ok := r.enemies[def.Assets.RangedStats]; !ok {
			errs = append(errs, fmt.Errorf("room: %q ranged stats %q: %w", name, def.Assets.RangedStats, ErrMissingStats))
		}
		if def.Boss {
			if _, ok := r.bosses[def.Assets.BossStats]; !ok {
				errs = append(errs, fmt.Errorf("room: %q boss stats %q: %w", name, def.Assets.BossStats, ErrMissingStats))
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

func (r *Registry) Room(name string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	def, ok := r.rooms[name]
	return def, ok
}

// Names returns room names in definition order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

func (r *Registry) Boss(name string) (BossStats, bool) {
	if r == nil {
		return BossStats{}, false
	}
	b, ok := r.bosses[name]
	return b, ok
}

// Resolve returns the room with its stat records looked up.
func (r *Registry) Resolve(name string) (Current, error) {
	def, ok := r.Room(name)
	if !ok {
		return Current{}, fmt.Errorf("%w: %q", ErrUnknownRoom, name)
	}
	melee, ok := r.enemies[def.Assets.MeleeStats]
	if !ok {
		return Current{}, fmt.Errorf("%w: %q melee %q", ErrMissingStats, name, def.Assets.MeleeStats)
	}
	ranged, ok := r.enemies[def.Assets.RangedStats]
	if !ok {
		return Current{}, fmt.Errorf("%w: %q ranged %q", ErrMissingStats, name, def.Assets.RangedStats)
	}
	cur := Current{Info: def.Info, Assets: def.Assets, MeleeStats: melee, RangedStats: ranged}
	if def.Boss {
		boss, ok := r.bosses[def.Assets.BossStats]
		if !ok {
			return Current{}, fmt.Errorf("%w: %q boss %q", ErrMissingStats, name, def.Assets.BossStats)
		}
		cur.BossStats = &boss
	}
	return cur, nil
}

// Reachable returns every room reachable from start by following links.
func (r *Registry) Reachable(start string) mapset.Set[string] {
	visited := mapset.New[string]()
	if _, ok := r.Room(start); !ok {
		return visited
	}
	queue := []string{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		def := r.rooms[cur]
		for _, d := range Directions() {
			next, ok := def.Link(d)
			if !ok || visited.Has(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// OneWayLinks lists links whose target does not link back through the
// opposite wall. They are legal but usually a content mistake.
func (r *Registry) OneWayLinks() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, name := range r.order {
		def := r.rooms[name]
		for _, d := range Directions() {
			next, ok := def.Link(d)
			if !ok {
				continue
			}
			back, ok := r.rooms[next].Link(d.Opposite())
			if !ok || back != name {
				out = append(out, fmt.Sprintf("%s -%s-> %s", name, d, next))
			}
		}
	}
	sort.Strings(out)
	return out
}
