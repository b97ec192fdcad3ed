package ecs

import (
	"testing"

	"github.com/WaterFace/wizards-spiral/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
		wantAlive    int
	}{
		{"single", 1, 0, 0},
		{"three_destroy_middle", 3, 1, 2},
		{"none_destroyed", 2, -1, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
			if got := len(Entities(w)); got != c.wantAlive {
				t.Fatalf("expected %d live entities, got %d", c.wantAlive, got)
			}
		})
	}
}

func TestRecycledIDGetsNewGeneration(t *testing.T) {
	w := NewWorld()
	kind := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, kind, intPtr(1)); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("expected id reuse, got %d and %d", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatalf("recycled entity should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatalf("stale handle should not be alive")
	}
	if Has(w, fresh, kind) {
		t.Fatalf("components must not leak to a recycled id")
	}
	if err := Add(w, old, kind, intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("expected ErrEntityNotAlive for stale handle, got %v", err)
	}
}

func TestAddGetRemove(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)

	tests := []struct {
		name     string
		setup    func() error
		check    func(t *testing.T)
		teardown func() bool
	}{
		{
			name:  "int_on_e1",
			setup: func() error { return Add(w, e1, ints, intPtr(10)) },
			check: func(t *testing.T) {
				v, ok := Get(w, e1, ints)
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				if Has(w, e2, ints) {
					t.Fatalf("e2 should not have int")
				}
			},
			teardown: func() bool { return Remove(w, e1, ints) },
		},
		{
			name: "string_on_both",
			setup: func() error {
				if err := Add(w, e1, strs, stringPtr("a")); err != nil {
					return err
				}
				return Add(w, e2, strs, stringPtr("b"))
			},
			check: func(t *testing.T) {
				if !Has(w, e1, strs) || !Has(w, e2, strs) {
					t.Fatalf("expected both entities to have string component")
				}
			},
			teardown: func() bool { return Remove(w, e1, strs) },
		},
		{
			name:  "overwrite_keeps_single_entry",
			setup: func() error { Add(w, e2, ints, intPtr(1)); return Add(w, e2, ints, intPtr(2)) },
			check: func(t *testing.T) {
				count := 0
				ForEach(w, ints, func(_ Entity, v *int) {
					count++
					if *v != 2 {
						t.Fatalf("expected overwritten value 2, got %d", *v)
					}
				})
				if count != 1 {
					t.Fatalf("expected one stored value, got %d", count)
				}
			},
			teardown: func() bool { return Remove(w, e2, ints) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.setup(); err != nil {
				t.Fatalf("setup failed: %v", err)
			}
			tc.check(t)
			if !tc.teardown() {
				t.Fatalf("teardown failed for %s", tc.name)
			}
		})
	}

	if err := Add[int](w, e1, ints, nil); err != component.ErrNilComponent {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
	if err := Add(w, e1, component.ComponentHandle[int]{}, intPtr(1)); err != component.ErrInvalidComponentKind {
		t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
	}
}

func TestDestroyDuringForEach(t *testing.T) {
	w := NewWorld()
	tag := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, tag, intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}

	visited := 0
	ForEach(w, tag, func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("expected to visit 5 entities, visited %d", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("expected all entities destroyed, got %d", len(Entities(w)))
	}
	if _, ok := w.First(tag); ok {
		t.Fatalf("First should fail on an empty store")
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "intersection",
			run: func(t *testing.T) {
				w := NewWorld()
				e1 := CreateEntity(w)
				e2 := CreateEntity(w)
				e3 := CreateEntity(w)

				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				kc := component.NewComponent[int]()

				Add(w, e1, ka, intPtr(1))
				Add(w, e2, ka, intPtr(2))
				Add(w, e2, kb, intPtr(3))
				Add(w, e2, kc, intPtr(5))
				Add(w, e3, kb, intPtr(4))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 1 || res[0] != e2 {
					t.Fatalf("expected only e2, got %v", res)
				}
			},
		},
		{
			name: "missing_store",
			run: func(t *testing.T) {
				w := NewWorld()
				e := CreateEntity(w)
				ka := component.NewComponent[int]()
				kb := component.NewComponent[int]()
				kc := component.NewComponent[int]()
				Add(w, e, ka, intPtr(1))

				var res []Entity
				ForEach3(w, ka, kb, kc, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach4IgnoresDestroyed(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	keep := CreateEntity(w)

	ka := component.NewComponent[int]()
	kb := component.NewComponent[int]()
	kc := component.NewComponent[int]()
	kd := component.NewComponent[int]()
	for _, ent := range []Entity{e, keep} {
		Add(w, ent, ka, intPtr(1))
		Add(w, ent, kb, intPtr(2))
		Add(w, ent, kc, intPtr(3))
		Add(w, ent, kd, intPtr(4))
	}
	DestroyEntity(w, e)

	var res []Entity
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != keep {
		t.Fatalf("expected only the surviving entity, got %v", res)
	}
}

func TestQueueDrain(t *testing.T) {
	var q Queue[string]
	q.Push("a")
	q.Push("b")
	if q.Len() != 2 {
		t.Fatalf("expected 2 queued, got %d", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected drain order %v", got)
	}
	if again := q.Drain(); len(again) != 0 {
		t.Fatalf("second drain should be empty, got %v", again)
	}

	var nilQueue *Queue[int]
	nilQueue.Push(1)
	if nilQueue.Len() != 0 {
		t.Fatalf("nil queue should stay empty")
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (s recordingSystem) Update(*World) {
	*s.log = append(*s.log, s.name)
}

func TestSchedulerOrder(t *testing.T) {
	var order []string
	s := NewScheduler(recordingSystem{"detect", &order}, recordingSystem{"resolve", &order})
	s.Add(recordingSystem{"apply", &order})
	s.Add(nil)
	s.Update(NewWorld())

	want := []string{"detect", "resolve", "apply"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestEntityHandleReuse(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if !DestroyEntity(w, first) {
		t.Fatalf("expected destroy to succeed")
	}
	second := CreateEntity(w)
	if second == first {
		t.Fatalf("expected a new generation for reused slot %s", first)
	}
	if IsAlive(w, first) {
		t.Fatalf("expected stale handle %s to be dead", first)
	}
	if !IsAlive(w, second) {
		t.Fatalf("expected %s alive", second)
	}
}
