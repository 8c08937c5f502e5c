package system

import (
	"testing"

	"arcadia/internal/component"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLookRotation(t *testing.T) {
	for _, dir := range []mgl32.Vec3{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}, {0.3, -0.2, 0.9}} {
		got := LookRotation(dir).Rotate(mgl32.Vec3{0, 0, 1})
		if got.Sub(dir.Normalize()).Len() > 1e-4 {
			t.Fatalf("look %v gave forward %v", dir, got)
		}
	}
}

func TestInsideWorld(t *testing.T) {
	if !InsideWorld(mgl32.Vec3{0, 10, 0}) {
		t.Fatalf("origin area must be inside")
	}
	for _, p := range []mgl32.Vec3{{0, -1, 0}, {1025, 5, 0}, {0, 2049, 0}, {0, 5, -1025}} {
		if InsideWorld(p) {
			t.Fatalf("%v must be outside", p)
		}
	}
}

func TestStrictOverlapIgnoresTouching(t *testing.T) {
	a := physics.AABB{Center: mgl32.Vec3{0, 0, 0}, Half: mgl32.Vec3{0.5, 0.5, 0.5}}
	b := physics.AABB{Center: mgl32.Vec3{1, 0, 0}, Half: mgl32.Vec3{0.5, 0.5, 0.5}}
	if strictOverlap(a, b) {
		t.Fatalf("touching faces counted as overlap")
	}
	b.Center[0] = 0.9
	if !strictOverlap(a, b) {
		t.Fatalf("overlap missed")
	}
}

func TestApplyDamageEvents(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	var got []event.EventType
	d.Subscribe(event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) }),
		event.PlayerHit, event.PlayerEliminated)
	id := ecs.NewEntity()
	ecs.Healths[id] = component.NewHealth(15)
	ecs.Pilots[id] = &component.Pilot{Slot: 1}

	c := NewCombatSystem(ecs, d)
	if c.ApplyDamage(id, 10, event.PlayerHit) {
		t.Fatalf("eliminated too early")
	}
	if !c.ApplyDamage(id, 10, event.PlayerHit) {
		t.Fatalf("not eliminated at 0 hp")
	}
	if ecs.Healths[id].Value != 0 {
		t.Fatalf("hp = %d, want clamp to 0", ecs.Healths[id].Value)
	}
	want := []event.EventType{event.PlayerHit, event.PlayerHit, event.PlayerEliminated}
	if len(got) != len(want) {
		t.Fatalf("events = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("events = %v", got)
		}
	}
	if c.ApplyDamage(ecs.NewEntity(), 10, event.PlayerHit) {
		t.Fatalf("entity without health eliminated")
	}
}

func TestOpponent(t *testing.T) {
	ecs := entity.NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	ecs.Pilots[a] = &component.Pilot{Slot: 0}
	ecs.Pilots[b] = &component.Pilot{Slot: 1}
	if o, ok := Opponent(ecs, a); !ok || o != b {
		t.Fatalf("opponent of a = %v %v", o, ok)
	}
	ecs.SetEnabled(b, false)
	if _, ok := Opponent(ecs, a); ok {
		t.Fatalf("disabled opponent returned")
	}
}

func TestDamageFlashFadesOut(t *testing.T) {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	fx := NewVisualEffectSystem(ecs, d)
	id := ecs.NewEntity()
	ecs.Healths[id] = component.NewHealth(100)
	ecs.Pilots[id] = &component.Pilot{Slot: 0}

	NewCombatSystem(ecs, d).ApplyDamage(id, 10, event.PlayerHit)
	if !fx.Flashing(id) {
		t.Fatalf("hit must start a flash")
	}
	fx.Update(0.1)
	if !fx.Flashing(id) {
		t.Fatalf("flash ended too early")
	}
	fx.Update(0.1)
	if fx.Flashing(id) {
		t.Fatalf("flash still active after its duration")
	}
}

func TestStatsTally(t *testing.T) {
	d := event.NewDispatcher()
	stats := NewStatsSystem(d)
	for i := 0; i < 4; i++ {
		d.Emit(event.ShotFired, event.Shot{Slot: 0})
	}
	d.Emit(event.ShotFired, event.Shot{Slot: 1})
	d.Emit(event.PlayerHit, event.Hit{Slot: 1})
	d.Emit(event.ShipCrashed, event.Hit{Slot: 0})
	d.Emit(event.PlayerHit, event.Hit{Slot: -1})

	p1, p2 := stats.Tally(0), stats.Tally(1)
	if p1.Shots != 4 || p1.Hits != 1 || p1.Crashes != 1 {
		t.Fatalf("p1 = %+v", p1)
	}
	if p2.Shots != 1 || p2.Hits != 0 {
		t.Fatalf("p2 = %+v", p2)
	}
	if p1.Accuracy() != 25 || p2.Accuracy() != 0 {
		t.Fatalf("accuracy = %d/%d", p1.Accuracy(), p2.Accuracy())
	}
	if got := stats.Summary(0); got != "P1  shots 4  hits 1  accuracy 25%" {
		t.Fatalf("summary = %q", got)
	}
	stats.Reset()
	if stats.Tally(0) != (Tally{}) {
		t.Fatalf("reset kept %+v", stats.Tally(0))
	}
}
