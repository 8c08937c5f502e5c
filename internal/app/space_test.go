package app

import (
	"testing"

	"arcadia/internal/config"
	"arcadia/internal/event"
	"arcadia/internal/input"
	"arcadia/internal/score"

	"github.com/go-gl/mathgl/mgl32"
)

func idle() [2]input.Controls { return [2]input.Controls{} }

func TestAsteroidFieldIsSeeded(t *testing.T) {
	a := NewSpaceGame(0, nil)
	b := NewSpaceGame(0, nil)
	if len(a.Asteroids) != config.AsteroidCount {
		t.Fatalf("asteroids = %d, want %d", len(a.Asteroids), config.AsteroidCount)
	}
	for i := range a.Asteroids {
		pa := a.ECS.Transforms[a.Asteroids[i]].Position
		pb := b.ECS.Transforms[b.Asteroids[i]].Position
		if pa != pb {
			t.Fatalf("asteroid %d differs: %v vs %v", i, pa, pb)
		}
		if nearSpawn(pa, a.ECS.Colliders[a.Asteroids[i]].Radius) {
			t.Fatalf("asteroid %d at %v too close to a spawn", i, pa)
		}
	}
}

func TestShipFliesForwardAndClampsSpeed(t *testing.T) {
	g := NewSpaceGame(0, nil)
	start := g.Position(0)
	c := idle()
	c[0].SpeedDown = true
	for i := 0; i < 10; i++ {
		g.Step(0.1, c)
	}
	if s := g.Ship(0).Speed; s != config.ShipMinSpeed {
		t.Fatalf("speed = %v, want min %v", s, config.ShipMinSpeed)
	}
	moved := g.Position(0).Sub(start)
	if moved.Z() <= 0 || moved.X() != 0 {
		t.Fatalf("P1 must fly along +Z, moved %v", moved)
	}
}

func TestToggleAimAndRearView(t *testing.T) {
	g := NewSpaceGame(0, nil)
	c := idle()
	c[1].ToggleAim = true
	c[1].RearView = true
	g.Step(0.01, c)
	if !g.Ship(1).AimAssist || !g.Ship(1).RearView {
		t.Fatalf("ship 2 = %+v", g.Ship(1))
	}
	if g.Ship(0).AimAssist {
		t.Fatalf("ship 1 toggled by P2 input")
	}
	g.Step(0.01, idle())
	if g.Ship(1).RearView {
		t.Fatalf("rear view is held, must clear on release")
	}
}

func TestFireRespectsCooldown(t *testing.T) {
	d := event.NewDispatcher()
	shots := 0
	d.Subscribe(event.ListenerFunc(func(event.Event) { shots++ }), event.ShotFired)
	g := NewSpaceGame(0, d)
	c := idle()
	c[0].Fire = true
	for i := 0; i < 10; i++ {
		g.Step(0.05, c)
	}
	// 0.5 с при перезарядке 0.15 с: выстрелы на 0, 0.15/0.2, 0.35/0.4 ...
	if shots < 3 || shots > 4 {
		t.Fatalf("shots = %d, want 3..4", shots)
	}
}

func TestLaserHitDamagesOpponent(t *testing.T) {
	g := NewSpaceGame(0, nil)
	// ставим P2 прямо перед P1, вне поля астероидов не важно: лазер короткий
	p1 := g.ECS.Transforms[g.Ships[0]]
	p2 := g.ECS.Transforms[g.Ships[1]]
	p2.Position = p1.Position.Add(mgl32.Vec3{0, 0, 40})
	g.Ship(1).Speed = config.ShipMinSpeed
	for _, id := range g.Asteroids {
		g.ECS.Destroy(id)
	}
	g.CollisionSystem.SetAsteroids(nil)

	c := idle()
	c[0].Fire = true
	g.Step(0.01, c)
	for i := 0; i < 5; i++ {
		g.Step(0.01, idle())
	}
	if hp := g.Health(1).Value; hp != config.ShipHealth-config.LaserDamage {
		t.Fatalf("P2 hp = %d, want %d", hp, config.ShipHealth-config.LaserDamage)
	}
	if g.Health(0).Value != config.ShipHealth {
		t.Fatalf("shooter damaged itself")
	}
}

func TestLeavingWorldEliminates(t *testing.T) {
	g := NewSpaceGame(0, nil)
	g.ECS.Transforms[g.Ships[1]].Position = mgl32.Vec3{0, -5, 0}
	if got := g.Step(0.01, idle()); got != score.P1Wins {
		t.Fatalf("outcome = %v, want P1 wins", got)
	}
	if g.Match.Score <= 0 {
		t.Fatalf("winner score = %d", g.Match.Score)
	}
	// после конца матча шаги ничего не меняют
	elapsed := g.Match.Elapsed
	g.Step(1, idle())
	if g.Match.Elapsed != elapsed {
		t.Fatalf("finished match kept running")
	}
}

func TestRamIsDraw(t *testing.T) {
	g := NewSpaceGame(0, nil)
	g.ECS.Transforms[g.Ships[1]].Position = g.Position(0).Add(mgl32.Vec3{0.5, 0, 0})
	if got := g.Step(0.001, idle()); got != score.Draw {
		t.Fatalf("outcome = %v, want draw", got)
	}
}

func TestAsteroidCrashRespawns(t *testing.T) {
	d := event.NewDispatcher()
	crashes := 0
	d.Subscribe(event.ListenerFunc(func(event.Event) { crashes++ }), event.ShipCrashed)
	g := NewSpaceGame(0, d)
	rock := g.Asteroids[0]
	g.ECS.Transforms[g.Ships[0]].Position = g.ECS.Transforms[rock].Position
	g.Step(0.001, idle())
	if crashes != 1 {
		t.Fatalf("crashes = %d", crashes)
	}
	if hp := g.Health(0).Value; hp != config.ShipHealth-config.AsteroidDamage {
		t.Fatalf("hp = %d", hp)
	}
	if d := g.Position(0).Sub(SpaceSpawns[0]).Len(); d > 1 {
		t.Fatalf("ship not respawned, %v from spawn", d)
	}
}

func TestResetNewMatchID(t *testing.T) {
	g := NewSpaceGame(0, nil)
	id := g.Match.ID
	g.Reset()
	if g.Match.ID == id || g.Match.ID == "" {
		t.Fatalf("match id not renewed: %q", g.Match.ID)
	}
	if len(g.Lasers()) != 0 {
		t.Fatalf("lasers survived reset")
	}
}

func TestChaseOffsetAndFocus(t *testing.T) {
	if o := ChaseOffset(500, false); o != (mgl32.Vec3{0, 2.2, -40}) {
		t.Fatalf("offset = %v", o)
	}
	if o := ChaseOffset(100, true); o != (mgl32.Vec3{0, 2.2, 20}) {
		t.Fatalf("rear offset = %v", o)
	}
	if FocusScale(100) != config.FocusCircleMin || FocusScale(0) != config.FocusCircleMax {
		t.Fatalf("focus clamp broken")
	}
	var f FocusCircle
	for i := 0; i < 180; i++ {
		f.Advance(50)
	}
	if f.Angle != 0 {
		t.Fatalf("angle after full turn = %v", f.Angle)
	}
}
