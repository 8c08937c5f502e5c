package app

import (
	"math"
	"testing"

	"arcadia/internal/input"
	"arcadia/internal/score"
	"arcadia/internal/settings"

	"github.com/go-gl/mathgl/mgl32"
)

func newArena() *ArenaGame { return NewArenaGame(settings.DefaultProfiles(), nil) }

func TestArenaUsesSettings(t *testing.T) {
	profiles := settings.DefaultProfiles()
	profiles[1].Adjust(settings.HealthPoints, 7)
	g := NewArenaGame(profiles, nil)
	if g.Health(0).Max != 115 || g.Health(1).Max != 150 {
		t.Fatalf("health = %d/%d", g.Health(0).Max, g.Health(1).Max)
	}
	if g.HPLabel(1) != "P2 HP: 150" {
		t.Fatalf("label = %q", g.HPLabel(1))
	}
	if len(g.Walls) != 4 || len(g.Covers) != 6 {
		t.Fatalf("walls=%d covers=%d", len(g.Walls), len(g.Covers))
	}
}

func TestFighterTurnsAndMoves(t *testing.T) {
	g := newArena()
	g.ECS.Transforms[g.Fighters[0]].Position = mgl32.Vec3{-10, 0.5, -8}
	c := [2]input.Controls{{Right: true}}
	// 120°/с × 0.75 с = 90°: взгляд на +X
	g.Step(0.75, c)
	fwd := g.ECS.Transforms[g.Fighters[0]].Forward()
	if math.Abs(float64(fwd.X())-1) > 1e-3 {
		t.Fatalf("forward = %v, want +X", fwd)
	}
	c = [2]input.Controls{{Up: true}}
	g.Step(0.5, c)
	if x := g.ECS.Transforms[g.Fighters[0]].Position.X(); math.Abs(float64(x)+7) > 1e-3 {
		t.Fatalf("x = %v, want -7", x)
	}
}

func TestFighterBlockedByBoundsAndCover(t *testing.T) {
	g := newArena()
	tr := g.ECS.Transforms[g.Fighters[0]]
	tr.Position = mgl32.Vec3{-10, 0.5, 10.2}
	g.Step(0.1, [2]input.Controls{{Up: true}})
	if tr.Position.Z() != 10.2 {
		t.Fatalf("moved past z limit: %v", tr.Position)
	}

	// укрытие (-5,-5) занимает [-6,-4]; подходим снизу
	tr.Position = mgl32.Vec3{-5, 0.5, -7}
	g.Step(0.2, [2]input.Controls{{Up: true}})
	if tr.Position.Z() != -7 {
		t.Fatalf("walked into cover: %v", tr.Position)
	}
}

func TestFighterLeavesStartingCover(t *testing.T) {
	g := newArena()
	tr := g.ECS.Transforms[g.Fighters[0]]
	g.Step(0.5, [2]input.Controls{{Down: true}})
	if tr.Position.Z() >= -5 {
		t.Fatalf("fighter stuck in spawn cover at %v", tr.Position)
	}
}

func TestProjectileHitEndsMatch(t *testing.T) {
	profiles := settings.DefaultProfiles()
	profiles[1].Set(settings.HealthPoints, 80)
	profiles[0].Set(settings.ShotPower, 40)
	g := NewArenaGame(profiles, nil)
	for _, id := range g.Covers {
		g.ECS.Destroy(id)
	}
	g.ECS.Transforms[g.Fighters[0]].Position = mgl32.Vec3{0, 0.5, -8}
	g.ECS.Transforms[g.Fighters[1]].Position = mgl32.Vec3{0, 0.5, -4}

	c := [2]input.Controls{{Fire: true}}
	var outcome score.Outcome
	for i := 0; i < 200 && outcome == score.None; i++ {
		outcome = g.Step(0.05, c)
	}
	if outcome != score.P1Wins {
		t.Fatalf("outcome = %v, want P1 wins", outcome)
	}
	if g.Health(1).Value != 0 {
		t.Fatalf("P2 hp = %d", g.Health(1).Value)
	}
	if g.Match.Winner != "Player 1" || g.Match.Score <= 0 {
		t.Fatalf("match = %+v", g.Match)
	}
}

func TestBothDownPlayerOneWins(t *testing.T) {
	g := newArena()
	g.Health(0).Value = 0
	g.Health(1).Value = 0
	if got := g.Step(0.01, [2]input.Controls{}); got != score.P1Wins {
		t.Fatalf("outcome = %v, want P1 wins", got)
	}
}

func TestProjectileLeavesArena(t *testing.T) {
	g := newArena()
	for _, id := range append(g.Walls, g.Covers...) {
		g.ECS.Destroy(id)
	}
	g.ECS.Transforms[g.Fighters[0]].Position = mgl32.Vec3{-15, 0.5, -10}
	g.ECS.Transforms[g.Fighters[1]].Position = mgl32.Vec3{15, 0.5, 10}
	g.Step(0.01, [2]input.Controls{{Fire: true}})
	if len(g.Projectiles()) != 1 {
		t.Fatalf("projectiles = %d", len(g.Projectiles()))
	}
	for i := 0; i < 100; i++ {
		g.Step(0.05, [2]input.Controls{})
	}
	if len(g.Projectiles()) != 0 {
		t.Fatalf("projectile not destroyed past the edge")
	}
}
