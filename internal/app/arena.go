package app

import (
	"fmt"
	"image/color"
	"log"

	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/input"
	"arcadia/internal/score"
	"arcadia/internal/settings"
	"arcadia/internal/system"
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Расстановка арены: бойцы, укрытия 2×2 и стены сразу за краем пола.
var (
	ArenaSpawns = [2]mgl32.Vec3{{-5, 0.5, -5}, {5, 0.5, 5}}
	arenaCovers = []mgl32.Vec3{
		{5, 0.5, 0},
		{-5, 0.5, 0},
		{0, 0.5, 5},
		{0, 0.5, -5},
		{5, 0.5, 5},
		{-5, 0.5, -5},
	}
)

// ArenaGame — дуэль на арене с видом сверху.
type ArenaGame struct {
	ECS              *entity.ECS
	EventDispatcher  *event.Dispatcher
	CombatSystem     *system.CombatSystem
	FighterSystem    *system.FighterSystem
	ProjectileSystem *system.ProjectileSystem
	EffectSystem     *system.VisualEffectSystem
	StatsSystem      *system.StatsSystem

	Fighters [2]types.EntityID
	Walls    []types.EntityID
	Covers   []types.EntityID
	Match    Match
}

// NewArenaGame строит арену. Бойцы получают параметры из profiles.
func NewArenaGame(profiles settings.Profiles, eventDispatcher *event.Dispatcher) *ArenaGame {
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	ecs := entity.NewECS()
	g := &ArenaGame{ECS: ecs, EventDispatcher: eventDispatcher}
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.FighterSystem = system.NewFighterSystem(ecs, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.CombatSystem)
	g.EffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)
	g.Reset(profiles)
	return g
}

// Reset — новый матч: стены и укрытия на месте, бойцы на точках появления.
func (g *ArenaGame) Reset(profiles settings.Profiles) {
	g.ECS.Clear()
	g.Walls = g.Walls[:0]
	g.Covers = g.Covers[:0]

	const w, half = config.ArenaWallOffset, config.ArenaSize / 2
	for _, wall := range []struct{ pos, half mgl32.Vec3 }{
		{mgl32.Vec3{0, 0.5, w}, mgl32.Vec3{half, 0.5, 0.5}},
		{mgl32.Vec3{0, 0.5, -w}, mgl32.Vec3{half, 0.5, 0.5}},
		{mgl32.Vec3{w, 0.5, 0}, mgl32.Vec3{0.5, 0.5, half}},
		{mgl32.Vec3{-w, 0.5, 0}, mgl32.Vec3{0.5, 0.5, half}},
	} {
		g.Walls = append(g.Walls, g.block(wall.pos, wall.half, component.TagWall, config.WallColor))
	}
	c := float32(config.ArenaCoverSize / 2)
	for _, pos := range arenaCovers {
		g.Covers = append(g.Covers, g.block(pos, mgl32.Vec3{c, 0.5, c}, component.TagCover, config.CoverColor))
	}
	for slot := range g.Fighters {
		g.Fighters[slot] = g.createFighter(slot, profiles[slot])
	}
	g.StatsSystem.Reset()
	g.Match = newMatch()
	log.Printf("arena match %s started", g.Match.ID)
}

// Step продвигает матч на кадр. Если оба бойца выбыли в одном кадре, побеждает Player 1.
func (g *ArenaGame) Step(deltaTime float64, controls [2]input.Controls) score.Outcome {
	if g.Match.Over() {
		return g.Match.Outcome
	}
	g.Match.Elapsed += deltaTime
	g.ECS.GameTime += deltaTime

	g.EffectSystem.Update(deltaTime)
	g.FighterSystem.Update(deltaTime, controls)
	out := g.ProjectileSystem.Update(deltaTime)
	for slot, id := range g.Fighters {
		if h := g.ECS.Healths[id]; h != nil && !h.Alive() {
			out[slot] = true
		}
	}

	outcome := score.Decide(out[0], out[1])
	if outcome == score.Draw {
		outcome = score.P1Wins
	}
	if outcome != score.None {
		pilots := [2]*component.Pilot{g.ECS.Pilots[g.Fighters[0]], g.ECS.Pilots[g.Fighters[1]]}
		g.Match.finish(outcome, pilots, [2]*component.Health{g.Health(0), g.Health(1)}, g.EventDispatcher)
	}
	return g.Match.Outcome
}

func (g *ArenaGame) Health(slot int) *component.Health { return g.ECS.Healths[g.Fighters[slot]] }

// HPLabel — «P1 HP: 100» для HUD
func (g *ArenaGame) HPLabel(slot int) string {
	hp := 0
	if h := g.Health(slot); h != nil {
		hp = h.Value
	}
	return fmt.Sprintf("P%d HP: %d", slot+1, hp)
}

// Projectiles — живые снаряды для отрисовки
func (g *ArenaGame) Projectiles() []types.EntityID {
	ids := make([]types.EntityID, 0, len(g.ECS.Projectiles))
	for id := range g.ECS.Projectiles {
		ids = append(ids, id)
	}
	return ids
}

func (g *ArenaGame) block(pos, half mgl32.Vec3, tag component.Tag, col color.RGBA) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.SetTransform(id, component.NewTransform(pos))
	g.ECS.Colliders[id] = component.NewBoxCollider(half, tag)
	g.ECS.Renderables[id] = &component.Renderable{Color: col, Size: half.Mul(2)}
	return id
}

func (g *ArenaGame) createFighter(slot int, p settings.Player) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.SetTransform(id, component.NewTransform(ArenaSpawns[slot]))
	half := float32(config.FighterSize / 2)
	g.ECS.Colliders[id] = component.NewBoxCollider(mgl32.Vec3{half, half, half}, component.TagFighter)
	g.ECS.Healths[id] = component.NewHealth(int(p.Get(settings.HealthPoints)))
	g.ECS.Pilots[id] = &component.Pilot{
		Name:      playerName(slot),
		Slot:      slot,
		HPPenalty: config.FighterHPPenalty,
		Spawn:     ArenaSpawns[slot],
	}
	shotDelay := float32(p.Get(settings.ShotDelay))
	g.ECS.Fighters[id] = &component.Fighter{
		TurnSpeed:       float32(p.Get(settings.RotationSpeed)),
		MoveSpeed:       float32(p.Get(settings.MovementSpeed)),
		ShotDelay:       shotDelay,
		ShotPower:       int(p.Get(settings.ShotPower)),
		ProjectileSpeed: float32(p.Get(settings.ProjectileSpeed)),
		SinceShot:       shotDelay,
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color: config.PlayerColors[slot],
		Size:  mgl32.Vec3{config.FighterSize, config.FighterSize, config.FighterSize},
	}
	return id
}
