package app

import (
	"log"
	"math"

	"arcadia/internal/aim"
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/input"
	"arcadia/internal/score"
	"arcadia/internal/system"
	"arcadia/internal/types"
	"arcadia/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// Точки появления кораблей, второй летит навстречу первому.
var (
	SpaceSpawns = [2]mgl32.Vec3{{-50, 300, -300}, {50, 300, 300}}
	spaceYaws   = [2]float32{0, math.Pi}
)

// SpaceGame — космический бой на двоих: корабли, лазеры, поле астероидов.
type SpaceGame struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	CombatSystem    *system.CombatSystem
	ShipSystem      *system.ShipSystem
	LaserSystem     *system.LaserSystem
	CollisionSystem *system.ShipCollisionSystem
	EffectSystem    *system.VisualEffectSystem
	StatsSystem     *system.StatsSystem

	Ships     [2]types.EntityID
	Asteroids []types.EntityID
	Match     Match

	seed int64
}

// NewSpaceGame собирает мир. Одинаковый сид даёт одинаковое поле астероидов.
func NewSpaceGame(seed int64, eventDispatcher *event.Dispatcher) *SpaceGame {
	if eventDispatcher == nil {
		eventDispatcher = event.NewDispatcher()
	}
	ecs := entity.NewECS()
	profiles := [2]aim.Profile{
		{Threshold: config.AimProfileP1[0], Blend: config.AimProfileP1[1]},
		{Threshold: config.AimProfileP2[0], Blend: config.AimProfileP2[1]},
	}
	g := &SpaceGame{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		seed:            seed,
	}
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher)
	g.ShipSystem = system.NewShipSystem(ecs, eventDispatcher, profiles)
	g.LaserSystem = system.NewLaserSystem(ecs, g.CombatSystem)
	g.CollisionSystem = system.NewShipCollisionSystem(ecs, g.CombatSystem)
	g.EffectSystem = system.NewVisualEffectSystem(ecs, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)
	g.Reset()
	return g
}

// Reset начинает новый матч с тем же полем астероидов.
func (g *SpaceGame) Reset() {
	g.ECS.Clear()
	g.Asteroids = g.generateAsteroids(utils.NewPRNGService(g.seed))
	g.CollisionSystem.SetAsteroids(g.Asteroids)
	for slot := range g.Ships {
		g.Ships[slot] = g.createShip(slot)
	}
	g.StatsSystem.Reset()
	g.Match = newMatch()
	log.Printf("space match %s: %d asteroids, seed %d", g.Match.ID, len(g.Asteroids), g.seed)
}

// Step продвигает матч на один кадр. После завершения матча ничего не делает.
func (g *SpaceGame) Step(deltaTime float64, controls [2]input.Controls) score.Outcome {
	if g.Match.Over() {
		return g.Match.Outcome
	}
	g.Match.Elapsed += deltaTime
	g.ECS.GameTime += deltaTime

	g.EffectSystem.Update(deltaTime)
	g.ShipSystem.Update(deltaTime, controls)
	out := g.LaserSystem.Update(deltaTime)
	out = out.Merge(g.CollisionSystem.Update())

	if outcome := score.Decide(out[0], out[1]); outcome != score.None {
		g.Match.finish(outcome, g.pilots(), g.healths(), g.EventDispatcher)
	}
	return g.Match.Outcome
}

// Ship — компонент корабля игрока
func (g *SpaceGame) Ship(slot int) *component.Ship { return g.ECS.Ships[g.Ships[slot]] }

// Health — здоровье игрока
func (g *SpaceGame) Health(slot int) *component.Health { return g.ECS.Healths[g.Ships[slot]] }

// Position — мировая позиция корабля
func (g *SpaceGame) Position(slot int) mgl32.Vec3 {
	pos, _, _ := g.ECS.WorldTransform(g.Ships[slot])
	return pos
}

// Lasers — живые лазеры для отрисовки
func (g *SpaceGame) Lasers() []types.EntityID {
	ids := make([]types.EntityID, 0, len(g.ECS.Projectiles))
	for id := range g.ECS.Projectiles {
		ids = append(ids, id)
	}
	return ids
}

func (g *SpaceGame) createShip(slot int) types.EntityID {
	ship := g.ECS.NewEntity()
	t := component.NewTransform(SpaceSpawns[slot])
	t.SetYaw(spaceYaws[slot])
	g.ECS.SetTransform(ship, t)
	g.ECS.Colliders[ship] = component.NewBoxCollider(
		mgl32.Vec3{config.ShipHalfWidth, config.ShipHalfHeight, config.ShipHalfLength}, component.TagShip)
	g.ECS.Healths[ship] = component.NewHealth(config.ShipHealth)
	g.ECS.Pilots[ship] = &component.Pilot{
		Name:      playerName(slot),
		Slot:      slot,
		HPPenalty: config.ShipHPPenalty,
		Spawn:     SpaceSpawns[slot],
	}
	g.ECS.Renderables[ship] = &component.Renderable{
		Color: config.PlayerColors[slot],
		Size:  mgl32.Vec3{2 * config.ShipHalfWidth, 0.2, 2 * config.ShipHalfLength},
	}

	gun := g.ECS.NewEntity()
	g.ECS.SetTransform(gun, &component.Transform{Rotation: mgl32.QuatIdent(), Parent: ship})
	g.ECS.Guns[gun] = &component.Gun{Owner: ship, Delay: config.GunCooldown, Muzzle: config.GunMuzzleOffset}

	g.ECS.Ships[ship] = &component.Ship{Speed: config.ShipStartSpeed, Gun: gun}
	return ship
}

// generateAsteroids раскладывает сферы по всему объёму мира, не ближе
// AsteroidSpawnClear к точкам появления.
func (g *SpaceGame) generateAsteroids(rng *utils.PRNGService) []types.EntityID {
	lo := mgl32.Vec3{-config.WorldHalfSize, 0, -config.WorldHalfSize}
	hi := mgl32.Vec3{config.WorldHalfSize, config.WorldCeiling, config.WorldHalfSize}
	ids := make([]types.EntityID, 0, config.AsteroidCount)
	for len(ids) < config.AsteroidCount {
		size := rng.Uniform(config.AsteroidMinSize, config.AsteroidMaxSize)
		pos := rng.PointInBox(lo, hi)
		col := config.AsteroidColors[0]
		if !rng.Chance(0.5) {
			col = config.AsteroidColors[1]
		}
		if nearSpawn(pos, size/2) {
			continue
		}
		id := g.ECS.NewEntity()
		g.ECS.SetTransform(id, component.NewTransform(pos))
		g.ECS.Colliders[id] = component.NewSphereCollider(size/2, component.TagAsteroid)
		g.ECS.Renderables[id] = &component.Renderable{Color: col, Size: mgl32.Vec3{size, size, size}}
		ids = append(ids, id)
	}
	return ids
}

func nearSpawn(pos mgl32.Vec3, radius float32) bool {
	for _, s := range SpaceSpawns {
		if pos.Sub(s).Len() < config.AsteroidSpawnClear+radius {
			return true
		}
	}
	return false
}

func (g *SpaceGame) pilots() [2]*component.Pilot {
	return [2]*component.Pilot{g.ECS.Pilots[g.Ships[0]], g.ECS.Pilots[g.Ships[1]]}
}

func (g *SpaceGame) healths() [2]*component.Health {
	return [2]*component.Health{g.Health(0), g.Health(1)}
}

func playerName(slot int) string {
	if slot == 0 {
		return "Player 1"
	}
	return "Player 2"
}
