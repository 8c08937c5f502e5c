package system

import (
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/physics"
	"arcadia/internal/types"
)

// ShipCollisionSystem проверяет корабли против астероидов, границ мира и друг друга.
type ShipCollisionSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
	asteroids    []types.EntityID
}

func NewShipCollisionSystem(ecs *entity.ECS, combatSystem *CombatSystem) *ShipCollisionSystem {
	return &ShipCollisionSystem{ecs: ecs, combatSystem: combatSystem}
}

// SetAsteroids запоминает астероиды, чтобы не перебирать все коллайдеры каждый кадр.
func (s *ShipCollisionSystem) SetAsteroids(ids []types.EntityID) {
	s.asteroids = ids
}

func (s *ShipCollisionSystem) Update() Knockout {
	var out Knockout
	var ships [2]types.EntityID
	for id := range s.ecs.Ships {
		if !s.ecs.IsEnabled(id) {
			continue
		}
		slot := s.ecs.Pilots[id].Slot
		ships[slot] = id

		pos := s.ecs.Transforms[id].Position
		if !InsideWorld(pos) {
			s.combatSystem.Eliminate(id, "bounds")
			out[slot] = true
			continue
		}
		if s.hitAsteroid(id) {
			if s.combatSystem.ApplyDamage(id, config.AsteroidDamage, event.ShipCrashed) {
				out[slot] = true
				continue
			}
			s.ecs.Transforms[id].Position = s.ecs.Pilots[id].Spawn
		}
	}

	if ships[0] != types.NoEntity && ships[1] != types.NoEntity {
		a, okA := BoxOf(s.ecs, ships[0])
		b, okB := BoxOf(s.ecs, ships[1])
		if okA && okB && a.Intersects(b) {
			s.combatSystem.Eliminate(ships[0], "ram")
			s.combatSystem.Eliminate(ships[1], "ram")
			out[0], out[1] = true, true
		}
	}
	return out
}

func (s *ShipCollisionSystem) hitAsteroid(ship types.EntityID) bool {
	box, ok := BoxOf(s.ecs, ship)
	if !ok {
		return false
	}
	for _, id := range s.asteroids {
		if c, ok := s.ecs.Colliders[id]; !ok || c.Tag != component.TagAsteroid {
			continue
		}
		if sph, ok := SphereOf(s.ecs, id); ok && physics.SphereAABB(sph, box) {
			return true
		}
	}
	return false
}
