package system

import (
	"arcadia/internal/aim"
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/input"
	"arcadia/internal/types"
	"arcadia/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// ShipSystem — управление кораблями: тангаж, крен, скорость, полёт и стрельба.
type ShipSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	profiles        [2]aim.Profile
}

func NewShipSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, profiles [2]aim.Profile) *ShipSystem {
	return &ShipSystem{ecs: ecs, eventDispatcher: eventDispatcher, profiles: profiles}
}

func (s *ShipSystem) Update(deltaTime float64, controls [2]input.Controls) {
	dt := float32(deltaTime)
	for id, ship := range s.ecs.Ships {
		if !s.ecs.IsEnabled(id) {
			continue
		}
		pilot, ok := s.ecs.Pilots[id]
		if !ok {
			continue
		}
		t := s.ecs.Transforms[id]
		c := controls[pilot.Slot]

		if c.ToggleAim {
			ship.AimAssist = !ship.AimAssist
		}
		ship.RearView = c.RearView

		ship.Speed = utils.Clamp(ship.Speed+c.Throttle()*config.ShipSpeedAccel*dt, config.ShipMinSpeed, config.ShipMaxSpeed)
		t.Pitch(c.Pitch() * utils.Deg2Rad(config.ShipPitchRate) * dt)
		t.Roll(c.Roll() * utils.Deg2Rad(config.ShipRollRate) * dt)

		// корабль летит туда, куда смотрит пушка
		t.Position = t.Position.Add(s.ecs.WorldForward(ship.Gun).Mul(ship.Speed * dt))

		gun, ok := s.ecs.Guns[ship.Gun]
		if !ok {
			continue
		}
		if gun.Cooldown > 0 {
			gun.Cooldown -= dt
		}
		if c.Fire && gun.Ready() {
			s.fire(id, ship, pilot, gun)
			gun.Cooldown = gun.Delay
		}
	}
}

// Velocity — мировая скорость корабля
func (s *ShipSystem) Velocity(id types.EntityID) mgl32.Vec3 {
	ship, ok := s.ecs.Ships[id]
	if !ok {
		return mgl32.Vec3{}
	}
	return s.ecs.WorldForward(ship.Gun).Mul(ship.Speed)
}

// Solve считает направление выстрела корабля id с учётом доводки.
func (s *ShipSystem) Solve(id types.EntityID) aim.Solution {
	ship := s.ecs.Ships[id]
	pilot := s.ecs.Pilots[id]
	gunPos, _, _ := s.ecs.WorldTransform(ship.Gun)
	facing := s.ecs.WorldForward(ship.Gun)

	enemy, ok := Opponent(s.ecs, id)
	if !ok || !ship.AimAssist {
		return aim.Solution{Direction: facing}
	}
	target, _, _ := s.ecs.WorldTransform(enemy)
	return aim.Lead(gunPos, facing, target, s.Velocity(enemy), config.LaserSpeed, s.profiles[pilot.Slot])
}

func (s *ShipSystem) fire(id types.EntityID, ship *component.Ship, pilot *component.Pilot, gun *component.Gun) {
	gunPos, _, _ := s.ecs.WorldTransform(ship.Gun)
	sol := s.Solve(id)
	start := gunPos.Add(s.ecs.WorldForward(ship.Gun).Mul(gun.Muzzle))

	laser := s.ecs.NewEntity()
	s.ecs.SetTransform(laser, &component.Transform{Position: start, Rotation: LookRotation(sol.Direction)})
	s.ecs.Projectiles[laser] = &component.Projectile{
		Direction: sol.Direction,
		Speed:     config.LaserSpeed,
		Owner:     id,
		Damage:    config.LaserDamage,
	}
	s.ecs.Renderables[laser] = &component.Renderable{
		Color: config.LaserColor,
		Size:  mgl32.Vec3{0.2, 0.2, 2 * config.LaserHalfLength},
	}
	s.eventDispatcher.Emit(event.ShotFired, event.Shot{Shooter: id, Slot: pilot.Slot, Position: start, Assisted: sol.Corrected})
}
