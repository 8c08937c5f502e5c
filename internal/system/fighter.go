package system

import (
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/input"
	"arcadia/internal/physics"
	"arcadia/internal/types"
	"arcadia/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// FighterSystem — движение и стрельба бойцов top-down арены.
// Влево/вправо поворачивают, вверх/вниз двигают вдоль взгляда.
type FighterSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewFighterSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *FighterSystem {
	return &FighterSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *FighterSystem) Update(deltaTime float64, controls [2]input.Controls) {
	dt := float32(deltaTime)
	for id, f := range s.ecs.Fighters {
		if !s.ecs.IsEnabled(id) {
			continue
		}
		pilot, ok := s.ecs.Pilots[id]
		if !ok {
			continue
		}
		t := s.ecs.Transforms[id]
		c := controls[pilot.Slot]

		yaw := t.Yaw()
		if c.Left {
			yaw -= utils.Deg2Rad(f.TurnSpeed) * dt
		}
		if c.Right {
			yaw += utils.Deg2Rad(f.TurnSpeed) * dt
		}
		t.SetYaw(utils.NormalizeAngle(yaw))

		var dir mgl32.Vec3
		if c.Up {
			dir = dir.Add(t.Forward())
		}
		if c.Down {
			dir = dir.Sub(t.Forward())
		}
		if dir != (mgl32.Vec3{}) {
			s.move(id, t, physics.Normalize(dir).Mul(f.MoveSpeed*dt))
		}

		f.SinceShot += dt
		if c.Fire && f.CanShoot() {
			s.shoot(id, t, f, pilot)
			f.SinceShot = 0
		}
	}
}

func (s *FighterSystem) move(id types.EntityID, t *component.Transform, delta mgl32.Vec3) {
	old := t.Position
	next := old.Add(delta)
	if abs32(next.X()) > config.ArenaMoveLimitX || abs32(next.Z()) > config.ArenaMoveLimitZ {
		return
	}
	before := s.blockersAt(id)
	t.Position = next
	for other := range s.blockersAt(id) {
		if !before[other] {
			t.Position = old
			return
		}
	}
}

// blockersAt — стены и укрытия, с которыми сейчас пересекается боец.
// Отступать из укрытия, в котором боец уже стоит, разрешено.
func (s *FighterSystem) blockersAt(id types.EntityID) map[types.EntityID]bool {
	box, ok := BoxOf(s.ecs, id)
	if !ok {
		return nil
	}
	hits := map[types.EntityID]bool{}
	for other, c := range s.ecs.Colliders {
		if other == id || !c.Tag.Blocking() || !s.ecs.IsEnabled(other) {
			continue
		}
		if ob, ok := BoxOf(s.ecs, other); ok && strictOverlap(box, ob) {
			hits[other] = true
		}
	}
	return hits
}

func (s *FighterSystem) shoot(id types.EntityID, t *component.Transform, f *component.Fighter, pilot *component.Pilot) {
	forward := t.Forward()
	spawn := t.Position.Add(forward.Mul(config.FighterMuzzle))
	spawn[1] = t.Position.Y()

	p := s.ecs.NewEntity()
	s.ecs.SetTransform(p, component.NewTransform(spawn))
	s.ecs.Colliders[p] = component.NewSphereCollider(config.ProjectileRadius, component.TagProjectile)
	s.ecs.Projectiles[p] = &component.Projectile{
		Direction: forward,
		Speed:     f.ProjectileSpeed,
		Owner:     id,
		Damage:    f.ShotPower,
	}
	s.ecs.Renderables[p] = &component.Renderable{
		Color: config.ProjectileColor,
		Size:  mgl32.Vec3{2 * config.ProjectileRadius, 2 * config.ProjectileRadius, 2 * config.ProjectileRadius},
	}
	s.eventDispatcher.Emit(event.ShotFired, event.Shot{Shooter: id, Slot: pilot.Slot, Position: spawn})
}

// strictOverlap не считает касание гранями пересечением, иначе боец у стены застревает.
func strictOverlap(a, b physics.AABB) bool {
	const eps = 1e-4
	for i := 0; i < 3; i++ {
		if abs32(a.Center[i]-b.Center[i]) >= a.Half[i]+b.Half[i]-eps {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
