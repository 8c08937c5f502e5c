package system

import (
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/physics"
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// LaserSystem двигает лазеры космического боя. За кадр лазер проходит сотни
// единиц, поэтому попадание проверяется по отрезку от прошлой позиции до новой.
type LaserSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewLaserSystem(ecs *entity.ECS, combatSystem *CombatSystem) *LaserSystem {
	return &LaserSystem{ecs: ecs, combatSystem: combatSystem}
}

// Update возвращает, кто выбыл от попаданий в этом кадре.
func (s *LaserSystem) Update(deltaTime float64) Knockout {
	var out Knockout
	dt := float32(deltaTime)
	for id, proj := range s.ecs.Projectiles {
		t, ok := s.ecs.Transforms[id]
		if !ok {
			continue
		}
		prev := t.Position
		step := proj.Speed * dt
		t.Position = prev.Add(proj.Direction.Mul(step))
		proj.Age += dt

		if !InsideWorld(t.Position) {
			s.ecs.Destroy(id)
			continue
		}

		target, hit := s.firstHit(prev, proj, step)
		if !hit {
			continue
		}
		s.ecs.Destroy(id)
		if _, isPilot := s.ecs.Pilots[target]; !isPilot {
			continue
		}
		if s.combatSystem.ApplyDamage(target, proj.Damage, event.PlayerHit) {
			out[s.ecs.Pilots[target].Slot] = true
		}
	}
	return out
}

// firstHit ищет ближайший коллайдер на отрезке, пропуская стрелявшего и его детей.
func (s *LaserSystem) firstHit(origin mgl32.Vec3, proj *component.Projectile, length float32) (types.EntityID, bool) {
	best := length
	found := types.NoEntity
	for id, c := range s.ecs.Colliders {
		if id == proj.Owner || !s.ecs.IsEnabled(id) || s.ownedBy(id, proj.Owner) {
			continue
		}
		var (
			dist float32
			hit  bool
		)
		switch c.Shape {
		case component.ShapeBox:
			box, _ := BoxOf(s.ecs, id)
			dist, hit = physics.RayAABB(origin, proj.Direction, length, box)
		case component.ShapeSphere:
			sph, _ := SphereOf(s.ecs, id)
			dist, hit = physics.RaySphere(origin, proj.Direction, length, sph)
		}
		if hit && dist <= best {
			best, found = dist, id
		}
	}
	return found, found != types.NoEntity
}

func (s *LaserSystem) ownedBy(id, owner types.EntityID) bool {
	for p := s.ecs.Transforms[id]; p != nil && p.Parent != types.NoEntity; p = s.ecs.Transforms[p.Parent] {
		if p.Parent == owner {
			return true
		}
	}
	return false
}

// InsideWorld — внутри ли точка коробки мира: пол, стены ±1024, потолок.
func InsideWorld(p mgl32.Vec3) bool {
	return p.X() >= -config.WorldHalfSize && p.X() <= config.WorldHalfSize &&
		p.Z() >= -config.WorldHalfSize && p.Z() <= config.WorldHalfSize &&
		p.Y() >= 0 && p.Y() <= config.WorldCeiling
}
