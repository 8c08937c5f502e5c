package system

import (
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/physics"
	"arcadia/internal/types"
)

// ProjectileSystem двигает снаряды арены и наносит урон.
// Направление снаряда кэшировано при выстреле.
type ProjectileSystem struct {
	ecs          *entity.ECS
	combatSystem *CombatSystem
}

func NewProjectileSystem(ecs *entity.ECS, combatSystem *CombatSystem) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, combatSystem: combatSystem}
}

// Update возвращает, кто выбыл в этом кадре.
func (s *ProjectileSystem) Update(deltaTime float64) Knockout {
	var out Knockout
	dt := float32(deltaTime)
	for id, proj := range s.ecs.Projectiles {
		if !s.ecs.Alive(id) {
			continue
		}
		t := s.ecs.Transforms[id]
		t.Position = t.Position.Add(proj.Direction.Mul(proj.Speed * dt))
		proj.Age += dt

		if abs32(t.Position.X()) > config.ArenaProjectileMax || abs32(t.Position.Z()) > config.ArenaProjectileMax {
			s.ecs.Destroy(id)
			continue
		}

		ball := physics.Sphere{Center: t.Position, Radius: config.ProjectileRadius}
		if c, ok := s.ecs.Colliders[id]; ok {
			ball.Radius = c.Radius
		}
		target, tag := s.touching(ball, proj.Owner)
		switch {
		case tag == component.TagFighter:
			s.ecs.Destroy(id)
			if s.combatSystem.ApplyDamage(target, proj.Damage, event.PlayerHit) {
				out[s.ecs.Pilots[target].Slot] = true
			}
		case tag.Blocking():
			s.ecs.Destroy(id)
		}
	}
	return out
}

// touching — с чем соприкасается снаряд. Бойцы проверяются раньше стен.
func (s *ProjectileSystem) touching(ball physics.Sphere, owner types.EntityID) (types.EntityID, component.Tag) {
	blocker := types.NoEntity
	blockTag := component.TagNone
	for other, c := range s.ecs.Colliders {
		if other == owner || !s.ecs.IsEnabled(other) || c.Shape != component.ShapeBox {
			continue
		}
		if c.Tag != component.TagFighter && !c.Tag.Blocking() {
			continue
		}
		box, ok := BoxOf(s.ecs, other)
		if !ok || !physics.SphereAABB(ball, box) {
			continue
		}
		if c.Tag == component.TagFighter {
			return other, c.Tag
		}
		blocker, blockTag = other, c.Tag
	}
	return blocker, blockTag
}
