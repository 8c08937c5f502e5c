// internal/system/utils.go
package system

import (
	"arcadia/internal/component"
	"arcadia/internal/entity"
	"arcadia/internal/physics"
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Knockout — кто выбыл в этом кадре
type Knockout [2]bool

// Any — выбыл ли хоть кто-то
func (k Knockout) Any() bool { return k[0] || k[1] }

// Merge объединяет выбывания двух систем
func (k Knockout) Merge(o Knockout) Knockout {
	return Knockout{k[0] || o[0], k[1] || o[1]}
}

// PlayerBySlot находит сущность игрока по слоту (0 или 1).
func PlayerBySlot(ecs *entity.ECS, slot int) (types.EntityID, bool) {
	for id, p := range ecs.Pilots {
		if p.Slot == slot && ecs.IsEnabled(id) {
			return id, true
		}
	}
	return types.NoEntity, false
}

// Opponent — противник игрока id
func Opponent(ecs *entity.ECS, id types.EntityID) (types.EntityID, bool) {
	p, ok := ecs.Pilots[id]
	if !ok {
		return types.NoEntity, false
	}
	return PlayerBySlot(ecs, 1-p.Slot)
}

// BoxOf — коллайдер-коробка сущности в мировых координатах
func BoxOf(ecs *entity.ECS, id types.EntityID) (physics.AABB, bool) {
	c, ok := ecs.Colliders[id]
	if !ok || c.Shape != component.ShapeBox {
		return physics.AABB{}, false
	}
	pos, _, ok := ecs.WorldTransform(id)
	if !ok {
		return physics.AABB{}, false
	}
	return physics.AABB{Center: pos, Half: c.HalfExtents}, true
}

// SphereOf — коллайдер-сфера сущности в мировых координатах
func SphereOf(ecs *entity.ECS, id types.EntityID) (physics.Sphere, bool) {
	c, ok := ecs.Colliders[id]
	if !ok || c.Shape != component.ShapeSphere {
		return physics.Sphere{}, false
	}
	pos, _, ok := ecs.WorldTransform(id)
	if !ok {
		return physics.Sphere{}, false
	}
	return physics.Sphere{Center: pos, Radius: c.Radius}, true
}

// LookRotation — поворот, при котором forward смотрит вдоль dir
func LookRotation(dir mgl32.Vec3) mgl32.Quat {
	dir = physics.Normalize(dir)
	if dir == (mgl32.Vec3{}) {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, 1}, dir)
}
