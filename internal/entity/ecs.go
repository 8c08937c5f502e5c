package entity

import (
	"arcadia/internal/component"
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// ECS — арена сущностей. Каждая сущность — целочисленный дескриптор,
// компоненты лежат в отдельных картах, родитель задаётся дескриптором в Transform.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Transforms  map[types.EntityID]*component.Transform
	Colliders   map[types.EntityID]*component.Collider
	Healths     map[types.EntityID]*component.Health
	Pilots      map[types.EntityID]*component.Pilot
	Ships       map[types.EntityID]*component.Ship
	Fighters    map[types.EntityID]*component.Fighter
	Guns        map[types.EntityID]*component.Gun
	Projectiles map[types.EntityID]*component.Projectile
	Renderables map[types.EntityID]*component.Renderable
	Flashes     map[types.EntityID]*component.DamageFlash
	Enabled     map[types.EntityID]bool

	alive    map[types.EntityID]struct{}
	children map[types.EntityID][]types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Transforms:  make(map[types.EntityID]*component.Transform),
		Colliders:   make(map[types.EntityID]*component.Collider),
		Healths:     make(map[types.EntityID]*component.Health),
		Pilots:      make(map[types.EntityID]*component.Pilot),
		Ships:       make(map[types.EntityID]*component.Ship),
		Fighters:    make(map[types.EntityID]*component.Fighter),
		Guns:        make(map[types.EntityID]*component.Gun),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Flashes:     make(map[types.EntityID]*component.DamageFlash),
		Enabled:     make(map[types.EntityID]bool),
		alive:       make(map[types.EntityID]struct{}),
		children:    make(map[types.EntityID][]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.alive[id] = struct{}{}
	ecs.Enabled[id] = true
	return id
}

// Alive — существует ли сущность (не уничтожена).
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

// Count — число живых сущностей
func (ecs *ECS) Count() int { return len(ecs.alive) }

// SetTransform задаёт трансформ и регистрирует сущность у родителя.
func (ecs *ECS) SetTransform(id types.EntityID, t *component.Transform) {
	if old, ok := ecs.Transforms[id]; ok && old.Parent != types.NoEntity {
		ecs.unlink(old.Parent, id)
	}
	ecs.Transforms[id] = t
	if t.Parent != types.NoEntity {
		ecs.children[t.Parent] = append(ecs.children[t.Parent], id)
	}
}

// Children возвращает прямых потомков.
func (ecs *ECS) Children(id types.EntityID) []types.EntityID {
	return ecs.children[id]
}

// Destroy удаляет сущность вместе со всеми потомками.
// Повторный вызов для уже уничтоженной сущности ничего не делает.
func (ecs *ECS) Destroy(id types.EntityID) {
	if !ecs.Alive(id) {
		return
	}
	for _, child := range append([]types.EntityID(nil), ecs.children[id]...) {
		ecs.Destroy(child)
	}
	if t, ok := ecs.Transforms[id]; ok && t.Parent != types.NoEntity {
		ecs.unlink(t.Parent, id)
	}
	delete(ecs.children, id)
	delete(ecs.alive, id)
	delete(ecs.Enabled, id)
	delete(ecs.Transforms, id)
	delete(ecs.Colliders, id)
	delete(ecs.Healths, id)
	delete(ecs.Pilots, id)
	delete(ecs.Ships, id)
	delete(ecs.Fighters, id)
	delete(ecs.Guns, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Renderables, id)
	delete(ecs.Flashes, id)
}

// SetEnabled включает или выключает сущность вместе с потомками.
func (ecs *ECS) SetEnabled(id types.EntityID, enabled bool) {
	if !ecs.Alive(id) {
		return
	}
	ecs.Enabled[id] = enabled
	for _, child := range ecs.children[id] {
		ecs.SetEnabled(child, enabled)
	}
}

// IsEnabled — жива и включена
func (ecs *ECS) IsEnabled(id types.EntityID) bool {
	return ecs.Alive(id) && ecs.Enabled[id]
}

// WorldTransform собирает мировую позицию и поворот по цепочке родителей.
func (ecs *ECS) WorldTransform(id types.EntityID) (mgl32.Vec3, mgl32.Quat, bool) {
	t, ok := ecs.Transforms[id]
	if !ok {
		return mgl32.Vec3{}, mgl32.QuatIdent(), false
	}
	if t.Parent == types.NoEntity {
		return t.Position, t.Rotation, true
	}
	ppos, prot, ok := ecs.WorldTransform(t.Parent)
	if !ok {
		return t.Position, t.Rotation, true
	}
	return ppos.Add(prot.Rotate(t.Position)), prot.Mul(t.Rotation), true
}

// WorldForward — направление «вперёд» сущности в мировых координатах.
func (ecs *ECS) WorldForward(id types.EntityID) mgl32.Vec3 {
	_, rot, _ := ecs.WorldTransform(id)
	return rot.Rotate(mgl32.Vec3{0, 0, 1})
}

// Clear уничтожает все сущности, сохраняя счётчик дескрипторов.
func (ecs *ECS) Clear() {
	for id := range ecs.alive {
		ecs.Destroy(id)
	}
}

func (ecs *ECS) unlink(parent, child types.EntityID) {
	list := ecs.children[parent]
	for i, c := range list {
		if c == child {
			ecs.children[parent] = append(list[:i], list[i+1:]...)
			return
		}
	}
}
