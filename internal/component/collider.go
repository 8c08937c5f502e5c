package component

import "github.com/go-gl/mathgl/mgl32"

// Shape — форма коллайдера
type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

// Tag — что за объект стоит за коллайдером
type Tag int

const (
	TagNone Tag = iota
	TagWall
	TagCover
	TagAsteroid
	TagShip
	TagFighter
	TagProjectile
)

// Blocking сообщает, останавливает ли объект снаряды и движение.
func (t Tag) Blocking() bool {
	return t == TagWall || t == TagCover || t == TagAsteroid
}

// Collider — коллайдер, привязанный к трансформу сущности.
// Box использует HalfExtents (без учёта поворота), Sphere — Radius.
type Collider struct {
	Shape       Shape
	HalfExtents mgl32.Vec3
	Radius      float32
	Tag         Tag
}

func NewBoxCollider(halfExtents mgl32.Vec3, tag Tag) *Collider {
	return &Collider{Shape: ShapeBox, HalfExtents: halfExtents, Tag: tag}
}

func NewSphereCollider(radius float32, tag Tag) *Collider {
	return &Collider{Shape: ShapeSphere, Radius: radius, Tag: tag}
}
