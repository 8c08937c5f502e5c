// internal/component/movement.go
package component

import (
	"math"

	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisForward = mgl32.Vec3{0, 0, 1}
	axisUp      = mgl32.Vec3{0, 1, 0}
	// forward × up: так «вправо» совпадает с правой стороной экрана камеры raylib
	axisRight = mgl32.Vec3{-1, 0, 0}
	axisPitch = mgl32.Vec3{1, 0, 0}
)

// Transform — локальная позиция и ориентация относительно родителя.
// Parent == types.NoEntity означает мировые координаты.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Parent   types.EntityID
}

// NewTransform создаёт трансформ без поворота.
func NewTransform(pos mgl32.Vec3) *Transform {
	return &Transform{Position: pos, Rotation: mgl32.QuatIdent()}
}

func (t *Transform) Forward() mgl32.Vec3 { return t.Rotation.Rotate(axisForward) }
func (t *Transform) Up() mgl32.Vec3      { return t.Rotation.Rotate(axisUp) }
func (t *Transform) Right() mgl32.Vec3   { return t.Rotation.Rotate(axisRight) }

// RotateLocal поворачивает трансформ вокруг его собственной оси (relative_to=self).
func (t *Transform) RotateLocal(axis mgl32.Vec3, radians float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(radians, axis)).Normalize()
}

// Pitch — тангаж, положительный угол опускает нос.
func (t *Transform) Pitch(radians float32) { t.RotateLocal(axisPitch, radians) }

// Roll — крен, положительный угол опускает правое крыло.
func (t *Transform) Roll(radians float32) { t.RotateLocal(axisForward, radians) }

// Yaw возвращает угол поворота вокруг вертикальной оси в радианах (для top-down).
func (t *Transform) Yaw() float32 {
	f := t.Forward()
	return float32(math.Atan2(float64(f.X()), float64(f.Z())))
}

// SetYaw выставляет ориентацию как чистый поворот вокруг Y.
func (t *Transform) SetYaw(radians float32) {
	t.Rotation = mgl32.QuatRotate(radians, axisUp)
}
