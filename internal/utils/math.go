// internal/utils/math.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clamp ограничивает v отрезком [lo, hi]
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float32) float32 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Deg2Rad переводит градусы в радианы
func Deg2Rad(deg float32) float32 {
	return deg * math.Pi / 180
}

// AxisAngle раскладывает кватернион на ось и угол в градусах (для DrawModelEx).
// Для поворота на ноль возвращает ось Y.
func AxisAngle(q mgl32.Quat) (mgl32.Vec3, float32) {
	q = q.Normalize()
	if q.W < 0 {
		q = q.Scale(-1)
	}
	s := float32(math.Sqrt(float64(1 - q.W*q.W)))
	if s < 1e-6 {
		return mgl32.Vec3{0, 1, 0}, 0
	}
	angle := 2 * float32(math.Acos(float64(Clamp(q.W, -1, 1))))
	return q.V.Mul(1 / s), mgl32.RadToDeg(angle)
}
