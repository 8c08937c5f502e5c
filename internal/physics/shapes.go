// Package physics — простые пересечения для коллайдеров обеих игр:
// выровненные по осям коробки, сферы и лучи (отрезки).
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-6

// AABB — коробка, выровненная по осям
type AABB struct {
	Center mgl32.Vec3
	Half   mgl32.Vec3
}

func (a AABB) Min() mgl32.Vec3 { return a.Center.Sub(a.Half) }
func (a AABB) Max() mgl32.Vec3 { return a.Center.Add(a.Half) }

// Intersects — пересекаются ли две коробки (касание считается пересечением)
func (a AABB) Intersects(b AABB) bool {
	for i := 0; i < 3; i++ {
		if abs(a.Center[i]-b.Center[i]) > a.Half[i]+b.Half[i] {
			return false
		}
	}
	return true
}

// ClosestPoint — ближайшая к p точка коробки
func (a AABB) ClosestPoint(p mgl32.Vec3) mgl32.Vec3 {
	lo, hi := a.Min(), a.Max()
	return mgl32.Vec3{
		mgl32.Clamp(p[0], lo[0], hi[0]),
		mgl32.Clamp(p[1], lo[1], hi[1]),
		mgl32.Clamp(p[2], lo[2], hi[2]),
	}
}

// Sphere — сфера
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
}

func (s Sphere) Intersects(o Sphere) bool {
	r := s.Radius + o.Radius
	return s.Center.Sub(o.Center).LenSqr() <= r*r
}

// SphereAABB — пересечение сферы и коробки
func SphereAABB(s Sphere, a AABB) bool {
	d := a.ClosestPoint(s.Center).Sub(s.Center)
	return d.LenSqr() <= s.Radius*s.Radius
}

// RaySphere возвращает расстояние до первого пересечения луча со сферой
// в пределах maxDist. dir должен быть нормализован. Луч, начинающийся внутри, попадает на 0.
func RaySphere(origin, dir mgl32.Vec3, maxDist float32, s Sphere) (float32, bool) {
	m := origin.Sub(s.Center)
	c := m.LenSqr() - s.Radius*s.Radius
	if c <= 0 {
		return 0, true
	}
	b := m.Dot(dir)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	t := -b - float32(math.Sqrt(float64(disc)))
	if t < 0 {
		t = 0
	}
	if t > maxDist {
		return 0, false
	}
	return t, true
}

// RayAABB — пересечение луча с коробкой методом слэбов.
func RayAABB(origin, dir mgl32.Vec3, maxDist float32, a AABB) (float32, bool) {
	lo, hi := a.Min(), a.Max()
	tMin, tMax := float32(0), maxDist
	for i := 0; i < 3; i++ {
		if abs(dir[i]) < epsilon {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}

// Normalize нормализует вектор; нулевой вектор возвращается как есть.
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// Lerp — линейная интерполяция между векторами
func Lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
