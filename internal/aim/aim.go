// Package aim — упреждающее наведение (aimbot): стрельба на опережение
// по движущейся цели с учётом времени полёта снаряда.
package aim

import (
	"arcadia/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Profile — порог срабатывания и сила доводки.
// Доводка включается, только если dot(facing, toPredicted) > Threshold.
type Profile struct {
	Threshold float32
	Blend     float32
}

// Solution — результат расчёта, поля кроме Direction нужны для HUD и отладки.
type Solution struct {
	Direction mgl32.Vec3
	Predicted mgl32.Vec3
	Dot       float32
	Corrected bool
}

// Lead считает направление выстрела. Функция чистая: те же входы дают тот же выход.
func Lead(shooter, facing, target, targetVel mgl32.Vec3, projectileSpeed float32, p Profile) Solution {
	facing = physics.Normalize(facing)
	sol := Solution{Direction: facing, Predicted: target}
	if projectileSpeed <= 0 {
		return sol
	}

	eta := target.Sub(shooter).Len() / projectileSpeed
	sol.Predicted = target.Add(targetVel.Mul(eta))

	toPredicted := physics.Normalize(sol.Predicted.Sub(shooter))
	if toPredicted == (mgl32.Vec3{}) {
		return sol
	}
	sol.Dot = facing.Dot(toPredicted)
	if sol.Dot > p.Threshold {
		blended := physics.Normalize(physics.Lerp(facing, toPredicted, p.Blend))
		if blended != (mgl32.Vec3{}) {
			sol.Direction = blended
			sol.Corrected = true
		}
	}
	return sol
}
