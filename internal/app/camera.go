package app

import (
	"arcadia/internal/config"
	"arcadia/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// ChaseOffset — смещение камеры в локальных осях корабля. Чем выше скорость,
// тем дальше камера. Вид назад ставит камеру перед носом.
func ChaseOffset(speed float32, rearView bool) mgl32.Vec3 {
	if rearView {
		return mgl32.Vec3{0, config.CameraHeight, config.CameraDistance}
	}
	return mgl32.Vec3{0, config.CameraHeight, -config.CameraDistance - config.CameraDistance*speed/config.CameraSpeedScale}
}

// ChaseView — положение камеры, точка взгляда и «верх» для игрока slot.
func (g *SpaceGame) ChaseView(slot int) (eye, target, up mgl32.Vec3) {
	id := g.Ships[slot]
	pos, rot, _ := g.ECS.WorldTransform(id)
	ship := g.ECS.Ships[id]
	if ship == nil {
		return pos.Add(mgl32.Vec3{0, config.CameraHeight, -config.CameraDistance}), pos, mgl32.Vec3{0, 1, 0}
	}
	eye = pos.Add(rot.Rotate(ChaseOffset(ship.Speed, ship.RearView)))
	up = rot.Rotate(mgl32.Vec3{0, 1, 0})
	if ship.RearView {
		return eye, pos, up
	}
	return eye, pos.Add(rot.Rotate(mgl32.Vec3{0, 0, config.CameraDistance})), up
}

// FocusScale — размер кольца вокруг противника на HUD по расстоянию до него.
func FocusScale(distance float32) float32 {
	return utils.Clamp(5-distance, config.FocusCircleMin, config.FocusCircleMax)
}

// FocusCircle — кольцо захвата: крутится на FocusCircleSpin градусов за кадр.
type FocusCircle struct {
	Angle float32
	Scale float32
}

// Advance пересчитывает кольцо на очередной кадр.
func (f *FocusCircle) Advance(distance float32) {
	f.Scale = FocusScale(distance)
	f.Angle += config.FocusCircleSpin
	if f.Angle >= 360 {
		f.Angle -= 360
	}
}
