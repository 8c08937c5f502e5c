// internal/component/player.go
package component

import (
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Pilot — общие данные игрока для обеих игр.
type Pilot struct {
	Name      string
	Slot      int // 0 — Player 1, 1 — Player 2
	HPPenalty int
	Spawn     mgl32.Vec3
}

// Ship — корабль космического боя. Летит всегда вдоль forward своей пушки.
type Ship struct {
	Speed     float32
	Gun       types.EntityID
	AimAssist bool
	RearView  bool
}

// Fighter — боец top-down арены. Значения приходят из настроек.
type Fighter struct {
	TurnSpeed       float32 // градусов/с
	MoveSpeed       float32
	ShotDelay       float32
	ShotPower       int
	ProjectileSpeed float32
	SinceShot       float32
}

// CanShoot — прошла ли задержка между выстрелами
func (f *Fighter) CanShoot() bool { return f.SinceShot >= f.ShotDelay }
