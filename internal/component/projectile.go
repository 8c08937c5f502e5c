// internal/component/projectile.go
package component

import (
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

// Projectile представляет летящий снаряд или лазер.
// Direction кэшируется при выстреле и больше не меняется.
type Projectile struct {
	Direction mgl32.Vec3
	Speed     float32
	Owner     types.EntityID
	Damage    int
	Age       float32
}
