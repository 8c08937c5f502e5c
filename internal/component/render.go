// component/render.go
package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Renderable — компонент для отрисовки
type Renderable struct {
	Color color.RGBA
	Size  mgl32.Vec3 // полный размер для кубов, X — диаметр для сфер
}
