// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FocusIndicator — вращающееся кольцо вокруг противника на HUD.
// Четыре дуги с разрывами, чтобы вращение было заметно.
type FocusIndicator struct {
	Color color.RGBA
}

func NewFocusIndicator(col color.RGBA) *FocusIndicator {
	return &FocusIndicator{Color: col}
}

// Draw рисует кольцо. scale — доля от высоты вида, angle — поворот в градусах.
func (i *FocusIndicator) Draw(center rl.Vector2, viewHeight, scale, angle float32) {
	outer := scale * viewHeight / 2
	inner := outer - 3
	if inner < 1 {
		inner = 1
	}
	for q := 0; q < 4; q++ {
		start := angle + float32(q)*90
		rl.DrawRing(center, inner, outer, start, start+60, 16, i.Color)
	}
}

// Crosshair — прицел в центре вида и строка скорости под ним.
type Crosshair struct {
	Color color.RGBA
	Size  float32
}

func NewCrosshair(col color.RGBA) *Crosshair {
	return &Crosshair{Color: col, Size: 12}
}

// Draw рисует перекрестие. aimAssist подсвечивает центр, когда доводка включена.
func (c *Crosshair) Draw(center rl.Vector2, speed float32, aimAssist bool) {
	s := c.Size
	rl.DrawLineEx(rl.NewVector2(center.X-s, center.Y), rl.NewVector2(center.X+s, center.Y), 2, c.Color)
	rl.DrawLineEx(rl.NewVector2(center.X, center.Y-s), rl.NewVector2(center.X, center.Y+s), 2, c.Color)
	if aimAssist {
		rl.DrawCircleLines(int32(center.X), int32(center.Y), s+4, c.Color)
	}

	label := fmt.Sprintf("Speed: %d", int(speed))
	width := rl.MeasureText(label, 20)
	rl.DrawText(label, int32(center.X)-width/2, int32(center.Y+s+10), 20, rl.White)
}
