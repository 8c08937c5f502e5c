// internal/ui/button.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ButtonWidth  = 300
	ButtonHeight = 60
	ButtonGap    = 20
)

// Column раскладывает кнопки столбиком по центру экрана, начиная с top.
func Column(labels []string, colors []color.RGBA, screenWidth int, top float32, font rl.Font) []*MenuButton {
	buttons := make([]*MenuButton, len(labels))
	x := (float32(screenWidth) - ButtonWidth) / 2
	for i, label := range labels {
		y := top + float32(i)*(ButtonHeight+ButtonGap)
		buttons[i] = NewMenuButton(rl.NewRectangle(x, y, ButtonWidth, ButtonHeight), label, pick(colors, i), font)
	}
	return buttons
}

// Grid раскладывает четыре кнопки сеткой 2×2: 0 1 в верхнем ряду, 2 3 в нижнем.
func Grid(labels [4]string, colors []color.RGBA, screenWidth int, top float32, font rl.Font) []*MenuButton {
	buttons := make([]*MenuButton, len(labels))
	left := (float32(screenWidth) - 2*ButtonWidth - ButtonGap) / 2
	for i, label := range labels {
		x := left + float32(i%2)*(ButtonWidth+ButtonGap)
		y := top + float32(i/2)*(ButtonHeight+ButtonGap)
		buttons[i] = NewMenuButton(rl.NewRectangle(x, y, ButtonWidth, ButtonHeight), label, pick(colors, i), font)
	}
	return buttons
}

func pick(colors []color.RGBA, i int) color.RGBA {
	if len(colors) == 0 {
		return rl.Gray
	}
	return colors[i%len(colors)]
}

// DrawCentered пишет текст по центру по горизонтали. Многострочный текст
// центрируется по самой длинной строке.
func DrawCentered(font rl.Font, text string, screenWidth int, y, size float32, col color.RGBA) {
	width := rl.MeasureTextEx(font, text, size, 1).X
	rl.DrawTextEx(font, text, rl.NewVector2((float32(screenWidth)-width)/2, y), size, 1, col)
}
