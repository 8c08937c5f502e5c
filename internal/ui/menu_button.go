// internal/ui/menu_button.go
package ui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MenuButton — кнопка меню. Выбирается с клавиатуры или геймпада, мышь не нужна.
type MenuButton struct {
	Rect    rl.Rectangle
	Text    string
	bgColor color.RGBA
	fgColor color.RGBA
	font    rl.Font
}

// NewMenuButton создает новую кнопку меню.
func NewMenuButton(rect rl.Rectangle, text string, bg color.RGBA, font rl.Font) *MenuButton {
	return &MenuButton{
		Rect:    rect,
		Text:    text,
		bgColor: bg,
		fgColor: rl.White,
		font:    font,
	}
}

// Draw отрисовывает кнопку. Выделенная получает жёлтую рамку, выключенная тускнеет.
func (b *MenuButton) Draw(focused, enabled bool) {
	bg := b.bgColor
	if !enabled {
		bg = rl.Fade(bg, 0.3)
	}
	rl.DrawRectangleRec(b.Rect, bg)
	border := rl.LightGray
	thick := float32(2)
	if focused {
		border = rl.Yellow
		thick = 4
	}
	rl.DrawRectangleLinesEx(b.Rect, thick, border)

	textSize := float32(30)
	textWidth := rl.MeasureTextEx(b.font, b.Text, textSize, 1).X
	rl.DrawTextEx(
		b.font,
		b.Text,
		rl.NewVector2(
			b.Rect.X+(b.Rect.Width-textWidth)/2,
			b.Rect.Y+(b.Rect.Height-textSize)/2,
		),
		textSize,
		1,
		b.fgColor,
	)
}

// IsClicked проверяет, был ли клик по кнопке.
func (b *MenuButton) IsClicked(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}
