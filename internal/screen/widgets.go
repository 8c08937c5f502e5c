package screen

import (
	"image/color"
	"strings"

	"arcadia/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	buttonWidth  = 260
	buttonHeight = 50
	buttonGap    = 16
	lineHeight   = 16 // высота строки basicfont с отступом, до масштаба
)

var face = basicfont.Face7x13

// drawText пишет строку с левым верхним углом в (x, y), увеличенную в scale раз.
func drawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+float64(face.Ascent)*scale)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, face, op)
}

func textWidth(s string, scale float64) float64 {
	return float64(text.BoundString(face, s).Dx()) * scale
}

// drawCentered центрирует каждую строку по горизонтали экрана
func drawCentered(dst *ebiten.Image, s string, y, scale float64, clr color.Color) {
	for i, line := range strings.Split(s, "\n") {
		x := (config.ScreenWidth - textWidth(line, scale)) / 2
		drawText(dst, line, x, y+float64(i)*lineHeight*scale, scale, clr)
	}
}

// button — кнопка, выбираемая с клавиатуры
type button struct {
	x, y, w, h float32
	label      string
	color      color.RGBA
}

func (b button) draw(dst *ebiten.Image, focused, enabled bool) {
	bg := b.color
	if !enabled {
		bg.A = 70
	}
	vector.DrawFilledRect(dst, b.x, b.y, b.w, b.h, bg, false)
	border, width := color.Color(color.White), float32(1)
	if focused {
		border, width = config.HighlightColor, 3
	}
	vector.StrokeRect(dst, b.x, b.y, b.w, b.h, width, border, false)

	const scale = 2
	tx := float64(b.x) + (float64(b.w)-textWidth(b.label, scale))/2
	ty := float64(b.y) + (float64(b.h)-float64(face.Height)*scale)/2
	drawText(dst, b.label, tx, ty, scale, config.TextColor)
}

func pickColor(i int) color.RGBA {
	return config.ButtonColors[i%len(config.ButtonColors)]
}

// column — кнопки столбиком по центру экрана
func column(labels []string, colors []color.RGBA, top float32) []button {
	out := make([]button, len(labels))
	x := float32(config.ScreenWidth-buttonWidth) / 2
	for i, l := range labels {
		out[i] = button{x: x, y: top + float32(i)*(buttonHeight+buttonGap), w: buttonWidth, h: buttonHeight, label: l, color: colors[i]}
	}
	return out
}

// grid — сетка 2×2, индексы 0 1 сверху и 2 3 снизу
func grid(labels [4]string, top float32) []button {
	out := make([]button, len(labels))
	left := float32(config.ScreenWidth-2*buttonWidth-buttonGap) / 2
	for i, l := range labels {
		out[i] = button{
			x:     left + float32(i%2)*(buttonWidth+buttonGap),
			y:     top + float32(i/2)*(buttonHeight+buttonGap),
			w:     buttonWidth,
			h:     buttonHeight,
			label: l,
			color: pickColor(i),
		}
	}
	return out
}

// dim затемняет всё нарисованное под панелью
func dim(dst *ebiten.Image) {
	vector.DrawFilledRect(dst, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor, false)
}
