// internal/ui/player_health_indicator.go
package ui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthBarWidth  = 200
	HealthBarHeight = 16
)

// PlayerHealthIndicator — полоска здоровья игрока в углу его половины экрана.
type PlayerHealthIndicator struct {
	Position rl.Vector2
	Color    color.RGBA
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32, col color.RGBA) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: rl.NewVector2(x, y),
		Color:    col,
	}
}

// Draw рисует полоску: заливка пропорциональна здоровью, ниже половины — красная.
func (i *PlayerHealthIndicator) Draw(health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	frac := float32(health) / float32(maxHealth)
	if frac < 0 {
		frac = 0
	}
	fill := i.Color
	if health*2 <= maxHealth {
		fill = rl.Red
	}
	bg := rl.NewRectangle(i.Position.X, i.Position.Y, HealthBarWidth, HealthBarHeight)
	rl.DrawRectangleRec(bg, rl.Black)
	rl.DrawRectangleRec(rl.NewRectangle(bg.X, bg.Y, bg.Width*frac, bg.Height), fill)
	rl.DrawRectangleLinesEx(bg, 1, rl.White)

	rl.DrawText(fmt.Sprintf("HP %d/%d", health, maxHealth), int32(i.Position.X), int32(i.Position.Y)-22, 20, rl.White)
}
