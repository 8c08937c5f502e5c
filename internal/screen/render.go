package screen

import (
	"arcadia/internal/app"
	"arcadia/internal/config"
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const ppu = config.ArenaPixelsPerUnit

// ArenaRenderer рисует арену сверху: X вправо, Z вверх по экрану.
type ArenaRenderer struct{}

func NewArenaRenderer() *ArenaRenderer {
	return &ArenaRenderer{}
}

func toScreen(p mgl32.Vec3) (float32, float32) {
	return config.ScreenWidth/2 + p.X()*ppu, config.ScreenHeight/2 - p.Z()*ppu
}

// Draw рисует пол, стены, укрытия, бойцов, снаряды и HUD.
func (r *ArenaRenderer) Draw(dst *ebiten.Image, g *app.ArenaGame) {
	dst.Fill(config.BackgroundColor)

	const side = config.ArenaSize * ppu
	x0, y0 := toScreen(mgl32.Vec3{-config.ArenaSize / 2, 0, config.ArenaSize / 2})
	vector.DrawFilledRect(dst, x0, y0, side, side, config.FloorColor, false)

	for _, id := range g.Walls {
		r.drawBox(dst, g, id)
	}
	for _, id := range g.Covers {
		r.drawBox(dst, g, id)
	}

	for _, id := range g.Fighters {
		t := g.ECS.Transforms[id]
		if t == nil {
			continue
		}
		r.drawBox(dst, g, id)
		cx, cy := toScreen(t.Position)
		nx, ny := toScreen(t.Position.Add(t.Forward().Mul(config.FighterMuzzle)))
		vector.StrokeLine(dst, cx, cy, nx, ny, 3, config.TextColor, true)
	}

	for _, id := range g.Projectiles() {
		t := g.ECS.Transforms[id]
		if t == nil {
			continue
		}
		x, y := toScreen(t.Position)
		radius := float32(config.ProjectileRadius * ppu)
		if radius < 3 {
			radius = 3
		}
		vector.DrawFilledCircle(dst, x, y, radius, config.ProjectileColor, true)
	}

	drawCentered(dst, g.Match.TimerLabel(), 8, 2, config.TextColor)
	drawText(dst, g.HPLabel(0), 20, 8, 2, config.PlayerColors[0])
	right := g.HPLabel(1)
	drawText(dst, right, config.ScreenWidth-20-textWidth(right, 2), 8, 2, config.PlayerColors[1])
}

// drawBox рисует прямоугольник по коллайдеру: поворот не учитывается, как и в столкновениях
func (r *ArenaRenderer) drawBox(dst *ebiten.Image, g *app.ArenaGame, id types.EntityID) {
	t, rend := g.ECS.Transforms[id], g.ECS.Renderables[id]
	if t == nil || rend == nil {
		return
	}
	col := rend.Color
	if g.EffectSystem.Flashing(id) {
		col = config.FlashColor
	}
	w, h := rend.Size.X()*ppu, rend.Size.Z()*ppu
	cx, cy := toScreen(t.Position)
	vector.DrawFilledRect(dst, cx-w/2, cy-h/2, w, h, col, false)
}
