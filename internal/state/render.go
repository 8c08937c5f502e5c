package state

import (
	"arcadia/internal/app"
	"arcadia/internal/config"
	"arcadia/internal/ui"
	"arcadia/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	viewWidth  = config.ScreenWidth / 2
	viewHeight = config.ScreenHeight
	laserWidth = 0.15
)

// SpaceRenderer рисует разделённый экран: у каждого игрока своя
// текстура, своя камера и свой HUD.
type SpaceRenderer struct {
	views     [2]rl.RenderTexture2D
	shipModel rl.Model
	font      rl.Font

	health    [2]*ui.PlayerHealthIndicator
	crosshair *ui.Crosshair
	focus     *ui.FocusIndicator
	circles   [2]app.FocusCircle
}

func NewSpaceRenderer(font rl.Font) *SpaceRenderer {
	r := &SpaceRenderer{
		font:      font,
		crosshair: ui.NewCrosshair(config.CrosshairColor),
		focus:     ui.NewFocusIndicator(config.FocusColor),
	}
	for slot := range r.views {
		r.views[slot] = rl.LoadRenderTexture(viewWidth, viewHeight)
		r.health[slot] = ui.NewPlayerHealthIndicator(20, viewHeight-40, config.PlayerColors[slot])
	}
	r.shipModel = rl.LoadModelFromMesh(rl.GenMeshCube(1, 1, 1))
	return r
}

// Unload освобождает текстуры и модель
func (r *SpaceRenderer) Unload() {
	for _, v := range r.views {
		rl.UnloadRenderTexture(v)
	}
	rl.UnloadModel(r.shipModel)
}

// Draw рисует обе половины и таймер матча поверх.
func (r *SpaceRenderer) Draw(g *app.SpaceGame) {
	for slot := range r.views {
		r.drawView(g, slot)
	}
	for slot, v := range r.views {
		// текстуры рендера перевёрнуты по Y
		src := rl.NewRectangle(0, 0, float32(v.Texture.Width), -float32(v.Texture.Height))
		rl.DrawTextureRec(v.Texture, src, rl.NewVector2(float32(slot*viewWidth), 0), rl.White)
	}
	rl.DrawLineEx(rl.NewVector2(viewWidth, 0), rl.NewVector2(viewWidth, viewHeight), 2, rl.White)
	ui.DrawCentered(r.font, g.Match.TimerLabel(), config.ScreenWidth, 10, 24, rl.White)
}

func (r *SpaceRenderer) camera(g *app.SpaceGame, slot int) rl.Camera3D {
	eye, target, up := g.ChaseView(slot)
	return rl.Camera3D{
		Position:   toRL(eye),
		Target:     toRL(target),
		Up:         toRL(up),
		Fovy:       config.CameraFovy,
		Projection: rl.CameraPerspective,
	}
}

func (r *SpaceRenderer) drawView(g *app.SpaceGame, slot int) {
	cam := r.camera(g, slot)
	rl.BeginTextureMode(r.views[slot])
	rl.ClearBackground(config.BackgroundColor)
	rl.BeginMode3D(cam)
	r.drawWorld(g)
	rl.EndMode3D()
	r.drawHUD(g, slot, cam)
	rl.EndTextureMode()
}

func (r *SpaceRenderer) drawWorld(g *app.SpaceGame) {
	rl.DrawGrid(64, 2*config.WorldHalfSize/64)

	for _, id := range g.Asteroids {
		t, rend := g.ECS.Transforms[id], g.ECS.Renderables[id]
		if t == nil || rend == nil {
			continue
		}
		rl.DrawSphereEx(toRL(t.Position), rend.Size.X()/2, 8, 8, rend.Color)
	}

	for _, id := range g.Ships {
		rend := g.ECS.Renderables[id]
		pos, rot, ok := g.ECS.WorldTransform(id)
		if !ok || rend == nil {
			continue
		}
		col := rend.Color
		if g.EffectSystem.Flashing(id) {
			col = config.FlashColor
		}
		axis, deg := utils.AxisAngle(rot)
		rl.DrawModelEx(r.shipModel, toRL(pos), toRL(axis), deg, toRL(rend.Size), col)
		rl.DrawModelWiresEx(r.shipModel, toRL(pos), toRL(axis), deg, toRL(rend.Size), rl.White)
	}

	for _, id := range g.Lasers() {
		p, t := g.ECS.Projectiles[id], g.ECS.Transforms[id]
		if p == nil || t == nil {
			continue
		}
		half := p.Direction.Mul(config.LaserHalfLength)
		rl.DrawCylinderEx(toRL(t.Position.Sub(half)), toRL(t.Position.Add(half)), laserWidth, laserWidth, 6, config.LaserColor)
	}
}

func (r *SpaceRenderer) drawHUD(g *app.SpaceGame, slot int, cam rl.Camera3D) {
	ship, health := g.Ship(slot), g.Health(slot)
	if ship == nil || health == nil {
		return
	}
	center := rl.NewVector2(viewWidth/2, viewHeight/2)
	r.crosshair.Draw(center, ship.Speed, ship.AimAssist)
	r.health[slot].Draw(health.Value, health.Max)
	rl.DrawTextEx(r.font, g.ECS.Pilots[g.Ships[slot]].Name, rl.NewVector2(20, 20), 24, 1, config.PlayerColors[slot])
	if ship.RearView {
		rl.DrawText("REAR VIEW", viewWidth-140, 20, 20, rl.Yellow)
	}

	// кольцо вокруг противника, только если он перед камерой
	own, opp := g.Position(slot), g.Position(1-slot)
	eye, target := fromRL(cam.Position), fromRL(cam.Target)
	if opp.Sub(eye).Dot(target.Sub(eye)) <= 0 {
		return
	}
	r.circles[slot].Advance(opp.Sub(own).Len())
	screen := rl.GetWorldToScreenEx(toRL(opp), cam, viewWidth, viewHeight)
	r.focus.Draw(screen, viewHeight, r.circles[slot].Scale, r.circles[slot].Angle)
}

func toRL(v mgl32.Vec3) rl.Vector3 { return rl.NewVector3(v.X(), v.Y(), v.Z()) }

func fromRL(v rl.Vector3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }
