// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.06

	CountdownSeconds   = 3.0
	GameOverInputDelay = 0.5 // секунды, пока Space на экране конца игры игнорируется
)

// Космический бой
const (
	WorldHalfSize = 1024.0
	WorldCeiling  = 2048.0

	ShipStartSpeed  = 20.0
	ShipMinSpeed    = 10.0
	ShipMaxSpeed    = 300.0
	ShipSpeedAccel  = 120.0 // единиц/с² при удержании клавиши
	ShipPitchRate   = 60.0  // градусов/с
	ShipRollRate    = 180.0 // градусов/с
	ShipHalfWidth   = 1.0
	ShipHalfHeight  = 0.25
	ShipHalfLength  = 1.0
	ShipHealth      = 100
	ShipHPPenalty   = 2
	GunCooldown     = 0.15
	GunMuzzleOffset = 4.0

	LaserSpeed      = 1000.0
	LaserDamage     = 10
	LaserHalfLength = 2.5

	AsteroidCount      = 512
	AsteroidMinSize    = 2.0
	AsteroidMaxSize    = 30.0
	AsteroidDamage     = 25
	AsteroidSpawnClear = 60.0 // радиус вокруг точек появления без астероидов

	CameraFovy       = 40.0
	CameraHeight     = 2.2
	CameraDistance   = 20.0
	CameraSpeedScale = 500.0

	FocusCircleMin  = 0.08
	FocusCircleMax  = 0.5
	FocusCircleSpin = 2.0 // градусов за кадр

	JoystickDeadZone = 0.08

	DamageFlashDuration = 0.15
)

// Aim assist profiles (threshold по dot, доля смешивания)
var (
	AimProfileP1 = [2]float32{0.94, 0.6}
	AimProfileP2 = [2]float32{0.95, 0.5}
)

// Top-down арена
const (
	ArenaSize          = 40.0
	ArenaWallOffset    = 20.5
	ArenaMoveLimitX    = 19.5
	ArenaMoveLimitZ    = 10.5
	ArenaProjectileMax = 20.0
	ArenaCoverSize     = 2.0
	FighterSize        = 1.0
	FighterMuzzle      = 1.1
	FighterHPPenalty   = 2
	ProjectileRadius   = 0.1
	ArenaPixelsPerUnit = 16.0
)

// Очки
const (
	BaseScore       = 1000
	TimePenalty     = 10 // очков за секунду матча
	LeaderboardSize = 10
	NameSlots       = 6
)

var (
	BackgroundColor = colornames.Black
	FloorColor      = colornames.Gray
	WallColor       = colornames.Darkslategray
	CoverColor      = colornames.Saddlebrown
	ProjectileColor = colornames.Red
	LaserColor      = colornames.Red
	AsteroidColors  = []color.RGBA{colornames.White, colornames.Gray}
	PlayerColors    = []color.RGBA{colornames.Deepskyblue, colornames.Orange}
	PanelColor      = color.RGBA{0, 0, 0, 153}
	TextColor       = colornames.White
	HighlightColor  = colornames.Yellow
	CrosshairColor  = color.RGBA{255, 0, 0, 153}
	FocusColor      = color.RGBA{255, 255, 0, 200}
	FlashColor      = colornames.White
	LockedColor     = colornames.Green
	UnlockedColor   = colornames.Red
	ButtonColors    = []color.RGBA{
		colornames.Dodgerblue,  // Restart / Play
		colornames.Orange,      // Main Menu
		colornames.Green,       // Save Score
		colornames.Blueviolet,  // Leaderboard
		colornames.Firebrick,   // Quit
	}
)
