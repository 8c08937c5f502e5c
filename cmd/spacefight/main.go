// cmd/spacefight/main.go
package main

import (
	"flag"
	"log"
	"time"

	"arcadia/internal/app"
	"arcadia/internal/audio"
	"arcadia/internal/config"
	"arcadia/internal/event"
	"arcadia/internal/leaderboard"
	"arcadia/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	paths := config.LoadPaths(".env")

	// --- Флаги командной строки ---
	devMode := flag.Bool("dev", false, "Start the match right away, skipping the menu")
	seed := flag.Int64("seed", paths.Seed, "Asteroid field seed")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Space Dogfight")
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		log.Fatalf("Failed to open window %dx%d", config.ScreenWidth, config.ScreenHeight)
	}
	rl.SetTargetFPS(config.TargetFPS)
	rl.SetExitKey(0) // Esc — «назад», а не выход

	// --- Звук ---
	dispatcher := event.NewDispatcher()
	sounds := audio.NewSoundManager()
	sounds.Start(*mute)
	sounds.Subscribe(dispatcher)
	defer sounds.Cleanup()

	// --- Таблица рекордов ---
	store := leaderboard.OpenStore(paths.Leaderboard)

	session := &state.Session{
		Game:     app.NewSpaceGame(*seed, dispatcher),
		Recorder: leaderboard.NewRecorder(store),
		Font:     rl.GetFontDefault(),
	}
	sm := state.NewSpaceStates(session, *devMode)
	defer session.Cleanup()
	if *devMode {
		log.Println("---DEV MODE: Starting match directly---")
	}

	// --- Главный цикл игры ---
	lastUpdateTime := time.Now()
	for !rl.WindowShouldClose() && !session.Quit {
		now := time.Now()
		deltaTime := now.Sub(lastUpdateTime).Seconds()
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		lastUpdateTime = now

		sm.Update(deltaTime)

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}
}
