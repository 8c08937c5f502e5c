// cmd/topdown/main.go
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
	"arcadia/internal/screen"
	"arcadia/internal/settings"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	screens        *screen.Machine
	session        *screen.Session
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.session.Quit {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.screens.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(dst *ebiten.Image) {
	a.screens.Draw(dst)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	paths := config.LoadPaths(".env")

	devMode := flag.Bool("dev", false, "Start the match right away, skipping the menu")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	profiles, err := settings.Load(paths.Settings)
	if err != nil {
		log.Printf("WARNING: using default settings: %v", err)
	}

	dispatcher := event.NewDispatcher()
	sounds := audio.NewSoundManager()
	sounds.Start(*mute)
	sounds.Subscribe(dispatcher)
	defer sounds.Cleanup()

	session := &screen.Session{
		Game:         app.NewArenaGame(profiles, dispatcher),
		Recorder:     leaderboard.NewRecorder(leaderboard.OpenStore(paths.Leaderboard)),
		Profiles:     profiles,
		SettingsPath: paths.Settings,
	}
	game := &AppGame{
		screens:        screen.NewArenaScreens(session, *devMode),
		session:        session,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Top-Down Duel")
	ebiten.SetTPS(config.TargetFPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
