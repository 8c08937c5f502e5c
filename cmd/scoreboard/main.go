// cmd/scoreboard/main.go
package main

import (
	"flag"
	"log"

	"arcadia/internal/config"
	"arcadia/internal/leaderboard"
	"arcadia/internal/scoreview"

	"github.com/gdamore/tcell/v2"
)

func main() {
	paths := config.LoadPaths(".env")
	file := flag.String("file", paths.Leaderboard, "Leaderboard file (.csv or .json)")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	defer screen.Fini()

	recorder := leaderboard.NewRecorder(leaderboard.OpenStore(*file))
	scoreview.New(screen, recorder, "ARCADIA LEADERBOARD").Run()
}
