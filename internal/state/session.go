package state

import (
	"arcadia/internal/app"
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/leaderboard"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Session — то, что делят между собой экраны космического боя.
type Session struct {
	Game     *app.SpaceGame
	Recorder *leaderboard.Recorder
	Font     rl.Font
	Quit     bool

	saved    bool
	renderer *SpaceRenderer
}

// NewSpaceStates собирает все экраны. Вызывать после rl.InitWindow:
// рендерер создаёт текстуры и модель корабля.
func NewSpaceStates(s *Session, dev bool) *StateMachine {
	s.renderer = NewSpaceRenderer(s.Font)
	sm := NewStateMachine(flow.New(config.CountdownSeconds))
	sm.Register(flow.Menu, NewMenuState(sm, s))
	sm.Register(flow.SetupGame, NewSetupState(sm, s))
	sm.Register(flow.Play, NewGameState(sm, s))
	sm.Register(flow.Pause, NewPauseState(sm, s))
	sm.Register(flow.EndGame, NewEndState(sm, s))
	sm.Register(flow.NameEntry, NewNameEntryState(sm, s))
	sm.Register(flow.Leaderboard, NewLeaderboardState(sm, s))
	sm.Register(flow.Instructions, NewInstructionsState(sm, s))
	if dev {
		sm.Fire(flow.StartMatch)
	}
	return sm
}

// Cleanup выгружает GPU-ресурсы
func (s *Session) Cleanup() {
	if s.renderer != nil {
		s.renderer.Unload()
	}
}
