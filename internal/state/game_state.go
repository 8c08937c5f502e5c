// internal/state/game_state.go
package state

import (
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/score"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SetupState — отсчёт 3-2-1 перед матчем. Мир уже виден, но стоит на месте.
type SetupState struct {
	sm      *StateMachine
	session *Session
}

func NewSetupState(sm *StateMachine, s *Session) *SetupState {
	return &SetupState{sm: sm, session: s}
}

// Enter начинает новый матч: новые корабли, тот же сид астероидов.
func (s *SetupState) Enter() {
	s.session.Game.Reset()
	s.session.saved = false
}

func (s *SetupState) Update(deltaTime float64) {
	if backPressed() {
		s.sm.Fire(flow.MainMenu)
	}
}

func (s *SetupState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	s.session.renderer.Draw(s.session.Game)
	ui.DrawCentered(s.session.Font, s.sm.CountdownLabel(), config.ScreenWidth, config.ScreenHeight/2-60, 120, rl.Yellow)
}

func (s *SetupState) Exit() {}

// GameState — сам бой
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine, s *Session) *GameState {
	return &GameState{sm: sm, session: s}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	controls := readControls()
	if controls[0].Pause || controls[1].Pause {
		g.sm.Fire(flow.TogglePause)
		return
	}
	if g.session.Game.Step(deltaTime, controls) != score.None {
		g.sm.Fire(flow.Eliminated)
	}
}

func (g *GameState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	g.session.renderer.Draw(g.session.Game)
}

func (g *GameState) Exit() {}
