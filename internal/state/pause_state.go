// internal/state/pause_state.go
package state

import (
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/input"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает бой и рисует его под затемнением.
type PauseState struct {
	sm      *StateMachine
	session *Session
}

func NewPauseState(sm *StateMachine, s *Session) *PauseState {
	return &PauseState{sm: sm, session: s}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	switch {
	case rl.IsKeyPressed(rl.KeyTab) || rl.IsKeyPressed(rl.KeyEscape) || gamepadPause():
		s.sm.Fire(flow.TogglePause)
	case rl.IsKeyPressed(rl.KeyM):
		s.sm.Fire(flow.MainMenu)
	}
}

func (s *PauseState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	s.session.renderer.Draw(s.session.Game)

	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, rl.NewColor(0, 0, 0, 128))
	ui.DrawCentered(s.session.Font, "PAUSED", config.ScreenWidth, config.ScreenHeight/2-40, 40, rl.White)
	ui.DrawCentered(s.session.Font, "Tab - resume, M - main menu", config.ScreenWidth, config.ScreenHeight/2+10, 20, rl.LightGray)
}

func (s *PauseState) Exit() {}

func gamepadPause() bool {
	for pad := int32(0); pad < 2; pad++ {
		if rl.IsGamepadAvailable(pad) && rl.IsGamepadButtonPressed(pad, gamepadButtons[input.ButtonPause]) {
			return true
		}
	}
	return false
}
