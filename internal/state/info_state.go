package state

import (
	"fmt"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// LeaderboardState — таблица лучших результатов
type LeaderboardState struct {
	sm      *StateMachine
	session *Session
}

func NewLeaderboardState(sm *StateMachine, s *Session) *LeaderboardState {
	return &LeaderboardState{sm: sm, session: s}
}

// Enter перечитывает файл: его мог изменить другой процесс.
func (s *LeaderboardState) Enter() {
	s.session.Recorder.Reload()
}

func (s *LeaderboardState) Update(deltaTime float64) {
	if backPressed() || confirmPressed() {
		s.sm.Fire(flow.Back)
	}
}

func (s *LeaderboardState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	font := s.session.Font
	ui.DrawCentered(font, "LEADERBOARD", config.ScreenWidth, 60, 48, rl.White)
	entries := s.session.Recorder.Entries()
	if len(entries) == 0 {
		ui.DrawCentered(font, "No scores yet", config.ScreenWidth, 200, 28, rl.LightGray)
	}
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %-8s %6d", i+1, e.Name, e.Score)
		ui.DrawCentered(font, line, config.ScreenWidth, 150+float32(i)*40, 28, rl.White)
	}
	ui.DrawCentered(font, "Esc - back", config.ScreenWidth, config.ScreenHeight-60, 20, rl.LightGray)
}

func (s *LeaderboardState) Exit() {}

var instructions = []string{
	"Player 1: W/S pitch, A/D roll, T/Y speed, F fire, G rear view, Q aim assist",
	"Player 2: arrows pitch/roll, O/P speed, K fire, L rear view, U aim assist",
	"Gamepad: left stick steer, A fire, B rear view, X aim assist, LB/RB speed",
	"Tab - pause, R - restart after the match",
	"Hit the enemy with lasers. Asteroids hurt, leaving the arena is fatal.",
}

// InstructionsState — экран с управлением
type InstructionsState struct {
	sm      *StateMachine
	session *Session
}

func NewInstructionsState(sm *StateMachine, s *Session) *InstructionsState {
	return &InstructionsState{sm: sm, session: s}
}

func (s *InstructionsState) Enter() {}

func (s *InstructionsState) Update(deltaTime float64) {
	if backPressed() || confirmPressed() {
		s.sm.Fire(flow.Back)
	}
}

func (s *InstructionsState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	ui.DrawCentered(s.session.Font, "HOW TO PLAY", config.ScreenWidth, 60, 48, rl.White)
	for i, line := range instructions {
		ui.DrawCentered(s.session.Font, line, config.ScreenWidth, 180+float32(i)*44, 24, rl.White)
	}
	ui.DrawCentered(s.session.Font, "Esc - back", config.ScreenWidth, config.ScreenHeight-60, 20, rl.LightGray)
}

func (s *InstructionsState) Exit() {}
