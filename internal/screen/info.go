package screen

import (
	"fmt"

	"arcadia/internal/config"
	"arcadia/internal/flow"

	"github.com/hajimehoshi/ebiten/v2"
)

// LeaderboardScreen — десять лучших результатов
type LeaderboardScreen struct {
	m       *Machine
	session *Session
}

func NewLeaderboardScreen(m *Machine, s *Session) *LeaderboardScreen {
	return &LeaderboardScreen{m: m, session: s}
}

func (s *LeaderboardScreen) Enter() { s.session.Recorder.Reload() }

func (s *LeaderboardScreen) Update(deltaTime float64) {
	if backPressed() || confirmPressed() {
		s.m.Fire(flow.Back)
	}
}

func (s *LeaderboardScreen) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	drawCentered(dst, "LEADERBOARD", 60, 4, config.TextColor)
	entries := s.session.Recorder.Entries()
	if len(entries) == 0 {
		drawCentered(dst, "No scores yet", 200, 2, config.TextColor)
	}
	for i, e := range entries {
		drawCentered(dst, fmt.Sprintf("%2d. %-8s %6d", i+1, e.Name, e.Score), 150+float64(i)*40, 2, config.TextColor)
	}
	drawCentered(dst, "Esc - back", config.ScreenHeight-60, 2, config.TextColor)
}

func (s *LeaderboardScreen) Exit() {}

const instructionsText = `Player 1 (blue): W/S move, A/D turn, Space shoot
Player 2 (orange): Up/Down move, Left/Right turn, Right Shift shoot

Esc or P pauses the match, R restarts it from the game over screen.
Menus: W/S or arrows to move, Space or Enter to select.

Save Score:
  W/S change the letter, A/D change the slot, Space to confirm`

// InstructionsScreen — управление и правила
type InstructionsScreen struct {
	m       *Machine
	session *Session
}

func NewInstructionsScreen(m *Machine, s *Session) *InstructionsScreen {
	return &InstructionsScreen{m: m, session: s}
}

func (s *InstructionsScreen) Enter() {}

func (s *InstructionsScreen) Update(deltaTime float64) {
	if backPressed() || confirmPressed() {
		s.m.Fire(flow.Back)
	}
}

func (s *InstructionsScreen) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	drawCentered(dst, "INSTRUCTIONS", 60, 4, config.TextColor)
	drawCentered(dst, instructionsText, 170, 2, config.TextColor)
	drawCentered(dst, "Esc - back", config.ScreenHeight-60, 2, config.TextColor)
}

func (s *InstructionsScreen) Exit() {}
