package screen

import (
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/score"

	"github.com/hajimehoshi/ebiten/v2"
)

// CountdownScreen — 3-2-1 перед боем
type CountdownScreen struct {
	m       *Machine
	session *Session
}

func NewCountdownScreen(m *Machine, s *Session) *CountdownScreen {
	return &CountdownScreen{m: m, session: s}
}

// Enter пересобирает арену с текущими настройками игроков.
func (s *CountdownScreen) Enter() {
	s.session.Game.Reset(s.session.Profiles)
	s.session.saved = false
}

func (s *CountdownScreen) Update(deltaTime float64) {
	if backPressed() {
		s.m.Fire(flow.MainMenu)
	}
}

func (s *CountdownScreen) Draw(dst *ebiten.Image) {
	s.session.renderer.Draw(dst, s.session.Game)
	drawCentered(dst, s.m.CountdownLabel(), config.ScreenHeight/2-60, 10, config.HighlightColor)
}

func (s *CountdownScreen) Exit() {}

// PlayScreen — сам бой
type PlayScreen struct {
	m       *Machine
	session *Session
}

func NewPlayScreen(m *Machine, s *Session) *PlayScreen {
	return &PlayScreen{m: m, session: s}
}

func (s *PlayScreen) Enter() {}

func (s *PlayScreen) Update(deltaTime float64) {
	controls := readControls()
	if controls[0].Pause {
		s.m.Fire(flow.TogglePause)
		return
	}
	if s.session.Game.Step(deltaTime, controls) != score.None {
		s.m.Fire(flow.Eliminated)
	}
}

func (s *PlayScreen) Draw(dst *ebiten.Image) {
	s.session.renderer.Draw(dst, s.session.Game)
}

func (s *PlayScreen) Exit() {}

// PauseScreen — бой под затемнением
type PauseScreen struct {
	m       *Machine
	session *Session
}

func NewPauseScreen(m *Machine, s *Session) *PauseScreen {
	return &PauseScreen{m: m, session: s}
}

func (s *PauseScreen) Enter() {}

func (s *PauseScreen) Update(deltaTime float64) {
	switch {
	case justPressed(ebiten.KeyEscape, ebiten.KeyP):
		s.m.Fire(flow.TogglePause)
	case justPressed(ebiten.KeyM):
		s.m.Fire(flow.MainMenu)
	}
}

func (s *PauseScreen) Draw(dst *ebiten.Image) {
	s.session.renderer.Draw(dst, s.session.Game)
	dim(dst)
	drawCentered(dst, "PAUSED", config.ScreenHeight/2-40, 4, config.TextColor)
	drawCentered(dst, "Esc/P - resume, M - main menu", config.ScreenHeight/2+20, 2, config.TextColor)
}

func (s *PauseScreen) Exit() {}
