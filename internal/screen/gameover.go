package screen

import (
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	overRestart = iota
	overMainMenu
	overSaveScore
	overLeaderboard
)

// GameOverScreen — итог и сетка 2×2. Первые полсекунды подтверждение
// игнорируется: пробел — это ещё и огонь Player 1.
type GameOverScreen struct {
	m       *Machine
	session *Session
	focus   *menu.Focus
	buttons []button
	shown   float64
}

func NewGameOverScreen(m *Machine, s *Session) *GameOverScreen {
	return &GameOverScreen{
		m:       m,
		session: s,
		focus:   menu.NewFocus(menu.Grid, 4),
		buttons: grid([4]string{"Restart", "Main Menu", "Save Score", "View Leaderboard"}, config.ScreenHeight/2+20),
	}
}

// Enter выключает «Save Score», если счёт уже сохранён или не попадает в таблицу.
func (s *GameOverScreen) Enter() {
	s.shown = 0
	match := s.session.Game.Match
	_, won := match.Outcome.Winner()
	s.focus.SetEnabled(overSaveScore, won && !s.session.saved && s.session.Recorder.Qualifies(match.Score))
	s.focus.Reset()
}

func (s *GameOverScreen) Update(deltaTime float64) {
	s.shown += deltaTime
	if d, ok := navDirection(); ok {
		s.focus.Move(d)
	}
	if justPressed(ebiten.KeyR) {
		s.m.Fire(flow.Reset)
		return
	}
	if s.shown < config.GameOverInputDelay || !confirmPressed() {
		return
	}
	switch s.focus.Index() {
	case overRestart:
		s.m.Fire(flow.Reset)
	case overMainMenu:
		s.m.Fire(flow.MainMenu)
	case overSaveScore:
		if s.focus.Enabled(overSaveScore) {
			s.m.Fire(flow.OpenNameEntry)
		}
	case overLeaderboard:
		s.m.Fire(flow.OpenLeaderboard)
	}
}

func (s *GameOverScreen) Draw(dst *ebiten.Image) {
	s.session.renderer.Draw(dst, s.session.Game)
	dim(dst)
	drawCentered(dst, s.session.Game.Match.ResultLabel(), config.ScreenHeight/2-160, 4, config.HighlightColor)
	for slot := 0; slot < 2; slot++ {
		drawCentered(dst, s.session.Game.StatsSystem.Summary(slot), config.ScreenHeight/2-50+float64(slot)*24, 2, config.PlayerColors[slot])
	}
	for i, b := range s.buttons {
		b.draw(dst, i == s.focus.Index(), s.focus.Enabled(i))
	}
}

func (s *GameOverScreen) Exit() {}
