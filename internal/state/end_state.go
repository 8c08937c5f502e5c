package state

import (
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/menu"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	endRestart = iota
	endMainMenu
	endSaveScore
	endLeaderboard
)

// EndState — итог матча и сетка 2×2 с дальнейшими действиями.
type EndState struct {
	sm      *StateMachine
	session *Session
	focus   *menu.Focus
	buttons []*ui.MenuButton
	shown   float64
}

func NewEndState(sm *StateMachine, s *Session) *EndState {
	labels := [4]string{"Restart", "Main Menu", "Save Score", "Leaderboard"}
	return &EndState{
		sm:      sm,
		session: s,
		focus:   menu.NewFocus(menu.Grid, len(labels)),
		buttons: ui.Grid(labels, config.ButtonColors, config.ScreenWidth, config.ScreenHeight/2+40, s.Font),
	}
}

// Enter пересчитывает доступность «Save Score»: нужен победитель,
// результат должен попадать в таблицу и ещё не быть сохранённым.
func (s *EndState) Enter() {
	s.shown = 0
	match := s.session.Game.Match
	_, won := match.Outcome.Winner()
	s.focus.SetEnabled(endSaveScore, won && !s.session.saved && s.session.Recorder.Qualifies(match.Score))
	s.focus.Reset()
}

func (s *EndState) Update(deltaTime float64) {
	s.shown += deltaTime
	if d, ok := navDirection(); ok {
		s.focus.Move(d)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.sm.Fire(flow.Reset)
		return
	}
	// случайное нажатие огня в конце боя не должно сразу перезапускать матч
	if s.shown < config.GameOverInputDelay {
		return
	}
	if confirmPressed() {
		s.activate(s.focus.Index())
	}
}

func (s *EndState) activate(i int) {
	if !s.focus.Enabled(i) {
		return
	}
	switch i {
	case endRestart:
		s.sm.Fire(flow.Reset)
	case endMainMenu:
		s.sm.Fire(flow.MainMenu)
	case endSaveScore:
		s.sm.Fire(flow.OpenNameEntry)
	case endLeaderboard:
		s.sm.Fire(flow.OpenLeaderboard)
	}
}

func (s *EndState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	s.session.renderer.Draw(s.session.Game)

	rl.DrawRectangle(0, 0, config.ScreenWidth, config.ScreenHeight, config.PanelColor)
	ui.DrawCentered(s.session.Font, s.session.Game.Match.ResultLabel(), config.ScreenWidth, config.ScreenHeight/2-200, 48, config.HighlightColor)
	for slot := 0; slot < 2; slot++ {
		ui.DrawCentered(s.session.Font, s.session.Game.StatsSystem.Summary(slot), config.ScreenWidth, config.ScreenHeight/2-50+float32(slot)*28, 24, config.PlayerColors[slot])
	}
	for i, b := range s.buttons {
		b.Draw(i == s.focus.Index(), s.focus.Enabled(i))
	}
}

func (s *EndState) Exit() {}
