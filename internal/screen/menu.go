package screen

import (
	"image/color"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/menu"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	menuPlay = iota
	menuInstructions
	menuLeaderboard
	menuSettings
	menuQuit
)

// MenuScreen — главное меню
type MenuScreen struct {
	m       *Machine
	session *Session
	focus   *menu.Focus
	buttons []button
}

func NewMenuScreen(m *Machine, s *Session) *MenuScreen {
	labels := []string{"Play", "Instructions", "Leaderboard", "Settings", "Quit"}
	colors := []color.RGBA{
		config.ButtonColors[0], config.ButtonColors[3], config.ButtonColors[2], config.ButtonColors[1], config.ButtonColors[4],
	}
	return &MenuScreen{
		m:       m,
		session: s,
		focus:   menu.NewFocus(menu.Column, len(labels)),
		buttons: column(labels, colors, 240),
	}
}

func (s *MenuScreen) Enter() { s.focus.Reset() }

func (s *MenuScreen) Update(deltaTime float64) {
	if d, ok := navDirection(); ok {
		s.focus.Move(d)
	}
	if !confirmPressed() {
		return
	}
	switch s.focus.Index() {
	case menuPlay:
		s.m.Fire(flow.StartMatch)
	case menuInstructions:
		s.m.Fire(flow.OpenInstructions)
	case menuLeaderboard:
		s.m.Fire(flow.OpenLeaderboard)
	case menuSettings:
		s.m.Fire(flow.OpenSettings)
	case menuQuit:
		s.session.Quit = true
	}
}

func (s *MenuScreen) Draw(dst *ebiten.Image) {
	dst.Fill(config.BackgroundColor)
	drawCentered(dst, "TOP-DOWN DUEL", 120, 5, config.TextColor)
	for i, b := range s.buttons {
		b.draw(dst, i == s.focus.Index(), s.focus.Enabled(i))
	}
}

func (s *MenuScreen) Exit() {}
