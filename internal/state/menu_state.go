// internal/state/menu_state.go
package state

import (
	"image/color"

	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/menu"
	"arcadia/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	menuPlay = iota
	menuInstructions
	menuLeaderboard
	menuQuit
)

// MenuState — главное меню
type MenuState struct {
	sm      *StateMachine
	session *Session
	focus   *menu.Focus
	buttons []*ui.MenuButton
}

func NewMenuState(sm *StateMachine, s *Session) *MenuState {
	labels := []string{"Play", "Instructions", "Leaderboard", "Quit"}
	colors := []color.RGBA{config.ButtonColors[0], config.ButtonColors[3], config.ButtonColors[2], config.ButtonColors[4]}
	return &MenuState{
		sm:      sm,
		session: s,
		focus:   menu.NewFocus(menu.Column, len(labels)),
		buttons: ui.Column(labels, colors, config.ScreenWidth, 260, s.Font),
	}
}

func (m *MenuState) Enter() {
	m.focus.Reset()
}

func (m *MenuState) Update(deltaTime float64) {
	if d, ok := navDirection(); ok {
		m.focus.Move(d)
	}
	for i, b := range m.buttons {
		if b.IsClicked(rl.GetMousePosition()) {
			m.activate(i)
			return
		}
	}
	if confirmPressed() {
		m.activate(m.focus.Index())
	}
}

func (m *MenuState) activate(i int) {
	switch i {
	case menuPlay:
		m.sm.Fire(flow.StartMatch)
	case menuInstructions:
		m.sm.Fire(flow.OpenInstructions)
	case menuLeaderboard:
		m.sm.Fire(flow.OpenLeaderboard)
	case menuQuit:
		m.session.Quit = true
	}
}

func (m *MenuState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	ui.DrawCentered(m.session.Font, "SPACE DOGFIGHT", config.ScreenWidth, 120, 64, rl.White)
	for i, b := range m.buttons {
		b.Draw(i == m.focus.Index(), m.focus.Enabled(i))
	}
}

func (m *MenuState) Exit() {}
