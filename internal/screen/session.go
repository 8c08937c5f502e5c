package screen

import (
	"arcadia/internal/app"
	"arcadia/internal/config"
	"arcadia/internal/flow"
	"arcadia/internal/leaderboard"
	"arcadia/internal/settings"
)

// Session — общее состояние экранов: матч, таблица рекордов и настройки.
type Session struct {
	Game         *app.ArenaGame
	Recorder     *leaderboard.Recorder
	Profiles     settings.Profiles
	SettingsPath string
	Quit         bool

	saved    bool
	renderer *ArenaRenderer
}

// NewArenaScreens собирает экраны. dev сразу запускает отсчёт матча.
func NewArenaScreens(s *Session, dev bool) *Machine {
	s.renderer = NewArenaRenderer()
	m := NewMachine(flow.New(config.CountdownSeconds))
	m.Register(flow.Menu, NewMenuScreen(m, s))
	m.Register(flow.SetupGame, NewCountdownScreen(m, s))
	m.Register(flow.Play, NewPlayScreen(m, s))
	m.Register(flow.Pause, NewPauseScreen(m, s))
	m.Register(flow.EndGame, NewGameOverScreen(m, s))
	m.Register(flow.NameEntry, NewNameEntryScreen(m, s))
	m.Register(flow.Leaderboard, NewLeaderboardScreen(m, s))
	m.Register(flow.Instructions, NewInstructionsScreen(m, s))
	m.Register(flow.Settings, NewSettingsScreen(m, s))
	if dev {
		m.Fire(flow.StartMatch)
	}
	return m
}
