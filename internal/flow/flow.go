// Package flow — конечный автомат экранов игры. Текущая фаза — обычное поле
// машины, переходы делаются только через Fire и Update.
package flow

import (
	"fmt"
	"math"
)

// Phase — фаза (экран) игры
type Phase int

const (
	Menu Phase = iota
	SetupGame
	Play
	Pause
	EndGame
	NameEntry
	Leaderboard
	Instructions
	Settings
)

var phaseNames = [...]string{
	Menu:         "menu",
	SetupGame:    "setup_game",
	Play:         "play",
	Pause:        "pause",
	EndGame:      "end_game",
	NameEntry:    "name_entry",
	Leaderboard:  "leaderboard",
	Instructions: "instructions",
	Settings:     "settings",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Ancillary — вспомогательный экран, возвращающийся туда, откуда его открыли.
func (p Phase) Ancillary() bool {
	switch p {
	case NameEntry, Leaderboard, Instructions, Settings:
		return true
	}
	return false
}

// Trigger — дискретное событие: нажатие клавиши, выбор кнопки или конец матча.
type Trigger int

const (
	StartMatch Trigger = iota
	TogglePause
	Reset
	MainMenu
	Eliminated
	Back
	OpenNameEntry
	OpenLeaderboard
	OpenInstructions
	OpenSettings
)

// Machine — автомат. Нулевое значение не используется, создавайте через New.
type Machine struct {
	phase     Phase
	caller    Phase
	countdown float64
	duration  float64
}

// New создаёт автомат в меню. countdown — длительность отсчёта перед игрой в секундах.
func New(countdown float64) *Machine {
	return &Machine{phase: Menu, caller: Menu, duration: countdown}
}

func (m *Machine) Phase() Phase { return m.phase }

// Caller — экран, в который вернётся вспомогательный экран по Back.
func (m *Machine) Caller() Phase { return m.caller }

// Fire применяет триггер. Возвращает false, если в текущей фазе триггер ничего не значит.
func (m *Machine) Fire(t Trigger) bool {
	next, ok := m.next(t)
	if !ok {
		return false
	}
	if next.Ancillary() && !m.phase.Ancillary() {
		m.caller = m.phase
	}
	if next == SetupGame {
		m.countdown = m.duration
	}
	m.phase = next
	return true
}

func (m *Machine) next(t Trigger) (Phase, bool) {
	switch m.phase {
	case Menu:
		switch t {
		case StartMatch:
			return SetupGame, true
		case OpenLeaderboard:
			return Leaderboard, true
		case OpenInstructions:
			return Instructions, true
		case OpenSettings:
			return Settings, true
		}
	case SetupGame:
		if t == MainMenu {
			return Menu, true
		}
	case Play:
		switch t {
		case TogglePause:
			return Pause, true
		case Eliminated:
			return EndGame, true
		}
	case Pause:
		switch t {
		case TogglePause, Back:
			return Play, true
		case MainMenu:
			return Menu, true
		}
	case EndGame:
		switch t {
		case Reset, StartMatch:
			return SetupGame, true
		case MainMenu:
			return Menu, true
		case OpenNameEntry:
			return NameEntry, true
		case OpenLeaderboard:
			return Leaderboard, true
		case OpenInstructions:
			return Instructions, true
		case OpenSettings:
			return Settings, true
		}
	case NameEntry, Leaderboard, Instructions, Settings:
		if t == Back {
			return m.caller, true
		}
	}
	return m.phase, false
}

// Update продвигает отсчёт в setup_game. Возвращает true в кадре, когда начинается play.
func (m *Machine) Update(deltaTime float64) bool {
	if m.phase != SetupGame {
		return false
	}
	m.countdown -= deltaTime
	if m.countdown > 0 {
		return false
	}
	m.countdown = 0
	m.phase = Play
	return true
}

// Remaining — сколько секунд осталось до начала игры
func (m *Machine) Remaining() float64 { return m.countdown }

// CountdownLabel возвращает "3", "2", "1" во время отсчёта и пустую строку вне его.
func (m *Machine) CountdownLabel() string {
	if m.phase != SetupGame {
		return ""
	}
	n := int(math.Ceil(m.countdown))
	if n < 1 {
		n = 1
	}
	return fmt.Sprintf("%d", n)
}
