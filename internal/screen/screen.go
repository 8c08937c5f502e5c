// Package screen — экраны дуэли с видом сверху на ebiten: меню, отсчёт,
// бой, пауза, конец игры, ввод имени, рекорды, инструкция и настройки.
package screen

import (
	"log"

	"arcadia/internal/flow"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen — интерфейс для всех экранов
type Screen interface {
	Enter()
	Update(deltaTime float64)
	Draw(dst *ebiten.Image)
	Exit()
}

// Machine связывает экраны с фазами flow.Machine
type Machine struct {
	flow    *flow.Machine
	screens map[flow.Phase]Screen
	current Screen
}

func NewMachine(m *flow.Machine) *Machine {
	return &Machine{flow: m, screens: make(map[flow.Phase]Screen)}
}

// Register привязывает экран к фазе. Экран текущей фазы сразу становится активным.
func (m *Machine) Register(p flow.Phase, s Screen) {
	m.screens[p] = s
	if p == m.flow.Phase() {
		m.sync()
	}
}

func (m *Machine) Current() Screen   { return m.current }
func (m *Machine) Phase() flow.Phase { return m.flow.Phase() }

// Fire передаёт триггер автомату и меняет экран, если фаза сменилась.
func (m *Machine) Fire(t flow.Trigger) bool {
	if !m.flow.Fire(t) {
		return false
	}
	m.sync()
	return true
}

func (m *Machine) CountdownLabel() string { return m.flow.CountdownLabel() }

// Update обновляет текущий экран и отсчёт перед игрой
func (m *Machine) Update(deltaTime float64) {
	if m.current != nil {
		m.current.Update(deltaTime)
	}
	if m.flow.Update(deltaTime) {
		m.sync()
	}
}

// Draw отрисовывает текущий экран
func (m *Machine) Draw(dst *ebiten.Image) {
	if m.current != nil {
		m.current.Draw(dst)
	}
}

func (m *Machine) sync() {
	next, ok := m.screens[m.flow.Phase()]
	if !ok {
		log.Printf("WARNING: no screen for phase %s", m.flow.Phase())
		return
	}
	if next == m.current {
		return
	}
	if m.current != nil {
		m.current.Exit()
	}
	m.current = next
	m.current.Enter()
}
