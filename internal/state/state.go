// internal/state/state.go
package state

import (
	"log"

	"arcadia/internal/flow"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
}

// StateMachine связывает экраны с фазами flow.Machine. Решает, куда
// переходить, только автомат фаз, здесь лишь переключаются экраны.
type StateMachine struct {
	flow    *flow.Machine
	screens map[flow.Phase]State
	current State
}

// NewStateMachine создаёт машину состояний без экранов
func NewStateMachine(m *flow.Machine) *StateMachine {
	return &StateMachine{flow: m, screens: make(map[flow.Phase]State)}
}

// Register привязывает экран к фазе. Экран текущей фазы сразу становится активным.
func (sm *StateMachine) Register(p flow.Phase, s State) {
	sm.screens[p] = s
	if p == sm.flow.Phase() {
		sm.sync()
	}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Phase() flow.Phase { return sm.flow.Phase() }

// Fire передаёт триггер автомату и переключает экран, если фаза сменилась.
func (sm *StateMachine) Fire(t flow.Trigger) bool {
	if !sm.flow.Fire(t) {
		return false
	}
	sm.sync()
	return true
}

// CountdownLabel — текущая цифра отсчёта перед матчем
func (sm *StateMachine) CountdownLabel() string { return sm.flow.CountdownLabel() }

// Update обновляет текущее состояние и отсчёт перед игрой
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
	if sm.flow.Update(deltaTime) {
		sm.sync()
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

func (sm *StateMachine) sync() {
	next, ok := sm.screens[sm.flow.Phase()]
	if !ok {
		log.Printf("WARNING: no screen for phase %s", sm.flow.Phase())
		return
	}
	if next == sm.current {
		return
	}
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	sm.current.Enter()
}
