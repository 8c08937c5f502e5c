package system

import (
	"fmt"

	"arcadia/internal/event"
)

// Tally — счётчики одного игрока за матч
type Tally struct {
	Shots   int
	Hits    int // попадания по противнику
	Crashes int // удары об астероиды
}

// Accuracy — доля попаданий в процентах
func (t Tally) Accuracy() int {
	if t.Shots == 0 {
		return 0
	}
	return t.Hits * 100 / t.Shots
}

// StatsSystem считает выстрелы и попадания по событиям шины.
type StatsSystem struct {
	tallies [2]Tally
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(s, event.ShotFired, event.PlayerHit, event.ShipCrashed)
	}
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *StatsSystem) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.Shot:
		if validSlot(data.Slot) {
			s.tallies[data.Slot].Shots++
		}
	case event.Hit:
		if !validSlot(data.Slot) {
			return
		}
		// в Hit лежит слот пострадавшего
		if e.Type == event.ShipCrashed {
			s.tallies[data.Slot].Crashes++
		} else {
			s.tallies[1-data.Slot].Hits++
		}
	}
}

func (s *StatsSystem) Reset() { s.tallies = [2]Tally{} }

func (s *StatsSystem) Tally(slot int) Tally { return s.tallies[slot] }

// Summary — строка для экрана конца игры
func (s *StatsSystem) Summary(slot int) string {
	t := s.tallies[slot]
	return fmt.Sprintf("P%d  shots %d  hits %d  accuracy %d%%", slot+1, t.Shots, t.Hits, t.Accuracy())
}

func validSlot(slot int) bool { return slot == 0 || slot == 1 }
