package app

import (
	"fmt"
	"log"

	"arcadia/internal/component"
	"arcadia/internal/event"
	"arcadia/internal/score"

	"github.com/google/uuid"
)

// Match — учёт одного матча: идентификатор, время, исход и очки победителя.
type Match struct {
	ID      string
	Elapsed float64
	Outcome score.Outcome
	Score   int
	Winner  string
}

func newMatch() Match {
	return Match{ID: uuid.NewString()}
}

// Over — матч завершён
func (m *Match) Over() bool { return m.Outcome != score.None }

// finish фиксирует исход и считает очки победителя по его здоровью.
func (m *Match) finish(outcome score.Outcome, pilots [2]*component.Pilot, healths [2]*component.Health, d *event.Dispatcher) {
	m.Outcome = outcome
	winner := -1
	if slot, ok := outcome.Winner(); ok {
		winner = slot
		h, p := healths[slot], pilots[slot]
		if h != nil && p != nil {
			m.Score = score.Compute(m.Elapsed, h.Max, h.Value, p.HPPenalty)
			m.Winner = p.Name
		}
	}
	log.Printf("match %s ended: %s score=%d time=%.1fs", m.ID, outcome, m.Score, m.Elapsed)
	d.Emit(event.MatchEnded, event.MatchResult{
		MatchID: m.ID,
		Outcome: outcome.String(),
		Winner:  winner,
		Score:   m.Score,
		Elapsed: m.Elapsed,
	})
}

// TimerLabel — строка таймера для HUD
func (m *Match) TimerLabel() string {
	return fmt.Sprintf("Time: %.1fs", m.Elapsed)
}

// ResultLabel — «Player 1 Wins!» и очки для панели конца игры
func (m *Match) ResultLabel() string {
	if _, ok := m.Outcome.Winner(); !ok {
		return m.Outcome.String()
	}
	return fmt.Sprintf("%s\nScore: %d", m.Outcome, m.Score)
}
