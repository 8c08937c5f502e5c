// Package score — подсчёт очков победителя и исход матча.
package score

import "arcadia/internal/config"

// Outcome — исход матча
type Outcome int

const (
	None Outcome = iota
	P1Wins
	P2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case P1Wins:
		return "Player 1 Wins!"
	case P2Wins:
		return "Player 2 Wins!"
	case Draw:
		return "Draw!"
	}
	return ""
}

// Winner возвращает слот победителя (0 или 1) и false для ничьей или незаконченного матча.
func (o Outcome) Winner() (int, bool) {
	switch o {
	case P1Wins:
		return 0, true
	case P2Wins:
		return 1, true
	}
	return 0, false
}

// WinFor — исход, в котором победил игрок со слотом slot.
func WinFor(slot int) Outcome {
	if slot == 0 {
		return P1Wins
	}
	return P2Wins
}

// Decide определяет исход по тому, кто выбыл в этом кадре.
func Decide(p1Out, p2Out bool) Outcome {
	switch {
	case p1Out && p2Out:
		return Draw
	case p1Out:
		return P2Wins
	case p2Out:
		return P1Wins
	}
	return None
}

// Compute: 1000 - int(время*10) - потерянное_здоровье*штраф, не меньше нуля.
func Compute(elapsed float64, healthMax, health, penalty int) int {
	hpLost := healthMax - health
	if hpLost < 0 {
		hpLost = 0
	}
	s := config.BaseScore - int(elapsed*config.TimePenalty) - hpLost*penalty
	if s < 0 {
		return 0
	}
	return s
}
