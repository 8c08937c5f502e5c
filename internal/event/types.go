package event

import (
	"arcadia/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShotFired        EventType = "ShotFired"        // выстрел, данные Shot
	PlayerHit        EventType = "PlayerHit"        // попадание, данные Hit
	ShipCrashed      EventType = "ShipCrashed"      // столкновение с астероидом, данные Hit
	PlayerEliminated EventType = "PlayerEliminated" // данные Elimination
	MatchEnded       EventType = "MatchEnded"       // данные MatchResult
)

type Shot struct {
	Shooter  types.EntityID
	Slot     int
	Position mgl32.Vec3
	Assisted bool
}

type Hit struct {
	Target types.EntityID
	Slot   int
	Damage int
	Health int
}

type Elimination struct {
	Slot   int
	Reason string
}

type MatchResult struct {
	MatchID string
	Outcome string
	Winner  int // -1 при ничьей
	Score   int
	Elapsed float64
}
