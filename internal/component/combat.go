package component

import "arcadia/internal/types"

// Health — компонент здоровья (pv)
type Health struct {
	Value int
	Max   int
}

func NewHealth(max int) *Health {
	return &Health{Value: max, Max: max}
}

// Alive — жив ли владелец
func (h *Health) Alive() bool { return h.Value > 0 }

// Lost — сколько здоровья потеряно с начала матча
func (h *Health) Lost() int {
	if h.Value >= h.Max {
		return 0
	}
	return h.Max - h.Value
}

// Gun — пушка корабля, дочерняя сущность с собственным трансформом.
type Gun struct {
	Owner    types.EntityID
	Cooldown float32 // оставшееся время до следующего выстрела
	Delay    float32
	Muzzle   float32 // смещение точки вылета вдоль forward
}

// Ready — можно ли стрелять
func (g *Gun) Ready() bool { return g.Cooldown <= 0 }
