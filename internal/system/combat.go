package system

import (
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/types"
)

// CombatSystem наносит урон игрокам и сообщает об этом через события.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// ApplyDamage снимает здоровье. Возвращает true, если цель выбыла.
// Для сущности без Health ничего не делает.
func (s *CombatSystem) ApplyDamage(target types.EntityID, damage int, kind event.EventType) bool {
	health, ok := s.ecs.Healths[target]
	if !ok || damage <= 0 {
		return false
	}
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}

	slot := -1
	if p, ok := s.ecs.Pilots[target]; ok {
		slot = p.Slot
	}
	s.eventDispatcher.Emit(kind, event.Hit{Target: target, Slot: slot, Damage: damage, Health: health.Value})
	if !health.Alive() {
		s.eventDispatcher.Emit(event.PlayerEliminated, event.Elimination{Slot: slot, Reason: "health"})
		return true
	}
	return false
}

// Eliminate выбивает игрока без урона (вылет за границы, таран).
func (s *CombatSystem) Eliminate(target types.EntityID, reason string) int {
	slot := -1
	if p, ok := s.ecs.Pilots[target]; ok {
		slot = p.Slot
	}
	s.eventDispatcher.Emit(event.PlayerEliminated, event.Elimination{Slot: slot, Reason: reason})
	return slot
}
