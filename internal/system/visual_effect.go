// internal/system/visual_effect.go
package system

import (
	"arcadia/internal/component"
	"arcadia/internal/config"
	"arcadia/internal/entity"
	"arcadia/internal/event"
	"arcadia/internal/types"
)

// VisualEffectSystem управляет вспышками урона: подписывается на попадания
// и гасит вспышку по таймеру.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает систему и подписывает её на события урона.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{ecs: ecs}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(s, event.PlayerHit, event.ShipCrashed)
	}
	return s
}

func (s *VisualEffectSystem) OnEvent(e event.Event) {
	hit, ok := e.Data.(event.Hit)
	if !ok || !s.ecs.Alive(hit.Target) {
		return
	}
	s.ecs.Flashes[hit.Target] = &component.DamageFlash{
		Timer:    config.DamageFlashDuration,
		Duration: config.DamageFlashDuration,
	}
}

// Update обновляет таймеры вспышек урона
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.ecs.Flashes {
		flash.Timer -= deltaTime
		if flash.Timer <= 0 {
			delete(s.ecs.Flashes, id)
		}
	}
}

// Flashing — рисовать ли сущность цветом вспышки
func (s *VisualEffectSystem) Flashing(id types.EntityID) bool {
	_, ok := s.ecs.Flashes[id]
	return ok
}
