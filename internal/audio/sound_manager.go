// Package audio — синтезированные звуковые эффекты, привязанные к игровым событиям.
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"arcadia/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager проигрывает эффекты по событиям. Без инициализированного
// динамика (режим -mute или ошибка звука) все вызовы ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	played      map[Sound]int
	dispatcher  *event.Dispatcher
}

func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}, played: map[Sound]int{}}
}

// Initialize открывает устройство вывода.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Start — инициализация, которая при ошибке оставляет менеджер беззвучным.
func (sm *SoundManager) Start(mute bool) {
	if mute {
		log.Println("audio muted")
		return
	}
	if err := sm.Initialize(); err != nil {
		log.Printf("WARNING: audio disabled: %v", err)
	}
}

// Subscribe подписывает менеджер на все звучащие события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	sm.dispatcher = d
	d.Subscribe(sm, soundEvents...)
}

var soundEvents = []event.EventType{event.ShotFired, event.PlayerHit, event.ShipCrashed, event.MatchEnded}

func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShotFired:
		sm.Play(SoundLaser)
	case event.PlayerHit:
		sm.Play(SoundHit)
	case event.ShipCrashed:
		sm.Play(SoundCrash)
	case event.MatchEnded:
		sm.Play(SoundMatchEnd)
	}
}

// Play добавляет эффект в микшер
func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.played[sound]++
	if !sm.initialized {
		return
	}
	if s := Effect(sound); s != nil {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}

// Played — сколько раз запрашивался эффект
func (sm *SoundManager) Played(sound Sound) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.played[sound]
}

// Cleanup отписывается от шины и останавливает звук
func (sm *SoundManager) Cleanup() {
	if sm.dispatcher != nil {
		sm.dispatcher.Unsubscribe(sm, soundEvents...)
		sm.dispatcher = nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}
