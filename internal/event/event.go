// Package event — синхронная шина событий между игровой логикой и звуком/HUD.
package event

import "reflect"

// EventType — тип события
type EventType string

// Event — событие с необязательными данными (см. types.go)
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет подписать обычную функцию
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher — диспетчер событий. Не потокобезопасен: вызывается из игрового цикла.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на одно или несколько событий
func (d *Dispatcher) Subscribe(listener Listener, types ...EventType) {
	for _, t := range types {
		d.listeners[t] = append(d.listeners[t], listener)
	}
}

// Unsubscribe — отписка от событий. ListenerFunc отписать нельзя: функции не сравниваются,
// для них вызов ничего не делает.
func (d *Dispatcher) Unsubscribe(listener Listener, types ...EventType) {
	if listener == nil || !reflect.TypeOf(listener).Comparable() {
		return
	}
	for _, t := range types {
		d.unsubscribe(t, listener)
	}
}

func (d *Dispatcher) unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам в порядке подписки
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Emit — короткая запись Dispatch для nil-безопасного вызова из систем
func (d *Dispatcher) Emit(t EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(Event{Type: t, Data: data})
}
