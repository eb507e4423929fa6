// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event carries a typed payload from types.go in Data.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener receives events synchronously on the game goroutine.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans events out to listeners in subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

func (d *Dispatcher) indexOf(eventType EventType, listener Listener) int {
	for i, l := range d.listeners[eventType] {
		if l == listener {
			return i
		}
	}
	return -1
}

// Subscribe adds listener once; a repeated subscription is a no-op.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	if d.indexOf(eventType, listener) >= 0 {
		return
	}
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll subscribes one listener to several event types.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	i := d.indexOf(eventType, listener)
	if i < 0 {
		return
	}
	// Новый срез: Dispatch может в этот момент идти по старому.
	current := d.listeners[eventType]
	next := make([]Listener, 0, len(current)-1)
	next = append(next, current[:i]...)
	d.listeners[eventType] = append(next, current[i+1:]...)
}

// Dispatch delivers to the listeners subscribed when the call started.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
