package game

// EventType names a simulation event.
type EventType string

const (
	EventEnemyKilled     EventType = "enemy_killed"
	EventPickupCollected EventType = "pickup_collected"
	EventLevelUp         EventType = "level_up"
	EventRunEnded        EventType = "run_ended"
)

// Event carries an event type and optional payload.
type Event struct {
	Type EventType
	Data any
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(e Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Dispatcher routes events to subscribed listeners, synchronously, in
// subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe registers a listener for an event type.
func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.listeners[t] = append(d.listeners[t], l)
}

// Dispatch delivers the event to every subscriber of its type.
func (d *Dispatcher) Dispatch(e Event) {
	for _, l := range d.listeners[e.Type] {
		l.OnEvent(e)
	}
}
