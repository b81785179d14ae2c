package dom

import "golang.org/x/net/html"

// Click is the pointer-activation event type.
const Click = "click"

// Event is a dispatched activation.
type Event struct {
	Type   string
	Target *html.Node

	stopped bool
}

// StopPropagation keeps the event from reaching further ancestors and the
// document-level listeners.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether propagation was stopped.
func (e *Event) Stopped() bool {
	return e.stopped
}

// Handler reacts to an event.
type Handler func(*Event)

type listener struct {
	id   uint64
	node *html.Node
	typ  string
	fn   Handler
}

// Listen subscribes fn to events of typ reaching node. A nil node subscribes
// at document level. The returned cancel func removes the subscription and is
// safe to call more than once.
func (d *Document) Listen(node *html.Node, typ string, fn Handler) (cancel func()) {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, &listener{id: id, node: node, typ: typ, fn: fn})
	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount returns the number of live subscriptions.
func (d *Document) ListenerCount() int {
	return len(d.listeners)
}

// Dispatch delivers an event of typ to target, bubbling through its ancestors
// and finally to document-level listeners.
func (d *Document) Dispatch(typ string, target *html.Node) *Event {
	ev := &Event{Type: typ, Target: target}
	for n := target; n != nil; n = n.Parent {
		d.deliver(ev, n)
		if ev.stopped {
			return ev
		}
	}
	d.deliver(ev, nil)
	return ev
}

func (d *Document) deliver(ev *Event, node *html.Node) {
	// Handlers may cancel subscriptions while we iterate.
	snapshot := make([]*listener, 0, len(d.listeners))
	for _, l := range d.listeners {
		if l.node == node && l.typ == ev.Type {
			snapshot = append(snapshot, l)
		}
	}
	for _, l := range snapshot {
		l.fn(ev)
	}
}
