package dom

// Event carries the state of a dispatched user event.
type Event struct {
	// Type is the event kind, e.g. "click".
	Type string

	// Target is the node the event was dispatched on.
	Target *Node

	defaultPrevented bool
}

// PreventDefault suppresses the host platform's default action for the
// event (e.g. fragment navigation on an anchor click).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault has been called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// On registers a handler for the given event type. Handlers fire
// synchronously, in registration order, when the event is dispatched.
func (n *Node) On(eventType string, handler func(*Event)) {
	if handler == nil {
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[string][]func(*Event))
	}
	n.handlers[eventType] = append(n.handlers[eventType], handler)
}

// Click dispatches a click event on the node and returns the event after
// all handlers have run. Dispatch does not bubble; only handlers registered
// on this node fire.
func (n *Node) Click() *Event {
	return n.Dispatch("click")
}

// Dispatch fires all handlers registered for the event type, in
// registration order, and returns the event. Nodes with no handlers for the
// type absorb the event silently.
func (n *Node) Dispatch(eventType string) *Event {
	e := &Event{Type: eventType, Target: n}
	for _, h := range n.handlers[eventType] {
		h(e)
	}
	return e
}

// ScrollBehavior selects how a scroll-into-view request is animated.
type ScrollBehavior string

const (
	ScrollAuto   ScrollBehavior = "auto"
	ScrollSmooth ScrollBehavior = "smooth"
)

// ScrollRequest records a scroll-into-view request made against a node.
type ScrollRequest struct {
	Target   *Node
	Behavior ScrollBehavior
}

// ScrollIntoView requests that the host bring the node into the viewport.
// The request is appended to the owning document's scroll log; a detached
// node's request is dropped.
func (n *Node) ScrollIntoView(behavior ScrollBehavior) {
	if n.doc == nil {
		return
	}
	n.doc.scrolls = append(n.doc.scrolls, ScrollRequest{Target: n, Behavior: behavior})
}
