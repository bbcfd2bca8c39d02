package viewport

import "github.com/vango-go/folio/pkg/dom"

// Sim is a deterministic, synchronous Observer for tests and other
// headless hosts. Entries are delivered only when the caller invokes Enter
// or Deliver; nothing fires spontaneously.
type Sim struct {
	cb      Callback
	opts    Options
	watched map[*dom.Node]bool
}

var _ Observer = (*Sim)(nil)

// NewSim creates a simulator observer.
func NewSim(cb Callback, opts Options) *Sim {
	return &Sim{
		cb:      cb,
		opts:    opts,
		watched: make(map[*dom.Node]bool),
	}
}

// Capture returns a Factory that stores the created simulator in *sim,
// letting a test hand the factory to a binder and then drive the observer
// it built:
//
//	var sim *viewport.Sim
//	ctl := behavior.Bind(doc, viewport.Capture(&sim))
//	sim.Enter(section, 0.5)
func Capture(sim **Sim) Factory {
	return func(cb Callback, opts Options) Observer {
		s := NewSim(cb, opts)
		*sim = s
		return s
	}
}

// Observe implements Observer.
func (s *Sim) Observe(n *dom.Node) {
	if n == nil {
		return
	}
	s.watched[n] = true
}

// Unobserve implements Observer.
func (s *Sim) Unobserve(n *dom.Node) {
	delete(s.watched, n)
}

// Disconnect implements Observer.
func (s *Sim) Disconnect() {
	s.watched = make(map[*dom.Node]bool)
}

// Watching reports whether the node is currently observed.
func (s *Sim) Watching(n *dom.Node) bool { return s.watched[n] }

// WatchedCount returns the number of currently observed nodes.
func (s *Sim) WatchedCount() int { return len(s.watched) }

// Threshold returns the threshold the observer was constructed with.
func (s *Sim) Threshold() float64 { return s.opts.Threshold }

// Enter simulates the node entering the viewport at the given ratio. The
// entry is delivered only if the node is currently watched, with
// Intersecting set when the ratio meets the configured threshold.
func (s *Sim) Enter(n *dom.Node, ratio float64) {
	if !s.watched[n] {
		return
	}
	s.Deliver(Entry{
		Target:       n,
		Ratio:        ratio,
		Intersecting: ratio >= s.opts.Threshold,
	})
}

// Deliver invokes the callback with the given batch as-is, regardless of
// watch state. Hosts may queue notifications before an unobserve takes
// effect; Deliver lets tests reproduce those late or duplicate batches.
func (s *Sim) Deliver(entries ...Entry) {
	if s.cb == nil || len(entries) == 0 {
		return
	}
	s.cb(entries)
}
