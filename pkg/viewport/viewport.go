// Package viewport models the viewport-intersection observation primitive.
//
// An Observer watches document nodes and reports, at a time and frequency
// chosen by the host, when a watched node's intersection ratio crosses the
// configured threshold. Callbacks receive a batch of one or more entries;
// consumers must process each entry independently and tolerate duplicate
// notifications for nodes they have already acted on.
//
// The package ships a deterministic in-memory implementation, Sim, for
// tests and other headless hosts. Real hosts provide their own Observer
// behind the same Factory signature.
package viewport

import "github.com/vango-go/folio/pkg/dom"

// Entry is one node/ratio pair delivered to an observer callback.
type Entry struct {
	// Target is the watched node.
	Target *dom.Node

	// Ratio is the fraction of the target currently inside the viewport,
	// in [0, 1].
	Ratio float64

	// Intersecting reports whether the host considers the target to have
	// crossed the configured threshold. Hosts may report either or both of
	// Ratio and Intersecting.
	Intersecting bool
}

// Options configures observer construction.
type Options struct {
	// Threshold is the intersection ratio at which entries are reported,
	// in [0, 1].
	Threshold float64
}

// Callback receives a possibly-batched sequence of entries.
type Callback func(entries []Entry)

// Observer watches nodes for viewport intersection.
type Observer interface {
	// Observe begins watching a node. Observing an already-watched node is
	// a no-op.
	Observe(n *dom.Node)

	// Unobserve stops watching a node. Unobserving an unwatched node is a
	// no-op.
	Unobserve(n *dom.Node)

	// Disconnect stops watching all nodes.
	Disconnect()
}

// Factory constructs an Observer delivering entries to cb. This is the
// injection point for the host platform's intersection primitive.
type Factory func(cb Callback, opts Options) Observer
