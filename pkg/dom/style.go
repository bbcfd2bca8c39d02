package dom

import (
	"sort"
	"strings"
)

// Style is a view over a node's inline style property bag.
type Style struct {
	n *Node
}

// Style returns the node's style view.
func (n *Node) Style() Style { return Style{n: n} }

// Set assigns a style property. Empty property names are ignored.
func (s Style) Set(property, value string) {
	if property == "" {
		return
	}
	if s.n.style == nil {
		s.n.style = make(map[string]string)
	}
	s.n.style[property] = value
}

// Get returns the value of a style property, or "" if unset.
func (s Style) Get(property string) string {
	return s.n.style[property]
}

// Has reports whether a style property has been set.
func (s Style) Has(property string) bool {
	_, ok := s.n.style[property]
	return ok
}

// Remove clears a style property.
func (s Style) Remove(property string) {
	delete(s.n.style, property)
}

// String renders the bag as an inline style attribute value with properties
// in sorted order, e.g. "display:flex;gap:1rem".
func (s Style) String() string {
	if len(s.n.style) == 0 {
		return ""
	}
	props := make([]string, 0, len(s.n.style))
	for p := range s.n.style {
		props = append(props, p)
	}
	sort.Strings(props)

	var b strings.Builder
	for i, p := range props {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(p)
		b.WriteByte(':')
		b.WriteString(s.n.style[p])
	}
	return b.String()
}
