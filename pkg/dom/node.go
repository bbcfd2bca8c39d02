package dom

import "strings"

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <button>, etc.
	KindText                // Plain text node
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a live document node. Zero or more behaviors may hold a reference
// to the same node; all mutation happens through the accessors below.
type Node struct {
	Kind Kind
	Tag  string // element tag name (e.g. "div")
	Text string // for KindText

	attrs    map[string]string
	classes  []string // ordered class-token list
	style    map[string]string
	children []*Node
	parent   *Node
	doc      *Document

	handlers map[string][]func(*Event)
}

// El creates an element node with the given tag and arguments.
// Arguments can be: nil, Attr, []Attr, *Node, []*Node, or string (shorthand
// for a text child).
func El(tag string, args ...any) *Node {
	n := &Node{
		Kind:  KindElement,
		Tag:   tag,
		attrs: make(map[string]string),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			n.applyAttr(v)
		case []Attr:
			for _, a := range v {
				n.applyAttr(a)
			}
		case *Node:
			if v != nil {
				n.Append(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.Append(c)
				}
			}
		case string:
			n.Append(Text(v))
		}
	}

	return n
}

// Text creates a text node.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content}
}

// applyAttr stores an attribute, folding class tokens into the class list.
func (n *Node) applyAttr(a Attr) {
	if a.Key == "" {
		return
	}
	if a.Key == "class" {
		for _, token := range strings.Fields(a.Value) {
			n.ClassList().Add(token)
		}
		return
	}
	n.attrs[a.Key] = a.Value
}

// Append adds children to the node and adopts them into the node's document.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.children = append(n.children, c)
		if n.doc != nil {
			c.adopt(n.doc)
		}
	}
}

// adopt recursively associates the subtree with a document.
func (n *Node) adopt(d *Document) {
	n.doc = d
	for _, c := range n.children {
		c.adopt(d)
	}
}

// Children returns the node's children in document order.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil for a root or detached node.
func (n *Node) Parent() *Node { return n.parent }

// Attr returns the value of the named attribute, or "" if unset.
// The id and class attributes are served from their dedicated storage.
func (n *Node) Attr(key string) string {
	if key == "class" {
		return strings.Join(n.classes, " ")
	}
	return n.attrs[key]
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(key string) bool {
	if key == "class" {
		return len(n.classes) > 0
	}
	_, ok := n.attrs[key]
	return ok
}

// SetAttr sets an attribute value. Setting "class" replaces the class list.
func (n *Node) SetAttr(key, value string) {
	if key == "class" {
		n.classes = n.classes[:0]
		for _, token := range strings.Fields(value) {
			n.ClassList().Add(token)
		}
		return
	}
	n.attrs[key] = value
}

// Attrs returns a copy of the attribute map, excluding the class list and
// style bag, which have dedicated accessors.
func (n *Node) Attrs() map[string]string {
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// ID returns the node's id attribute, or "" if unset.
func (n *Node) ID() string { return n.attrs["id"] }

// Data returns the value of the data-* attribute with the given key.
// Data("filter") reads data-filter.
func (n *Node) Data(key string) string { return n.attrs["data-"+key] }

// TextContent returns the concatenated text of the subtree.
func (n *Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// walk visits n and every descendant in document order. The visitor returns
// false to stop the walk.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(visit) {
			return false
		}
	}
	return true
}
