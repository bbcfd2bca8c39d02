package dom

// Document owns a live node tree and provides the query surface behaviors
// are bound against.
type Document struct {
	root    *Node
	scrolls []ScrollRequest
}

// NewDocument creates a document whose root is a body element holding the
// given arguments (same argument forms as El).
func NewDocument(args ...any) *Document {
	d := &Document{}
	d.root = El("body", args...)
	d.root.adopt(d)
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

// GetElementByID returns the first node in document order whose id
// attribute equals id, or nil if none matches or id is empty.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	d.root.walk(func(n *Node) bool {
		if n.Kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// QuerySelector returns the first node matching the selector, or nil.
func (d *Document) QuerySelector(selector string) *Node {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	var found *Node
	d.root.walk(func(n *Node) bool {
		if sel.matches(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns all nodes matching the selector, in document
// order. An unparsable selector yields no matches.
func (d *Document) QuerySelectorAll(selector string) []*Node {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil
	}
	var out []*Node
	d.root.walk(func(n *Node) bool {
		if sel.matches(n) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// ScrollRequests returns every scroll-into-view request made against nodes
// of this document, oldest first.
func (d *Document) ScrollRequests() []ScrollRequest {
	out := make([]ScrollRequest, len(d.scrolls))
	copy(out, d.scrolls)
	return out
}
