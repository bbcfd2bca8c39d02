package dom

// ClassList is a view over a node's class tokens, mirroring the host
// platform's classList surface. Order of first insertion is preserved.
type ClassList struct {
	n *Node
}

// ClassList returns the node's class-token view.
func (n *Node) ClassList() ClassList { return ClassList{n: n} }

// Add appends a token if it is not already present. Empty tokens are ignored.
func (c ClassList) Add(tokens ...string) {
	for _, t := range tokens {
		if t == "" || c.Contains(t) {
			continue
		}
		c.n.classes = append(c.n.classes, t)
	}
}

// Remove deletes a token. Removing an absent token is a no-op.
func (c ClassList) Remove(tokens ...string) {
	for _, t := range tokens {
		for i, existing := range c.n.classes {
			if existing == t {
				c.n.classes = append(c.n.classes[:i], c.n.classes[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether the token is present.
func (c ClassList) Contains(token string) bool {
	for _, existing := range c.n.classes {
		if existing == token {
			return true
		}
	}
	return false
}

// Toggle adds the token if absent and removes it if present. It returns
// true if the token is present after the call.
func (c ClassList) Toggle(token string) bool {
	if c.Contains(token) {
		c.Remove(token)
		return false
	}
	c.Add(token)
	return true
}

// Tokens returns a copy of the token list in insertion order.
func (c ClassList) Tokens() []string {
	out := make([]string, len(c.n.classes))
	copy(out, c.n.classes)
	return out
}
