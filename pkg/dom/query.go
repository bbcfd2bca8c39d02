package dom

import (
	"fmt"
	"strings"
)

// The selector engine supports the subset the behavior controller needs:
// tag, #id, .class, [attr], [attr=v], [attr^=v], compounds of those
// (e.g. `a.nav-link[href^="#"]`), and the descendant combinator
// (e.g. `.nav-links a`).

// attrMatchKind discriminates attribute match operators.
type attrMatchKind uint8

const (
	attrPresent attrMatchKind = iota // [attr]
	attrEquals                       // [attr=v]
	attrPrefix                       // [attr^=v]
)

// attrMatcher matches a single attribute condition.
type attrMatcher struct {
	key   string
	kind  attrMatchKind
	value string
}

func (m attrMatcher) matches(n *Node) bool {
	switch m.kind {
	case attrPresent:
		return n.HasAttr(m.key)
	case attrEquals:
		return n.HasAttr(m.key) && n.Attr(m.key) == m.value
	case attrPrefix:
		return n.HasAttr(m.key) && m.value != "" && strings.HasPrefix(n.Attr(m.key), m.value)
	default:
		return false
	}
}

// compound is one whitespace-delimited selector segment.
type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatcher
}

func (c compound) matches(n *Node) bool {
	if n.Kind != KindElement {
		return false
	}
	if c.tag != "" && n.Tag != c.tag {
		return false
	}
	if c.id != "" && n.ID() != c.id {
		return false
	}
	for _, class := range c.classes {
		if !n.ClassList().Contains(class) {
			return false
		}
	}
	for _, m := range c.attrs {
		if !m.matches(n) {
			return false
		}
	}
	return true
}

// selector is a descendant chain of compounds.
type selector struct {
	chain []compound
}

// matches reports whether n matches the final compound with ancestors
// matching the rest of the chain, nearest-last, in order.
func (s selector) matches(n *Node) bool {
	last := len(s.chain) - 1
	if !s.chain[last].matches(n) {
		return false
	}
	ancestor := n.Parent()
	for i := last - 1; i >= 0; i-- {
		for {
			if ancestor == nil {
				return false
			}
			if s.chain[i].matches(ancestor) {
				ancestor = ancestor.Parent()
				break
			}
			ancestor = ancestor.Parent()
		}
	}
	return true
}

// parseSelector parses a descendant chain of compound selectors.
func parseSelector(input string) (selector, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return selector{}, fmt.Errorf("empty selector")
	}
	sel := selector{chain: make([]compound, 0, len(parts))}
	for _, part := range parts {
		c, err := parseCompound(part)
		if err != nil {
			return selector{}, err
		}
		sel.chain = append(sel.chain, c)
	}
	return sel, nil
}

// parseCompound parses a single segment like `a.nav-link[href^="#"]`.
func parseCompound(input string) (compound, error) {
	var c compound
	i := 0

	// Leading tag name, if any.
	start := i
	for i < len(input) && input[i] != '#' && input[i] != '.' && input[i] != '[' {
		i++
	}
	c.tag = input[start:i]

	for i < len(input) {
		switch input[i] {
		case '#':
			i++
			start = i
			for i < len(input) && input[i] != '#' && input[i] != '.' && input[i] != '[' {
				i++
			}
			if start == i {
				return compound{}, fmt.Errorf("selector %q: empty id", input)
			}
			c.id = input[start:i]

		case '.':
			i++
			start = i
			for i < len(input) && input[i] != '#' && input[i] != '.' && input[i] != '[' {
				i++
			}
			if start == i {
				return compound{}, fmt.Errorf("selector %q: empty class", input)
			}
			c.classes = append(c.classes, input[start:i])

		case '[':
			end := strings.IndexByte(input[i:], ']')
			if end < 0 {
				return compound{}, fmt.Errorf("selector %q: unterminated attribute", input)
			}
			m, err := parseAttrMatcher(input[i+1 : i+end])
			if err != nil {
				return compound{}, fmt.Errorf("selector %q: %w", input, err)
			}
			c.attrs = append(c.attrs, m)
			i += end + 1

		default:
			return compound{}, fmt.Errorf("selector %q: unexpected %q", input, input[i])
		}
	}

	if c.tag == "" && c.id == "" && len(c.classes) == 0 && len(c.attrs) == 0 {
		return compound{}, fmt.Errorf("selector %q: empty compound", input)
	}
	return c, nil
}

// parseAttrMatcher parses the inside of an attribute selector, e.g.
// `href^="#"` or `data-filter=all` or `disabled`.
func parseAttrMatcher(body string) (attrMatcher, error) {
	if body == "" {
		return attrMatcher{}, fmt.Errorf("empty attribute selector")
	}
	if idx := strings.Index(body, "^="); idx >= 0 {
		return attrMatcher{
			key:   body[:idx],
			kind:  attrPrefix,
			value: unquote(body[idx+2:]),
		}, nil
	}
	if idx := strings.IndexByte(body, '='); idx >= 0 {
		return attrMatcher{
			key:   body[:idx],
			kind:  attrEquals,
			value: unquote(body[idx+1:]),
		}, nil
	}
	return attrMatcher{key: body, kind: attrPresent}, nil
}

// unquote strips a matching pair of single or double quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
