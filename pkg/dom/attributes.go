package dom

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value string
}

// attr creates an Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets class tokens, joining multiple classes with spaces.
func Class(classes ...string) Attr {
	value := ""
	for i, c := range classes {
		if i > 0 {
			value += " "
		}
		value += c
	}
	return attr("class", value)
}

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Data creates a data-* attribute. Data("filter", "all") → data-filter="all".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaExpanded sets the aria-expanded attribute.
func AriaExpanded(expanded bool) Attr {
	if expanded {
		return attr("aria-expanded", "true")
	}
	return attr("aria-expanded", "false")
}

// ClassIf adds a class conditionally.
func ClassIf(condition bool, class string) Attr {
	if condition {
		return attr("class", class)
	}
	return Attr{}
}
