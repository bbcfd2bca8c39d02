package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-go/folio/pkg/dom"
)

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed output with indentation. Development
	// use only; it increases output size.
	Pretty bool

	// Indent is the string used per indentation level in pretty mode.
	// Defaults to two spaces.
	Indent string
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node tree to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0)
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case dom.KindText:
		return r.writeIndented(w, depth, escapeHTML(node.Text))
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	default:
		return fmt.Errorf("render: unknown node kind %v", node.Kind)
	}
}

// renderElement writes an element's open tag, children, and close tag.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	if node.Tag == "" {
		return fmt.Errorf("render: element with empty tag")
	}

	var open strings.Builder
	open.WriteByte('<')
	open.WriteString(node.Tag)
	r.writeAttrs(&open, node)

	if voidElements[node.Tag] {
		open.WriteString(">")
		return r.writeIndented(w, depth, open.String())
	}
	open.WriteByte('>')

	children := node.Children()

	// Single text child renders inline even in pretty mode.
	if len(children) == 1 && children[0].Kind == dom.KindText {
		open.WriteString(escapeHTML(children[0].Text))
		open.WriteString("</" + node.Tag + ">")
		return r.writeIndented(w, depth, open.String())
	}

	if err := r.writeIndented(w, depth, open.String()); err != nil {
		return err
	}
	for _, child := range children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return r.writeIndented(w, depth, "</"+node.Tag+">")
}

// writeAttrs writes the element's attributes in sorted key order, with the
// class list and style bag folded in.
func (r *Renderer) writeAttrs(b *strings.Builder, node *dom.Node) {
	attrs := node.Attrs()
	if class := node.Attr("class"); class != "" {
		attrs["class"] = class
	}
	if style := node.Style().String(); style != "" {
		attrs["style"] = style
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(attrs[k]))
		b.WriteByte('"')
	}
}

// writeIndented writes one line of output, indenting in pretty mode.
func (r *Renderer) writeIndented(w io.Writer, depth int, s string) error {
	if !r.config.Pretty {
		_, err := io.WriteString(w, s)
		return err
	}
	indent := strings.Repeat(r.config.Indent, depth)
	_, err := io.WriteString(w, indent+s+"\n")
	return err
}
