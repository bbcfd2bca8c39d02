package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/vango-go/folio/pkg/dom"
)

// PageConfig configures the full-document wrapper around a rendered body.
type PageConfig struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute (default: "en").
	Lang string

	// Styles are stylesheet hrefs linked in the head.
	Styles []string

	// Scripts are script srcs referenced at the end of the body with defer.
	Scripts []string

	// Pretty enables pretty-printed output for the body tree.
	Pretty bool
}

// Page renders a complete HTML document around the document's body tree.
func Page(w io.Writer, doc *dom.Document, config PageConfig) error {
	if doc == nil {
		return fmt.Errorf("render: nil document")
	}
	if config.Lang == "" {
		config.Lang = "en"
	}

	write := func(s string) error {
		_, err := io.WriteString(w, s)
		return err
	}

	if err := write("<!DOCTYPE html>\n<html lang=\"" + escapeAttr(config.Lang) + "\">\n<head>\n"); err != nil {
		return err
	}
	if err := write("<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
		return err
	}
	if config.Title != "" {
		if err := write("<title>" + escapeHTML(config.Title) + "</title>\n"); err != nil {
			return err
		}
	}
	for _, href := range config.Styles {
		if err := write("<link rel=\"stylesheet\" href=\"" + escapeAttr(href) + "\">\n"); err != nil {
			return err
		}
	}
	if err := write("</head>\n"); err != nil {
		return err
	}

	r := NewRenderer(RendererConfig{Pretty: config.Pretty})
	if err := r.RenderToWriter(w, doc.Root()); err != nil {
		return err
	}
	if !config.Pretty {
		if err := write("\n"); err != nil {
			return err
		}
	}

	for _, src := range config.Scripts {
		if err := write("<script src=\"" + escapeAttr(src) + "\" defer></script>\n"); err != nil {
			return err
		}
	}
	return write("</html>\n")
}

// PageString renders a complete HTML document to a string.
func PageString(doc *dom.Document, config PageConfig) (string, error) {
	var buf bytes.Buffer
	if err := Page(&buf, doc, config); err != nil {
		return "", err
	}
	return buf.String(), nil
}
