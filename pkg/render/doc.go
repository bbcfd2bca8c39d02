// Package render serializes a live dom tree to HTML.
//
// The Renderer walks the tree and writes escaped markup; Page wraps a
// document body in a complete HTML document with head, title, and
// stylesheet links. Output is deterministic: attributes are written in
// sorted order and style properties in sorted property order.
package render
