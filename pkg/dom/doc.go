// Package dom provides the live document tree that folio behaviors are
// bound against.
//
// Unlike a virtual DOM, nodes here are mutable: behaviors toggle class
// tokens, set style properties, and register click handlers directly on the
// nodes they were handed at bind time. The package deliberately models only
// the surface the behavior controller consumes: tag identity, an attribute
// map, a class-token list, a style bag, synchronous click dispatch, a
// scroll-into-view request, and a small selector-based query surface on
// Document.
//
// # Building a tree
//
// Elements are created with variadic constructors:
//
//	doc := dom.NewDocument(
//	    dom.El("nav", dom.Class("navbar"),
//	        dom.El("a", dom.Href("#home"), dom.Text("Home")),
//	    ),
//	    dom.El("section", dom.ID("home")),
//	)
//
// # Querying
//
// Document.QuerySelector and QuerySelectorAll support the selector subset
// the behaviors need: tag, #id, .class, [attr], [attr=v], [attr^=v],
// compounds of those, and the descendant combinator.
//
// # Events
//
// Handlers registered with Node.On fire synchronously, in registration
// order, when Node.Click is called. There is no bubbling and no event loop;
// dispatch runs to completion on the caller's goroutine.
package dom
