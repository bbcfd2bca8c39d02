package dom

import "testing"

// fixture builds a small page-shaped tree for query tests.
func fixture() *Document {
	return NewDocument(
		El("nav", Class("navbar"),
			El("button", Class("hamburger")),
			El("ul", Class("nav-links"),
				El("li", El("a", Class("nav-link"), Href("#home"), Text("Home"))),
				El("li", El("a", Class("nav-link"), Href("#about"), Text("About"))),
				El("li", El("a", Class("nav-link"), Href("https://example.com"), Text("Blog"))),
			),
		),
		El("section", ID("home"), Class("hero")),
		El("section", ID("about")),
		El("div", Class("filter-bar"),
			El("button", Class("filter-btn", "active"), Data("filter", "all")),
			El("button", Class("filter-btn"), Data("filter", "go")),
		),
	)
}

func TestGetElementByID(t *testing.T) {
	doc := fixture()

	if n := doc.GetElementByID("home"); n == nil || n.Tag != "section" {
		t.Errorf("GetElementByID(home) = %v, want the home section", n)
	}
	if n := doc.GetElementByID("missing"); n != nil {
		t.Errorf("GetElementByID(missing) = %v, want nil", n)
	}
	if n := doc.GetElementByID(""); n != nil {
		t.Errorf("GetElementByID(\"\") = %v, want nil", n)
	}
}

func TestQuerySelectorAll(t *testing.T) {
	doc := fixture()

	tests := []struct {
		selector string
		want     int
	}{
		{"section", 2},
		{".nav-link", 3},
		{"#about", 1},
		{`a[href^="#"]`, 2},
		{"[data-filter]", 2},
		{`[data-filter=go]`, 1},
		{".nav-links a", 3},
		{"button.filter-btn", 2},
		{".filter-btn.active", 1},
		{"section .nav-link", 0},
		{".missing", 0},
		{"", 0},
		{"..", 0},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got := doc.QuerySelectorAll(tt.selector)
			if len(got) != tt.want {
				t.Errorf("QuerySelectorAll(%q) len = %d, want %d", tt.selector, len(got), tt.want)
			}
		})
	}
}

func TestQuerySelectorAllDocumentOrder(t *testing.T) {
	doc := fixture()
	anchors := doc.QuerySelectorAll(`a[href^="#"]`)
	if len(anchors) != 2 {
		t.Fatalf("anchors len = %d, want 2", len(anchors))
	}
	if anchors[0].Attr("href") != "#home" || anchors[1].Attr("href") != "#about" {
		t.Errorf("anchor order = [%q %q], want [#home #about]",
			anchors[0].Attr("href"), anchors[1].Attr("href"))
	}
}

func TestQuerySelectorFirstMatch(t *testing.T) {
	doc := fixture()

	n := doc.QuerySelector(".filter-btn")
	if n == nil {
		t.Fatal("QuerySelector(.filter-btn) = nil")
	}
	if n.Data("filter") != "all" {
		t.Errorf("first filter button = %q, want %q", n.Data("filter"), "all")
	}

	if n := doc.QuerySelector(".missing"); n != nil {
		t.Errorf("QuerySelector(.missing) = %v, want nil", n)
	}
}

func TestDescendantMatchRequiresAncestorOrder(t *testing.T) {
	doc := NewDocument(
		El("div", Class("outer"),
			El("div", Class("inner"),
				El("span", ID("x")),
			),
		),
	)

	if got := doc.QuerySelectorAll(".outer .inner span"); len(got) != 1 {
		t.Errorf("chained descendant match len = %d, want 1", len(got))
	}
	if got := doc.QuerySelectorAll(".inner .outer span"); len(got) != 0 {
		t.Errorf("reversed chain match len = %d, want 0", len(got))
	}
}

func TestAttrPrefixQuoting(t *testing.T) {
	doc := fixture()

	for _, selector := range []string{`a[href^="#"]`, `a[href^='#']`, `a[href^=#]`} {
		if got := doc.QuerySelectorAll(selector); len(got) != 2 {
			t.Errorf("QuerySelectorAll(%q) len = %d, want 2", selector, len(got))
		}
	}
}
