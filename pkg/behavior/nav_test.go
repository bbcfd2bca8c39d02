package behavior

import (
	"testing"

	"github.com/vango-go/folio/pkg/dom"
)

func TestNavClickScrollsToTarget(t *testing.T) {
	doc, _ := bindTestDoc(t)

	anchor := doc.QuerySelectorAll(`a[href^="#"]`)[0] // #home
	e := anchor.Click()

	if !e.DefaultPrevented() {
		t.Error("default navigation not prevented")
	}

	reqs := doc.ScrollRequests()
	if len(reqs) != 1 {
		t.Fatalf("scroll requests = %d, want 1", len(reqs))
	}
	if reqs[0].Target != doc.GetElementByID("home") {
		t.Error("scroll target is not the #home section")
	}
	if reqs[0].Behavior != dom.ScrollSmooth {
		t.Errorf("scroll behavior = %q, want smooth", reqs[0].Behavior)
	}
}

func TestNavClickOncePerActivation(t *testing.T) {
	doc, _ := bindTestDoc(t)
	anchor := doc.QuerySelectorAll(`a[href^="#"]`)[0]

	anchor.Click()
	anchor.Click()

	if got := len(doc.ScrollRequests()); got != 2 {
		t.Errorf("scroll requests after two clicks = %d, want 2", got)
	}
}

func TestNavClickMissingTargetAbsorbed(t *testing.T) {
	doc, _ := bindTestDoc(t)

	var broken *dom.Node
	for _, a := range doc.QuerySelectorAll(`a[href^="#"]`) {
		if a.Attr("href") == "#nowhere" {
			broken = a
		}
	}
	if broken == nil {
		t.Fatal("fixture is missing the #nowhere anchor")
	}

	e := broken.Click()

	if !e.DefaultPrevented() {
		t.Error("default navigation not prevented for missing target")
	}
	if got := len(doc.ScrollRequests()); got != 0 {
		t.Errorf("scroll requests = %d, want 0 for missing target", got)
	}
}

func TestNavIgnoresExternalAnchors(t *testing.T) {
	doc := dom.NewDocument(
		dom.El("a", dom.Href("https://example.com"), dom.Text("External")),
		dom.El("section", dom.ID("home")),
	)
	Bind(doc, nil, quiet())

	e := doc.QuerySelector("a").Click()

	if e.DefaultPrevented() {
		t.Error("external anchor click was intercepted")
	}
	if got := len(doc.ScrollRequests()); got != 0 {
		t.Errorf("scroll requests = %d, want 0", got)
	}
}

func TestNavBareFragmentAbsorbed(t *testing.T) {
	doc := dom.NewDocument(
		dom.El("a", dom.Href("#"), dom.Text("Top")),
		dom.El("section", dom.ID("home")),
	)
	Bind(doc, nil, quiet())

	e := doc.QuerySelector("a").Click()

	if !e.DefaultPrevented() {
		t.Error("bare-fragment click not prevented")
	}
	if got := len(doc.ScrollRequests()); got != 0 {
		t.Errorf("scroll requests = %d, want 0", got)
	}
}
