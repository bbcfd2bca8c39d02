package page

import (
	"strings"
	"testing"
)

func TestBuildCarriesBehaviorHooks(t *testing.T) {
	doc := Build(DefaultSite())

	if doc.QuerySelector(".hamburger") == nil {
		t.Error("page has no hamburger handle")
	}
	if doc.QuerySelector(".nav-links") == nil {
		t.Error("page has no nav panel")
	}
	if got := len(doc.QuerySelectorAll("section")); got != 5 {
		t.Errorf("sections = %d, want 5", got)
	}
	if got := len(doc.QuerySelectorAll(`a[href^="#"]`)); got == 0 {
		t.Error("page has no internal anchors")
	}
}

func TestBuildAnchorsResolve(t *testing.T) {
	doc := Build(DefaultSite())

	for _, a := range doc.QuerySelectorAll(`.nav-links a[href^="#"]`) {
		id := strings.TrimPrefix(a.Attr("href"), "#")
		if doc.GetElementByID(id) == nil {
			t.Errorf("nav anchor %q resolves to nothing", a.Attr("href"))
		}
	}
}

func TestBuildFilterBar(t *testing.T) {
	site := DefaultSite()
	doc := Build(site)

	buttons := doc.QuerySelectorAll(".filter-btn")
	if got := len(buttons); got != len(site.Filters)+1 {
		t.Fatalf("filter buttons = %d, want %d", got, len(site.Filters)+1)
	}

	// Exactly one control is active before the first click, and it is
	// the "all" control.
	var active []string
	for _, b := range buttons {
		if b.ClassList().Contains("active") {
			active = append(active, b.Data("filter"))
		}
	}
	if len(active) != 1 || active[0] != "all" {
		t.Errorf("initially active filters = %v, want [all]", active)
	}
}

func TestBuildCards(t *testing.T) {
	site := DefaultSite()
	doc := Build(site)

	cards := doc.QuerySelectorAll(".project-card")
	if got := len(cards); got != len(site.Projects) {
		t.Fatalf("cards = %d, want %d", got, len(site.Projects))
	}
	for i, card := range cards {
		wantCategory := strings.Join(site.Projects[i].Tags, " ")
		if got := card.Data("category"); got != wantCategory {
			t.Errorf("card %d category = %q, want %q", i, got, wantCategory)
		}
	}
}

func TestBuildIsFreshPerCall(t *testing.T) {
	a := Build(DefaultSite())
	b := Build(DefaultSite())

	a.QuerySelector(".hamburger").ClassList().Add("active")
	if b.QuerySelector(".hamburger").ClassList().Contains("active") {
		t.Error("documents share node state across Build calls")
	}
}
