package behavior

import (
	"testing"

	"github.com/vango-go/folio/pkg/dom"
	"github.com/vango-go/folio/pkg/page"
	"github.com/vango-go/folio/pkg/viewport"
)

// bindPortfolio binds the real portfolio page, as the dev server serves it.
func bindPortfolio(t *testing.T) (*dom.Document, *viewport.Sim) {
	t.Helper()
	doc := page.Build(page.DefaultSite())
	var sim *viewport.Sim
	Bind(doc, viewport.Capture(&sim), quiet())
	if sim == nil {
		t.Fatal("Bind did not construct a viewport observer")
	}
	return doc, sim
}

// cardByCategory returns the first card whose category set equals category.
func cardByCategory(t *testing.T, doc *dom.Document, category string) *dom.Node {
	t.Helper()
	for _, c := range doc.QuerySelectorAll(".project-card") {
		if c.Data("category") == category {
			return c
		}
	}
	t.Fatalf("no card with category %q", category)
	return nil
}

func TestScenarioFilterByTag(t *testing.T) {
	doc := dom.NewDocument(
		dom.El("button", dom.Class("filter-btn", "active"), dom.Data("filter", "all")),
		dom.El("button", dom.Class("filter-btn"), dom.Data("filter", "javascript")),
		dom.El("article", dom.Class("project-card"), dom.Data("category", "javascript html css")),
		dom.El("article", dom.Class("project-card"), dom.Data("category", "html css")),
	)
	Bind(doc, nil, quiet())

	filterButton(t, doc, "javascript").Click()

	matching := cardByCategory(t, doc, "javascript html css")
	if got := matching.Style().Get("display"); got != "flex" {
		t.Errorf("matching card display = %q, want flex", got)
	}
	other := cardByCategory(t, doc, "html css")
	if got := other.Style().Get("display"); got != "none" {
		t.Errorf("non-matching card display = %q, want none", got)
	}

	// Scenario 2: "all" restores both.
	filterButton(t, doc, "all").Click()
	if got := matching.Style().Get("display"); got != "flex" {
		t.Errorf("matching card display after all = %q, want flex", got)
	}
	if got := other.Style().Get("display"); got != "flex" {
		t.Errorf("non-matching card display after all = %q, want flex", got)
	}
}

func TestScenarioHamburgerToggle(t *testing.T) {
	doc, _ := bindPortfolio(t)
	hamburger := doc.QuerySelector(".hamburger")

	hamburger.Click()
	if h, p := menuState(doc); !h || !p {
		t.Errorf("after first click: handle=%v panel=%v, want both true", h, p)
	}

	hamburger.Click()
	if h, p := menuState(doc); h || p {
		t.Errorf("after second click: handle=%v panel=%v, want both false", h, p)
	}
}

func TestScenarioNavLinkClosesMenu(t *testing.T) {
	doc, _ := bindPortfolio(t)

	doc.QuerySelector(".hamburger").Click()
	doc.QuerySelectorAll(".nav-links a")[1].Click()

	if h, p := menuState(doc); h || p {
		t.Errorf("after nav link click: handle=%v panel=%v, want both false", h, p)
	}
}

func TestPortfolioPageFullPass(t *testing.T) {
	doc, sim := bindPortfolio(t)

	// Every section hidden, then revealed one by one as the visitor
	// scrolls; nav clicks land on the right sections; the menu closes.
	for _, s := range doc.QuerySelectorAll("section") {
		if !s.ClassList().Contains("hidden") {
			t.Fatalf("section #%s visible before scroll", s.ID())
		}
	}

	for _, s := range doc.QuerySelectorAll("section") {
		sim.Enter(s, 0.3)
		if s.ClassList().Contains("hidden") {
			t.Errorf("section #%s not revealed", s.ID())
		}
	}
	if got := sim.WatchedCount(); got != 0 {
		t.Errorf("still watching %d sections after all revealed", got)
	}

	// The nav panel's Projects link scrolls and closes the open menu.
	doc.QuerySelector(".hamburger").Click()
	var projectsLink *dom.Node
	for _, a := range doc.QuerySelectorAll(".nav-links a") {
		if a.Attr("href") == "#projects" {
			projectsLink = a
		}
	}
	if projectsLink == nil {
		t.Fatal("page has no #projects nav link")
	}
	projectsLink.Click()

	reqs := doc.ScrollRequests()
	if len(reqs) != 1 || reqs[0].Target != doc.GetElementByID("projects") {
		t.Errorf("scroll requests = %v, want one to #projects", reqs)
	}
	if h, p := menuState(doc); h || p {
		t.Error("menu still open after nav link click")
	}

	// Exactly one active filter before and after any click.
	if active := activeButtons(doc); len(active) != 1 {
		t.Fatalf("initial active buttons = %d, want 1", len(active))
	}
	filterButton(t, doc, "go").Click()
	if active := activeButtons(doc); len(active) != 1 || active[0].Data("filter") != "go" {
		t.Error("go filter not the single active control")
	}
	for _, c := range doc.QuerySelectorAll(".project-card") {
		want := "none"
		if hasToken(c.Data("category"), "go") {
			want = "flex"
		}
		if got := c.Style().Get("display"); got != want {
			t.Errorf("card %q display = %q, want %q", c.Data("category"), got, want)
		}
	}
}
