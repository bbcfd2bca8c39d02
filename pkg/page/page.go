// Package page composes the folio portfolio document.
//
// The document carries the hooks the behavior controller binds against:
// internal nav anchors, reveal-on-scroll sections, a filter bar with
// data-filter buttons, project cards with data-category tokens, and a
// hamburger/nav-panel pair. Build returns a fresh live tree each call, so a
// server can hand every page session its own document.
package page

import (
	"fmt"

	"github.com/vango-go/folio/pkg/dom"
)

// Project is one portfolio entry rendered as a filterable card.
type Project struct {
	Name        string
	Description string
	Tags        []string // category tokens, matched exactly by the tag filter
	Repo        string
}

// Site holds the content rendered into the portfolio page.
type Site struct {
	Owner    string
	Title    string
	Tagline  string
	Skills   []string
	Projects []Project
	Filters  []string // filter values offered besides "all"
}

// DefaultSite returns the content used by the dev server and the test
// suite when no folio.json overrides it.
func DefaultSite() Site {
	return Site{
		Owner:   "Alex Doe",
		Title:   "Alex Doe | Portfolio",
		Tagline: "Backend engineer who occasionally commits CSS",
		Skills:  []string{"go", "javascript", "html", "css", "sql"},
		Filters: []string{"go", "javascript", "html", "css"},
		Projects: []Project{
			{
				Name:        "wavelet",
				Description: "Streaming log viewer with live tail over WebSocket.",
				Tags:        []string{"go", "javascript"},
				Repo:        "https://github.com/alexdoe/wavelet",
			},
			{
				Name:        "gridline",
				Description: "Responsive layout toolkit, no framework required.",
				Tags:        []string{"html", "css"},
				Repo:        "https://github.com/alexdoe/gridline",
			},
			{
				Name:        "plotnik",
				Description: "Interactive charts rendered straight to canvas.",
				Tags:        []string{"javascript", "html", "css"},
				Repo:        "https://github.com/alexdoe/plotnik",
			},
		},
	}
}

// Build composes the full portfolio document for the given content.
func Build(site Site) *dom.Document {
	return dom.NewDocument(
		Navbar(site),
		Hero(site),
		About(site),
		Projects(site),
		Skills(site),
		Contact(site),
	)
}

// Navbar renders the fixed top bar: brand, hamburger handle, and the
// collapsible link panel with internal anchors.
func Navbar(site Site) *dom.Node {
	return dom.El("nav", dom.Class("navbar"),
		dom.El("a", dom.Class("brand"), dom.Href("#home"), dom.Text(site.Owner)),
		dom.El("button", dom.Class("hamburger"), dom.AriaLabel("Toggle navigation"),
			dom.El("span", dom.Class("bar")),
			dom.El("span", dom.Class("bar")),
			dom.El("span", dom.Class("bar")),
		),
		dom.El("ul", dom.Class("nav-links"),
			navItem("#home", "Home"),
			navItem("#about", "About"),
			navItem("#projects", "Projects"),
			navItem("#skills", "Skills"),
			navItem("#contact", "Contact"),
		),
	)
}

func navItem(href, label string) *dom.Node {
	return dom.El("li", dom.Class("nav-item"),
		dom.El("a", dom.Class("nav-link"), dom.Href(href), dom.Text(label)),
	)
}

// Hero renders the landing section.
func Hero(site Site) *dom.Node {
	return dom.El("section", dom.ID("home"), dom.Class("hero"),
		dom.El("h1", dom.Text(site.Owner)),
		dom.El("p", dom.Class("tagline"), dom.Text(site.Tagline)),
		dom.El("a", dom.Class("cta"), dom.Href("#projects"), dom.Text("See my work")),
	)
}

// About renders the about section.
func About(site Site) *dom.Node {
	return dom.El("section", dom.ID("about"), dom.Class("about"),
		dom.El("h2", dom.Text("About")),
		dom.El("p", dom.Text(fmt.Sprintf(
			"Hi, I'm %s. I build services, tools, and the occasional front end.", site.Owner))),
	)
}

// Projects renders the filter bar and the project card grid.
func Projects(site Site) *dom.Node {
	filters := []*dom.Node{FilterButton("all", "All", true)}
	for _, f := range site.Filters {
		filters = append(filters, FilterButton(f, f, false))
	}

	cards := make([]*dom.Node, 0, len(site.Projects))
	for _, p := range site.Projects {
		cards = append(cards, Card(p))
	}

	return dom.El("section", dom.ID("projects"), dom.Class("projects"),
		dom.El("h2", dom.Text("Projects")),
		dom.El("div", dom.Class("filter-bar"), filters),
		dom.El("div", dom.Class("project-grid"), cards),
	)
}

// FilterButton renders one filter control. The initially selected control
// carries the active class so exactly one is active before the first click.
func FilterButton(value, label string, selected bool) *dom.Node {
	return dom.El("button",
		dom.Class("filter-btn"),
		dom.ClassIf(selected, "active"),
		dom.Type("button"),
		dom.Data("filter", value),
		dom.Text(label),
	)
}

// Card renders one project card with its category tokens.
func Card(p Project) *dom.Node {
	tags := make([]*dom.Node, 0, len(p.Tags))
	category := ""
	for i, tag := range p.Tags {
		if i > 0 {
			category += " "
		}
		category += tag
		tags = append(tags, dom.El("span", dom.Class("tag"), dom.Text(tag)))
	}

	return dom.El("article",
		dom.Class("project-card"),
		dom.Data("category", category),
		dom.El("h3", dom.Text(p.Name)),
		dom.El("p", dom.Text(p.Description)),
		dom.El("div", dom.Class("tag-row"), tags),
		dom.El("a", dom.Href(p.Repo), dom.Target("_blank"), dom.Rel("noopener"), dom.Text("Source")),
	)
}

// Skills renders the skills section.
func Skills(site Site) *dom.Node {
	items := make([]*dom.Node, 0, len(site.Skills))
	for _, s := range site.Skills {
		items = append(items, dom.El("li", dom.Class("skill"), dom.Text(s)))
	}
	return dom.El("section", dom.ID("skills"), dom.Class("skills"),
		dom.El("h2", dom.Text("Skills")),
		dom.El("ul", dom.Class("skill-list"), items),
	)
}

// Contact renders the contact section.
func Contact(site Site) *dom.Node {
	return dom.El("section", dom.ID("contact"), dom.Class("contact"),
		dom.El("h2", dom.Text("Contact")),
		dom.El("p", dom.Text("Want to work together? Get in touch.")),
		dom.El("a", dom.Class("cta"), dom.Href("mailto:hello@example.com"), dom.Text("Say hello")),
	)
}
