package behavior

import (
	"log/slog"

	"github.com/vango-go/folio/pkg/dom"
	"github.com/vango-go/folio/pkg/viewport"
)

// Config holds the class names, selectors, and attributes the behaviors
// bind against. The zero value is completed by defaults matching the folio
// page markup.
type Config struct {
	// HiddenClass marks a section that has not yet been revealed
	// (default: "hidden").
	HiddenClass string

	// ActiveClass marks the selected filter button and the open state of
	// the hamburger and nav panel (default: "active").
	ActiveClass string

	// SectionSelector selects the reveal-on-scroll sections
	// (default: "section").
	SectionSelector string

	// FilterSelector selects the filter buttons (default: ".filter-btn").
	FilterSelector string

	// CardSelector selects the filterable cards (default: ".project-card").
	CardSelector string

	// HandleSelector selects the menu toggle handle (default: ".hamburger").
	HandleSelector string

	// PanelSelector selects the collapsible nav panel
	// (default: ".nav-links").
	PanelSelector string

	// FilterAttr is the data attribute key carrying a button's filter value
	// (default: "filter", i.e. data-filter).
	FilterAttr string

	// CategoryAttr is the data attribute key carrying a card's
	// space-delimited category tokens (default: "category").
	CategoryAttr string

	// AllValue is the sentinel filter value that shows every card
	// (default: "all").
	AllValue string

	// Threshold is the intersection ratio at which a section is revealed
	// (default: 0.1).
	Threshold float64

	// Logger receives debug records for skipped behaviors. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Option configures Bind.
type Option func(*Config)

// WithHiddenClass overrides the hidden-section class.
func WithHiddenClass(class string) Option {
	return func(c *Config) { c.HiddenClass = class }
}

// WithActiveClass overrides the active class.
func WithActiveClass(class string) Option {
	return func(c *Config) { c.ActiveClass = class }
}

// WithThreshold overrides the reveal intersection threshold.
func WithThreshold(threshold float64) Option {
	return func(c *Config) { c.Threshold = threshold }
}

// WithLogger sets the logger used for bind-time diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) { c.Logger = logger }
}

// defaultConfig returns the configuration matching the folio page markup.
func defaultConfig() Config {
	return Config{
		HiddenClass:     "hidden",
		ActiveClass:     "active",
		SectionSelector: "section",
		FilterSelector:  ".filter-btn",
		CardSelector:    ".project-card",
		HandleSelector:  ".hamburger",
		PanelSelector:   ".nav-links",
		FilterAttr:      "filter",
		CategoryAttr:    "category",
		AllValue:        "all",
		Threshold:       0.1,
	}
}

// Controller holds the state of a bound page.
type Controller struct {
	doc      *dom.Document
	cfg      Config
	revealer viewport.Observer
}

// Bind wires all four behaviors to the document. It is called once, after
// the document tree is fully built. Behaviors whose elements are missing
// install nothing; the rest bind normally.
func Bind(doc *dom.Document, observe viewport.Factory, opts ...Option) *Controller {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	ctl := &Controller{doc: doc, cfg: cfg}
	ctl.bindNavScroll()
	ctl.bindSectionReveal(observe)
	ctl.bindTagFilter()
	ctl.bindMenuToggle()
	return ctl
}

// Revealer returns the observer watching unrevealed sections, or nil if the
// reveal behavior did not bind.
func (ctl *Controller) Revealer() viewport.Observer { return ctl.revealer }
