package behavior

import (
	"strings"

	"github.com/vango-go/folio/pkg/dom"
)

// Card display states.
const (
	displayVisible = "flex"
	displayHidden  = "none"
)

// bindTagFilter wires the filter buttons to the project cards. A click
// moves the active class to the clicked button and recomputes every card's
// display from the button's filter value, so visibility is always a pure
// function of the selected filter and the card's category tokens.
func (ctl *Controller) bindTagFilter() {
	buttons := ctl.doc.QuerySelectorAll(ctl.cfg.FilterSelector)
	if len(buttons) == 0 {
		ctl.cfg.Logger.Debug("tag filter: no filter buttons, behavior skipped")
		return
	}
	cards := ctl.doc.QuerySelectorAll(ctl.cfg.CardSelector)

	for _, button := range buttons {
		button.On("click", func(e *dom.Event) {
			for _, b := range buttons {
				b.ClassList().Remove(ctl.cfg.ActiveClass)
			}
			e.Target.ClassList().Add(ctl.cfg.ActiveClass)

			value := e.Target.Data(ctl.cfg.FilterAttr)
			for _, card := range cards {
				if value == ctl.cfg.AllValue || hasToken(card.Data(ctl.cfg.CategoryAttr), value) {
					card.Style().Set("display", displayVisible)
				} else {
					card.Style().Set("display", displayHidden)
				}
			}
		})
	}
}

// hasToken reports whether value appears as an exact whitespace-delimited
// token in set. Substring overlap never matches; an empty set or value
// matches nothing.
func hasToken(set, value string) bool {
	if value == "" {
		return false
	}
	for _, token := range strings.Fields(set) {
		if token == value {
			return true
		}
	}
	return false
}
