package behavior

import (
	"strings"

	"github.com/vango-go/folio/pkg/dom"
)

// bindNavScroll intercepts every internal anchor and turns its activation
// into a smooth scroll-into-view request on the target section. An anchor
// whose fragment resolves to nothing absorbs the click silently.
func (ctl *Controller) bindNavScroll() {
	anchors := ctl.doc.QuerySelectorAll(`a[href^="#"]`)
	if len(anchors) == 0 {
		ctl.cfg.Logger.Debug("nav scroll: no internal anchors, behavior skipped")
		return
	}

	for _, anchor := range anchors {
		anchor.On("click", func(e *dom.Event) {
			e.PreventDefault()
			fragment := strings.TrimPrefix(e.Target.Attr("href"), "#")
			if target := ctl.doc.GetElementByID(fragment); target != nil {
				target.ScrollIntoView(dom.ScrollSmooth)
			}
		})
	}
}
