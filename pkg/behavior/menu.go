package behavior

import "github.com/vango-go/folio/pkg/dom"

// bindMenuToggle wires the hamburger handle to the nav panel. The handle
// and panel carry the active class in lock-step: a handle click sets or
// clears it on both together, and a click on any link inside the panel
// clears it from both unconditionally. Both the handle and the panel are
// required; without either the behavior installs nothing.
func (ctl *Controller) bindMenuToggle() {
	handle := ctl.doc.QuerySelector(ctl.cfg.HandleSelector)
	panel := ctl.doc.QuerySelector(ctl.cfg.PanelSelector)
	if handle == nil || panel == nil {
		ctl.cfg.Logger.Debug("menu toggle: handle or panel missing, behavior skipped",
			"handle", handle != nil, "panel", panel != nil)
		return
	}

	active := ctl.cfg.ActiveClass
	handle.On("click", func(*dom.Event) {
		// Drive both from the panel state so they can never diverge.
		if panel.ClassList().Contains(active) {
			panel.ClassList().Remove(active)
			handle.ClassList().Remove(active)
		} else {
			panel.ClassList().Add(active)
			handle.ClassList().Add(active)
		}
	})

	for _, link := range ctl.doc.QuerySelectorAll(ctl.cfg.PanelSelector + " a") {
		link.On("click", func(*dom.Event) {
			panel.ClassList().Remove(active)
			handle.ClassList().Remove(active)
		})
	}
}
