package behavior

import "github.com/vango-go/folio/pkg/viewport"

// bindSectionReveal hides every section and registers it with a viewport
// observer. A section is revealed the first time an entry reports it past
// the threshold, then unobserved: the reveal is one-shot and scrolling away
// later never re-hides it. Duplicate notifications for an already-revealed
// section are harmless.
func (ctl *Controller) bindSectionReveal(observe viewport.Factory) {
	if observe == nil {
		ctl.cfg.Logger.Debug("section reveal: no observer factory, behavior skipped")
		return
	}
	sections := ctl.doc.QuerySelectorAll(ctl.cfg.SectionSelector)
	if len(sections) == 0 {
		ctl.cfg.Logger.Debug("section reveal: no sections, behavior skipped")
		return
	}

	var obs viewport.Observer
	obs = observe(func(entries []viewport.Entry) {
		for _, entry := range entries {
			if entry.Target == nil {
				continue
			}
			if !entry.Intersecting && entry.Ratio < ctl.cfg.Threshold {
				continue
			}
			entry.Target.ClassList().Remove(ctl.cfg.HiddenClass)
			obs.Unobserve(entry.Target)
		}
	}, viewport.Options{Threshold: ctl.cfg.Threshold})

	for _, section := range sections {
		section.ClassList().Add(ctl.cfg.HiddenClass)
		obs.Observe(section)
	}
	ctl.revealer = obs
}
