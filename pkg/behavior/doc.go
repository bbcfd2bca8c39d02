// Package behavior wires the folio page behaviors to a live document.
//
// Bind installs four independent behaviors on the document it is given:
//
//   - navigation scrolling: internal anchor clicks become smooth
//     scroll-into-view requests instead of fragment navigation
//   - section reveal: sections start hidden and are revealed once, the
//     first time they intersect the viewport
//   - tag filtering: filter buttons show and hide project cards by exact
//     category-token match
//   - menu toggling: the hamburger handle opens and closes the nav panel
//     in lock-step, and any in-panel link click closes it
//
// Bind is called exactly once per page instance, after the document tree is
// fully built. The document and the viewport-observer factory are injected,
// so the whole controller runs headless in tests.
//
// Behaviors are isolated: if the elements a behavior needs are absent it
// installs nothing and the others are unaffected. No behavior signals
// errors; every failure mode is "no observable effect".
package behavior
