package coordinator

import (
	"fmt"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

// delegateForPopup is phase one of the popup handshake. A second request
// while one is in flight replaces the pending slot; the abandoned window was
// never realized, so it is dropped from the arena.
func (c *WindowCoordinator) delegateForPopup(parentID entity.WindowID, isDevtools bool) *windowDelegate {
	parent, ok := c.live(parentID)
	if !ok {
		c.log.Warn().Stringer("window_id", parentID).Msg("popup delegate requested for unknown or closed window")
		return nil
	}

	if abandoned, inFlight := parent.pending.inFlight(); inFlight {
		c.log.Debug().
			Stringer("window_id", parentID).
			Stringer("abandoned_id", abandoned).
			Msg("replacing in-flight popup")
		delete(c.windows, abandoned)
	}

	details := entity.PopupDetails(parent.popupFeatures, isDevtools)
	child := c.newWindow(details, parent.showDevtoolsForChildren)
	child.parent = parent.id
	parent.pending = popupInFlight(child.id)

	c.log.Debug().
		Stringer("window_id", parentID).
		Stringer("popup_id", child.id).
		Bool("is_devtools", isDevtools).
		Int("width", details.PreferredWidth).
		Int("height", details.PreferredHeight).
		Bool("center_on_open", details.CenterOnOpen).
		Msg("popup delegate created")

	return child.delegate
}

// onPopupBrowserViewCreated is phase two: the popup surface exists, so the
// pending window gets it, joins the children and asks for a native window.
func (c *WindowCoordinator) onPopupBrowserViewCreated(parentID entity.WindowID, popup port.BrowserView, isDevtools bool) bool {
	parent, ok := c.live(parentID)
	if !ok {
		c.log.Warn().Stringer("window_id", parentID).Msg("popup realized for unknown or closed window")
		return false
	}

	childID, inFlight := parent.pending.inFlight()
	if !inFlight {
		err := fmt.Errorf("%w: popup surface realized on %s with no pending popup", ErrProtocolViolation, parentID)
		c.log.Error().Err(err).Msg("popup handshake out of sequence")
		panic(err)
	}
	child, ok := c.windows[childID]
	if !ok {
		err := fmt.Errorf("%w: pending popup %s of %s missing from arena", ErrProtocolViolation, childID, parentID)
		c.log.Error().Err(err).Msg("popup handshake out of sequence")
		panic(err)
	}

	child.view = popup
	parent.pending = pendingPopup{}
	parent.children = append(parent.children, child.id)
	child.attached = true

	c.log.Debug().
		Stringer("window_id", parentID).
		Stringer("popup_id", child.id).
		Int("children", len(parent.children)).
		Msg("popup realized")

	c.host.CreateTopLevelWindow(child.delegate)

	if parent.showDevtoolsForChildren && !isDevtools {
		if err := c.ShowDevTools(child.id); err != nil {
			c.log.Warn().Err(err).Stringer("popup_id", child.id).Msg("failed to open devtools for popup")
		}
	}
	return true
}

// SetPopupFeaturesForBrowser records placement hints on whichever window in
// the tree owns browser. Every descendant is visited because the owner is
// not indexed by browser identity.
func (c *WindowCoordinator) SetPopupFeaturesForBrowser(browser port.Browser, features entity.PopupFeatures) {
	for _, rootID := range c.Roots() {
		c.setPopupFeatures(rootID, browser, features)
	}
}

func (c *WindowCoordinator) setPopupFeatures(id entity.WindowID, browser port.Browser, features entity.PopupFeatures) {
	w, ok := c.windows[id]
	if !ok {
		return
	}
	for _, childID := range append([]entity.WindowID(nil), w.children...) {
		c.setPopupFeatures(childID, browser, features)
	}
	if w.ownsBrowser(browser) {
		w.popupFeatures = features
		c.log.Trace().Stringer("window_id", id).Msg("popup features recorded")
	}
}

// ShowDevTools opens an inspector for the window's own browser instance.
func (c *WindowCoordinator) ShowDevTools(id entity.WindowID) error {
	w, ok := c.windows[id]
	if !ok {
		return fmt.Errorf("show devtools for %s: %w", id, ErrWindowNotFound)
	}
	if w.closed {
		return fmt.Errorf("show devtools for %s: %w", id, ErrWindowClosed)
	}
	b := w.browser()
	if b == nil {
		return fmt.Errorf("show devtools for %s: %w", id, ErrNoBrowser)
	}
	c.log.Debug().Stringer("window_id", id).Int("browser_id", int(b.ID())).Msg("showing devtools")
	b.ShowDevTools()
	return nil
}
