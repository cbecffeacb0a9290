package coordinator

import (
	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

// canClose answers a close request on the window's native handle.
//
// The children list is detached before anything is asked of the host:
// force-closing a child may synchronously reenter the coordinator, and any
// such callback must see an empty child set here.
func (c *WindowCoordinator) canClose(id entity.WindowID) bool {
	w, ok := c.live(id)
	if !ok {
		return true
	}

	children := w.children
	w.children = nil

	c.log.Debug().
		Stringer("window_id", id).
		Int("children", len(children)).
		Msg("close requested")

	for _, childID := range children {
		child, ok := c.windows[childID]
		if !ok {
			continue
		}
		child.parent = entity.NoWindow
		c.detach(child)
		if child.closed {
			continue
		}

		b := child.browser()
		if b == nil {
			c.log.Warn().Stringer("window_id", childID).Msg("child has no browser to close")
			continue
		}
		b.CloseBrowser(true)
	}

	// The children may have closed this window through reentrant callbacks.
	w, ok = c.live(id)
	if !ok {
		return true
	}

	b := w.browser()
	if b == nil {
		return true
	}
	// The first pass usually starts an asynchronous browser teardown and
	// returns false; the host asks again once the browser is gone.
	return b.TryCloseBrowser()
}

// CloseBrowser prunes the window owning browser from the tree, wherever it
// is. It reports whether any attached root window owned the browser itself.
func (c *WindowCoordinator) CloseBrowser(browser port.Browser) bool {
	matched := false
	for _, rootID := range c.Roots() {
		if !c.closeBrowserIn(rootID, browser) {
			continue
		}
		matched = true
		c.removeRoot(rootID)
		if root, ok := c.windows[rootID]; ok {
			c.detach(root)
		}
	}
	return matched
}

// closeBrowserIn removes from the subtree any child that owns browser and
// reports whether window id owns it.
func (c *WindowCoordinator) closeBrowserIn(id entity.WindowID, browser port.Browser) bool {
	w, ok := c.windows[id]
	if !ok {
		return false
	}

	children := w.children
	w.children = nil

	kept := make([]entity.WindowID, 0, len(children))
	for _, childID := range children {
		if !c.closeBrowserIn(childID, browser) {
			kept = append(kept, childID)
			continue
		}
		c.log.Debug().
			Stringer("window_id", id).
			Stringer("child_id", childID).
			Msg("pruned child for closing browser")
		if child, ok := c.windows[childID]; ok {
			child.parent = entity.NoWindow
			c.detach(child)
		}
	}
	w.children = append(kept, w.children...)

	return w.ownsBrowser(browser)
}
