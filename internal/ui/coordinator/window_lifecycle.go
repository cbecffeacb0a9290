package coordinator

import (
	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

// onWindowCreated is the only place a window becomes interactive.
func (c *WindowCoordinator) onWindowCreated(id entity.WindowID, nw port.NativeWindow) {
	w, ok := c.live(id)
	if !ok {
		c.log.Warn().Stringer("window_id", id).Msg("window created for unknown or closed window")
		return
	}

	c.log.Debug().Stringer("window_id", id).Int("native_id", nw.ID()).Msg("window created")

	w.native = nw
	if w.view != nil {
		nw.AddChildView(w.view)
	}
	if w.details.CenterOnOpen {
		nw.CenterWindow(w.details.PreferredSize())
	}
	nw.Show()
}

// onWindowClosing runs once the host has fully closed the native window.
// Repeated calls are no-ops.
func (c *WindowCoordinator) onWindowClosing(id entity.WindowID, nw port.NativeWindow) {
	w, ok := c.windows[id]
	if !ok {
		return
	}

	evt := c.log.Debug().Stringer("window_id", id)
	if nw != nil {
		evt = evt.Int("native_id", nw.ID())
	}
	evt.Msg("window closing")

	w.native = nil
	w.view = nil
	if pendingID, inFlight := w.pending.inFlight(); inFlight {
		delete(c.windows, pendingID)
	}
	w.pending = pendingPopup{}
	w.closed = true

	if w.parent == entity.NoWindow && w.attached {
		c.removeRoot(id)
		w.attached = false
	}
	if !w.attached {
		c.release(id)
	}
}

func (c *WindowCoordinator) onBrowserCreated(id entity.WindowID, browser port.Browser) {
	evt := c.log.Debug().Stringer("window_id", id)
	if browser != nil {
		evt = evt.Int("browser_id", int(browser.ID()))
	}
	evt.Msg("browser created")
}

func (c *WindowCoordinator) initialBounds(id entity.WindowID) entity.Rect {
	w, ok := c.live(id)
	if !ok {
		return entity.Rect{}
	}
	return w.details.InitialBounds()
}

func (c *WindowCoordinator) isFrameless(id entity.WindowID) bool {
	w, ok := c.live(id)
	if !ok {
		return false
	}
	return !w.details.Frame
}

func (c *WindowCoordinator) canResize(id entity.WindowID) bool {
	w, ok := c.live(id)
	if !ok {
		return false
	}
	return w.details.Resizeable
}

func (c *WindowCoordinator) preferredSize(id entity.WindowID) entity.Size {
	w, ok := c.live(id)
	if !ok {
		return entity.Size{}
	}
	return w.details.PreferredSize()
}
