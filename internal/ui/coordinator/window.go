package coordinator

import (
	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

// window is one arena entry. Parent/child edges are IDs, never pointers.
type window struct {
	id                      entity.WindowID
	parent                  entity.WindowID
	details                 entity.WindowDetails
	showDevtoolsForChildren bool

	native   port.NativeWindow
	view     port.BrowserView
	children []entity.WindowID
	pending  pendingPopup

	// popupFeatures is the last placement hint recorded for this window's
	// browser, consumed by the next popup delegate request.
	popupFeatures entity.PopupFeatures

	// attached is true while a parent's children list (or the root list)
	// owns the window. closed is true once the host confirmed closing.
	attached bool
	closed   bool

	delegate *windowDelegate
}

// browser returns the live browser instance of the window, if any.
func (w *window) browser() port.Browser {
	if w.view == nil {
		return nil
	}
	return w.view.Browser()
}

// ownsBrowser reports whether b is this window's browser instance.
func (w *window) ownsBrowser(b port.Browser) bool {
	own := w.browser()
	return own != nil && b != nil && own.IsSame(b)
}

// WindowInfo is a read-only snapshot of one window for inspection.
type WindowInfo struct {
	ID                      entity.WindowID
	Parent                  entity.WindowID
	Details                 entity.WindowDetails
	ShowDevtoolsForChildren bool
	HasNativeWindow         bool
	// NativeID is the host's window ID, valid when HasNativeWindow is true.
	NativeID       int
	HasBrowserView bool
	// BrowserID is valid only when HasBrowser is true.
	BrowserID    entity.BrowserID
	HasBrowser   bool
	Children     []entity.WindowID
	PendingChild entity.WindowID
	Closed       bool
}

// Lookup returns a snapshot of the window, or false if it is not in the arena.
func (c *WindowCoordinator) Lookup(id entity.WindowID) (WindowInfo, bool) {
	w, ok := c.windows[id]
	if !ok {
		return WindowInfo{}, false
	}

	info := WindowInfo{
		ID:                      w.id,
		Parent:                  w.parent,
		Details:                 w.details,
		ShowDevtoolsForChildren: w.showDevtoolsForChildren,
		HasNativeWindow:         w.native != nil,
		HasBrowserView:          w.view != nil,
		Children:                append([]entity.WindowID(nil), w.children...),
		Closed:                  w.closed,
	}
	if w.native != nil {
		info.NativeID = w.native.ID()
	}
	if b := w.browser(); b != nil {
		info.BrowserID = b.ID()
		info.HasBrowser = true
	}
	if pendingID, ok := w.pending.inFlight(); ok {
		info.PendingChild = pendingID
	}
	return info, true
}

// Children returns the realized children of a window in creation order.
func (c *WindowCoordinator) Children(id entity.WindowID) []entity.WindowID {
	w, ok := c.windows[id]
	if !ok {
		return nil
	}
	return append([]entity.WindowID(nil), w.children...)
}
