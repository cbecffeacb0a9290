package coordinator

import (
	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

// Delegate is the object handed to the host for one window. It implements
// both the native window and the rendering surface callback sets.
type Delegate interface {
	port.WindowDelegate
	port.BrowserViewDelegate
	WindowID() entity.WindowID
}

// windowDelegate is a lookup-by-ID shim. It holds no window state, so the
// host keeping it alive never keeps a released window alive.
type windowDelegate struct {
	c  *WindowCoordinator
	id entity.WindowID
}

var _ Delegate = (*windowDelegate)(nil)

func (d *windowDelegate) WindowID() entity.WindowID { return d.id }

func (d *windowDelegate) OnWindowCreated(nw port.NativeWindow) {
	d.c.onWindowCreated(d.id, nw)
}

func (d *windowDelegate) OnWindowClosing(nw port.NativeWindow) {
	d.c.onWindowClosing(d.id, nw)
}

func (d *windowDelegate) GetInitialBounds(port.NativeWindow) entity.Rect {
	return d.c.initialBounds(d.id)
}

func (d *windowDelegate) GetInitialShowState(port.NativeWindow) entity.ShowState {
	return entity.ShowStateNormal
}

func (d *windowDelegate) IsFrameless(port.NativeWindow) bool {
	return d.c.isFrameless(d.id)
}

func (d *windowDelegate) CanResize(port.NativeWindow) bool {
	return d.c.canResize(d.id)
}

func (d *windowDelegate) CanMaximize(port.NativeWindow) bool { return false }

func (d *windowDelegate) CanMinimize(port.NativeWindow) bool { return false }

func (d *windowDelegate) CanClose(port.NativeWindow) bool {
	return d.c.canClose(d.id)
}

func (d *windowDelegate) GetPreferredSize(port.BrowserView) entity.Size {
	return d.c.preferredSize(d.id)
}

func (d *windowDelegate) GetDelegateForPopupBrowserView(_ port.BrowserView, isDevtools bool) port.BrowserViewDelegate {
	child := d.c.delegateForPopup(d.id, isDevtools)
	if child == nil {
		// A typed nil would not compare equal to nil on the host side.
		return nil
	}
	return child
}

func (d *windowDelegate) OnPopupBrowserViewCreated(_, popup port.BrowserView, isDevtools bool) bool {
	return d.c.onPopupBrowserViewCreated(d.id, popup, isDevtools)
}

func (d *windowDelegate) OnBrowserCreated(_ port.BrowserView, browser port.Browser) {
	d.c.onBrowserCreated(d.id, browser)
}

func (d *windowDelegate) GetChromeToolbarType() entity.ToolbarType {
	return entity.ToolbarNone
}
