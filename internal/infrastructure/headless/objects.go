package headless

import (
	"errors"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
)

var (
	ErrUnknownWindow  = errors.New("unknown window")
	ErrUnknownBrowser = errors.New("unknown browser")
	ErrBrowserClosed  = errors.New("browser is closing or closed")
	ErrPopupDenied    = errors.New("popup denied by delegate")
)

// Window is a headless native window.
type Window struct {
	host     *Host
	id       int
	delegate port.WindowDelegate
	view     *View
	closed   bool

	Bounds    entity.Rect
	ShowState entity.ShowState
	Frameless bool
	Resizable bool
	Shown     bool
	// CenteredTo is the size passed to CenterWindow, zero if never centered.
	CenteredTo entity.Size
}

var _ port.NativeWindow = (*Window)(nil)

func (w *Window) ID() int { return w.id }

// Closed reports whether the host finished closing the window.
func (w *Window) Closed() bool { return w.closed }

// AddChildView attaches the rendering surface and, if needed, schedules
// creation of its browser.
func (w *Window) AddChildView(view port.BrowserView) {
	v, ok := view.(*View)
	if !ok {
		return
	}
	w.view = v
	v.window = w
	if v.browser == nil {
		w.host.post(func() { w.host.createBrowser(v) })
	}
}

func (w *Window) CenterWindow(size entity.Size) {
	w.CenteredTo = size
	w.host.record(EventWindowCentered, w.id, 0, "")
}

func (w *Window) Show() {
	w.Shown = true
	w.host.record(EventWindowShown, w.id, 0, "")
}

// View is a headless rendering surface.
type View struct {
	host     *Host
	delegate port.BrowserViewDelegate
	req      port.BrowserViewRequest
	browser  *Browser
	window   *Window
}

var _ port.BrowserView = (*View)(nil)

// Browser returns the live browser, or nil.
func (v *View) Browser() port.Browser {
	if v.browser == nil {
		return nil
	}
	return v.browser
}

// Request returns the creation request of the view.
func (v *View) Request() port.BrowserViewRequest { return v.req }

func (v *View) windowID() int {
	if v.window == nil {
		return 0
	}
	return v.window.id
}

type browserState int

const (
	browserOpen browserState = iota
	browserClosing
	browserClosed
)

// Browser is a headless browser instance.
type Browser struct {
	host     *Host
	id       entity.BrowserID
	view     *View
	state    browserState
	devtools bool
}

var _ port.Browser = (*Browser)(nil)

func (b *Browser) ID() entity.BrowserID { return b.id }

func (b *Browser) IsSame(other port.Browser) bool {
	return other != nil && other.ID() == b.id
}

// IsDevtools reports whether the browser is an inspector.
func (b *Browser) IsDevtools() bool { return b.devtools }

// Closed reports whether teardown has completed.
func (b *Browser) Closed() bool { return b.state == browserClosed }

func (b *Browser) CloseBrowser(force bool) {
	if b.state != browserOpen {
		return
	}
	b.state = browserClosing
	detail := "graceful"
	if force {
		detail = "force"
	}
	b.host.record(EventBrowserCloseRequested, b.view.windowID(), b.id, detail)
	b.host.scheduleTeardown(b)
}

func (b *Browser) TryCloseBrowser() bool {
	switch b.state {
	case browserClosed:
		return true
	case browserOpen:
		b.state = browserClosing
		b.host.record(EventBrowserCloseRequested, b.view.windowID(), b.id, "try")
		b.host.scheduleTeardown(b)
		return b.state == browserClosed
	default:
		return false
	}
}

// ShowDevTools opens an inspector as a popup of this browser.
func (b *Browser) ShowDevTools() {
	b.host.record(EventDevtoolsRequested, b.view.windowID(), b.id, "")
	b.host.post(func() {
		if b.state != browserOpen {
			return
		}
		if _, err := b.host.openPopup(b, true); err != nil {
			b.host.log.Debug().Err(err).Int("browser_id", int(b.id)).Msg("devtools popup not opened")
		}
	})
}
