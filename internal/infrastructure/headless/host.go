// Package headless implements port.Host without a display. It follows the
// callback order of a views-based browser embedding framework closely enough
// to drive the window coordinator from the CLI and from integration tests.
package headless

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/logging"
)

// Options tune how the host delivers callbacks.
type Options struct {
	// SynchronousTeardown runs browser teardown inside CloseBrowser and
	// TryCloseBrowser instead of posting it, so close callbacks reenter the
	// caller before it returns.
	SynchronousTeardown bool
	// Post delivers asynchronous callbacks, usually (*mainloop.Loop).Post.
	// When nil they queue inside the host until Drain is called.
	Post func(func())
}

// Host is an in-process host framework. All methods must be called from one
// goroutine; posted work runs when Drain is called or, with Options.Post, on
// the loop it was posted to.
type Host struct {
	opts   Options
	client port.ClientHandler
	log    zerolog.Logger

	queue []func()

	nextWindow  int
	nextBrowser entity.BrowserID
	windows     map[int]*Window
	browsers    map[entity.BrowserID]*Browser
	journal     Journal
}

var _ port.Host = (*Host)(nil)

// New creates a headless host.
func New(ctx context.Context, opts Options) *Host {
	return &Host{
		opts:     opts,
		log:      logging.FromContext(ctx).With().Str("component", "headless-host").Logger(),
		windows:  make(map[int]*Window),
		browsers: make(map[entity.BrowserID]*Browser),
	}
}

// SetClient installs the life-span handler notified about browsers.
func (h *Host) SetClient(client port.ClientHandler) {
	h.client = client
}

// Journal returns every event recorded so far.
func (h *Host) Journal() Journal {
	return append(Journal(nil), h.journal...)
}

// Drain runs posted work, including work posted while draining, until the
// queue is empty. It returns the number of tasks run.
func (h *Host) Drain() int {
	n := 0
	for len(h.queue) > 0 {
		fn := h.queue[0]
		h.queue[0] = nil
		h.queue = h.queue[1:]
		fn()
		n++
	}
	return n
}

func (h *Host) post(fn func()) {
	if h.opts.Post != nil {
		h.opts.Post(fn)
		return
	}
	h.queue = append(h.queue, fn)
}

func (h *Host) record(kind EventKind, windowID int, browserID entity.BrowserID, detail string) {
	evt := Event{
		Seq:     len(h.journal) + 1,
		Kind:    kind,
		Window:  windowID,
		Browser: browserID,
		Detail:  detail,
	}
	h.journal = append(h.journal, evt)
	h.log.Trace().
		Str("kind", string(kind)).
		Int("native_id", windowID).
		Int("browser_id", int(browserID)).
		Str("detail", detail).
		Msg("host event")
}

// CreateBrowserView creates a rendering surface. Its browser is created once
// the view is added to a window.
func (h *Host) CreateBrowserView(delegate port.BrowserViewDelegate, req port.BrowserViewRequest) port.BrowserView {
	v := &View{host: h, delegate: delegate, req: req}
	detail := req.URL
	if real, ok := req.ExtraInfo[port.BoltAppURLKey]; ok {
		detail = fmt.Sprintf("%s (app %s)", req.URL, real)
	}
	h.record(EventViewCreated, 0, 0, detail)
	return v
}

// CreateTopLevelWindow queries the delegate for geometry and delivers
// OnWindowCreated asynchronously.
func (h *Host) CreateTopLevelWindow(delegate port.WindowDelegate) {
	h.nextWindow++
	w := &Window{host: h, id: h.nextWindow, delegate: delegate}
	w.Bounds = delegate.GetInitialBounds(w)
	w.ShowState = delegate.GetInitialShowState(w)
	w.Frameless = delegate.IsFrameless(w)
	w.Resizable = delegate.CanResize(w)
	h.windows[w.id] = w

	h.record(EventWindowRequested, w.id, 0, fmt.Sprintf("%dx%d+%d+%d frameless=%t",
		w.Bounds.Width, w.Bounds.Height, w.Bounds.X, w.Bounds.Y, w.Frameless))

	h.post(func() { delegate.OnWindowCreated(w) })
}

// Window returns a native window by ID.
func (h *Host) Window(id int) (*Window, bool) {
	w, ok := h.windows[id]
	return w, ok
}

// Browser returns a browser instance by ID.
func (h *Host) Browser(id entity.BrowserID) (*Browser, bool) {
	b, ok := h.browsers[id]
	return b, ok
}

// OpenWindows returns the number of native windows not yet closed.
func (h *Host) OpenWindows() int {
	n := 0
	for _, w := range h.windows {
		if !w.closed {
			n++
		}
	}
	return n
}

// CloseWindow simulates the user pressing a window's close button.
func (h *Host) CloseWindow(id int) error {
	w, ok := h.windows[id]
	if !ok {
		return fmt.Errorf("close window %d: %w", id, ErrUnknownWindow)
	}
	h.requestClose(w)
	return nil
}

// OpenPopup simulates page content in browser opener requesting a new
// window with the given placement hints. It returns the popup's browser.
func (h *Host) OpenPopup(opener entity.BrowserID, features entity.PopupFeatures) (entity.BrowserID, error) {
	b, ok := h.browsers[opener]
	if !ok {
		return 0, fmt.Errorf("open popup from %d: %w", opener, ErrUnknownBrowser)
	}
	if b.state != browserOpen {
		return 0, fmt.Errorf("open popup from %d: %w", opener, ErrBrowserClosed)
	}
	if h.client != nil {
		h.client.OnBeforePopup(b, features)
	}
	return h.openPopup(b, false)
}

func (h *Host) openPopup(opener *Browser, isDevtools bool) (entity.BrowserID, error) {
	parentView := opener.view
	delegate := parentView.delegate.GetDelegateForPopupBrowserView(parentView, isDevtools)
	if delegate == nil {
		h.record(EventPopupDenied, 0, opener.id, "")
		return 0, fmt.Errorf("open popup from %d: %w", opener.id, ErrPopupDenied)
	}

	pv := &View{host: h, delegate: delegate}
	b := h.newBrowser(pv, isDevtools)
	h.record(EventPopupCreated, 0, b.id, fmt.Sprintf("opener=%d devtools=%t", opener.id, isDevtools))
	delegate.OnBrowserCreated(pv, b)
	if h.client != nil {
		h.client.OnAfterCreated(b)
	}

	parentView.delegate.OnPopupBrowserViewCreated(parentView, pv, isDevtools)
	return b.id, nil
}

func (h *Host) newBrowser(v *View, isDevtools bool) *Browser {
	h.nextBrowser++
	b := &Browser{host: h, id: h.nextBrowser, view: v, devtools: isDevtools}
	v.browser = b
	h.browsers[b.id] = b
	return b
}

func (h *Host) createBrowser(v *View) {
	if v.browser != nil {
		return
	}
	b := h.newBrowser(v, false)
	h.record(EventBrowserCreated, v.windowID(), b.id, v.req.URL)
	v.delegate.OnBrowserCreated(v, b)
	if h.client != nil {
		h.client.OnAfterCreated(b)
	}
}

func (h *Host) scheduleTeardown(b *Browser) {
	if h.opts.SynchronousTeardown {
		h.teardown(b)
		return
	}
	h.post(func() { h.teardown(b) })
}

// teardown finishes closing a browser and then retries closing its window.
func (h *Host) teardown(b *Browser) {
	if b.state == browserClosed {
		return
	}
	if h.client != nil {
		h.client.DoClose(b)
	}
	b.state = browserClosed
	v := b.view
	v.browser = nil
	h.record(EventBrowserClosed, v.windowID(), b.id, "")
	if h.client != nil {
		h.client.OnBeforeClose(b)
	}
	if v.window != nil {
		h.requestClose(v.window)
	}
}

func (h *Host) requestClose(w *Window) {
	if w.closed {
		return
	}
	if !w.delegate.CanClose(w) {
		h.record(EventCloseDeferred, w.id, 0, "")
		return
	}
	// CanClose may have closed the window through a reentrant teardown.
	if w.closed {
		return
	}
	w.closed = true
	h.record(EventWindowClosed, w.id, 0, "")
	w.delegate.OnWindowClosing(w)
}
