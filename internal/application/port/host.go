// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the browser-embedding host framework, allowing the window
// coordinator to remain independent of a specific toolkit.
package port

import "github.com/bnema/winshell/internal/domain/entity"

//go:generate mockgen -destination=mocks/mock_host.go -package=mocks github.com/bnema/winshell/internal/application/port Host,NativeWindow,BrowserView,Browser

// BoltAppURLKey is the extra-info key carrying the real content address of a
// controls-overlay window.
const BoltAppURLKey = "BoltAppUrl"

// BrowserSettings are the per-browser settings passed at creation.
type BrowserSettings struct {
	// BackgroundColor is ARGB; zero means fully transparent.
	BackgroundColor uint32
}

// BrowserViewRequest describes a rendering surface to create.
type BrowserViewRequest struct {
	URL       string
	ExtraInfo map[string]string
	Settings  BrowserSettings
}

// Host is the outbound side of the browser-embedding framework.
// Every call must happen on the host's callback thread.
type Host interface {
	// CreateTopLevelWindow asks the host to realize a native window for the
	// delegate. OnWindowCreated is delivered later.
	CreateTopLevelWindow(delegate WindowDelegate)
	// CreateBrowserView creates a rendering surface. Its browser instance is
	// reported through OnBrowserCreated once it exists.
	CreateBrowserView(delegate BrowserViewDelegate, req BrowserViewRequest) BrowserView
}

// NativeWindow is a realized on-screen window.
type NativeWindow interface {
	ID() int
	AddChildView(view BrowserView)
	CenterWindow(size entity.Size)
	Show()
}

// BrowserView is the rendering surface hosting one browser instance.
type BrowserView interface {
	// Browser returns nil until the browser instance exists and again after
	// it has been torn down.
	Browser() Browser
}

// Browser is one running instance of embedded web content.
type Browser interface {
	ID() entity.BrowserID
	IsSame(other Browser) bool
	// CloseBrowser requests closure; force skips the page's unload veto.
	CloseBrowser(force bool)
	// TryCloseBrowser returns true once the browser may be discarded. The
	// first call usually starts an asynchronous teardown and returns false.
	TryCloseBrowser() bool
	ShowDevTools()
}

// WindowDelegate receives native window callbacks from the host.
type WindowDelegate interface {
	OnWindowCreated(window NativeWindow)
	OnWindowClosing(window NativeWindow)
	GetInitialBounds(window NativeWindow) entity.Rect
	GetInitialShowState(window NativeWindow) entity.ShowState
	IsFrameless(window NativeWindow) bool
	CanResize(window NativeWindow) bool
	CanMaximize(window NativeWindow) bool
	CanMinimize(window NativeWindow) bool
	// CanClose reports whether the native window may close now.
	CanClose(window NativeWindow) bool
	GetPreferredSize(view BrowserView) entity.Size
}

// BrowserViewDelegate receives rendering surface callbacks from the host.
type BrowserViewDelegate interface {
	// GetDelegateForPopupBrowserView returns the delegate the popup's
	// rendering surface should use.
	GetDelegateForPopupBrowserView(view BrowserView, isDevtools bool) BrowserViewDelegate
	// OnPopupBrowserViewCreated reports the popup surface now exists.
	OnPopupBrowserViewCreated(view, popup BrowserView, isDevtools bool) bool
	OnBrowserCreated(view BrowserView, browser Browser)
	GetChromeToolbarType() entity.ToolbarType
}

// ClientHandler receives per-browser life-span notifications.
type ClientHandler interface {
	// OnAfterCreated is called once a browser instance exists.
	OnAfterCreated(browser Browser)
	// OnBeforePopup records the placement hints of a popup the browser is
	// about to request.
	OnBeforePopup(browser Browser, features entity.PopupFeatures)
	// DoClose is called when a browser begins closing.
	DoClose(browser Browser)
	// OnBeforeClose is called once the browser instance is gone.
	OnBeforeClose(browser Browser)
}
