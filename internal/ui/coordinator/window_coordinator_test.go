package coordinator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/application/port/mocks"
	"github.com/bnema/winshell/internal/domain/entity"
)

type harness struct {
	t        *testing.T
	ctrl     *gomock.Controller
	host     *mocks.MockHost
	c        *WindowCoordinator
	nativeID int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	return &harness{
		t:    t,
		ctrl: ctrl,
		host: host,
		c:    NewWindowCoordinator(context.Background(), WindowCoordinatorConfig{Host: host}),
	}
}

func (h *harness) browser(id entity.BrowserID) *mocks.MockBrowser {
	b := mocks.NewMockBrowser(h.ctrl)
	b.EXPECT().ID().Return(id).AnyTimes()
	b.EXPECT().IsSame(gomock.Any()).DoAndReturn(func(other port.Browser) bool {
		return other != nil && other.ID() == id
	}).AnyTimes()
	return b
}

func (h *harness) view(b port.Browser) *mocks.MockBrowserView {
	v := mocks.NewMockBrowserView(h.ctrl)
	v.EXPECT().Browser().Return(b).AnyTimes()
	return v
}

func (h *harness) realize(d Delegate, view port.BrowserView) *mocks.MockNativeWindow {
	h.nativeID++
	nw := mocks.NewMockNativeWindow(h.ctrl)
	nw.EXPECT().ID().Return(h.nativeID).AnyTimes()
	nw.EXPECT().AddChildView(view)
	nw.EXPECT().CenterWindow(gomock.Any()).AnyTimes()
	nw.EXPECT().Show()
	d.OnWindowCreated(nw)
	return nw
}

func (h *harness) openRoot(bid entity.BrowserID, showDevtools bool) (Delegate, *mocks.MockBrowser) {
	b := h.browser(bid)
	v := h.view(b)

	var captured port.WindowDelegate
	h.host.EXPECT().CreateBrowserView(gomock.Any(), gomock.Any()).Return(v)
	h.host.EXPECT().CreateTopLevelWindow(gomock.Any()).Do(func(d port.WindowDelegate) { captured = d })

	id := h.c.OpenRoot(RootRequest{
		Details:                 rootDetails(),
		URL:                     "https://example.com",
		ShowDevtoolsForChildren: showDevtools,
	})
	d, ok := captured.(Delegate)
	require.True(h.t, ok)
	require.Equal(h.t, id, d.WindowID())

	h.realize(d, v)
	return d, b
}

func (h *harness) openPopup(parent Delegate, bid entity.BrowserID, isDevtools bool) (Delegate, *mocks.MockBrowser) {
	b := h.browser(bid)
	v := h.view(b)

	popup := parent.GetDelegateForPopupBrowserView(nil, isDevtools)
	d, ok := popup.(Delegate)
	require.True(h.t, ok)

	h.host.EXPECT().CreateTopLevelWindow(d)
	require.True(h.t, parent.OnPopupBrowserViewCreated(nil, v, isDevtools))

	h.realize(d, v)
	return d, b
}

func rootDetails() entity.WindowDetails {
	return entity.WindowDetails{
		PreferredWidth:  800,
		PreferredHeight: 600,
		CenterOnOpen:    true,
		Resizeable:      true,
		Frame:           true,
	}
}

func TestOpenRoot_CreatesAndShowsCenteredWindow(t *testing.T) {
	h := newHarness(t)
	v := mocks.NewMockBrowserView(h.ctrl)
	v.EXPECT().Browser().Return(nil).AnyTimes()

	var captured port.WindowDelegate
	gomock.InOrder(
		h.host.EXPECT().CreateBrowserView(gomock.Any(), port.BrowserViewRequest{URL: "https://example.com"}).Return(v),
		h.host.EXPECT().CreateTopLevelWindow(gomock.Any()).Do(func(d port.WindowDelegate) { captured = d }),
	)

	id := h.c.OpenRoot(RootRequest{Details: rootDetails(), URL: "https://example.com"})
	require.NotNil(t, captured)

	nw := mocks.NewMockNativeWindow(h.ctrl)
	nw.EXPECT().ID().Return(1).AnyTimes()
	gomock.InOrder(
		nw.EXPECT().AddChildView(v),
		nw.EXPECT().CenterWindow(entity.Size{Width: 800, Height: 600}),
		nw.EXPECT().Show(),
	)
	captured.OnWindowCreated(nw)

	info, ok := h.c.Lookup(id)
	require.True(t, ok)
	assert.True(t, info.HasNativeWindow)
	assert.Equal(t, 1, info.NativeID)
	assert.True(t, info.HasBrowserView)
	assert.False(t, info.HasBrowser)
	assert.Equal(t, []entity.WindowID{id}, h.c.Roots())

	// No browser yet and no children: closing is trivially allowed.
	assert.True(t, captured.CanClose(nw))
}

func TestOpenRoot_WithoutCenterSkipsCentering(t *testing.T) {
	h := newHarness(t)
	v := h.view(nil)

	var captured port.WindowDelegate
	h.host.EXPECT().CreateBrowserView(gomock.Any(), gomock.Any()).Return(v)
	h.host.EXPECT().CreateTopLevelWindow(gomock.Any()).Do(func(d port.WindowDelegate) { captured = d })

	details := rootDetails()
	details.CenterOnOpen = false
	h.c.OpenRoot(RootRequest{Details: details, URL: "https://example.com"})

	nw := mocks.NewMockNativeWindow(h.ctrl)
	nw.EXPECT().ID().Return(1).AnyTimes()
	nw.EXPECT().AddChildView(v)
	nw.EXPECT().Show()
	captured.OnWindowCreated(nw)
}

func TestOpenRoot_ControlsOverlayPassesURLOutOfBand(t *testing.T) {
	h := newHarness(t)
	v := h.view(nil)

	want := port.BrowserViewRequest{
		URL:       DefaultControlSurfaceURL,
		ExtraInfo: map[string]string{port.BoltAppURLKey: "https://app.example.com"},
	}
	h.host.EXPECT().CreateBrowserView(gomock.Any(), want).Return(v)
	h.host.EXPECT().CreateTopLevelWindow(gomock.Any())

	details := rootDetails()
	details.ControlsOverlay = true
	h.c.OpenRoot(RootRequest{Details: details, URL: "https://app.example.com"})
}

func TestWindowDelegate_QueryHooks(t *testing.T) {
	h := newHarness(t)
	v := h.view(nil)

	var captured port.WindowDelegate
	h.host.EXPECT().CreateBrowserView(gomock.Any(), gomock.Any()).Return(v)
	h.host.EXPECT().CreateTopLevelWindow(gomock.Any()).Do(func(d port.WindowDelegate) { captured = d })

	h.c.OpenRoot(RootRequest{
		Details: entity.WindowDetails{
			PreferredWidth:  1024,
			PreferredHeight: 768,
			StartX:          10,
			StartY:          20,
			Resizeable:      false,
			Frame:           false,
		},
	})
	d := captured.(Delegate)

	assert.Equal(t, entity.Rect{X: 10, Y: 20, Width: 1024, Height: 768}, d.GetInitialBounds(nil))
	assert.Equal(t, entity.ShowStateNormal, d.GetInitialShowState(nil))
	assert.True(t, d.IsFrameless(nil))
	assert.False(t, d.CanResize(nil))
	assert.False(t, d.CanMaximize(nil))
	assert.False(t, d.CanMinimize(nil))
	assert.Equal(t, entity.Size{Width: 1024, Height: 768}, d.GetPreferredSize(nil))
	assert.Equal(t, entity.ToolbarNone, d.GetChromeToolbarType())
}

func TestOnWindowClosing_IsIdempotent(t *testing.T) {
	h := newHarness(t)
	root, _ := h.openRoot(1, false)
	child, _ := h.openPopup(root, 2, false)

	child.OnWindowClosing(nil)

	// The child is still listed by its parent, so it stays as an inert entry.
	info, ok := h.c.Lookup(child.WindowID())
	require.True(t, ok)
	assert.False(t, info.HasNativeWindow)
	assert.False(t, info.HasBrowserView)
	assert.True(t, info.Closed)

	assert.NotPanics(t, func() { child.OnWindowClosing(nil) })
	info, ok = h.c.Lookup(child.WindowID())
	require.True(t, ok)
	assert.False(t, info.HasNativeWindow)
	assert.False(t, info.HasBrowserView)

	// Closed windows no longer answer queries or handshakes.
	assert.Equal(t, entity.Rect{}, child.GetInitialBounds(nil))
	assert.Nil(t, child.GetDelegateForPopupBrowserView(nil, false))
	assert.True(t, child.CanClose(nil))

	root.OnWindowClosing(nil)
	_, ok = h.c.Lookup(root.WindowID())
	assert.False(t, ok)
	assert.NotPanics(t, func() { root.OnWindowClosing(nil) })
	assert.Empty(t, h.c.Roots())
	assert.Zero(t, h.c.Len())
}

func TestOnWindowClosing_DropsPendingPopup(t *testing.T) {
	h := newHarness(t)
	root, _ := h.openRoot(1, false)

	popup := root.GetDelegateForPopupBrowserView(nil, false).(Delegate)
	assert.Equal(t, 2, h.c.Len())

	root.OnWindowClosing(nil)

	_, ok := h.c.Lookup(popup.WindowID())
	assert.False(t, ok)
	assert.Zero(t, h.c.Len())
}

func TestShowDevTools_Errors(t *testing.T) {
	h := newHarness(t)

	err := h.c.ShowDevTools(entity.WindowID(42))
	assert.ErrorIs(t, err, ErrWindowNotFound)

	v := h.view(nil)
	h.host.EXPECT().CreateBrowserView(gomock.Any(), gomock.Any()).Return(v)
	h.host.EXPECT().CreateTopLevelWindow(gomock.Any())
	id := h.c.OpenRoot(RootRequest{Details: rootDetails()})

	err = h.c.ShowDevTools(id)
	assert.ErrorIs(t, err, ErrNoBrowser)
}

func TestShowDevTools_CallsBrowser(t *testing.T) {
	h := newHarness(t)
	root, b := h.openRoot(1, false)

	b.EXPECT().ShowDevTools().Times(1)
	require.NoError(t, h.c.ShowDevTools(root.WindowID()))
}

func TestNewWindowCoordinatorPanicsOnNilHost(t *testing.T) {
	assert.Panics(t, func() {
		NewWindowCoordinator(context.Background(), WindowCoordinatorConfig{})
	})
}

func TestDelegate_UnknownWindow(t *testing.T) {
	h := newHarness(t)
	_, err := h.c.Delegate(entity.WindowID(9))
	assert.ErrorIs(t, err, ErrWindowNotFound)
}
