package shell

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/infrastructure/config"
	"github.com/bnema/winshell/internal/infrastructure/headless"
	"github.com/bnema/winshell/internal/ui/coordinator"
	"github.com/bnema/winshell/internal/ui/mainloop"
)

type mockPluginHost struct {
	mock.Mock
}

func (m *mockPluginHost) Init() error  { return m.Called().Error(0) }
func (m *mockPluginHost) Close() error { return m.Called().Error(0) }

func (m *mockPluginHost) AddPlugin(source string) (port.PluginID, error) {
	args := m.Called(source)
	return args.Get(0).(port.PluginID), args.Error(1)
}

func (m *mockPluginHost) StopPlugin(id port.PluginID)               { m.Called(id) }
func (m *mockPluginHost) OnSwapBuffers(event port.SwapBuffersEvent) { m.Called(event) }
func (m *mockPluginHost) OnRender2D(batch *port.RenderBatch2D)      { m.Called(batch) }
func (m *mockPluginHost) OnMinimap(event port.RenderMinimapEvent)   { m.Called(event) }

type fixture struct {
	shell *Shell
	host  *headless.Host
	loop  *mainloop.Loop
}

func newFixture(t *testing.T, opts headless.Options, plugins port.PluginHost) *fixture {
	t.Helper()
	ctx := context.Background()
	loop := mainloop.NewLoop()
	host := headless.New(ctx, opts)
	sh, err := New(ctx, Config{Host: host, Loop: loop, Plugins: plugins})
	require.NoError(t, err)
	host.SetClient(sh)
	return &fixture{shell: sh, host: host, loop: loop}
}

func (f *fixture) openRoot(t *testing.T, devtools bool) coordinator.WindowInfo {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Launch.URL = "https://example.com"
	cfg.Launch.ShowDevtoolsForChildren = devtools
	id := f.shell.OpenFromConfig(cfg)
	f.host.Drain()

	info, ok := f.shell.Coordinator().Lookup(id)
	require.True(t, ok)
	require.True(t, info.HasBrowser)
	return info
}

func (f *fixture) openPopup(t *testing.T, opener coordinator.WindowInfo, features entity.PopupFeatures) coordinator.WindowInfo {
	t.Helper()
	before := f.shell.Coordinator().Children(opener.ID)
	_, err := f.host.OpenPopup(opener.BrowserID, features)
	require.NoError(t, err)
	f.host.Drain()

	after := f.shell.Coordinator().Children(opener.ID)
	require.Len(t, after, len(before)+1)
	info, ok := f.shell.Coordinator().Lookup(after[len(after)-1])
	require.True(t, ok)
	return info
}

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

func TestNewRequiresHostAndLoop(t *testing.T) {
	_, err := New(context.Background(), Config{Loop: mainloop.NewLoop()})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Host: headless.New(context.Background(), headless.Options{})})
	assert.Error(t, err)
}

func TestOpenRootShowsCenteredWindow(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	root := f.openRoot(t, false)

	assert.True(t, root.HasNativeWindow)
	assert.Equal(t, 1, f.shell.LiveBrowsers())

	w, ok := f.host.Window(root.NativeID)
	require.True(t, ok)
	assert.True(t, w.Shown)
	assert.Equal(t, entity.Size{Width: 800, Height: 600}, w.CenteredTo)
	assert.False(t, w.Frameless)
	assert.True(t, w.Resizable)
}

func TestPopupUsesRecordedHints(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	root := f.openRoot(t, false)

	popup := f.openPopup(t, root, entity.PopupFeatures{
		X: 10, XSet: true,
		Y: 20, YSet: true,
		Width: 300, WidthSet: true,
		Height: 200, HeightSet: true,
	})

	assert.Equal(t, root.ID, popup.Parent)
	assert.False(t, popup.Details.CenterOnOpen)

	w, ok := f.host.Window(popup.NativeID)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 10, Y: 20, Width: 300, Height: 200}, w.Bounds)
	assert.True(t, w.Shown)
	assert.Equal(t, entity.Size{}, w.CenteredTo)
}

func TestPopupWithoutHintsUsesDefaults(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	root := f.openRoot(t, false)

	popup := f.openPopup(t, root, entity.PopupFeatures{})

	w, ok := f.host.Window(popup.NativeID)
	require.True(t, ok)
	assert.Equal(t, entity.Size{Width: entity.DefaultPopupWidth, Height: entity.DefaultPopupHeight}, w.CenteredTo)
}

func TestDevtoolsOpenForEachPopup(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	root := f.openRoot(t, true)

	popup := f.openPopup(t, root, entity.PopupFeatures{})

	children := f.shell.Coordinator().Children(popup.ID)
	require.Len(t, children, 1)
	inspector, ok := f.shell.Coordinator().Lookup(children[0])
	require.True(t, ok)
	assert.True(t, inspector.Details.IsDevtools)
	assert.Empty(t, f.shell.Coordinator().Children(inspector.ID))
	assert.Equal(t, 1, f.host.Journal().Count(headless.EventDevtoolsRequested))
	assert.Equal(t, 3, f.shell.LiveBrowsers())
}

func TestCloseRootCascades(t *testing.T) {
	tests := []struct {
		name string
		opts headless.Options
	}{
		{name: "posted teardown", opts: headless.Options{}},
		{name: "synchronous teardown", opts: headless.Options{SynchronousTeardown: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plugins := new(mockPluginHost)
			plugins.On("Init").Return(nil).Once()
			plugins.On("Close").Return(nil).Once()

			f := newFixture(t, tt.opts, plugins)
			require.NoError(t, f.shell.Start())

			root := f.openRoot(t, false)
			child := f.openPopup(t, root, entity.PopupFeatures{})
			f.openPopup(t, child, entity.PopupFeatures{})
			require.Equal(t, 3, f.shell.Coordinator().Len())

			require.NoError(t, f.host.CloseWindow(root.NativeID))
			f.host.Drain()

			assert.Zero(t, f.shell.Coordinator().Len())
			assert.Empty(t, f.shell.Coordinator().Roots())
			assert.Zero(t, f.host.OpenWindows())
			assert.Zero(t, f.shell.LiveBrowsers())
			assert.True(t, closed(f.shell.AllClosed()))
			assert.Equal(t, 3, f.host.Journal().Count(headless.EventWindowClosed))
			plugins.AssertExpectations(t)
		})
	}
}

func TestClosePopupPrunesOnlyIt(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	root := f.openRoot(t, false)
	first := f.openPopup(t, root, entity.PopupFeatures{})
	second := f.openPopup(t, root, entity.PopupFeatures{})

	require.NoError(t, f.host.CloseWindow(first.NativeID))
	f.host.Drain()

	assert.Equal(t, []entity.WindowID{second.ID}, f.shell.Coordinator().Children(root.ID))
	_, ok := f.shell.Coordinator().Lookup(first.ID)
	assert.False(t, ok)
	assert.Equal(t, 2, f.shell.Coordinator().Len())
	assert.Equal(t, 2, f.shell.LiveBrowsers())
	assert.False(t, closed(f.shell.AllClosed()))
}

func TestSecondRootSurvivesFirst(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	first := f.openRoot(t, false)
	second := f.openRoot(t, false)

	require.NoError(t, f.host.CloseWindow(first.NativeID))
	f.host.Drain()

	assert.Equal(t, []entity.WindowID{second.ID}, f.shell.Coordinator().Roots())
	assert.False(t, closed(f.shell.AllClosed()))
}

func TestStartWrapsPluginInitError(t *testing.T) {
	plugins := new(mockPluginHost)
	plugins.On("Init").Return(errors.New("boom")).Once()

	f := newFixture(t, headless.Options{}, plugins)
	err := f.shell.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "init plugins")
	plugins.AssertExpectations(t)
}

func TestApplyConfigSetsGlobalLevel(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	f := newFixture(t, headless.Options{}, nil)
	cfg := config.DefaultConfig()
	cfg.Logging.Level = "warn"
	f.shell.applyConfig(cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestRunStopsWhenLastBrowserCloses(t *testing.T) {
	plugins := new(mockPluginHost)
	plugins.On("Init").Return(nil).Once()
	plugins.On("Close").Return(nil).Once()

	ctx := context.Background()
	loop := mainloop.NewLoop()
	host := headless.New(ctx, headless.Options{Post: loop.Post})
	sh, err := New(ctx, Config{Host: host, Loop: loop, Plugins: plugins})
	require.NoError(t, err)
	host.SetClient(sh)

	runErr := make(chan error, 1)
	go func() { runErr <- sh.Run(ctx) }()

	var rootID entity.WindowID
	var startErr error
	require.NoError(t, loop.Invoke(ctx, func() {
		startErr = sh.Start()
		rootID = sh.Open(coordinator.RootRequest{
			Details: config.DefaultConfig().RootDetails(),
			URL:     "https://example.com",
		})
	}))
	require.NoError(t, startErr)
	require.NoError(t, loop.Flush(ctx))

	var info coordinator.WindowInfo
	var found bool
	require.NoError(t, loop.Invoke(ctx, func() {
		info, found = sh.Coordinator().Lookup(rootID)
	}))
	require.True(t, found)

	var closeErr error
	require.NoError(t, loop.Invoke(ctx, func() {
		closeErr = host.CloseWindow(info.NativeID)
	}))
	require.NoError(t, closeErr)

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after the last browser closed")
	}
	plugins.AssertExpectations(t)
}

func TestRunReturnsWhenCancelled(t *testing.T) {
	f := newFixture(t, headless.Options{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	runErr := make(chan error, 1)
	go func() { runErr <- f.shell.Run(ctx) }()
	require.NoError(t, f.loop.Invoke(context.Background(), func() {}))
	cancel()

	select {
	case err := <-runErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
