// Package shell wires the window coordinator to the browser life-span
// notifications, the plugin host and the configuration watcher.
package shell

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/infrastructure/config"
	"github.com/bnema/winshell/internal/logging"
	"github.com/bnema/winshell/internal/ui/coordinator"
	"github.com/bnema/winshell/internal/ui/mainloop"
)

const configReloadKey = "config-reload"

// Config holds dependencies for Shell.
type Config struct {
	Host port.Host
	Loop *mainloop.Loop
	// Plugins is optional.
	Plugins port.PluginHost
	// ConfigManager is optional; when set, WatchConfig follows its file.
	ConfigManager *config.Manager
	// ControlSurfaceURL overrides the coordinator default when set.
	ControlSurfaceURL string
}

// Shell is the browser client: it receives per-browser notifications and
// turns them into window tree operations. Except for Run and WatchConfig,
// methods must be called on the loop goroutine.
type Shell struct {
	ctx         context.Context
	log         zerolog.Logger
	loop        *mainloop.Loop
	coord       *coordinator.WindowCoordinator
	plugins     port.PluginHost
	cfgManager  *config.Manager
	coalescer   *mainloop.Coalescer
	browsers    map[entity.BrowserID]port.Browser
	seenBrowser bool
	started     bool

	allClosed     chan struct{}
	allClosedOnce sync.Once
}

var _ port.ClientHandler = (*Shell)(nil)

// New creates a shell. The caller registers it as the host's client.
func New(ctx context.Context, cfg Config) (*Shell, error) {
	if cfg.Host == nil {
		return nil, errors.New("shell: host is required")
	}
	if cfg.Loop == nil {
		return nil, errors.New("shell: loop is required")
	}

	return &Shell{
		ctx:  ctx,
		log:  logging.FromContext(ctx).With().Str("component", "shell").Logger(),
		loop: cfg.Loop,
		coord: coordinator.NewWindowCoordinator(ctx, coordinator.WindowCoordinatorConfig{
			Host:              cfg.Host,
			ControlSurfaceURL: cfg.ControlSurfaceURL,
		}),
		plugins:    cfg.Plugins,
		cfgManager: cfg.ConfigManager,
		coalescer:  mainloop.NewCoalescer(cfg.Loop.Post),
		browsers:   make(map[entity.BrowserID]port.Browser),
		allClosed:  make(chan struct{}),
	}, nil
}

// Coordinator returns the window tree.
func (s *Shell) Coordinator() *coordinator.WindowCoordinator {
	return s.coord
}

// Start initializes the plugin host. It is safe to call more than once.
func (s *Shell) Start() error {
	if s.started {
		return nil
	}
	s.started = true
	if s.plugins == nil {
		return nil
	}
	if err := s.plugins.Init(); err != nil {
		return fmt.Errorf("init plugins: %w", err)
	}
	s.log.Debug().Msg("plugin host initialized")
	return nil
}

// Open opens a root window.
func (s *Shell) Open(req coordinator.RootRequest) entity.WindowID {
	return s.coord.OpenRoot(req)
}

// OpenFromConfig opens a root window using the launch and window sections.
func (s *Shell) OpenFromConfig(cfg *config.Config) entity.WindowID {
	return s.Open(RootRequestFromConfig(cfg))
}

// RootRequestFromConfig snapshots cfg into a root window request.
func RootRequestFromConfig(cfg *config.Config) coordinator.RootRequest {
	return coordinator.RootRequest{
		Details:                 cfg.RootDetails(),
		URL:                     cfg.Launch.URL,
		ShowDevtoolsForChildren: cfg.Launch.ShowDevtoolsForChildren,
	}
}

// LiveBrowsers returns the number of browser instances not yet closed.
func (s *Shell) LiveBrowsers() int {
	return len(s.browsers)
}

// AllClosed is closed once the last browser instance has gone away.
func (s *Shell) AllClosed() <-chan struct{} {
	return s.allClosed
}

func (s *Shell) OnAfterCreated(browser port.Browser) {
	s.browsers[browser.ID()] = browser
	s.seenBrowser = true
	s.log.Debug().Int("browser_id", int(browser.ID())).Int("live", len(s.browsers)).Msg("browser created")
}

func (s *Shell) OnBeforePopup(browser port.Browser, features entity.PopupFeatures) {
	s.coord.SetPopupFeaturesForBrowser(browser, features)
}

func (s *Shell) DoClose(browser port.Browser) {
	if s.coord.CloseBrowser(browser) {
		s.log.Debug().Int("browser_id", int(browser.ID())).Msg("root browser closing")
	}
}

func (s *Shell) OnBeforeClose(browser port.Browser) {
	delete(s.browsers, browser.ID())
	s.log.Debug().Int("browser_id", int(browser.ID())).Int("live", len(s.browsers)).Msg("browser closed")

	if len(s.browsers) > 0 || !s.seenBrowser {
		return
	}
	s.allClosedOnce.Do(func() {
		s.closePlugins()
		s.log.Info().Msg("all browsers closed")
		close(s.allClosed)
	})
}

func (s *Shell) closePlugins() {
	if s.plugins == nil || !s.started {
		return
	}
	if err := s.plugins.Close(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close plugin host")
	}
}

// WatchConfig follows the config file. Bursts of change events collapse into
// one reload applied on the loop; only the log level takes effect on live
// windows.
func (s *Shell) WatchConfig() error {
	if s.cfgManager == nil {
		return nil
	}
	s.cfgManager.OnConfigChange(func(cfg *config.Config) {
		s.coalescer.Post(configReloadKey, func() { s.applyConfig(cfg) })
	})
	return s.cfgManager.Watch(s.ctx)
}

func (s *Shell) applyConfig(cfg *config.Config) {
	level := logging.ParseLevel(cfg.Logging.Level)
	zerolog.SetGlobalLevel(level)
	s.log.Info().Str("level", level.String()).Msg("configuration reloaded")
}

// Run drives the loop until ctx is cancelled or every browser has closed.
// A shutdown caused by the last browser closing returns nil.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.WatchConfig(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		err := s.loop.Run(gctx)
		if errors.Is(err, context.Canceled) && ctx.Err() == nil {
			return nil
		}
		return err
	})
	g.Go(func() error {
		select {
		case <-s.allClosed:
			s.log.Debug().Msg("stopping main loop")
			cancel()
		case <-gctx.Done():
		}
		s.coalescer.Stop()
		return nil
	})
	return g.Wait()
}
