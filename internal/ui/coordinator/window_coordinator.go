// Package coordinator owns the tree of native windows that host browser
// surfaces and sequences the host framework's callbacks against it.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/winshell/internal/application/port"
	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/logging"
)

// DefaultControlSurfaceURL is the internal page a controls-overlay window
// navigates to. The real content address travels as extra info.
const DefaultControlSurfaceURL = "https://bolt-internal/frame.html"

var (
	// ErrProtocolViolation marks a host callback arriving out of sequence.
	ErrProtocolViolation = errors.New("host callback protocol violation")
	// ErrWindowNotFound is returned for IDs that are not in the arena.
	ErrWindowNotFound = errors.New("window not found")
	// ErrWindowClosed is returned for windows whose native window is gone.
	ErrWindowClosed = errors.New("window closed")
	// ErrNoBrowser is returned when a window has no live browser instance.
	ErrNoBrowser = errors.New("window has no browser")
)

// WindowCoordinatorConfig holds dependencies for WindowCoordinator.
type WindowCoordinatorConfig struct {
	Host port.Host
	// ControlSurfaceURL overrides DefaultControlSurfaceURL when set.
	ControlSurfaceURL string
}

// RootRequest describes a top-level window opened by the application.
type RootRequest struct {
	Details entity.WindowDetails
	URL     string
	// ShowDevtoolsForChildren opens an inspector for every popup spawned
	// below this root. Frozen into each window at creation.
	ShowDevtoolsForChildren bool
}

// WindowCoordinator is the arena of windows plus the callback logic the host
// framework drives. It is not safe for concurrent use: every method must run
// on the host's callback thread (see mainloop.Loop).
type WindowCoordinator struct {
	host              port.Host
	controlSurfaceURL string
	log               zerolog.Logger

	windows map[entity.WindowID]*window
	roots   []entity.WindowID
	nextID  entity.WindowID
}

// NewWindowCoordinator creates a coordinator bound to the given host.
func NewWindowCoordinator(ctx context.Context, cfg WindowCoordinatorConfig) *WindowCoordinator {
	if cfg.Host == nil {
		panic("coordinator.NewWindowCoordinator: host cannot be nil")
	}

	log := logging.FromContext(ctx).With().Str("component", "window-coordinator").Logger()
	log.Debug().Msg("creating window coordinator")

	controlURL := cfg.ControlSurfaceURL
	if controlURL == "" {
		controlURL = DefaultControlSurfaceURL
	}

	return &WindowCoordinator{
		host:              cfg.Host,
		controlSurfaceURL: controlURL,
		log:               log,
		windows:           make(map[entity.WindowID]*window),
	}
}

// OpenRoot constructs a fully configured top-level window and immediately
// asks the host for its rendering surface and native window.
func (c *WindowCoordinator) OpenRoot(req RootRequest) entity.WindowID {
	w := c.newWindow(req.Details, req.ShowDevtoolsForChildren)
	w.attached = true
	c.roots = append(c.roots, w.id)

	viewReq := port.BrowserViewRequest{
		URL:      req.URL,
		Settings: port.BrowserSettings{BackgroundColor: 0},
	}
	if req.Details.ControlsOverlay {
		viewReq.URL = c.controlSurfaceURL
		viewReq.ExtraInfo = map[string]string{port.BoltAppURLKey: req.URL}
	}

	c.log.Debug().
		Stringer("window_id", w.id).
		Str("url", req.URL).
		Bool("controls_overlay", req.Details.ControlsOverlay).
		Msg("opening root window")

	w.view = c.host.CreateBrowserView(w.delegate, viewReq)
	c.host.CreateTopLevelWindow(w.delegate)
	return w.id
}

// Delegate returns the host-facing delegate shim for a window.
func (c *WindowCoordinator) Delegate(id entity.WindowID) (Delegate, error) {
	w, ok := c.windows[id]
	if !ok {
		return nil, fmt.Errorf("delegate for %s: %w", id, ErrWindowNotFound)
	}
	return w.delegate, nil
}

// Roots returns the IDs of the attached top-level windows in creation order.
func (c *WindowCoordinator) Roots() []entity.WindowID {
	out := make([]entity.WindowID, len(c.roots))
	copy(out, c.roots)
	return out
}

// Len returns the number of windows currently held in the arena.
func (c *WindowCoordinator) Len() int {
	return len(c.windows)
}

func (c *WindowCoordinator) newWindow(details entity.WindowDetails, showDevtoolsForChildren bool) *window {
	c.nextID++
	w := &window{
		id:                      c.nextID,
		details:                 details,
		showDevtoolsForChildren: showDevtoolsForChildren,
	}
	w.delegate = &windowDelegate{c: c, id: w.id}
	c.windows[w.id] = w
	return w
}

// live returns the window if it exists and has not closed yet.
func (c *WindowCoordinator) live(id entity.WindowID) (*window, bool) {
	w, ok := c.windows[id]
	if !ok || w.closed {
		return nil, false
	}
	return w, true
}

func (c *WindowCoordinator) removeRoot(id entity.WindowID) {
	for i, rid := range c.roots {
		if rid == id {
			c.roots = append(c.roots[:i:i], c.roots[i+1:]...)
			return
		}
	}
}

// detach marks a window as no longer owned by its parent (or the root list)
// and releases it at once if it has already closed.
func (c *WindowCoordinator) detach(w *window) {
	w.attached = false
	if w.closed {
		c.release(w.id)
	}
}

// release drops a closed, detached window from the arena. Children it still
// lists are orphaned and follow the same rule.
func (c *WindowCoordinator) release(id entity.WindowID) {
	w, ok := c.windows[id]
	if !ok {
		return
	}
	delete(c.windows, id)
	c.log.Debug().Stringer("window_id", id).Msg("window released")

	if pendingID, inFlight := w.pending.inFlight(); inFlight {
		delete(c.windows, pendingID)
	}

	children := w.children
	w.children = nil
	for _, childID := range children {
		if child, ok := c.windows[childID]; ok {
			child.parent = entity.NoWindow
			c.detach(child)
		}
	}
}
