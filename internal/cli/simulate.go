package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/winshell/internal/app/shell"
	"github.com/bnema/winshell/internal/cli/styles"
	"github.com/bnema/winshell/internal/domain/entity"
	"github.com/bnema/winshell/internal/infrastructure/config"
	"github.com/bnema/winshell/internal/infrastructure/headless"
	"github.com/bnema/winshell/internal/logging"
	"github.com/bnema/winshell/internal/ui/coordinator"
	"github.com/bnema/winshell/internal/ui/mainloop"
)

// SimulateOptions describe a headless session.
type SimulateOptions struct {
	Config *config.Config
	// Popups is how many popups the root page opens, each from the previous
	// one so the tree grows one level per popup.
	Popups int
	// Devtools opens an inspector for every popup.
	Devtools bool
	// SynchronousTeardown closes browsers inside the close call itself.
	SynchronousTeardown bool
}

// SimulateResult is what a headless session left behind.
type SimulateResult struct {
	// Tree is the window forest after every popup opened.
	Tree []styles.WindowNode
	// Journal holds every host event, including the final close.
	Journal headless.Journal
	// Remaining counts windows and browsers still open at the end.
	RemainingWindows  int
	RemainingBrowsers int
}

// Simulate opens a root window on the headless host, spawns popups, records
// the resulting tree and then closes the root.
func Simulate(ctx context.Context, opts SimulateOptions) (*SimulateResult, error) {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Popups < 0 {
		return nil, fmt.Errorf("popups must be non-negative, got %d", opts.Popups)
	}
	log := logging.FromContext(ctx)

	loop := mainloop.NewLoop()
	host := headless.New(ctx, headless.Options{
		SynchronousTeardown: opts.SynchronousTeardown,
		Post:                loop.Post,
	})
	sh, err := shell.New(ctx, shell.Config{
		Host:              host,
		Loop:              loop,
		ControlSurfaceURL: opts.Config.Launch.ControlSurfaceURL,
	})
	if err != nil {
		return nil, err
	}
	host.SetClient(sh)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	runErr := make(chan error, 1)
	go func() { runErr <- sh.Run(runCtx) }()

	req := shell.RootRequestFromConfig(opts.Config)
	req.ShowDevtoolsForChildren = req.ShowDevtoolsForChildren || opts.Devtools

	var rootID entity.WindowID
	if err := loop.Invoke(ctx, func() { rootID = sh.Open(req) }); err != nil {
		return nil, err
	}
	if err := loop.Flush(ctx); err != nil {
		return nil, err
	}

	opener := rootID
	for i := 0; i < opts.Popups; i++ {
		var popupErr error
		err := loop.Invoke(ctx, func() {
			opener, popupErr = openPopup(sh, host, opener)
		})
		if err == nil {
			err = popupErr
		}
		if err != nil {
			return nil, fmt.Errorf("popup %d: %w", i+1, err)
		}
		if err := loop.Flush(ctx); err != nil {
			return nil, err
		}
		log.Debug().Int("popup", i+1).Stringer("window_id", opener).Msg("popup opened")
	}

	result := &SimulateResult{}
	var closeErr error
	if err := loop.Invoke(ctx, func() {
		result.Tree = BuildTree(sh.Coordinator())
		info, ok := sh.Coordinator().Lookup(rootID)
		if !ok || !info.HasNativeWindow {
			closeErr = fmt.Errorf("root %s: %w", rootID, coordinator.ErrWindowNotFound)
			return
		}
		closeErr = host.CloseWindow(info.NativeID)
	}); err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}

	select {
	case err := <-runErr:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// The loop has stopped, so the host and shell are no longer shared.
	result.Journal = host.Journal()
	result.RemainingWindows = host.OpenWindows()
	result.RemainingBrowsers = sh.LiveBrowsers()
	return result, nil
}

// openPopup makes the browser of opener request a popup with no placement
// hints and returns the window created for it.
func openPopup(sh *shell.Shell, host *headless.Host, opener entity.WindowID) (entity.WindowID, error) {
	c := sh.Coordinator()
	info, ok := c.Lookup(opener)
	if !ok {
		return entity.NoWindow, fmt.Errorf("opener %s: %w", opener, coordinator.ErrWindowNotFound)
	}
	if !info.HasBrowser {
		return entity.NoWindow, fmt.Errorf("opener %s: %w", opener, coordinator.ErrNoBrowser)
	}
	if _, err := host.OpenPopup(info.BrowserID, entity.PopupFeatures{}); err != nil {
		return entity.NoWindow, err
	}

	children := c.Children(opener)
	for i := len(children) - 1; i >= 0; i-- {
		child, ok := c.Lookup(children[i])
		if ok && !child.Details.IsDevtools {
			return child.ID, nil
		}
	}
	return entity.NoWindow, errors.New("popup was not attached to its opener")
}

// BuildTree snapshots the coordinator's window forest.
func BuildTree(c *coordinator.WindowCoordinator) []styles.WindowNode {
	roots := c.Roots()
	nodes := make([]styles.WindowNode, 0, len(roots))
	for _, id := range roots {
		if n, ok := buildNode(c, id); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func buildNode(c *coordinator.WindowCoordinator, id entity.WindowID) (styles.WindowNode, bool) {
	info, ok := c.Lookup(id)
	if !ok {
		return styles.WindowNode{}, false
	}
	n := styles.WindowNode{
		ID:         info.ID,
		Browser:    info.BrowserID,
		HasBrowser: info.HasBrowser,
		Size:       info.Details.PreferredSize(),
		IsDevtools: info.Details.IsDevtools,
		Closed:     info.Closed,
	}
	for _, childID := range info.Children {
		if child, ok := buildNode(c, childID); ok {
			n.Children = append(n.Children, child)
		}
	}
	return n, true
}
