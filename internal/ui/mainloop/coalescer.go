// Package mainloop confines work to the single goroutine that owns window
// state and coalesces bursts of notifications before they reach it.
package mainloop

import "sync"

// Coalescer merges bursts of same-key tasks so only the latest one runs.
// Typical use: several config-file change events for one save.
type Coalescer struct {
	mu      sync.Mutex
	latest  map[string]func()
	post    func(func())
	stopped bool
}

// NewCoalescer wraps a post function, usually (*Loop).Post.
func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		latest: make(map[string]func()),
		post:   post,
	}
}

// Post schedules fn under key. If a task for key is already scheduled, fn
// replaces it and no new task is posted.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	_, scheduled := c.latest[key]
	c.latest[key] = fn
	c.mu.Unlock()

	if scheduled {
		return
	}
	c.post(func() { c.run(key) })
}

// Pending reports whether a task for key is waiting to run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.latest[key]
	return ok
}

// Stop drops scheduled work and ignores future posts.
func (c *Coalescer) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.latest = map[string]func(){}
	c.mu.Unlock()
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn, ok := c.latest[key]
	delete(c.latest, key)
	stopped := c.stopped
	c.mu.Unlock()

	if ok && !stopped {
		fn()
	}
}
