// Package watch debounces page-navigation events. Single-page job boards
// fire several URL changes while a posting loads; the watcher settles on
// the final URL before notifying, so auto-detection runs once per page.
package watch

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period required before a URL is reported.
const DefaultDebounce = 2 * time.Second

// Watcher reports a URL once navigation has settled on it. A newer URL
// observed during the quiet period supersedes the pending one. Watcher is
// safe for concurrent use.
type Watcher struct {
	notify   func(url string)
	debounce time.Duration

	mu       sync.Mutex
	timer    *time.Timer
	pending  string
	reported string
	closed   bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the quiet period. Defaults to DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// NewWatcher creates a Watcher that calls notify with each settled URL.
// Close must be called when the Watcher is no longer needed.
func NewWatcher(notify func(url string), opts ...Option) *Watcher {
	w := &Watcher{
		notify:   notify,
		debounce: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Observe records a navigation to url. The notify callback fires after
// the debounce period unless a different URL is observed first. A URL
// that was already reported is ignored until Reset is called.
func (w *Watcher) Observe(url string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || url == "" || url == w.reported || url == w.pending {
		return
	}

	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = url
	w.timer = time.AfterFunc(w.debounce, func() {
		w.fire(url)
	})
}

// fire reports url if it is still the pending one.
func (w *Watcher) fire(url string) {
	w.mu.Lock()
	if w.closed || w.pending != url {
		w.mu.Unlock()
		return
	}
	w.pending = ""
	w.reported = url
	w.mu.Unlock()

	w.notify(url)
}

// Reset cancels any pending notification and forgets the last reported
// URL, so the next observation of it fires again.
func (w *Watcher) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = ""
	w.reported = ""
}

// Close stops the watcher. Subsequent observations are ignored.
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.pending = ""
	w.closed = true
}
