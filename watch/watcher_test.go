package watch_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/jobtailor/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects notified URLs.
type recorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *recorder) notify(url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.urls = append(r.urls, url)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.urls...)
}

func (r *recorder) waitFor(t *testing.T, n int) []string {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if urls := r.snapshot(); len(urls) >= n {
			return urls
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d notifications, got %v", n, r.snapshot())
	return nil
}

func TestWatcher_Observe(t *testing.T) {
	t.Parallel()

	t.Run("reports URL after quiet period", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(20*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers/sre")

		urls := r.waitFor(t, 1)
		assert.Equal(t, []string{"https://example.com/careers/sre"}, urls)
	})

	t.Run("newer URL supersedes pending one", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(50*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers")
		time.Sleep(10 * time.Millisecond)
		w.Observe("https://example.com/careers/sre")

		urls := r.waitFor(t, 1)
		require.Equal(t, []string{"https://example.com/careers/sre"}, urls)

		// The superseded URL must never fire.
		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, []string{"https://example.com/careers/sre"}, r.snapshot())
	})

	t.Run("reported URL is not reported twice", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(10*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers/sre")
		r.waitFor(t, 1)

		w.Observe("https://example.com/careers/sre")
		time.Sleep(50 * time.Millisecond)

		assert.Len(t, r.snapshot(), 1)
	})

	t.Run("distinct URLs each fire", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(10*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers/sre")
		r.waitFor(t, 1)
		w.Observe("https://example.com/careers/data-scientist")

		urls := r.waitFor(t, 2)
		assert.Equal(t, []string{
			"https://example.com/careers/sre",
			"https://example.com/careers/data-scientist",
		}, urls)
	})
}

func TestWatcher_Reset(t *testing.T) {
	t.Parallel()

	t.Run("cancels pending notification", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(30*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers/sre")
		w.Reset()

		time.Sleep(80 * time.Millisecond)
		assert.Empty(t, r.snapshot())
	})

	t.Run("allows a reported URL to fire again", func(t *testing.T) {
		t.Parallel()

		r := &recorder{}
		w := watch.NewWatcher(r.notify, watch.WithDebounce(10*time.Millisecond))
		defer w.Close()

		w.Observe("https://example.com/careers/sre")
		r.waitFor(t, 1)

		w.Reset()
		w.Observe("https://example.com/careers/sre")

		urls := r.waitFor(t, 2)
		assert.Len(t, urls, 2)
	})
}

func TestWatcher_Close(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	w := watch.NewWatcher(r.notify, watch.WithDebounce(10*time.Millisecond))

	w.Observe("https://example.com/careers/sre")
	w.Close()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.snapshot())

	w.Observe("https://example.com/careers/data-scientist")
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, r.snapshot())
}
