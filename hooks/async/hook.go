// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SkipEvery: 10})
//	hooks := asynchook.New(raw, 1, 256) // 1 worker; queue 256 events
//	defer hooks.Close()
//
//	todos := filecache.New[todo.Item](filecache.Options{
//	    Resolver: filecache.UserDir("todo"),
//	    Hooks:    hooks,
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/filecache"
)

// Hooks moves hook calls off the Save/Load path. Events are dropped when the
// queue is full.
type Hooks struct {
	inner filecache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ filecache.Hooks = (*Hooks)(nil)

func New(inner filecache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close stops accepting events and waits for queued ones to run.
// Hooks must not be called after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) RecordSkipped(f filecache.Format, i int) { h.try(func() { h.inner.RecordSkipped(f, i) }) }
func (h *Hooks) Saved(p string, f filecache.Format, n, size int) {
	h.try(func() { h.inner.Saved(p, f, n, size) })
}
func (h *Hooks) Loaded(p string, f filecache.Format, n, skipped int) {
	h.try(func() { h.inner.Loaded(p, f, n, skipped) })
}
