// Package backend watches the data file for changes made outside the
// application (another instance, a sync tool, hand edits) and publishes
// reload events.
package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/rentroll/internal/model/client"
	"github.com/atomicstack/rentroll/internal/storage"
)

// Event conveys a fresh book snapshot or an error from a poll.
type Event struct {
	Clients []client.Client
	ModTime time.Time
	Err     error
}

// Watcher polls the data file's modification time at a fixed interval and
// emits a snapshot whenever it moves.
type Watcher struct {
	store    *storage.BookStorage
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup

	// mu guards lastMod: MarkClean runs on the UI goroutine, the poller
	// on its own.
	mu      sync.Mutex
	lastMod time.Time
}

// NewWatcher creates a watcher over the storage's canonical data file.
func NewWatcher(store *storage.BookStorage, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	if info, err := os.Stat(store.Path()); err == nil {
		w.lastMod = info.ModTime()
	}
	store.OnSave(w.MarkClean)

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current check; use
// Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

// MarkClean records the data file's current modification time so writes made
// by the application itself are not reported back as external changes.
// Registered as the storage's save hook.
func (w *Watcher) MarkClean() {
	if info, err := os.Stat(w.store.Path()); err == nil {
		w.setLastMod(info.ModTime())
	}
}

func (w *Watcher) setLastMod(t time.Time) {
	w.mu.Lock()
	w.lastMod = t
	w.mu.Unlock()
}

func (w *Watcher) getLastMod() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastMod
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			evt, changed := w.check()
			if !changed {
				continue
			}
			select {
			case <-w.ctx.Done():
				return
			case w.events <- evt:
			}
		}
	}
}

func (w *Watcher) check() (Event, bool) {
	info, err := os.Stat(w.store.Path())
	if err != nil {
		// A data file that never existed is not a change; one that
		// vanished after we saw it is.
		if os.IsNotExist(err) && w.getLastMod().IsZero() {
			return Event{}, false
		}
		if os.IsNotExist(err) {
			w.setLastMod(time.Time{})
			return Event{Clients: nil}, true
		}
		return Event{Err: err}, true
	}
	if !info.ModTime().After(w.getLastMod()) {
		return Event{}, false
	}
	clients, modTime, err := w.store.ReadFile(w.store.Path())
	if err != nil {
		return Event{Err: err}, true
	}
	w.setLastMod(modTime)
	return Event{Clients: clients, ModTime: modTime}, true
}
