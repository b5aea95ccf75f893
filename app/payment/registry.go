package payment

import (
	"context"
	"sync"
)

// DefaultRecentLimit caps how many finished watches a registry remembers.
const DefaultRecentLimit = 256

type entry struct {
	watch *Watch
	owner string
}

// Registry keeps at most one live watch per payment id. Finished watches
// leave the live set and are remembered in a bounded FIFO so their result
// stays readable and resolved payments are not polled again.
type Registry struct {
	tracker *Tracker

	mu          sync.Mutex
	watches     map[string]*entry
	recent      map[string]*entry
	recentOrder []string
	recentLimit int
}

func NewRegistry(tracker *Tracker) *Registry {
	return &Registry{
		tracker:     tracker,
		watches:     make(map[string]*entry),
		recent:      make(map[string]*entry),
		recentLimit: DefaultRecentLimit,
	}
}

func (r *Registry) Tracker() *Tracker {
	return r.tracker
}

// Start returns the existing watch when one is live or already resolved
// the payment. A watch that timed out or was stopped is replaced. The
// boolean reports whether a new watch was started.
func (r *Registry) Start(ctx context.Context, paymentID, owner string, hooks Hooks) (*Watch, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.watches[paymentID]; ok && !existing.watch.finished() {
		return existing.watch, false
	}
	if existing, ok := r.lookup(paymentID); ok && existing.watch.finished() {
		switch existing.watch.Result().Outcome {
		case OutcomePaid, OutcomeFailed:
			return existing.watch, false
		}
	}

	e := &entry{watch: r.tracker.Watch(ctx, paymentID, hooks), owner: owner}
	r.watches[paymentID] = e
	go r.reap(paymentID, e)
	return e.watch, true
}

// reap moves a finished watch out of the live set.
func (r *Registry) reap(paymentID string, e *entry) {
	<-e.watch.Done()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.watches[paymentID] == e {
		delete(r.watches, paymentID)
	}
	if _, ok := r.recent[paymentID]; !ok {
		r.recentOrder = append(r.recentOrder, paymentID)
	}
	r.recent[paymentID] = e
	for len(r.recentOrder) > r.recentLimit {
		oldest := r.recentOrder[0]
		r.recentOrder = r.recentOrder[1:]
		delete(r.recent, oldest)
	}
}

// lookup prefers the live entry over a remembered one. Callers hold r.mu.
func (r *Registry) lookup(paymentID string) (*entry, bool) {
	if e, ok := r.watches[paymentID]; ok {
		return e, true
	}
	e, ok := r.recent[paymentID]
	return e, ok
}

// Get returns the live watch for paymentID, or the most recent finished one.
func (r *Registry) Get(paymentID string) (*Watch, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(paymentID)
	if !ok {
		return nil, false
	}
	return e.watch, true
}

// Owner reports who started the watch Get would return.
func (r *Registry) Owner(paymentID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.lookup(paymentID)
	if !ok {
		return "", false
	}
	return e.owner, true
}

// Live reports how many watches are still polling.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.watches {
		if !e.watch.finished() {
			n++
		}
	}
	return n
}

// Stop tears down the live watch for paymentID. It reports false when no
// live watch exists.
func (r *Registry) Stop(paymentID string) bool {
	r.mu.Lock()
	e, ok := r.watches[paymentID]
	r.mu.Unlock()
	if !ok || e.watch.finished() {
		return false
	}
	e.watch.Stop()
	return true
}

func (r *Registry) StopAll() {
	r.mu.Lock()
	watches := make([]*Watch, 0, len(r.watches))
	for _, e := range r.watches {
		watches = append(watches, e.watch)
	}
	r.mu.Unlock()

	for _, w := range watches {
		w.Stop()
	}
}
