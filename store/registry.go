package store

import (
	"context"
	"sync"
	"time"
)

// Factory builds the Store for a user
type Factory func(userID string) *Store

// Registry owns one Store per user and drops stores that sit idle
type Registry struct {
	newStore Factory
	idleTTL  time.Duration
	now      func() time.Time

	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry creates a Registry. idleTTL <= 0 disables eviction.
func NewRegistry(newStore Factory, idleTTL time.Duration) *Registry {
	return &Registry{
		newStore: newStore,
		idleTTL:  idleTTL,
		now:      time.Now,
		stores:   map[string]*Store{},
	}
}

// Get returns the user's Store, creating it on first use
func (r *Registry) Get(userID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[userID]
	if !ok {
		s = r.newStore(userID)
		r.stores[userID] = s
	}
	return s
}

// Len returns the number of live stores
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Evict drops stores idle for longer than the TTL and returns how many were dropped.
// Stores with a request in flight are kept.
func (r *Registry) Evict() int {
	if r.idleTTL <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.idleTTL)

	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.stores {
		last, busy := s.idleSince()
		if !busy && last.Before(cutoff) {
			delete(r.stores, id)
			n++
		}
	}
	return n
}

// Run calls Evict every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Evict()
		}
	}
}
