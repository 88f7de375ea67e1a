package store

import (
	"context"
	"sync"
)

// Selection maps cart item id to its checkbox state. Ids absent from the map are unknown.
type Selection map[string]bool

func (s Selection) isSelected(cartItemID string) bool {
	return s[cartItemID]
}

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// SelectionRepository persists a user's selection so it survives a storefront restart
type SelectionRepository interface {
	Load(ctx context.Context, userID string) (Selection, error)
	Save(ctx context.Context, userID string, sel Selection) error
}

// MemorySelectionRepository keeps selections in process memory
type MemorySelectionRepository struct {
	mu   sync.RWMutex
	data map[string]Selection
}

// NewMemorySelectionRepository creates an empty MemorySelectionRepository
func NewMemorySelectionRepository() *MemorySelectionRepository {
	return &MemorySelectionRepository{data: map[string]Selection{}}
}

// Load returns a copy of the stored selection, or an empty one
func (r *MemorySelectionRepository) Load(_ context.Context, userID string) (Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.data[userID].clone(), nil
}

// Save replaces the stored selection
func (r *MemorySelectionRepository) Save(_ context.Context, userID string, sel Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[userID] = sel.clone()
	return nil
}
