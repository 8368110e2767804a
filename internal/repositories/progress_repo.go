package repositories

import (
	"sync"
	"whatstock/internal/models"
)

// ProgressRepository defines the interface for per-order shipping progress.
// Progress is keyed by the sold item's ID and defaults to all steps false.
type ProgressRepository interface {
	Get(itemID string) (models.ShippingProgress, error)
	Set(itemID string, progress models.ShippingProgress) error
	Delete(itemID string) error
}

// MemoryProgressRepository is an in-memory implementation of
// ProgressRepository. Progress is ephemeral and discarded at process end.
type MemoryProgressRepository struct {
	progress map[string]models.ShippingProgress
	mu       sync.RWMutex
}

// NewMemoryProgressRepository creates a new instance of MemoryProgressRepository.
func NewMemoryProgressRepository() *MemoryProgressRepository {
	return &MemoryProgressRepository{
		progress: make(map[string]models.ShippingProgress),
	}
}

// Get returns the progress for an item ID, or the all-false default when
// none has been recorded.
func (r *MemoryProgressRepository) Get(itemID string) (models.ShippingProgress, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.progress[itemID], nil
}

// Set records the progress for an item ID.
func (r *MemoryProgressRepository) Set(itemID string, progress models.ShippingProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.progress[itemID] = progress
	return nil
}

// Delete prunes the progress for an item ID. Deleting absent progress is
// not an error; the default is indistinguishable from no record.
func (r *MemoryProgressRepository) Delete(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.progress, itemID)
	return nil
}
