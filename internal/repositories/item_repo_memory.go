package repositories

import (
	"fmt"
	"sync"
	"whatstock/internal/models"

	"github.com/google/uuid"
)

// MemoryItemRepository is an in-memory implementation of ItemRepository.
// Reads and writes are guarded by an RWMutex; concurrent updates to the
// same item are last-write-wins.
type MemoryItemRepository struct {
	items map[string]models.InventoryItem
	mu    sync.RWMutex
}

// NewMemoryItemRepository creates a new instance of MemoryItemRepository.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{
		items: make(map[string]models.InventoryItem),
	}
}

// GetAll returns all items. Order is not significant.
func (r *MemoryItemRepository) GetAll() ([]models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	itemList := make([]models.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		itemList = append(itemList, item)
	}
	return itemList, nil
}

// GetByID returns an item by its ID.
func (r *MemoryItemRepository) GetByID(id string) (*models.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("item with ID %s: %w", id, models.ErrItemNotFound)
	}
	return &item, nil
}

// Create adds a new item.
func (r *MemoryItemRepository) Create(item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	r.items[item.ID] = *item
	return nil
}

// Update replaces an existing item.
func (r *MemoryItemRepository) Update(item *models.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[item.ID]
	if !ok {
		return fmt.Errorf("item with ID %s: %w", item.ID, models.ErrItemNotFound)
	}
	r.items[item.ID] = *item
	return nil
}

// Delete removes an item by its ID.
func (r *MemoryItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.items[id]
	if !ok {
		return fmt.Errorf("item with ID %s: %w", id, models.ErrItemNotFound)
	}
	delete(r.items, id)
	return nil
}
