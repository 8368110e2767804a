package repositories

import (
	"whatstock/internal/models"
)

// ItemRepository defines the interface for inventory item data access.
type ItemRepository interface {
	GetAll() ([]models.InventoryItem, error)
	GetByID(id string) (*models.InventoryItem, error)
	Create(item *models.InventoryItem) error
	Update(item *models.InventoryItem) error
	Delete(id string) error
}
