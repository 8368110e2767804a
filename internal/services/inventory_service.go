package services

import (
	"log"
	"time"

	"whatstock/internal/models"
	"whatstock/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventPublisher publishes inventory lifecycle events to interested
// consumers. Publishing is best-effort; a failed publish never fails the
// operation that triggered it.
type EventPublisher interface {
	PublishItemEvent(event string, payload map[string]interface{}) error
}

// InventoryService handles the inventory item lifecycle: creation, partial
// updates, deletion and the sold/unsold transitions.
type InventoryService struct {
	repo     repositories.ItemRepository
	progress repositories.ProgressRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewInventoryService creates a new InventoryService. The event publisher
// may be nil, in which case no events are emitted.
func NewInventoryService(repo repositories.ItemRepository, progress repositories.ProgressRepository, events EventPublisher) *InventoryService {
	return &InventoryService{
		repo:     repo,
		progress: progress,
		events:   events,
		validate: validator.New(),
	}
}

// GetAllItems retrieves all inventory items.
func (s *InventoryService) GetAllItems() ([]models.InventoryItem, error) {
	return s.repo.GetAll()
}

// GetItemByID retrieves a single item by its ID.
func (s *InventoryService) GetItemByID(id string) (*models.InventoryItem, error) {
	return s.repo.GetByID(id)
}

// CreateItem validates the input and creates a new item with a generated
// ID. Status defaults to in_stock and quantity to 1. Buyer fields cannot be
// set at creation; items become sold only through MarkSold.
func (s *InventoryService) CreateItem(input models.ItemInput) (*models.InventoryItem, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, models.WrapValidationError(err)
	}

	item := &models.InventoryItem{
		ID:            uuid.New().String(),
		Title:         input.Title,
		Category:      input.Category,
		SubCategory:   input.SubCategory,
		Condition:     input.Condition,
		PurchasePrice: *input.PurchasePrice,
		SellingPrice:  *input.SellingPrice,
		Quantity:      1,
		Weight:        input.Weight,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		Tags:          input.Tags,
		Status:        models.StatusInStock,
		CreatedAt:     time.Now(),
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Status != "" {
		item.Status = input.Status
	}
	if input.IsGiveaway != nil {
		item.IsGiveaway = *input.IsGiveaway
	}

	// Range checks on the assembled record (quantity >= 1 in particular;
	// an explicit zero slips past omitempty on the input struct).
	if err := s.validate.Struct(item); err != nil {
		return nil, models.WrapValidationError(err)
	}

	if err := s.repo.Create(item); err != nil {
		return nil, err
	}

	s.publish("item.created", item)
	return item, nil
}

// UpdateItem merges the non-nil fields of update into the stored item.
// Status and buyer fields are rejected here: the sold-field invariant is
// owned by MarkSold/MarkUnsold, and letting the generic path write them
// would allow a sold item without a buyer.
func (s *InventoryService) UpdateItem(id string, update models.ItemUpdate) (*models.InventoryItem, error) {
	if update.Status != nil || update.BuyerName != nil || update.BuyerEmail != nil || update.SoldDate != nil {
		return nil, models.NewValidationError("status", "lifecycle fields cannot be updated directly; use the sold/unsold endpoints")
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		item.Title = *update.Title
	}
	if update.Category != nil {
		item.Category = *update.Category
	}
	if update.SubCategory != nil {
		item.SubCategory = *update.SubCategory
	}
	if update.Condition != nil {
		item.Condition = *update.Condition
	}
	if update.PurchasePrice != nil {
		item.PurchasePrice = *update.PurchasePrice
	}
	if update.SellingPrice != nil {
		item.SellingPrice = *update.SellingPrice
	}
	if update.Quantity != nil {
		item.Quantity = *update.Quantity
	}
	if update.Weight != nil {
		item.Weight = update.Weight
	}
	if update.Description != nil {
		item.Description = *update.Description
	}
	if update.ImageURL != nil {
		item.ImageURL = *update.ImageURL
	}
	if update.Tags != nil {
		item.Tags = *update.Tags
	}
	if update.IsGiveaway != nil {
		item.IsGiveaway = *update.IsGiveaway
	}

	if err := s.validate.Struct(item); err != nil {
		return nil, models.WrapValidationError(err)
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an item. Deletion is immediate and final; any shipping
// progress recorded for the item is pruned with it.
func (s *InventoryService) DeleteItem(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if err := s.progress.Delete(id); err != nil {
		log.Printf("Warning: failed to prune shipping progress for item %s: %v", id, err)
	}
	s.publish("item.deleted", &models.InventoryItem{ID: id})
	return nil
}

// MarkSold transitions an item to sold, stamping the sale date and
// recording the buyer. Both buyer fields are required.
func (s *InventoryService) MarkSold(id, buyerName, buyerEmail string) (*models.InventoryItem, error) {
	fields := make(map[string]string)
	if buyerName == "" {
		fields["buyerName"] = "buyerName is required"
	}
	if buyerEmail == "" {
		fields["buyerEmail"] = "buyerEmail is required"
	}
	if len(fields) > 0 {
		return nil, &models.ValidationError{Fields: fields}
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item.Status = models.StatusSold
	item.BuyerName = buyerName
	item.BuyerEmail = buyerEmail
	item.SoldDate = &now

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	s.publish("item.sold", item)
	return item, nil
}

// MarkUnsold reverses MarkSold: the item returns to in_stock and the buyer
// fields, sale date and shipping progress are cleared.
func (s *InventoryService) MarkUnsold(id string) (*models.InventoryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	item.Status = models.StatusInStock
	item.BuyerName = ""
	item.BuyerEmail = ""
	item.SoldDate = nil

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}

	if err := s.progress.Delete(id); err != nil {
		log.Printf("Warning: failed to prune shipping progress for item %s: %v", id, err)
	}

	s.publish("item.unsold", item)
	return item, nil
}

func (s *InventoryService) publish(event string, item *models.InventoryItem) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"itemID": item.ID,
		"title":  item.Title,
		"status": item.Status,
	}
	if err := s.events.PublishItemEvent(event, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for item %s: %v", event, item.ID, err)
	}
}
