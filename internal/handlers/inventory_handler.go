package handlers

import (
	"errors"
	"log"
	"strings"

	"whatstock/internal/models"
	"whatstock/internal/services"

	"github.com/gofiber/fiber/v2"
)

// InventoryHandler handles HTTP requests for inventory items.
type InventoryHandler struct {
	service *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(service *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		service: service,
	}
}

// RegisterRoutes registers the inventory routes with the Fiber app.
func (h *InventoryHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/inventory")
	itemRoutes.Get("/", h.HandleListItems)
	itemRoutes.Get("/:id", h.HandleGetItem)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Patch("/:id", h.HandleUpdateItem)
	itemRoutes.Delete("/:id", h.HandleDeleteItem)
	itemRoutes.Post("/:id/sold", h.HandleMarkSold)
	itemRoutes.Post("/:id/unsold", h.HandleMarkUnsold)
}

// HandleListItems retrieves all items, optionally narrowed by the q, tags,
// status and category query parameters.
func (h *InventoryHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		log.Printf("Error listing items: %v", err)
		return respondError(c, err)
	}

	filter := services.ItemFilter{
		Query:    c.Query("q"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	if tags := c.Query("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	return c.JSON(services.FilterItems(items, filter))
}

// HandleGetItem retrieves a single item by its ID.
func (h *InventoryHandler) HandleGetItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.GetItemByID(itemID)
	if err != nil {
		log.Printf("Error getting item %s: %v", itemID, err)
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleCreateItem creates a new item.
func (h *InventoryHandler) HandleCreateItem(c *fiber.Ctx) error {
	var input models.ItemInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.CreateItem(input)
	if err != nil {
		log.Printf("Error creating item: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleUpdateItem merges a partial update into an existing item.
func (h *InventoryHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var update models.ItemUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing update item body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.UpdateItem(itemID, update)
	if err != nil {
		log.Printf("Error updating item %s: %v", itemID, err)
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes an item.
func (h *InventoryHandler) HandleDeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if err := h.service.DeleteItem(itemID); err != nil {
		log.Printf("Error deleting item %s: %v", itemID, err)
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkSoldRequest represents the request body for marking an item sold.
type MarkSoldRequest struct {
	BuyerName  string `json:"buyerName"`
	BuyerEmail string `json:"buyerEmail"`
}

// HandleMarkSold transitions an item to sold.
func (h *InventoryHandler) HandleMarkSold(c *fiber.Ctx) error {
	itemID := c.Params("id")
	var req MarkSoldRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing mark sold body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	item, err := h.service.MarkSold(itemID, req.BuyerName, req.BuyerEmail)
	if err != nil {
		log.Printf("Error marking item %s sold: %v", itemID, err)
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleMarkUnsold transitions a sold item back to in stock.
func (h *InventoryHandler) HandleMarkUnsold(c *fiber.Ctx) error {
	itemID := c.Params("id")
	item, err := h.service.MarkUnsold(itemID)
	if err != nil {
		log.Printf("Error marking item %s unsold: %v", itemID, err)
		return respondError(c, err)
	}
	return c.JSON(item)
}

// respondError maps the failure taxonomy to HTTP statuses: validation
// errors to 400, missing items to 404, empty exports to 400, everything
// else to 500.
func respondError(c *fiber.Ctx, err error) error {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	}
	if errors.Is(err, models.ErrItemNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Item not found",
		})
	}
	if errors.Is(err, models.ErrExportEmpty) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "No items to export",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
