package handlers

import (
	"log"

	"whatstock/internal/models"
	"whatstock/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles HTTP requests for the derived views: dashboard
// stats, order history and shipping progress.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the reporting routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleStats)

	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Get("/stats", h.HandleOrderStats)
	orderRoutes.Get("/:id/progress", h.HandleGetProgress)
	orderRoutes.Patch("/:id/progress", h.HandleSetProgress)
}

// HandleStats returns the dashboard aggregates.
func (h *ReportHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing inventory stats: %v", err)
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleListOrders returns the order projection of all sold items.
func (h *ReportHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.Orders()
	if err != nil {
		log.Printf("Error computing orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleOrderStats returns the order history aggregates.
func (h *ReportHandler) HandleOrderStats(c *fiber.Ctx) error {
	stats, err := h.service.OrderStats()
	if err != nil {
		log.Printf("Error computing order stats: %v", err)
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleGetProgress returns the shipping progress for an order.
func (h *ReportHandler) HandleGetProgress(c *fiber.Ctx) error {
	orderID := c.Params("id")
	progress, err := h.service.GetProgress(orderID)
	if err != nil {
		log.Printf("Error getting progress for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(progress)
}

// HandleSetProgress records the shipping progress for an order.
func (h *ReportHandler) HandleSetProgress(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var progress models.ShippingProgress
	if err := c.BodyParser(&progress); err != nil {
		log.Printf("Error parsing progress body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SetProgress(orderID, progress); err != nil {
		log.Printf("Error setting progress for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(progress)
}
