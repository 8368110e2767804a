package handlers

import (
	"log"

	"whatstock/internal/services"

	"github.com/gofiber/fiber/v2"
)

// exportFilename is the deterministic name of the downloadable CSV.
const exportFilename = "whatstock-whatnot-export.csv"

// ExportHandler handles HTTP requests for the Whatnot CSV export.
type ExportHandler struct {
	service *services.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(service *services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// RegisterRoutes registers the export route with the Fiber app.
func (h *ExportHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/export", h.HandleExport)
}

// ExportRequest represents the request body for a CSV export. An absent or
// empty ID list exports the whole inventory.
type ExportRequest struct {
	IDs []string `json:"ids"`
}

// HandleExport produces the CSV artifact as a file download.
func (h *ExportHandler) HandleExport(c *fiber.Ctx) error {
	var req ExportRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			log.Printf("Error parsing export body: %v", err)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid request body",
				"error":   err.Error(),
			})
		}
	}

	csv, err := h.service.ExportCSV(req.IDs)
	if err != nil {
		log.Printf("Error exporting CSV: %v", err)
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+exportFilename+`"`)
	return c.Send(csv)
}
