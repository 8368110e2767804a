package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"whatstock/internal/models"
	"whatstock/internal/repositories"
)

// exportHeader is the fixed column set of the Whatnot bulk-listing import.
var exportHeader = []string{
	"Category",
	"Sub Category",
	"Title",
	"Description",
	"Quantity",
	"Type",
	"Price",
	"Shipping Profile",
	"Condition",
	"Image URLs",
}

// ExportService maps inventory items to a Whatnot-compatible CSV table.
type ExportService struct {
	repo repositories.ItemRepository
}

// NewExportService creates a new ExportService.
func NewExportService(repo repositories.ItemRepository) *ExportService {
	return &ExportService{
		repo: repo,
	}
}

// ExportCSV produces the CSV table for the given item IDs. A nil or empty
// ID list exports the whole inventory; unknown IDs are skipped. The table
// is materialized as a single blob for download. Exporting zero eligible
// items fails with ErrExportEmpty.
func (s *ExportService) ExportCSV(ids []string) ([]byte, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load items for export: %w", err)
	}

	if len(ids) > 0 {
		selected := make(map[string]bool, len(ids))
		for _, id := range ids {
			selected[id] = true
		}
		subset := make([]models.InventoryItem, 0, len(ids))
		for _, item := range items {
			if selected[item.ID] {
				subset = append(subset, item)
			}
		}
		items = subset
	}

	if len(items) == 0 {
		return nil, models.ErrExportEmpty
	}

	var sb strings.Builder
	writeRow(&sb, exportHeader)
	for _, item := range items {
		sb.WriteByte('\n')
		writeRow(&sb, exportRow(item))
	}
	return []byte(sb.String()), nil
}

// exportRow maps one item to the Whatnot column order.
func exportRow(item models.InventoryItem) []string {
	listingType := "Buy It Now"
	if item.IsGiveaway {
		listingType = "Giveaway"
	}

	shippingProfile := "Default"
	if item.Weight != nil {
		shippingProfile = formatDecimal(*item.Weight) + " lbs"
	}

	quantity := "1"
	if item.Quantity >= 1 {
		quantity = strconv.Itoa(item.Quantity)
	}

	return []string{
		item.Category,
		item.SubCategory,
		item.Title,
		item.Description,
		quantity,
		listingType,
		formatDecimal(item.SellingPrice),
		shippingProfile,
		item.Condition,
		item.ImageURL,
	}
}

// writeRow appends one quoted-CSV row: every field double-quote enclosed,
// internal quotes escaped by doubling.
func writeRow(sb *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(field, `"`, `""`))
		sb.WriteByte('"')
	}
}

// formatDecimal renders a price or weight as a plain decimal string, empty
// when the value is not finite.
func formatDecimal(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
