package services_test

import (
	"testing"
	"time"

	"whatstock/internal/models"
	"whatstock/internal/repositories"
	"whatstock/internal/services"

	"github.com/stretchr/testify/assert"
)

func newReportFixture() (*services.ReportService, *services.InventoryService, *repositories.MemoryItemRepository, *repositories.MemoryProgressRepository) {
	itemRepo := repositories.NewMemoryItemRepository()
	progressRepo := repositories.NewMemoryProgressRepository()
	report := services.NewReportService(itemRepo, progressRepo)
	inventory := services.NewInventoryService(itemRepo, progressRepo, nil)
	return report, inventory, itemRepo, progressRepo
}

func TestReportService_Stats_EmptyStore(t *testing.T) {
	report, _, _, _ := newReportFixture()

	stats, err := report.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0.0, stats.TotalValue)
	assert.Equal(t, 0, stats.InStockCount)
	assert.Equal(t, 0, stats.ProfitMargin)
}

func TestReportService_Stats(t *testing.T) {
	report, _, itemRepo, _ := newReportFixture()

	items := []models.InventoryItem{
		{ID: "a", Title: "Card", Category: "Trading Cards", Condition: "Near Mint",
			PurchasePrice: 10, SellingPrice: 20, Quantity: 2, Status: models.StatusInStock},
		{ID: "b", Title: "Funko", Category: "Collectibles", Condition: "Mint",
			PurchasePrice: 100, SellingPrice: 150, Quantity: 1, Status: models.StatusSold},
		// Zero purchase price is excluded from the margin mean.
		{ID: "c", Title: "Freebie", Category: "Misc", Condition: "Good",
			PurchasePrice: 0, SellingPrice: 5, Quantity: 3, Status: models.StatusDraft},
	}
	for i := range items {
		assert.NoError(t, itemRepo.Create(&items[i]))
	}

	stats, err := report.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 6, stats.TotalItems)                 // 2 + 1 + 3
	assert.Equal(t, 20.0*2+150+5*3, stats.TotalValue)    // sellingPrice x quantity
	assert.Equal(t, 2, stats.InStockCount)               // only item a
	assert.Equal(t, 75, stats.ProfitMargin)              // mean(100%, 50%)
}

func TestReportService_OrderProjection(t *testing.T) {
	report, inventory, _, _ := newReportFixture()

	item, err := inventory.CreateItem(models.ItemInput{
		Title:         "Vintage Pokemon Card",
		Category:      "Trading Cards",
		Condition:     "Near Mint",
		PurchasePrice: floatPtr(10),
		SellingPrice:  floatPtr(20),
	})
	assert.NoError(t, err)

	// No sold items yet: no orders, margin already 100%.
	orders, err := report.Orders()
	assert.NoError(t, err)
	assert.Empty(t, orders)

	stats, err := report.Stats()
	assert.NoError(t, err)
	assert.Equal(t, 100, stats.ProfitMargin)

	_, err = inventory.MarkSold(item.ID, "John Doe", "a@b.com")
	assert.NoError(t, err)

	orders, err = report.Orders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	order := orders[0]
	assert.Equal(t, item.ID, order.ID)
	assert.Equal(t, "Vintage Pokemon Card", order.ItemTitle)
	assert.Equal(t, "a@b.com", order.Buyer) // email wins over name
	assert.Equal(t, 10.0, order.Profit)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), order.SaleDate)

	orderStats, err := report.OrderStats()
	assert.NoError(t, err)
	assert.Equal(t, 1, orderStats.TotalOrders)
	assert.Equal(t, 20.0, orderStats.TotalRevenue)
	assert.Equal(t, 10.0, orderStats.TotalProfit)
	assert.Equal(t, 10.0, orderStats.AvgProfit)
}

func TestReportService_OrderProjection_Fallbacks(t *testing.T) {
	report, _, itemRepo, _ := newReportFixture()

	// A sold item with no buyer and no sale date (stored out-of-band) still
	// projects, with the documented fallbacks.
	assert.NoError(t, itemRepo.Create(&models.InventoryItem{
		ID: "x", Title: "Mystery", Category: "Misc", Condition: "Good",
		PurchasePrice: 1, SellingPrice: 2, Quantity: 1, Status: models.StatusSold,
	}))

	orders, err := report.Orders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "Unknown buyer", orders[0].Buyer)
	assert.Equal(t, "Pending", orders[0].SaleDate)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
}

func TestReportService_ShippingProgress(t *testing.T) {
	report, inventory, _, _ := newReportFixture()

	item, err := inventory.CreateItem(models.ItemInput{
		Title:         "Funko Pop",
		Category:      "Collectibles",
		Condition:     "Mint",
		PurchasePrice: floatPtr(45),
		SellingPrice:  floatPtr(89.99),
	})
	assert.NoError(t, err)

	// Progress is only addressable for sold items.
	_, err = report.GetProgress(item.ID)
	assert.ErrorIs(t, err, models.ErrItemNotFound)
	err = report.SetProgress(item.ID, models.ShippingProgress{Packed: true})
	assert.ErrorIs(t, err, models.ErrItemNotFound)

	_, err = inventory.MarkSold(item.ID, "Jane", "jane@example.com")
	assert.NoError(t, err)

	// Defaults to all-false.
	progress, err := report.GetProgress(item.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.ShippingProgress{}, *progress)

	// shipped = true overrides the computed order status.
	err = report.SetProgress(item.ID, models.ShippingProgress{PrintedLabel: true, Packed: true, Shipped: true})
	assert.NoError(t, err)

	orders, err := report.Orders()
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, models.OrderStatusShipped, orders[0].Status)
}
