package services_test

import (
	"math"
	"strings"
	"testing"

	"whatstock/internal/models"
	"whatstock/internal/repositories"
	"whatstock/internal/services"

	"github.com/stretchr/testify/assert"
)

const exportHeaderLine = `"Category","Sub Category","Title","Description","Quantity","Type","Price","Shipping Profile","Condition","Image URLs"`

func newExportFixture() (*services.ExportService, *repositories.MemoryItemRepository) {
	itemRepo := repositories.NewMemoryItemRepository()
	return services.NewExportService(itemRepo), itemRepo
}

func TestExportService_SingleGiveawayRow(t *testing.T) {
	service, itemRepo := newExportFixture()

	assert.NoError(t, itemRepo.Create(&models.InventoryItem{
		ID:           "item-1",
		Title:        "X",
		Category:     "Toys",
		Condition:    "Near Mint",
		SellingPrice: 9.5,
		IsGiveaway:   true,
	}))

	csv, err := service.ExportCSV(nil)
	assert.NoError(t, err)

	lines := strings.Split(string(csv), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, exportHeaderLine, lines[0])
	assert.Equal(t, `"Toys","","X","","1","Giveaway","9.5","Default","Near Mint",""`, lines[1])
}

func TestExportService_RowMapping(t *testing.T) {
	service, itemRepo := newExportFixture()

	weight := 2.5
	assert.NoError(t, itemRepo.Create(&models.InventoryItem{
		ID:            "item-1",
		Title:         `12" Vinyl Record`,
		Category:      "Music",
		SubCategory:   "Records",
		Condition:     "Good",
		Description:   "Original pressing",
		PurchasePrice: 10,
		SellingPrice:  49.99,
		Quantity:      3,
		Weight:        &weight,
		ImageURL:      "https://example.com/record.jpg",
	}))

	csv, err := service.ExportCSV(nil)
	assert.NoError(t, err)

	lines := strings.Split(string(csv), "\n")
	assert.Len(t, lines, 2)
	// Internal quotes are escaped by doubling; weight feeds the shipping
	// profile; non-giveaways list as Buy It Now.
	assert.Equal(t,
		`"Music","Records","12"" Vinyl Record","Original pressing","3","Buy It Now","49.99","2.5 lbs","Good","https://example.com/record.jpg"`,
		lines[1])
}

func TestExportService_NonFinitePrice(t *testing.T) {
	service, itemRepo := newExportFixture()

	// A NaN price cannot be rendered; the cell is left empty.
	assert.NoError(t, itemRepo.Create(&models.InventoryItem{
		ID:           "item-1",
		Title:        "Mispriced",
		Category:     "Misc",
		Condition:    "Good",
		SellingPrice: math.NaN(),
		Quantity:     1,
	}))

	csv, err := service.ExportCSV(nil)
	assert.NoError(t, err)

	lines := strings.Split(string(csv), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"Misc","","Mispriced","","1","Buy It Now","","Default","Good",""`, lines[1])
}

func TestExportService_Subset(t *testing.T) {
	service, itemRepo := newExportFixture()

	for _, id := range []string{"a", "b", "c"} {
		assert.NoError(t, itemRepo.Create(&models.InventoryItem{
			ID: id, Title: "Item " + id, Category: "Misc", Condition: "Good",
			SellingPrice: 5, Quantity: 1,
		}))
	}

	// Unknown IDs are skipped, known ones exported.
	csv, err := service.ExportCSV([]string{"a", "missing", "c"})
	assert.NoError(t, err)

	lines := strings.Split(string(csv), "\n")
	assert.Len(t, lines, 3)
	assert.NotContains(t, string(csv), "Item b")

	// A selection matching nothing is an empty export.
	_, err = service.ExportCSV([]string{"missing"})
	assert.ErrorIs(t, err, models.ErrExportEmpty)
}

func TestExportService_EmptyStore(t *testing.T) {
	service, _ := newExportFixture()

	_, err := service.ExportCSV(nil)
	assert.ErrorIs(t, err, models.ErrExportEmpty)
}
