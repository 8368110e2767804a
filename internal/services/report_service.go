package services

import (
	"math"

	"whatstock/internal/models"
	"whatstock/internal/repositories"
)

// ReportService computes the derived views: dashboard aggregates and the
// order projection. It only reads the item store; nothing here mutates
// inventory state.
type ReportService struct {
	repo     repositories.ItemRepository
	progress repositories.ProgressRepository
}

// NewReportService creates a new ReportService.
func NewReportService(repo repositories.ItemRepository, progress repositories.ProgressRepository) *ReportService {
	return &ReportService{
		repo:     repo,
		progress: progress,
	}
}

// Stats computes the dashboard aggregates over the current inventory
// snapshot. The profit margin is the rounded mean markup percentage over
// items with a positive purchase price; when no item qualifies it is 0.
func (s *ReportService) Stats() (*models.InventoryStats, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	stats := &models.InventoryStats{}
	var marginSum float64
	var marginCount int

	for _, item := range items {
		stats.TotalItems += item.Quantity
		stats.TotalValue += item.SellingPrice * float64(item.Quantity)
		if item.Status == models.StatusInStock {
			stats.InStockCount += item.Quantity
		}
		if item.PurchasePrice > 0 {
			marginSum += (item.SellingPrice - item.PurchasePrice) / item.PurchasePrice * 100
			marginCount++
		}
	}

	if marginCount > 0 {
		stats.ProfitMargin = int(math.Round(marginSum / float64(marginCount)))
	}
	return stats, nil
}

// Orders projects every sold item into an order. Orders are computed on
// demand and never stored; shipping progress overlays the computed status.
func (s *ReportService) Orders() ([]models.Order, error) {
	items, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0)
	for _, item := range items {
		if item.Status != models.StatusSold {
			continue
		}
		orders = append(orders, s.projectOrder(item))
	}
	return orders, nil
}

// OrderStats computes the aggregates shown above the order history.
func (s *ReportService) OrderStats() (*models.OrderStats, error) {
	orders, err := s.Orders()
	if err != nil {
		return nil, err
	}

	stats := &models.OrderStats{TotalOrders: len(orders)}
	for _, order := range orders {
		stats.TotalRevenue += order.SalePrice
		stats.TotalProfit += order.Profit
	}
	if len(orders) > 0 {
		stats.AvgProfit = stats.TotalProfit / float64(len(orders))
	}
	return stats, nil
}

// GetProgress returns the shipping progress for an order. Only sold items
// have orders; anything else is not found.
func (s *ReportService) GetProgress(id string) (*models.ShippingProgress, error) {
	if err := s.requireSold(id); err != nil {
		return nil, err
	}
	progress, err := s.progress.Get(id)
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// SetProgress records the shipping progress for an order.
func (s *ReportService) SetProgress(id string, progress models.ShippingProgress) error {
	if err := s.requireSold(id); err != nil {
		return err
	}
	return s.progress.Set(id, progress)
}

func (s *ReportService) requireSold(id string) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item.Status != models.StatusSold {
		return models.ErrItemNotFound
	}
	return nil
}

func (s *ReportService) projectOrder(item models.InventoryItem) models.Order {
	buyer := item.BuyerEmail
	if buyer == "" {
		buyer = item.BuyerName
	}
	if buyer == "" {
		buyer = "Unknown buyer"
	}

	saleDate := "Pending"
	status := models.OrderStatusPending
	if item.SoldDate != nil {
		saleDate = item.SoldDate.Format("2006-01-02")
		status = models.OrderStatusCompleted
	}

	// Progress lookup never fails for the in-memory store; a missing entry
	// is the all-false default.
	if progress, err := s.progress.Get(item.ID); err == nil && progress.Shipped {
		status = models.OrderStatusShipped
	}

	return models.Order{
		ID:            item.ID,
		ItemTitle:     item.Title,
		Buyer:         buyer,
		SaleDate:      saleDate,
		PurchasePrice: item.PurchasePrice,
		SalePrice:     item.SellingPrice,
		Profit:        item.SellingPrice - item.PurchasePrice,
		Status:        status,
	}
}
