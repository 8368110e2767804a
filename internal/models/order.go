package models

// Order status values reported by the order projection.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusShipped   = "shipped"
)

// Order is a read-only projection of a sold inventory item into
// sale-reporting shape. Orders are never stored; their identity is the
// source item's ID.
type Order struct {
	ID            string  `json:"id"`
	ItemTitle     string  `json:"itemTitle"`
	Buyer         string  `json:"buyer"`
	SaleDate      string  `json:"saleDate"`
	PurchasePrice float64 `json:"purchasePrice"`
	SalePrice     float64 `json:"salePrice"`
	Profit        float64 `json:"profit"`
	Status        string  `json:"status"`
}

// ShippingProgress tracks per-order fulfilment steps, keyed by the source
// item's ID. All steps default to false.
type ShippingProgress struct {
	PrintedLabel bool `json:"printedLabel"`
	Packed       bool `json:"packed"`
	Shipped      bool `json:"shipped"`
}

// InventoryStats holds the dashboard aggregates.
type InventoryStats struct {
	TotalItems   int     `json:"totalItems"`
	TotalValue   float64 `json:"totalValue"`
	InStockCount int     `json:"inStockCount"`
	ProfitMargin int     `json:"profitMargin"`
}

// OrderStats holds the aggregates shown on the orders page.
type OrderStats struct {
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
	TotalProfit  float64 `json:"totalProfit"`
	AvgProfit    float64 `json:"avgProfit"`
}
