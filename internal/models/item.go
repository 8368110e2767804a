package models

import "time"

// Item lifecycle states.
const (
	StatusInStock = "in_stock"
	StatusSold    = "sold"
	StatusDraft   = "draft"
)

// InventoryItem represents a unit of resale inventory.
type InventoryItem struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title         string     `json:"title" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	SubCategory   string     `json:"subCategory,omitempty"`
	Condition     string     `json:"condition" validate:"required"`
	PurchasePrice float64    `json:"purchasePrice" validate:"gte=0"`
	SellingPrice  float64    `json:"sellingPrice" validate:"gte=0"`
	Quantity      int        `json:"quantity" validate:"gte=1"`
	Weight        *float64   `json:"weight,omitempty" validate:"omitempty,gte=0"`
	Description   string     `json:"description,omitempty"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Tags          []string   `json:"tags" gorm:"serializer:json"`
	Status        string     `json:"status" validate:"oneof=in_stock sold draft"`
	IsGiveaway    bool       `json:"isGiveaway"`
	BuyerName     string     `json:"buyerName,omitempty"`
	BuyerEmail    string     `json:"buyerEmail,omitempty"`
	SoldDate      *time.Time `json:"soldDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ItemInput carries the caller-supplied fields for creating an item.
// Prices are pointers so a missing field can be told apart from a zero value.
type ItemInput struct {
	Title         string   `json:"title" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	SubCategory   string   `json:"subCategory"`
	Condition     string   `json:"condition" validate:"required"`
	PurchasePrice *float64 `json:"purchasePrice" validate:"required,gte=0"`
	SellingPrice  *float64 `json:"sellingPrice" validate:"required,gte=0"`
	Quantity      *int     `json:"quantity" validate:"omitempty,gte=1"`
	Weight        *float64 `json:"weight" validate:"omitempty,gte=0"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Tags          []string `json:"tags"`
	Status        string   `json:"status" validate:"omitempty,oneof=in_stock draft"`
	IsGiveaway    *bool    `json:"isGiveaway"`
}

// ItemUpdate carries a partial update. Nil fields are left untouched.
// Status and buyer fields are deliberately absent: lifecycle transitions
// go through MarkSold/MarkUnsold only.
type ItemUpdate struct {
	Title         *string   `json:"title"`
	Category      *string   `json:"category"`
	SubCategory   *string   `json:"subCategory"`
	Condition     *string   `json:"condition"`
	PurchasePrice *float64  `json:"purchasePrice"`
	SellingPrice  *float64  `json:"sellingPrice"`
	Quantity      *int      `json:"quantity"`
	Weight        *float64  `json:"weight"`
	Description   *string   `json:"description"`
	ImageURL      *string   `json:"imageUrl"`
	Tags          *[]string `json:"tags"`
	IsGiveaway    *bool     `json:"isGiveaway"`

	// Rejected when set; kept in the shape so the guard can name them.
	Status     *string `json:"status"`
	BuyerName  *string `json:"buyerName"`
	BuyerEmail *string `json:"buyerEmail"`
	SoldDate   *string `json:"soldDate"`
}
