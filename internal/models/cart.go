package models

import "github.com/shopspring/decimal"

// CartItem represents one line in a user's cart.
// The price is captured when the line is added; the catalog item is not
// referenced afterwards.
type CartItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Category string          `json:"category"`

	// Quantity is always >= 1 while the line is in the cart.
	Quantity int `json:"quantity"`

	// HasDiscount marks lines that came from a deal redemption.
	HasDiscount bool `json:"has_discount"`

	// DealID is the deal the discounted line was redeemed under.
	DealID string `json:"deal_id,omitempty"`
}

// Order is the snapshot produced by a successful checkout.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []CartItem      `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	PlacedAt  int64           `json:"placed_at"`
}
