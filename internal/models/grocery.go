package models

// CartItem is one line of the shopping cart
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Icon     string  `json:"icon,omitempty"`
}

// Freshness grades perishable inventory
type Freshness string

const (
	FreshnessFresh    Freshness = "fresh"
	FreshnessGood     Freshness = "good"
	FreshnessExpiring Freshness = "expiring"
)

// InventoryItem is a household pantry item tracked by the grocery dashboard
type InventoryItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	StockLevel int       `json:"stock_level"`
	Freshness  Freshness `json:"freshness"`
	ExpiryDays int       `json:"expiry_days"`
	Price      float64   `json:"price"`
	Icon       string    `json:"icon,omitempty"`
}

// CartSummary is the cart with its computed totals
type CartSummary struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalCost  float64    `json:"total_cost"`
}
