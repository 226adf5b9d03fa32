package grocery

import (
	"github.com/davidmoltin/command-center/internal/models"
)

// Restock thresholds for suggestions
const (
	LowStockLevel  = 30
	ExpiringWithin = 2
)

// Inventory is a read-only view of the household pantry
type Inventory struct {
	items []models.InventoryItem
}

// NewInventory creates an inventory over the given items
func NewInventory(items []models.InventoryItem) *Inventory {
	return &Inventory{items: append([]models.InventoryItem(nil), items...)}
}

// Items returns every item in pantry order
func (inv *Inventory) Items() []models.InventoryItem {
	return append([]models.InventoryItem{}, inv.items...)
}

// Categories returns the distinct categories in order of first appearance
func (inv *Inventory) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range inv.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}

// ByCategory groups items by category
func (inv *Inventory) ByCategory() map[string][]models.InventoryItem {
	out := make(map[string][]models.InventoryItem)
	for _, it := range inv.items {
		out[it.Category] = append(out[it.Category], it)
	}
	return out
}

// InCategory returns the items of one category. An empty category returns everything.
func (inv *Inventory) InCategory(category string) []models.InventoryItem {
	if category == "" {
		return inv.Items()
	}
	out := []models.InventoryItem{}
	for _, it := range inv.items {
		if it.Category == category {
			out = append(out, it)
		}
	}
	return out
}

// Find looks up an item by id
func (inv *Inventory) Find(id string) (models.InventoryItem, bool) {
	for _, it := range inv.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.InventoryItem{}, false
}

// Suggestions returns items that are running low or about to expire
func (inv *Inventory) Suggestions() []models.InventoryItem {
	out := []models.InventoryItem{}
	for _, it := range inv.items {
		if it.StockLevel < LowStockLevel || it.ExpiryDays <= ExpiringWithin {
			out = append(out, it)
		}
	}
	return out
}

// CartItem converts an inventory item into a cart line candidate
func (inv *Inventory) CartItem(id string) (models.CartItem, error) {
	it, ok := inv.Find(id)
	if !ok {
		return models.CartItem{}, ErrItemNotFound
	}
	return models.CartItem{
		Name:     it.Name,
		Category: it.Category,
		Price:    it.Price,
		Icon:     it.Icon,
	}, nil
}
