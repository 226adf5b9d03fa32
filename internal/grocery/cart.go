// Package grocery holds the household pantry inventory and the shopping cart.
package grocery

import (
	"errors"
	"sync"

	"github.com/davidmoltin/command-center/internal/models"
	"github.com/google/uuid"
)

// ErrItemNotFound is returned when a cart line or inventory item does not exist
var ErrItemNotFound = errors.New("item not found")

// Cart is an in-memory shopping cart. Lines are merged by item name.
type Cart struct {
	mu    sync.RWMutex
	items []models.CartItem
	newID func() string
}

// NewCart creates an empty cart. A nil newID uses random uuids for line ids.
func NewCart(newID func() string) *Cart {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Cart{
		items: []models.CartItem{},
		newID: newID,
	}
}

// Add puts one unit of item in the cart. A line with the same name is incremented,
// otherwise a new line with quantity 1 and a fresh id is appended.
func (c *Cart) Add(item models.CartItem) models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Name == item.Name {
			c.items[i].Quantity++
			return c.items[i]
		}
	}

	item.ID = c.newID()
	item.Quantity = 1
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity adjusts a line by delta. Quantities never go below zero and a
// line reaching zero is removed.
func (c *Cart) UpdateQuantity(id string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		qty := max(c.items[i].Quantity+delta, 0)
		if qty == 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
		c.items[i].Quantity = qty
		return nil
	}
	return ErrItemNotFound
}

// Remove deletes a line. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the current lines
func (c *Cart) Items() []models.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.CartItem{}, c.items...)
}

// TotalItems sums line quantities
func (c *Cart) TotalItems() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalItems()
}

// TotalCost sums price times quantity over all lines
func (c *Cart) TotalCost() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalCost()
}

// Summary returns the lines with their totals, all read from the same state
func (c *Cart) Summary() models.CartSummary {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return models.CartSummary{
		Items:      append([]models.CartItem{}, c.items...),
		TotalItems: c.totalItems(),
		TotalCost:  c.totalCost(),
	}
}

// totalItems and totalCost expect c.mu to be held

func (c *Cart) totalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

func (c *Cart) totalCost() float64 {
	total := 0.0
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
