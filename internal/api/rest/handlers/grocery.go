package handlers

import (
	"net/http"

	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/pkg/logger"
)

// GroceryHandler serves the household pantry views
type GroceryHandler struct {
	logger    *logger.Logger
	inventory *grocery.Inventory
}

// NewGroceryHandler creates a new grocery handler
func NewGroceryHandler(log *logger.Logger, inventory *grocery.Inventory) *GroceryHandler {
	return &GroceryHandler{
		logger:    log,
		inventory: inventory,
	}
}

// InventoryResponse is the pantry listing for one category tab
type InventoryResponse struct {
	Categories []string               `json:"categories"`
	Items      []models.InventoryItem `json:"items"`
}

// Inventory handles GET /api/v1/grocery/inventory[?category=]
func (h *GroceryHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	respondJSON(w, http.StatusOK, InventoryResponse{
		Categories: h.inventory.Categories(),
		Items:      h.inventory.InCategory(category),
	})
}

// Suggestions handles GET /api/v1/grocery/suggestions
func (h *GroceryHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items": h.inventory.Suggestions(),
	})
}
