package handlers

import (
	"net/http"

	"github.com/davidmoltin/command-center/internal/grocery"
	"github.com/davidmoltin/command-center/internal/models"
	"github.com/davidmoltin/command-center/internal/session"
	"github.com/davidmoltin/command-center/pkg/logger"
	"github.com/davidmoltin/command-center/pkg/metrics"
	"github.com/davidmoltin/command-center/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles a session's grocery cart
type CartHandler struct {
	logger    *logger.Logger
	store     *session.Store
	inventory *grocery.Inventory
	metrics   *metrics.Metrics
}

// NewCartHandler creates a new cart handler
func NewCartHandler(log *logger.Logger, store *session.Store, inventory *grocery.Inventory, m *metrics.Metrics) *CartHandler {
	return &CartHandler{
		logger:    log,
		store:     store,
		inventory: inventory,
		metrics:   m,
	}
}

// AddItemRequest adds either a pantry item by id or a free-form item
type AddItemRequest struct {
	InventoryID string  `json:"inventory_id" validate:"required_without=Name"`
	Name        string  `json:"name" validate:"required_without=InventoryID"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gte=0"`
	Icon        string  `json:"icon"`
}

// UpdateItemRequest changes a line's quantity by delta
type UpdateItemRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// AddItemResponse is the affected line plus the updated cart
type AddItemResponse struct {
	Item models.CartItem    `json:"item"`
	Cart models.CartSummary `json:"cart"`
}

// Get handles GET /api/v1/sessions/{id}/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, s.Cart().Summary())
}

// AddItem handles POST /api/v1/sessions/{id}/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req AddItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	item := models.CartItem{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Icon:     req.Icon,
	}
	if req.InventoryID != "" {
		var err error
		if item, err = h.inventory.CartItem(req.InventoryID); err != nil {
			respondDomainError(w, h.logger, err)
			return
		}
	}

	line := s.Cart().Add(item)
	h.count("add")
	respondJSON(w, http.StatusCreated, AddItemResponse{Item: line, Cart: s.Cart().Summary()})
}

// UpdateItem handles PATCH /api/v1/sessions/{id}/cart/items/{itemID}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	var req UpdateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validator.Validate(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Cart().UpdateQuantity(chi.URLParam(r, "itemID"), req.Delta); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}
	h.count("update")
	respondJSON(w, http.StatusOK, s.Cart().Summary())
}

// RemoveItem handles DELETE /api/v1/sessions/{id}/cart/items/{itemID}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	s, ok := lookupSession(w, r, h.store)
	if !ok {
		return
	}

	s.Cart().Remove(chi.URLParam(r, "itemID"))
	h.count("remove")
	respondJSON(w, http.StatusOK, s.Cart().Summary())
}

func (h *CartHandler) count(operation string) {
	if h.metrics != nil {
		h.metrics.CartOperations.WithLabelValues(operation).Inc()
	}
}
