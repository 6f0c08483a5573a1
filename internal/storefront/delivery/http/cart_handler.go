package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/cart"
	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

type cartResponse struct {
	Lines     []domain.Line `json:"lines"`
	Count     int           `json:"count"`
	LineCount int           `json:"line_count"`
	Total     float64       `json:"total"`
}

func cartSummary(c domain.Cart) cartResponse {
	return cartResponse{
		Lines:     c.Lines(),
		Count:     c.Count(),
		LineCount: c.Len(),
		Total:     c.Total(),
	}
}

// GetCart handles GET /api/cart
func (h *StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	engine := cart.FromContext(r.Context())

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    cartSummary(engine.Snapshot()),
	})
}

// AddItem handles POST /api/cart/items. The body names either a product id
// from the loaded catalog or a full product.
func (h *StorefrontHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID int              `json:"product_id"`
		Product   *catalog.Product `json:"product"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var product catalog.Product
	switch {
	case req.Product != nil:
		product = *req.Product
	case req.ProductID != 0:
		p, ok := h.findProduct(req.ProductID)
		if !ok {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		product = p
	default:
		respondError(w, http.StatusBadRequest, "product or product_id is required")
		return
	}

	engine := cart.FromContext(r.Context())
	if err := engine.AddToCart(r.Context(), product); err != nil {
		h.persistFailed(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Added to cart",
		Data:    cartSummary(engine.Snapshot()),
	})
}

// UpdateItem handles PATCH /api/cart/items/{id}
func (h *StorefrontHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Quantity == nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	engine := cart.FromContext(r.Context())
	if err := engine.UpdateQuantity(r.Context(), id, *req.Quantity); err != nil {
		h.persistFailed(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart updated",
		Data:    cartSummary(engine.Snapshot()),
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *StorefrontHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	engine := cart.FromContext(r.Context())
	if err := engine.RemoveFromCart(r.Context(), id); err != nil {
		h.persistFailed(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Removed from cart",
		Data:    cartSummary(engine.Snapshot()),
	})
}

// ClearCart handles DELETE /api/cart
func (h *StorefrontHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	engine := cart.FromContext(r.Context())
	if err := engine.ClearCart(r.Context()); err != nil {
		h.persistFailed(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
		Data:    cartSummary(engine.Snapshot()),
	})
}

func (h *StorefrontHandler) findProduct(id int) (catalog.Product, bool) {
	for _, p := range h.catalog.Catalog() {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (h *StorefrontHandler) persistFailed(w http.ResponseWriter, r *http.Request, err error) {
	logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Cart mutation not persisted")
	respondError(w, http.StatusInternalServerError, "Failed to save cart")
}

func productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, false
	}
	return id, true
}
