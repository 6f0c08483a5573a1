package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/internal/catalog/query"
)

// ListProducts handles GET /api/catalog/products
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.catalog.View(),
	})
}

// GetFacets handles GET /api/catalog/facets
func (h *StorefrontHandler) GetFacets(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.catalog.Facets(),
	})
}

// GetStats handles GET /api/catalog/stats
func (h *StorefrontHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.catalog.Stats(),
	})
}

// GetQuery handles GET /api/catalog/query
func (h *StorefrontHandler) GetQuery(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.catalog.Query(),
	})
}

// SetSearch handles PUT /api/catalog/query/search. The view updates once the
// debounce window passes, so the request is only accepted here.
func (h *StorefrontHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.catalog.SetSearchText(req.Text)

	respondJSON(w, http.StatusAccepted, Response{
		Success: true,
		Message: "Search scheduled",
	})
}

// ToggleCategory handles POST /api/catalog/query/categories/{category}/toggle
func (h *StorefrontHandler) ToggleCategory(w http.ResponseWriter, r *http.Request) {
	h.catalog.ToggleCategory(mux.Vars(r)["category"])
	h.respondView(w)
}

// ToggleBrand handles POST /api/catalog/query/brands/{brand}/toggle
func (h *StorefrontHandler) ToggleBrand(w http.ResponseWriter, r *http.Request) {
	h.catalog.ToggleBrand(mux.Vars(r)["brand"])
	h.respondView(w)
}

// SetPrice handles PUT /api/catalog/query/price. A bound left out of the
// body keeps its current value.
func (h *StorefrontHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	req := h.catalog.Query().Price
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.catalog.SetPriceRange(req.Min, req.Max)
	h.respondView(w)
}

// SetSort handles PUT /api/catalog/query/sort
func (h *StorefrontHandler) SetSort(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Sort query.SortKey `json:"sort"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.catalog.SetSortKey(req.Sort)
	h.respondView(w)
}

// ClearQuery handles DELETE /api/catalog/query
func (h *StorefrontHandler) ClearQuery(w http.ResponseWriter, r *http.Request) {
	h.catalog.ClearAll()
	h.respondView(w)
}

func (h *StorefrontHandler) respondView(w http.ResponseWriter) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"query": h.catalog.Query(),
			"view":  h.catalog.View(),
		},
	})
}
