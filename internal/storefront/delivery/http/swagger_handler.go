package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// GetCart godoc
// @Summary Get the cart
// @Description Lines in insertion order with unit count, line count and total price
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,data=object{lines=array,count=int,line_count=int,total=number}}
// @Router /api/cart [get]
func (h *StorefrontHandler) GetCartDoc() {}

// AddItem godoc
// @Summary Add one unit to the cart
// @Description Adds a catalog product by id, or a full product. Adding a product already in the cart increments its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param request body object{product_id=int,product=object} true "Product reference"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/cart/items [post]
func (h *StorefrontHandler) AddItemDoc() {}

// UpdateItem godoc
// @Summary Set a line quantity
// @Description Sets the absolute quantity; zero or negative removes the line
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body object{quantity=int} true "New quantity"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [patch]
func (h *StorefrontHandler) UpdateItemDoc() {}

// RemoveItem godoc
// @Summary Remove a line
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/cart/items/{id} [delete]
func (h *StorefrontHandler) RemoveItemDoc() {}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Router /api/cart [delete]
func (h *StorefrontHandler) ClearCartDoc() {}

// ListProducts godoc
// @Summary Current catalog view
// @Description Products after search, category, brand and price filters and sorting
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{products=array,matched=int,total=int}}
// @Router /api/catalog/products [get]
func (h *StorefrontHandler) ListProductsDoc() {}

// GetFacets godoc
// @Summary Selectable categories and brands
// @Description Computed over the full catalog, independent of the active filters
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{categories=array,brands=array}}
// @Router /api/catalog/facets [get]
func (h *StorefrontHandler) GetFacetsDoc() {}

// GetStats godoc
// @Summary Catalog statistics
// @Description Product, category, brand and in-stock counts plus the size of the current view
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{products=int,categories=int,brands=int,in_stock=int,matched=int}}
// @Router /api/catalog/stats [get]
func (h *StorefrontHandler) GetStatsDoc() {}

// GetQuery godoc
// @Summary Active query state
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{search=string,categories=array,brands=array,price=object{min=number,max=number},sort=string}}
// @Router /api/catalog/query [get]
func (h *StorefrontHandler) GetQueryDoc() {}

// SetSearch godoc
// @Summary Set search text
// @Description Applied after the debounce window; only the last text in a burst takes effect
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body object{text=string} true "Search text"
// @Success 202 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog/query/search [put]
func (h *StorefrontHandler) SetSearchDoc() {}

// ToggleCategory godoc
// @Summary Toggle a category filter
// @Tags Catalog
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} object{success=bool,data=object{query=object,view=object}}
// @Router /api/catalog/query/categories/{category}/toggle [post]
func (h *StorefrontHandler) ToggleCategoryDoc() {}

// ToggleBrand godoc
// @Summary Toggle a brand filter
// @Tags Catalog
// @Produce json
// @Param brand path string true "Brand"
// @Success 200 {object} object{success=bool,data=object{query=object,view=object}}
// @Router /api/catalog/query/brands/{brand}/toggle [post]
func (h *StorefrontHandler) ToggleBrandDoc() {}

// SetPrice godoc
// @Summary Set the price range
// @Description Inclusive bounds; an inverted range matches nothing
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body object{min=number,max=number} true "Price range"
// @Success 200 {object} object{success=bool,data=object{query=object,view=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog/query/price [put]
func (h *StorefrontHandler) SetPriceDoc() {}

// SetSort godoc
// @Summary Set the sort order
// @Description One of name, price-low, price-high, rating, newest
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body object{sort=string} true "Sort key"
// @Success 200 {object} object{success=bool,data=object{query=object,view=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/catalog/query/sort [put]
func (h *StorefrontHandler) SetSortDoc() {}

// ClearQuery godoc
// @Summary Reset every filter and the sort order
// @Tags Catalog
// @Produce json
// @Success 200 {object} object{success=bool,data=object{query=object,view=object}}
// @Router /api/catalog/query [delete]
func (h *StorefrontHandler) ClearQueryDoc() {}

// Checkout godoc
// @Summary Checkout
// @Description Not offered by this service
// @Tags Checkout
// @Produce json
// @Failure 501 {object} object{success=bool,error=string}
// @Router /api/checkout [post]
func (h *StorefrontHandler) CheckoutDoc() {}
