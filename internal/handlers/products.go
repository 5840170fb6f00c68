package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/catalog-api/internal/catalog"
	"github.com/shopstack/catalog-api/internal/query"
	"github.com/shopstack/catalog-api/internal/validation"
)

// listProducts serves GET /products. With an id parameter it returns the
// single product; otherwise it runs the filter pipeline over the catalog.
func (api *API) listProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if idParam := c.Query("id"); idParam != "" {
		id, err := strconv.Atoi(idParam)
		if err != nil {
			respondFail(c, "Product not found")
			return
		}
		product, err := api.store.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				respondFail(c, "Product not found")
				return
			}
			slog.Error("get product", "err", err, "request_id", requestID(c))
			respondServerError(c)
			return
		}
		respondOK(c, "", product)
		return
	}

	products, err := api.store.Products(ctx)
	if err != nil {
		slog.Error("list products", "err", err, "request_id", requestID(c))
		respondServerError(c)
		return
	}

	filtered := query.Apply(products, query.ParseFilter(c.Request.URL.Query()))
	respondList(c, filtered, len(filtered))
}

// createProduct serves POST /products. A malformed body validates as an
// empty payload, so the client gets the full list of required-field
// messages rather than a decode error.
func (api *API) createProduct(c *gin.Context) {
	var payload validation.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = validation.ProductPayload{}
	}
	if errs := validation.CheckProduct(api.validate, payload); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	product, err := api.store.CreateProduct(c.Request.Context(), payload)
	if err != nil {
		slog.Error("create product", "err", err, "request_id", requestID(c))
		respondFail(c, "Failed to save product")
		return
	}
	respondOK(c, "Product created successfully", product)
}

// updateProduct serves PUT /products?id=N. Validation runs before the
// lookup, so a bad payload reports its rule violations even when the id
// does not exist.
func (api *API) updateProduct(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		respondFail(c, "Product ID is required for updates")
		return
	}

	var payload validation.ProductPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = validation.ProductPayload{}
	}
	if errs := validation.CheckProduct(api.validate, payload); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	id, err := strconv.Atoi(idParam)
	if err != nil {
		respondFail(c, "Product not found")
		return
	}

	product, err := api.store.UpdateProduct(c.Request.Context(), id, payload)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondFail(c, "Product not found")
			return
		}
		slog.Error("update product", "err", err, "request_id", requestID(c))
		respondFail(c, "Failed to save product")
		return
	}
	respondOK(c, "Product updated successfully", product)
}

// deleteProduct serves DELETE /products?id=N.
func (api *API) deleteProduct(c *gin.Context) {
	idParam := c.Query("id")
	if idParam == "" {
		respondFail(c, "Product ID is required for deletion")
		return
	}
	id, err := strconv.Atoi(idParam)
	if err != nil {
		respondFail(c, "Product not found")
		return
	}

	if err := api.store.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			respondFail(c, "Product not found")
			return
		}
		slog.Error("delete product", "err", err, "request_id", requestID(c))
		respondFail(c, "Failed to delete product")
		return
	}
	respondOK(c, "Product deleted successfully", nil)
}

// listCategories serves GET /categories. Counts are computed per request.
func (api *API) listCategories(c *gin.Context) {
	categories, err := api.store.Categories(c.Request.Context())
	if err != nil {
		slog.Error("list categories", "err", err, "request_id", requestID(c))
		respondServerError(c)
		return
	}
	respondOK(c, "", categories)
}
