// Package handlers exposes the HTTP API over the catalog store.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	internalaws "github.com/shopstack/catalog-api/internal/aws"
	"github.com/shopstack/catalog-api/internal/catalog"
	"github.com/shopstack/catalog-api/internal/validation"
)

// OrderPublisher is the optional order-created event sink.
type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, msg internalaws.OrderCreatedMessage) error
}

// API groups dependencies for the HTTP handlers.
type API struct {
	store     *catalog.Store
	validate  *validatorv10.Validate
	publisher OrderPublisher // nil disables order event publishing
}

// NewAPI wires the handlers to a store and an optional publisher.
func NewAPI(store *catalog.Store, publisher OrderPublisher) *API {
	return &API{
		store:     store,
		validate:  validation.New(),
		publisher: publisher,
	}
}

// Register registers all routes and middleware on the engine.
func Register(r *gin.Engine, api *API) {
	r.Use(WithRecovery(), WithCORS(), WithRequestID())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
	})
	r.NoRoute(api.fallback)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", api.listProducts)
	r.POST("/products", api.createProduct)
	r.PUT("/products", api.updateProduct)
	r.DELETE("/products", api.deleteProduct)
	r.GET("/categories", api.listCategories)
	r.POST("/orders", api.createOrder)
	r.GET("/analytics", api.getAnalytics)
	r.GET("/analytics/report", api.getAnalyticsReport)
}

// fallback mirrors the legacy dispatcher for unmatched paths: GET lists
// products, mutating verbs answer their guidance message, anything else is
// method-not-allowed.
func (api *API) fallback(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodGet:
		api.listProducts(c)
	case http.MethodPost:
		respondFail(c, "Invalid endpoint for POST request")
	case http.MethodPut:
		respondFail(c, "Product ID is required for updates")
	case http.MethodDelete:
		respondFail(c, "Product ID is required for deletion")
	default:
		c.JSON(http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
	}
}
