package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopstack/catalog-api/internal/analytics"
	"github.com/shopstack/catalog-api/internal/catalog"
)

func (api *API) collections(c *gin.Context) ([]catalog.Product, []catalog.Order, bool) {
	ctx := c.Request.Context()
	products, err := api.store.Products(ctx)
	if err != nil {
		slog.Error("load products", "err", err, "request_id", requestID(c))
		respondServerError(c)
		return nil, nil, false
	}
	orders, err := api.store.Orders(ctx)
	if err != nil {
		slog.Error("load orders", "err", err, "request_id", requestID(c))
		respondServerError(c)
		return nil, nil, false
	}
	return products, orders, true
}

// getAnalytics serves GET /analytics with the dashboard summary.
func (api *API) getAnalytics(c *gin.Context) {
	products, orders, ok := api.collections(c)
	if !ok {
		return
	}
	respondOK(c, "", analytics.Summarize(products, orders))
}

// getAnalyticsReport serves GET /analytics/report with the extended blocks.
// Optional parameters: top (rating|reviews|price) and limit.
func (api *API) getAnalyticsReport(c *gin.Context) {
	products, orders, ok := api.collections(c)
	if !ok {
		return
	}
	topBy := c.DefaultQuery("top", analytics.TopByRating)
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = 0 // BuildReport applies the default
	}
	respondOK(c, "", analytics.BuildReport(products, orders, topBy, limit))
}
