package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	internalaws "github.com/shopstack/catalog-api/internal/aws"
	"github.com/shopstack/catalog-api/internal/validation"
)

// createOrder serves POST /orders. The order is recorded with status
// "pending" and never transitioned afterwards. When a publisher is
// configured, an order-created event goes out best-effort: a publish
// failure is logged and does not affect the response, since the persisted
// order is the source of truth.
func (api *API) createOrder(c *gin.Context) {
	var payload validation.OrderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = validation.OrderPayload{}
	}
	if errs := validation.CheckOrder(api.validate, payload); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	ctx := c.Request.Context()
	order, err := api.store.CreateOrder(ctx, payload)
	if err != nil {
		slog.Error("create order", "err", err, "request_id", requestID(c))
		respondFail(c, "Failed to save order")
		return
	}

	if api.publisher != nil {
		msg := internalaws.OrderCreatedMessage{
			OrderID:       order.ID,
			Total:         order.Total,
			ItemCount:     len(order.Items),
			CorrelationID: requestID(c),
		}
		if err := api.publisher.PublishOrderCreated(ctx, msg); err != nil {
			slog.Error("publish order event", "err", err, "order_id", order.ID)
		}
	}

	respondOK(c, "Order created successfully", order)
}
