package main

// orderEvent is the payload received from the order events queue.
type orderEvent struct {
	OrderID       string  `json:"order_id"`
	Total         float64 `json:"total"`
	ItemCount     int     `json:"item_count"`
	CorrelationID string  `json:"correlation_id,omitempty"`
}
