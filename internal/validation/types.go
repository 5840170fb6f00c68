package validation

// ProductPayload is the body for POST /products and PUT /products?id=N.
// Optional fields are pointers so update can tell "absent" from "zero":
// absent fields keep the stored value, present fields overwrite it.
type ProductPayload struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         *float64 `json:"price" validate:"required,gt=0"`
	Category      string   `json:"category" validate:"required"`
	OriginalPrice *float64 `json:"originalPrice"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	Image         *string  `json:"image"`
	InStock       *bool    `json:"inStock"`
	Stock         *int     `json:"stock"`
	Featured      *bool    `json:"featured"`
	Badges        []string `json:"badges"`
}

// OrderPayload is the body for POST /orders. Line items are opaque beyond
// "present and is a non-empty list"; the store copies them verbatim.
type OrderPayload struct {
	Items        []map[string]interface{} `json:"items" validate:"required,min=1"`
	Subtotal     float64                  `json:"subtotal"`
	Shipping     float64                  `json:"shipping"`
	Tax          float64                  `json:"tax"`
	Total        *float64                 `json:"total" validate:"required,gt=0"`
	CustomerInfo map[string]interface{}   `json:"customerInfo"`
}
