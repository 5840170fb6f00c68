// Package validation holds request payloads and the rules applied to them.
//
// Every rule violation is collected; the API contract returns the full list
// of messages, never just the first failure.
package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a configured validator.
func New() *validatorv10.Validate {
	return validatorv10.New()
}

// Per-field messages matching the public API contract. Any rule failing on
// the field maps to the same message.
var productMessages = map[string]string{
	"Name":        "Product name is required",
	"Description": "Product description is required",
	"Price":       "Valid price is required",
	"Category":    "Product category is required",
}

var orderMessages = map[string]string{
	"Items": "Order items are required",
	"Total": "Valid order total is required",
}

// CheckProduct validates a product payload and returns every violated rule
// as its contract message. An empty slice means the payload is valid.
func CheckProduct(v *validatorv10.Validate, p ProductPayload) []string {
	return translate(v.Struct(p), productMessages)
}

// CheckOrder validates an order payload, same contract as CheckProduct.
func CheckOrder(v *validatorv10.Validate, o OrderPayload) []string {
	return translate(v.Struct(o), orderMessages)
}

// translate maps validator field errors onto contract messages, preserving
// struct field order and dropping duplicates.
func translate(err error, messages map[string]string) []string {
	if err == nil {
		return nil
	}
	var out []string
	seen := map[string]bool{}
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			msg, ok := messages[fe.StructField()]
			if !ok {
				msg = fe.Error()
			}
			if !seen[msg] {
				seen[msg] = true
				out = append(out, msg)
			}
		}
		return out
	}
	return []string{err.Error()}
}
