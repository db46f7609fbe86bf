package request

import (
	"errors"
	"strings"
)

var (
	ErrInvalidOrderTotal = errors.New("invalid order total")
)

// CreateOrderRequest is the storefront payload that registers an order
// before checkout.
type CreateOrderRequest struct {
	ID            FlexString `json:"id" binding:"required"`
	Total         float64    `json:"total" binding:"required"`
	Currency      string     `json:"currency"`
	CartID        string     `json:"cart_id"`
	PaymentMethod string     `json:"payment_method"`
}

func (r CreateOrderRequest) ResolveID() string {
	return strings.TrimSpace(string(r.ID))
}

func (r CreateOrderRequest) ResolveTotal() (float64, error) {
	if r.Total <= 0 {
		return 0, ErrInvalidOrderTotal
	}
	return r.Total, nil
}
