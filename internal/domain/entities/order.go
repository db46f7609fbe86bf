package entities

import "time"

// OrderStatus represents the lifecycle of a store order.
//
// Values follow the host cart naming so that order records can be shared
// with the storefront without translation.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusOnHold     OrderStatus = "on-hold"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
	OrderStatusFailed     OrderStatus = "failed"
)

// IsPaid reports whether the status is one of the paid statuses.
func (s OrderStatus) IsPaid() bool {
	return s == OrderStatusProcessing || s == OrderStatusCompleted
}

// Order metadata keys written by the gateway.
const (
	MetaPaymentID     = "bransfer_payment_id"
	MetaPaymentStatus = "bransfer_payment_status"
)

type OrderNote struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Order is the store order the gateway reads and mutates.
//
// Storage model (DynamoDB):
//   - PK: id (the order number echoed back by the provider as "metadata")
//
// Meta is a small key-value store; the gateway only uses MetaPaymentID
// and MetaPaymentStatus.
type Order struct {
	ID            string            `json:"id"`
	Key           string            `json:"key"`
	Status        OrderStatus       `json:"status"`
	Total         float64           `json:"total"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	CartID        string            `json:"cart_id,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	PaidAt        *time.Time        `json:"paid_at,omitempty"`
	Meta          map[string]string `json:"meta,omitempty"`
	Notes         []OrderNote       `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (o Order) HasStatus(statuses ...OrderStatus) bool {
	for _, s := range statuses {
		if o.Status == s {
			return true
		}
	}
	return false
}

func (o Order) MetaValue(key string) string {
	if o.Meta == nil {
		return ""
	}
	return o.Meta[key]
}
