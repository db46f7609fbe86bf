package response

import (
	"bransfer_gateway/internal/domain/entities"
	"time"
)

type OrderNoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Key           string              `json:"key"`
	Status        string              `json:"status"`
	Total         string              `json:"total"`
	Currency      string              `json:"currency"`
	PaymentMethod string              `json:"payment_method"`
	CartID        string              `json:"cart_id,omitempty"`
	TransactionID string              `json:"transaction_id,omitempty"`
	PaymentID     string              `json:"payment_id,omitempty"`
	PaymentStatus string              `json:"payment_status,omitempty"`
	PaidAt        *time.Time          `json:"paid_at,omitempty"`
	Meta          map[string]string   `json:"meta"`
	Notes         []OrderNoteResponse `json:"notes"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	res := OrderResponse{
		ID:            o.ID,
		Key:           o.Key,
		Status:        string(o.Status),
		Total:         entities.FormatAmount(o.Total),
		Currency:      o.Currency,
		PaymentMethod: o.PaymentMethod,
		CartID:        o.CartID,
		TransactionID: o.TransactionID,
		PaymentID:     o.MetaValue(entities.MetaPaymentID),
		PaymentStatus: o.MetaValue(entities.MetaPaymentStatus),
		PaidAt:        o.PaidAt,
		Meta:          o.Meta,
		Notes:         make([]OrderNoteResponse, 0, len(o.Notes)),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if res.Meta == nil {
		res.Meta = map[string]string{}
	}
	for _, n := range o.Notes {
		res.Notes = append(res.Notes, OrderNoteResponse{ID: n.ID, Content: n.Content, CreatedAt: n.CreatedAt})
	}
	return res
}

// OrderReceivedResponse carries the thank-you text for the order-received page.
type OrderReceivedResponse struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
