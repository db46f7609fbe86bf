package interfaces

import (
	"bransfer_gateway/internal/domain/entities"
	"context"
	"errors"
)

var (
	// ErrDuplicateOrder is returned by Create when the order id is taken.
	ErrDuplicateOrder = errors.New("order already stored")
	// ErrUnknownOrder is returned by writes that target a missing order.
	ErrUnknownOrder = errors.New("order not stored")
)

// IOrderStore abstracts the host order store.
//
// Get returns a zero Order (empty ID) when no order matches; callers treat
// that as "not found". UpdateStatus appends note to the order notes when
// note is not empty. SetMeta writes all given keys in a single update.
// SetStatusAndMeta applies a status, meta keys and an optional note as one
// write, so either all of them are stored or none is.
// PaymentComplete moves an unpaid order to processing and records the
// transaction id and paid date; it is a no-op for paid orders.
type IOrderStore interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Get(ctx context.Context, id string) (entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, note string) error
	SetMeta(ctx context.Context, id string, meta map[string]string) error
	SetStatusAndMeta(ctx context.Context, id string, status entities.OrderStatus, meta map[string]string, note string) error
	GetMeta(ctx context.Context, id string, key string) (string, error)
	AddNote(ctx context.Context, id string, note string) error
	PaymentComplete(ctx context.Context, id string, transactionID string) error
}
