package interfaces

import "context"

// ICartStore clears the shopping cart that produced an order.
type ICartStore interface {
	Empty(ctx context.Context, cartID string) error
}
