package interfaces

import "context"

// INotifier delivers alerts to the person handling orders.
type INotifier interface {
	Send(ctx context.Context, subject string, body string) error
}
