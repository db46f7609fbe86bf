package interfaces

import (
	"bransfer_gateway/internal/domain/entities"
	"context"
	"errors"
	"fmt"
)

// ErrGatewayTransport wraps network and timeout failures of the outbound call.
var ErrGatewayTransport = errors.New("payment gateway transport error")

// UnexpectedStatusError is returned when the provider answers with a
// status other than 200.
type UnexpectedStatusError struct {
	Code int
	Body string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected payment gateway status: %d", e.Code)
}

// IPaymentGateway abstracts the crypto payment provider API.
//
// CreatePayment performs one blocking request and never retries.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error)
}
