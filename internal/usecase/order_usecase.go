package usecase

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderTotal  = errors.New("invalid order total")
)

const (
	bransferReceivedText = "Thank you for your payment. Your transaction has been completed, and a receipt for your purchase has been emailed to you. Log into your Bransfer account to view transaction details."
	defaultReceivedText  = "Thank you. Your order has been received."
)

// CreateOrderInput carries the fields the storefront provides at checkout.
type CreateOrderInput struct {
	ID            string
	Total         float64
	Currency      string
	CartID        string
	PaymentMethod string
}

// IOrderUseCase exposes the order operations the storefront needs around
// a gateway checkout.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	OrderReceivedText(ctx context.Context, id string) (string, error)
}

type OrderUseCase struct {
	store    interfaces.IOrderStore
	settings entities.GatewaySettings
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(store interfaces.IOrderStore, settings entities.GatewaySettings) *OrderUseCase {
	return &OrderUseCase{store: store, settings: settings}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.Order, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	total := entities.RoundAmount(in.Total)
	if total <= 0 {
		return entities.Order{}, ErrInvalidOrderTotal
	}

	// One order per order number.
	if existing, err := u.store.Get(ctx, id); err != nil {
		return entities.Order{}, err
	} else if existing.ID != "" {
		return entities.Order{}, ErrOrderAlreadyExists
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = strings.ToUpper(u.settings.StoreCurrency)
	}
	method := strings.TrimSpace(in.PaymentMethod)
	if method == "" {
		method = entities.GatewayID
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:            id,
		Key:           newOrderKey(),
		Status:        entities.OrderStatusPending,
		Total:         total,
		Currency:      currency,
		PaymentMethod: method,
		CartID:        strings.TrimSpace(in.CartID),
		Meta:          map[string]string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.store.Create(ctx, o)
	if errors.Is(err, interfaces.ErrDuplicateOrder) {
		return entities.Order{}, ErrOrderAlreadyExists
	}
	return created, err
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.store.Get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// OrderReceivedText returns the thank-you text shown after checkout.
func (u *OrderUseCase) OrderReceivedText(ctx context.Context, id string) (string, error) {
	o, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if u.settings.IsAvailable() && o.PaymentMethod == entities.GatewayID {
		return bransferReceivedText, nil
	}
	return defaultReceivedText, nil
}

func newOrderKey() string {
	return "wc_order_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:13]
}
