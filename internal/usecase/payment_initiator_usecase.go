package usecase

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrGatewayUnavailable    = errors.New("bransfer gateway unavailable for this store")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrPaymentMethodMismatch = errors.New("order is not paid with bransfer")
)

const awaitingPaymentNote = "Awaiting Bransfer payment"

// IPaymentInitiatorUseCase opens a provider payment for an order and returns
// the URL the customer must be redirected to.
type IPaymentInitiatorUseCase interface {
	Initiate(ctx context.Context, orderID string) (redirectURL string, err error)
}

type PaymentInitiatorUseCase struct {
	store    interfaces.IOrderStore
	gateway  interfaces.IPaymentGateway
	settings entities.GatewaySettings
	log      interfaces.ILogger
}

var _ IPaymentInitiatorUseCase = (*PaymentInitiatorUseCase)(nil)

func NewPaymentInitiatorUseCase(store interfaces.IOrderStore, gateway interfaces.IPaymentGateway, settings entities.GatewaySettings, log interfaces.ILogger) *PaymentInitiatorUseCase {
	if log == nil {
		log = nopLogger{}
	}
	return &PaymentInitiatorUseCase{store: store, gateway: gateway, settings: settings, log: log}
}

// Initiate leaves the order untouched on every failure. On success it writes
// the payment id and a pending payment status, then puts the order on hold
// until the provider reports back.
func (u *PaymentInitiatorUseCase) Initiate(ctx context.Context, orderID string) (string, error) {
	orderID = strings.TrimSpace(orderID)
	u.log.Infow("[checkout] initiate start", "order_id", orderID)
	if orderID == "" {
		return "", ErrInvalidOrderID
	}
	if !u.settings.IsAvailable() {
		u.log.Warnw("[checkout] gateway unavailable", "order_id", orderID, "enabled", u.settings.Enabled, "currency", u.settings.StoreCurrency)
		return "", ErrGatewayUnavailable
	}
	if u.gateway == nil {
		u.log.Errorw("[checkout] gateway not configured", "order_id", orderID)
		return "", ErrGatewayNotConfigured
	}

	order, err := u.store.Get(ctx, orderID)
	if err != nil {
		u.log.Errorw("[checkout] failed loading order", "order_id", orderID, "err", err)
		return "", fmt.Errorf("load order %s: %w", orderID, err)
	}
	if order.ID == "" {
		return "", ErrOrderNotFound
	}
	if order.PaymentMethod != entities.GatewayID {
		u.log.Warnw("[checkout] order uses another payment method", "order_id", orderID, "payment_method", order.PaymentMethod)
		return "", ErrPaymentMethodMismatch
	}

	req := u.buildPaymentRequest(order)
	u.log.Infow("[checkout] calling payment gateway", "order_id", orderID, "amount", entities.FormatAmount(req.TotalAmount), "currency", req.Currency)
	resp, err := u.gateway.CreatePayment(ctx, req)
	if err != nil {
		u.log.Errorw("[checkout] payment gateway failed", "order_id", orderID, "err", err)
		return "", err
	}

	meta := map[string]string{
		entities.MetaPaymentID:     resp.PaymentID,
		entities.MetaPaymentStatus: entities.PaymentStatusPending,
	}
	if err := u.store.SetStatusAndMeta(ctx, order.ID, entities.OrderStatusOnHold, meta, awaitingPaymentNote); err != nil {
		return "", fmt.Errorf("hold order %s for payment: %w", order.ID, err)
	}
	if err := u.store.AddNote(ctx, order.ID, "Bransfer Payment ID: "+resp.PaymentID); err != nil {
		// The payment is already bound to the order; a missing note is not fatal.
		u.log.Warnw("[checkout] failed adding payment note", "order_id", order.ID, "err", err)
	}

	u.log.Infow("[checkout] initiate success", "order_id", order.ID, "payment_id", resp.PaymentID)
	return resp.RedirectURL, nil
}

func (u *PaymentInitiatorUseCase) buildPaymentRequest(o entities.Order) entities.PaymentRequest {
	return entities.PaymentRequest{
		ApplicationID:      u.settings.ApplicationID,
		TotalAmount:        entities.RoundAmount(o.Total),
		Currency:           strings.ToUpper(u.settings.StoreCurrency),
		SuccessRedirectURL: orderReceivedURL(u.settings.StoreBaseURL, o),
		Metadata:           o.ID,
	}
}

// orderReceivedURL is the storefront page shown after a successful checkout.
func orderReceivedURL(baseURL string, o entities.Order) string {
	base := strings.TrimRight(baseURL, "/")
	return fmt.Sprintf("%s/checkout/order-received/%s/?key=%s", base, url.PathEscape(o.ID), url.QueryEscape(o.Key))
}
