package usecase

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAmountMismatch is the validation failure raised when a notified amount
// differs from the order total. The order is put on hold before it is returned.
var ErrAmountMismatch = errors.New("validation error: bransfer amounts do not match")

// Outcome describes what HandleNotification did with a notification.
type Outcome string

const (
	OutcomeProcessed         Outcome = "processed"
	OutcomeIgnored           Outcome = "ignored"
	OutcomeOrderNotFound     Outcome = "order_not_found"
	OutcomeAlreadyPaid       Outcome = "already_paid"
	OutcomeAmountMismatch    Outcome = "amount_mismatch"
	OutcomePaymentIDMismatch Outcome = "payment_id_mismatch"
	OutcomePartialRefund     Outcome = "partial_refund"
)

// IIPNUseCase drives an order through the payment status state machine
// for one inbound notification.
type IIPNUseCase interface {
	HandleNotification(ctx context.Context, n entities.Notification) (Outcome, error)
}

type IPNUseCase struct {
	store    interfaces.IOrderStore
	carts    interfaces.ICartStore
	notifier interfaces.INotifier
	settings entities.GatewaySettings
	log      interfaces.ILogger
}

var _ IIPNUseCase = (*IPNUseCase)(nil)

func NewIPNUseCase(store interfaces.IOrderStore, carts interfaces.ICartStore, notifier interfaces.INotifier, settings entities.GatewaySettings, log interfaces.ILogger) *IPNUseCase {
	if log == nil {
		log = nopLogger{}
	}
	return &IPNUseCase{store: store, carts: carts, notifier: notifier, settings: settings, log: log}
}

// HandleNotification resolves the order named by the notification and
// applies the status transition. Business rejections (unknown order,
// unknown status, amount or payment id mismatch) are reported through the
// Outcome with a nil error; only store failures return an error.
func (u *IPNUseCase) HandleNotification(ctx context.Context, n entities.Notification) (Outcome, error) {
	ref := strings.TrimSpace(n.OrderReference)
	if ref == "" {
		u.log.Warnw("[ipn] notification without order reference")
		return OutcomeOrderNotFound, nil
	}

	order, err := u.store.Get(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("load order %s: %w", ref, err)
	}
	if order.ID == "" {
		u.log.Warnw("[ipn] order not found", "order_id", ref)
		return OutcomeOrderNotFound, nil
	}

	n.Status = entities.NormalizeNotificationStatus(string(n.Status))
	u.log.Infow("[ipn] found order", "order_id", order.ID, "order_status", order.Status)
	u.log.Infow("[ipn] payment status", "order_id", order.ID, "status", n.Status)

	switch n.Status {
	case entities.NotificationStatusCompleted:
		return u.paymentCompleted(ctx, order, n)
	case entities.NotificationStatusFailed,
		entities.NotificationStatusDenied,
		entities.NotificationStatusExpired,
		entities.NotificationStatusVoided:
		return u.paymentFailed(ctx, order, n)
	case entities.NotificationStatusRefunded:
		return u.paymentRefunded(ctx, order, n)
	case entities.NotificationStatusReversed:
		return u.paymentReversed(ctx, order, n)
	case entities.NotificationStatusCanceledReversal:
		return u.paymentCanceledReversal(ctx, order, n)
	default:
		u.log.Infow("[ipn] ignoring unrecognized status", "order_id", order.ID, "status", n.Status)
		return OutcomeIgnored, nil
	}
}

func (u *IPNUseCase) paymentCompleted(ctx context.Context, order entities.Order, n entities.Notification) (Outcome, error) {
	if order.Status.IsPaid() {
		u.log.Infow("[ipn] aborting, order is already complete", "order_id", order.ID)
		return OutcomeAlreadyPaid, nil
	}

	if err := u.validateAmount(ctx, order, n.Amount); err != nil {
		if errors.Is(err, ErrAmountMismatch) {
			return OutcomeAmountMismatch, nil
		}
		return "", err
	}

	// The stored id is read before any write so a notification can never
	// rebind the order to its own payment id.
	storedPaymentID, err := u.store.GetMeta(ctx, order.ID, entities.MetaPaymentID)
	if err != nil {
		return "", fmt.Errorf("read payment id of order %s: %w", order.ID, err)
	}
	if err := u.savePaymentStatus(ctx, order.ID, n.Status); err != nil {
		return "", err
	}

	if order.HasStatus(entities.OrderStatusCancelled) {
		u.notify(ctx,
			fmt.Sprintf("Payment for cancelled order %s received", order.ID),
			fmt.Sprintf("Order #%s has been marked paid by Bransfer IPN, but was previously cancelled. Admin handling required.", order.ID),
		)
	}

	if storedPaymentID == "" || n.PaymentID != storedPaymentID {
		u.log.Warnw("[ipn] payment id does not match order", "order_id", order.ID, "payment_id", n.PaymentID, "stored_payment_id", storedPaymentID)
		return OutcomePaymentIDMismatch, nil
	}

	if err := u.store.AddNote(ctx, order.ID, "Bransfer Payment Completed"); err != nil {
		return "", fmt.Errorf("add note to order %s: %w", order.ID, err)
	}
	if err := u.paymentComplete(ctx, order, strings.TrimSpace(n.PaymentID), "IPN payment completed"); err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}

func (u *IPNUseCase) paymentFailed(ctx context.Context, order entities.Order, n entities.Notification) (Outcome, error) {
	note := fmt.Sprintf("Payment %s via IPN.", n.Status)
	if err := u.store.UpdateStatus(ctx, order.ID, entities.OrderStatusFailed, note); err != nil {
		return "", fmt.Errorf("fail order %s: %w", order.ID, err)
	}
	if err := u.savePaymentStatus(ctx, order.ID, n.Status); err != nil {
		return "", err
	}
	return OutcomeProcessed, nil
}

// paymentRefunded only handles full refunds; the provider posts refunds
// with a negative amount.
func (u *IPNUseCase) paymentRefunded(ctx context.Context, order entities.Order, n entities.Notification) (Outcome, error) {
	if !entities.AmountsMatch(order.Total, -n.Amount) {
		u.log.Infow("[ipn] partial refund ignored", "order_id", order.ID, "amount", formatPosted(n.Amount))
		return OutcomePartialRefund, nil
	}

	note := fmt.Sprintf("Payment %s via IPN.", n.Status)
	if err := u.store.UpdateStatus(ctx, order.ID, entities.OrderStatusRefunded, note); err != nil {
		return "", fmt.Errorf("refund order %s: %w", order.ID, err)
	}
	u.notify(ctx,
		fmt.Sprintf("Payment for order %s refunded", order.ID),
		fmt.Sprintf("Order #%s has been marked as refunded - Bransfer reason code: %s", order.ID, n.ReasonCode),
	)
	return OutcomeProcessed, nil
}

func (u *IPNUseCase) paymentReversed(ctx context.Context, order entities.Order, n entities.Notification) (Outcome, error) {
	note := fmt.Sprintf("Payment %s via IPN.", n.Status)
	if err := u.store.UpdateStatus(ctx, order.ID, entities.OrderStatusOnHold, note); err != nil {
		return "", fmt.Errorf("hold order %s: %w", order.ID, err)
	}
	u.notify(ctx,
		fmt.Sprintf("Payment for order %s reversed", order.ID),
		fmt.Sprintf("Order #%s has been marked on-hold due to a reversal - Bransfer reason code: %s", order.ID, n.ReasonCode),
	)
	return OutcomeProcessed, nil
}

func (u *IPNUseCase) paymentCanceledReversal(ctx context.Context, order entities.Order, _ entities.Notification) (Outcome, error) {
	u.notify(ctx,
		fmt.Sprintf("Reversal cancelled for order #%s", order.ID),
		fmt.Sprintf("Order #%s has had a reversal cancelled. Please check the status of payment and update the order status accordingly here: %s", order.ID, u.orderAdminURL(order)),
	)
	return OutcomeProcessed, nil
}

// validateAmount holds the order and returns ErrAmountMismatch when amount
// does not equal the order total at two decimal places.
func (u *IPNUseCase) validateAmount(ctx context.Context, order entities.Order, amount float64) error {
	if entities.AmountsMatch(order.Total, amount) {
		return nil
	}

	gross := formatPosted(amount)
	u.log.Warnw("[ipn] payment error: amounts do not match", "order_id", order.ID, "gross", gross, "total", entities.FormatAmount(order.Total))
	note := fmt.Sprintf("Validation error: Bransfer amounts do not match (gross %s).", gross)
	if err := u.store.UpdateStatus(ctx, order.ID, entities.OrderStatusOnHold, note); err != nil {
		return fmt.Errorf("hold order %s: %w", order.ID, err)
	}
	return ErrAmountMismatch
}

func (u *IPNUseCase) paymentComplete(ctx context.Context, order entities.Order, txnID, note string) error {
	if order.HasStatus(entities.OrderStatusProcessing, entities.OrderStatusCompleted) {
		return nil
	}
	if err := u.store.AddNote(ctx, order.ID, note); err != nil {
		return fmt.Errorf("add note to order %s: %w", order.ID, err)
	}
	if err := u.store.PaymentComplete(ctx, order.ID, txnID); err != nil {
		return fmt.Errorf("complete payment of order %s: %w", order.ID, err)
	}
	u.log.Infow("[ipn] order paid", "order_id", order.ID, "transaction_id", txnID)

	if order.CartID != "" && u.carts != nil {
		if err := u.carts.Empty(ctx, order.CartID); err != nil {
			u.log.Warnw("[ipn] failed emptying cart", "order_id", order.ID, "cart_id", order.CartID, "err", err)
		}
	}
	return nil
}

func (u *IPNUseCase) savePaymentStatus(ctx context.Context, orderID string, status entities.NotificationStatus) error {
	if status == "" {
		return nil
	}
	if err := u.store.SetMeta(ctx, orderID, map[string]string{entities.MetaPaymentStatus: string(status)}); err != nil {
		return fmt.Errorf("save payment status of order %s: %w", orderID, err)
	}
	return nil
}

// notify sends an admin alert. Delivery failures are logged only.
func (u *IPNUseCase) notify(ctx context.Context, subject, body string) {
	if u.notifier == nil {
		u.log.Warnw("[ipn] notifier not configured, alert dropped", "subject", subject)
		return
	}
	if err := u.notifier.Send(ctx, subject, body); err != nil {
		u.log.Errorw("[ipn] failed sending alert", "subject", subject, "err", err)
	}
}

func (u *IPNUseCase) orderAdminURL(order entities.Order) string {
	return strings.TrimRight(u.settings.StoreBaseURL, "/") + "/v1/orders/" + order.ID
}

func formatPosted(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
