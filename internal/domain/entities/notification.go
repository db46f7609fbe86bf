package entities

import "strings"

// NotificationStatus is the closed set of payment statuses the provider
// reports through IPN callbacks.
type NotificationStatus string

const (
	NotificationStatusCompleted        NotificationStatus = "completed"
	NotificationStatusFailed           NotificationStatus = "failed"
	NotificationStatusDenied           NotificationStatus = "denied"
	NotificationStatusExpired          NotificationStatus = "expired"
	NotificationStatusVoided           NotificationStatus = "voided"
	NotificationStatusRefunded         NotificationStatus = "refunded"
	NotificationStatusReversed         NotificationStatus = "reversed"
	NotificationStatusCanceledReversal NotificationStatus = "canceled_reversal"
)

// Notification is a decoded IPN payload. Every field is untrusted.
type Notification struct {
	OrderReference string
	Status         NotificationStatus
	Amount         float64
	PaymentID      string
	ReasonCode     string
}

// NormalizeNotificationStatus lower-cases and trims a raw status value.
// The result may fall outside the known enumeration.
func NormalizeNotificationStatus(raw string) NotificationStatus {
	return NotificationStatus(strings.ToLower(strings.TrimSpace(raw)))
}
