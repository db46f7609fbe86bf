package request

import (
	"bransfer_gateway/internal/domain/entities"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidNotificationAmount = errors.New("invalid notification amount")

// IPNRequest is the provider's server-to-server notification body.
// Every field is untrusted.
type IPNRequest struct {
	Metadata   FlexString  `json:"metadata"`
	Status     string      `json:"status"`
	Amount     json.Number `json:"amount"`
	PaymentID  FlexString  `json:"payment_id"`
	ReasonCode string      `json:"reason_code"`
}

// DecodeIPNRequest parses a raw notification body.
func DecodeIPNRequest(raw []byte) (IPNRequest, error) {
	var r IPNRequest
	if err := json.Unmarshal(raw, &r); err != nil {
		return IPNRequest{}, err
	}
	return r, nil
}

func (r IPNRequest) ToNotification() (entities.Notification, error) {
	var amount float64
	if s := strings.TrimSpace(r.Amount.String()); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return entities.Notification{}, ErrInvalidNotificationAmount
		}
		amount = v
	}

	return entities.Notification{
		OrderReference: strings.TrimSpace(string(r.Metadata)),
		Status:         entities.NormalizeNotificationStatus(r.Status),
		Amount:         amount,
		PaymentID:      strings.TrimSpace(string(r.PaymentID)),
		ReasonCode:     strings.TrimSpace(r.ReasonCode),
	}, nil
}
