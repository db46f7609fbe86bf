package entities

import "strings"

const (
	GatewayID         = "bransfer_payment_gateway"
	SupportedCurrency = "USD"
)

// GatewaySettings holds the merchant-facing gateway configuration.
type GatewaySettings struct {
	Enabled       bool
	Title         string
	Description   string
	ApplicationID string
	APIToken      string
	ReceiverEmail string
	StoreCurrency string
	StoreBaseURL  string
}

// IsValidForUse reports whether the store currency is supported.
func (s GatewaySettings) IsValidForUse() bool {
	return strings.EqualFold(strings.TrimSpace(s.StoreCurrency), SupportedCurrency)
}

func (s GatewaySettings) IsAvailable() bool {
	return s.Enabled && s.IsValidForUse()
}

// NeedsSetup reports whether credentials are still missing.
func (s GatewaySettings) NeedsSetup() bool {
	return strings.TrimSpace(s.ApplicationID) == "" || strings.TrimSpace(s.APIToken) == ""
}
