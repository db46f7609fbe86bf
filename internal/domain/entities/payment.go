package entities

// PaymentRequest is the payload sent to the provider to open a payment.
type PaymentRequest struct {
	ApplicationID      string  `json:"application_id"`
	TotalAmount        float64 `json:"total_amount"`
	Currency           string  `json:"currency"`
	SuccessRedirectURL string  `json:"success_redirect_url"`
	Metadata           string  `json:"metadata"`
}

// PaymentResponse is the provider answer to a successful PaymentRequest.
type PaymentResponse struct {
	PaymentID   string `json:"payment_id"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentStatusPending is stored in MetaPaymentStatus once a payment is opened.
const PaymentStatusPending = "pending"
