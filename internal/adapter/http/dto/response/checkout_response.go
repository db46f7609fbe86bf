package response

const CheckoutResultSuccess = "success"

// CheckoutResponse tells the storefront where to send the customer.
type CheckoutResponse struct {
	Result   string `json:"result"`
	Redirect string `json:"redirect"`
}

func NewCheckoutResponse(redirect string) CheckoutResponse {
	return CheckoutResponse{Result: CheckoutResultSuccess, Redirect: redirect}
}
