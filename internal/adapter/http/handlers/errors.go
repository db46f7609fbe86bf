package handlers

import (
	"bransfer_gateway/internal/usecase"
	"bransfer_gateway/internal/usecase/interfaces"
	"bransfer_gateway/pkg"
	"errors"
	"net/http"
	"strconv"
	"strings"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidSignature    = pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid notification signature", http.StatusUnauthorized)
	errIPNTooLarge         = pkg.NewDomainErrorSimple("IPN_BODY_TOO_LARGE", "Notification body too large", http.StatusRequestEntityTooLarge)
	errIPNProcessing       = pkg.NewDomainErrorSimple("IPN_PROCESSING_FAILED", "Notification could not be processed", http.StatusInternalServerError)
)

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidOrderTotal):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_EXISTS", "Order already exists", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// mapCheckoutError turns an Initiate failure into the notice shown to the
// customer on the checkout page.
func mapCheckoutError(err error) *pkg.AppError {
	var statusErr *interfaces.UnexpectedStatusError
	switch {
	case errors.As(err, &statusErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Bransfer Payment Error: Invalid Status Code: "+strconv.Itoa(statusErr.Code), err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrGatewayTransport):
		msg := strings.TrimPrefix(err.Error(), interfaces.ErrGatewayTransport.Error()+": ")
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNREACHABLE", "Http error: "+msg, err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentMethodMismatch):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_MISMATCH", "Order is not paid with Bransfer", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Bransfer does not support your store currency", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return mapOrderError(err)
	}
}
