package handlers

import (
	response "bransfer_gateway/internal/adapter/http/dto/response"
	"bransfer_gateway/internal/usecase"
	"bransfer_gateway/internal/usecase/interfaces"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	usecase usecase.IPaymentInitiatorUseCase
	log     interfaces.ILogger
}

func NewCheckoutHandler(uc usecase.IPaymentInitiatorUseCase, log interfaces.ILogger) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc, log: log}
}

// ProcessPayment godoc
// @Summary      Start a Bransfer payment for an order
// @Description  Creates the payment at Bransfer and returns the hosted payment page.
// @Tags         checkout
// @Produce      json
// @Param        id   path      string  true  "Order number"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /orders/{id}/payment [post]
func (h *CheckoutHandler) ProcessPayment(c *gin.Context) {
	orderID := c.Param("id")

	redirect, err := h.usecase.Initiate(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapCheckoutError(err)
		h.log.Warnw("[checkout][handler] payment not started", "order_id", orderID, "code", appErr.Code, "err", err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewCheckoutResponse(redirect))
}
