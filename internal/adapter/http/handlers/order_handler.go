package handlers

import (
	request "bransfer_gateway/internal/adapter/http/dto/request"
	response "bransfer_gateway/internal/adapter/http/dto/response"
	"bransfer_gateway/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the storefront order surface used around checkout.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Register a pending order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      409    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	total, err := payload.ResolveTotal()
	if err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ID:            payload.ResolveID(),
		Total:         total,
		Currency:      payload.Currency,
		CartID:        payload.CartID,
		PaymentMethod: payload.PaymentMethod,
	})
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get an order with its payment meta and notes
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order number"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// OrderReceived godoc
// @Summary      Thank-you text for the order-received page
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order number"
// @Success      200  {object}  response.OrderReceivedResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/received [get]
func (h *OrderHandler) OrderReceived(c *gin.Context) {
	id := c.Param("id")
	text, err := h.usecase.OrderReceivedText(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OrderReceivedResponse{OrderID: id, Message: text})
}
