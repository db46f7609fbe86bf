package routes

import (
	"bransfer_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing    = "/ping"
	PathGateway = "/gateway"
	PathOrders  = "/orders"

	// PathIPN is the listener URL the provider posts notifications to.
	PathIPN = "/wc-api/wc_gateway_bransfer"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addGatewayRoutes(rg *gin.RouterGroup, gatewayHandler *handlers.GatewayHandler) {
	rg.GET(PathGateway, gatewayHandler.GetGateway)
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, checkoutHandler *handlers.CheckoutHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/received", orderHandler.OrderReceived)
		orders.POST("/:id/payment", checkoutHandler.ProcessPayment)
	}
}

func addIPNRoutes(router gin.IRoutes, ipnHandler *handlers.IPNHandler) {
	router.POST(PathIPN, ipnHandler.HandleIPN)
}
