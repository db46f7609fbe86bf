package handlers

import (
	response "bransfer_gateway/internal/adapter/http/dto/response"
	"bransfer_gateway/internal/domain/entities"
	"net/http"

	"github.com/gin-gonic/gin"
)

type GatewayHandler struct {
	settings entities.GatewaySettings
}

func NewGatewayHandler(settings entities.GatewaySettings) *GatewayHandler {
	return &GatewayHandler{settings: settings}
}

// GetGateway godoc
// @Summary      Gateway settings and availability
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  response.GatewayResponse
// @Router       /gateway [get]
func (h *GatewayHandler) GetGateway(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGatewaySettings(h.settings))
}

// Ping godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
