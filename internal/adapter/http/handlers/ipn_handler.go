package handlers

import (
	request "bransfer_gateway/internal/adapter/http/dto/request"
	"bransfer_gateway/internal/usecase"
	"bransfer_gateway/internal/usecase/interfaces"
	"bransfer_gateway/pkg"
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxIPNBodyBytes caps the notification body read from the provider.
const MaxIPNBodyBytes = 64 << 10

// SignatureHeader carries hex(HMAC-SHA256(secret, body)) when a webhook
// secret is configured.
const SignatureHeader = "X-Bransfer-Signature"

// IPNHandler receives the provider's payment status notifications.
//
// The provider only looks at the status code: anything the gateway chooses
// to drop is acknowledged with an empty 200 so it is not redelivered, and
// store failures answer 500 so it is.
type IPNHandler struct {
	usecase usecase.IIPNUseCase
	secret  string
	log     interfaces.ILogger
}

func NewIPNHandler(uc usecase.IIPNUseCase, secret string, log interfaces.ILogger) *IPNHandler {
	return &IPNHandler{usecase: uc, secret: secret, log: log}
}

// HandleIPN godoc
// @Summary      Bransfer instant payment notification
// @Tags         ipn
// @Accept       json
// @Param        X-Bransfer-Signature  header  string  false  "hex HMAC-SHA256 of the body"
// @Success      200
// @Failure      401  {object}  pkg.HTTPError
// @Failure      413  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /wc-api/wc_gateway_bransfer [post]
func (h *IPNHandler) HandleIPN(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxIPNBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.log.Warnw("[ipn][handler] notification body too large", "limit", tooLarge.Limit)
			c.JSON(errIPNTooLarge.HTTPStatus, errIPNTooLarge.ToHTTPError())
			return
		}
		h.log.Warnw("[ipn][handler] failed reading body", "err", err)
		c.Status(http.StatusOK)
		return
	}

	if h.secret != "" && !pkg.VerifyHMACSHA256Hex(h.secret, raw, c.GetHeader(SignatureHeader)) {
		h.log.Warnw("[ipn][handler] rejected notification with bad signature", "remote", c.ClientIP())
		c.JSON(errInvalidSignature.HTTPStatus, errInvalidSignature.ToHTTPError())
		return
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		h.log.Warnw("[ipn][handler] empty notification dropped")
		c.Status(http.StatusOK)
		return
	}

	payload, err := request.DecodeIPNRequest(raw)
	if err != nil {
		h.log.Warnw("[ipn][handler] malformed notification dropped", "err", err)
		c.Status(http.StatusOK)
		return
	}
	n, err := payload.ToNotification()
	if err != nil {
		h.log.Warnw("[ipn][handler] notification dropped", "order_id", payload.Metadata, "err", err)
		c.Status(http.StatusOK)
		return
	}

	outcome, err := h.usecase.HandleNotification(c.Request.Context(), n)
	if err != nil {
		h.log.Errorw("[ipn][handler] notification failed", "order_id", n.OrderReference, "status", n.Status, "err", err)
		c.JSON(errIPNProcessing.HTTPStatus, errIPNProcessing.ToHTTPError())
		return
	}

	h.log.Infow("[ipn][handler] notification handled", "order_id", n.OrderReference, "status", n.Status, "outcome", outcome)
	c.Status(http.StatusOK)
}
