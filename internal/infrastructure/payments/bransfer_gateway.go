package payments

import (
	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultAPIURL  = "https://api.bransfer.io"
	DefaultTimeout = 30 * time.Second

	createPaymentPath = "/api/payments"
	mockRedirectURL   = "https://pay.bransfer.io/mock/"
)

var (
	ErrMissingAPIToken         = errors.New("missing BRANSFER_API_TOKEN")
	ErrInvalidGatewayResponse  = errors.New("invalid payment gateway response")
	ErrBransferGatewayNotReady = errors.New("bransfer gateway not configured")
)

type BransferGateway struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	log        interfaces.ILogger
	mockMode   bool
}

var _ interfaces.IPaymentGateway = (*BransferGateway)(nil)

// Option customises a BransferGateway.
type Option func(*BransferGateway)

func WithHTTPClient(c *http.Client) Option {
	return func(g *BransferGateway) { g.httpClient = c }
}

func WithMockMode(enabled bool) Option {
	return func(g *BransferGateway) { g.mockMode = enabled }
}

// NewBransferGateway builds the outbound client. A zero timeout falls back to
// DefaultTimeout; the request context can shorten it further.
func NewBransferGateway(baseURL, apiToken string, timeout time.Duration, log interfaces.ILogger, opts ...Option) (*BransferGateway, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultAPIURL
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	g := &BransferGateway{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiToken:   strings.TrimSpace(apiToken),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.mockMode {
		g.log.Infow("[gateway] mock mode enabled")
		return g, nil
	}
	if g.apiToken == "" {
		g.log.Errorw("[gateway] missing BRANSFER_API_TOKEN")
		return nil, ErrMissingAPIToken
	}
	g.log.Infow("[gateway] bransfer client initialized", "base_url", g.baseURL, "timeout", timeout.String())
	return g, nil
}

// CreatePayment performs a single POST to the payments endpoint.
func (g *BransferGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentResponse, error) {
	if g == nil {
		return entities.PaymentResponse{}, ErrBransferGatewayNotReady
	}
	if g.mockMode {
		return g.mockPayment(req), nil
	}
	if g.httpClient == nil {
		return entities.PaymentResponse{}, ErrBransferGatewayNotReady
	}

	body, err := json.Marshal(req)
	if err != nil {
		return entities.PaymentResponse{}, fmt.Errorf("encode payment request: %w", err)
	}

	url := g.baseURL + createPaymentPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return entities.PaymentResponse{}, fmt.Errorf("build payment request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.apiToken)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	g.log.Infow("[gateway] create start", "order_id", req.Metadata, "url", url)
	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		g.log.Errorw("[gateway] request failed", "order_id", req.Metadata, "err", err)
		return entities.PaymentResponse{}, fmt.Errorf("%w: %v", interfaces.ErrGatewayTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return entities.PaymentResponse{}, fmt.Errorf("%w: read body: %v", interfaces.ErrGatewayTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		g.log.Warnw("[gateway] unexpected status", "order_id", req.Metadata, "status", resp.StatusCode, "body", string(raw))
		return entities.PaymentResponse{}, &interfaces.UnexpectedStatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	var out entities.PaymentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.PaymentResponse{}, fmt.Errorf("%w: decode: %v", ErrInvalidGatewayResponse, err)
	}
	out.PaymentID = strings.TrimSpace(out.PaymentID)
	out.RedirectURL = strings.TrimSpace(out.RedirectURL)
	if out.PaymentID == "" || out.RedirectURL == "" {
		return entities.PaymentResponse{}, fmt.Errorf("%w: missing payment_id or redirect_url", ErrInvalidGatewayResponse)
	}

	g.log.Infow("[gateway] create success", "order_id", req.Metadata, "payment_id", out.PaymentID)
	return out, nil
}

func (g *BransferGateway) mockPayment(req entities.PaymentRequest) entities.PaymentResponse {
	id := uuid.NewString()
	g.log.Infow("[gateway] mock create success", "order_id", req.Metadata, "payment_id", id)
	return entities.PaymentResponse{PaymentID: id, RedirectURL: mockRedirectURL + id}
}
