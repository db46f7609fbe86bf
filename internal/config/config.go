package config

import (
	"bransfer_gateway/internal/domain/entities"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"

	defaultAPIURL      = "https://api.bransfer.io"
	defaultHTTPTimeout = 30 * time.Second
	defaultTitle       = "Bransfer"
	defaultDescription = "Pay with Bitcoin, Ethereum and other cryptocurrencies via Bransfer."
)

type Config struct {
	Gateway entities.GatewaySettings

	APIURL          string
	HTTPTimeout     time.Duration
	WebhookSecret   string
	IPNNotification bool
	PaymentMock     bool

	HTTPAddr string
	LogLevel string

	OrderStore    string
	DatabaseURL   string
	DBMaxConns    int32
	DBMaxIdleTime string
	OrdersTable   string
	CartsTable    string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	AdminEmail   string
}

func FromEnv() (Config, error) {
	var c Config

	c.Gateway = entities.GatewaySettings{
		Enabled:       parseBool(os.Getenv("BRANSFER_ENABLED"), true),
		Title:         envDefault("BRANSFER_TITLE", defaultTitle),
		Description:   envDefault("BRANSFER_DESCRIPTION", defaultDescription),
		ApplicationID: env("BRANSFER_APPLICATION_ID"),
		APIToken:      env("BRANSFER_API_TOKEN"),
		ReceiverEmail: env("BRANSFER_RECEIVER_EMAIL"),
		StoreCurrency: strings.ToUpper(envDefault("STORE_CURRENCY", entities.SupportedCurrency)),
		StoreBaseURL:  strings.TrimRight(env("STORE_BASE_URL"), "/"),
	}

	c.APIURL = strings.TrimRight(envDefault("BRANSFER_API_URL", defaultAPIURL), "/")
	c.WebhookSecret = env("BRANSFER_WEBHOOK_SECRET")
	c.IPNNotification = parseBool(os.Getenv("BRANSFER_IPN_NOTIFICATION"), true)
	c.PaymentMock = parseMockFlag(os.Getenv("PAYMENT_GATEWAY_MOCK"))

	c.HTTPTimeout = defaultHTTPTimeout
	if raw := env("BRANSFER_HTTP_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return c, fmt.Errorf("BRANSFER_HTTP_TIMEOUT is invalid: %q", raw)
		}
		c.HTTPTimeout = d
	}

	c.HTTPAddr = envDefault("HTTP_ADDR", ":8080")
	c.LogLevel = envDefault("LOG_LEVEL", "info")

	c.OrderStore = strings.ToLower(envDefault("ORDER_STORE", StoreDynamoDB))
	c.DatabaseURL = env("DATABASE_URL")
	c.DBMaxIdleTime = envDefault("DB_MAX_IDLE_TIME", "15m")
	c.OrdersTable = envDefault("ORDERS_TABLE", "orders")
	c.CartsTable = envDefault("CARTS_TABLE", "carts")

	maxConns, err := parseInt(env("DB_MAX_CONNS"), 30)
	if err != nil {
		return c, fmt.Errorf("DB_MAX_CONNS is invalid: %w", err)
	}
	c.DBMaxConns = int32(maxConns)

	switch c.OrderStore {
	case StoreDynamoDB:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return c, fmt.Errorf("DATABASE_URL is empty")
		}
	default:
		return c, fmt.Errorf("ORDER_STORE %q is not supported", c.OrderStore)
	}

	c.SMTPHost = env("SMTP_HOST")
	c.SMTPPort, err = parseInt(env("SMTP_PORT"), 587)
	if err != nil {
		return c, fmt.Errorf("SMTP_PORT is invalid: %w", err)
	}
	c.SMTPUsername = env("SMTP_USERNAME")
	c.SMTPPassword = env("SMTP_PASSWORD")
	c.MailFrom = envDefault("MAIL_FROM", c.Gateway.ReceiverEmail)
	c.AdminEmail = env("ADMIN_EMAIL")

	return c, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envDefault(key, def string) string {
	if v := env(key); v != "" {
		return v
	}
	return def
}

// parseBool accepts the plugin-style "yes"/"no" values as well as Go booleans.
func parseBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	}
	return def
}

// parseMockFlag also accepts the literal "mock".
func parseMockFlag(raw string) bool {
	if strings.EqualFold(strings.TrimSpace(raw), "mock") {
		return true
	}
	return parseBool(raw, false)
}

func parseInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", v)
	}
	return v, nil
}
