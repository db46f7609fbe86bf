package response

import (
	"testing"
	"time"

	"bransfer_gateway/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:            "1007",
		Key:           "wc_order_abc",
		Status:        entities.OrderStatusProcessing,
		Total:         25,
		Currency:      "USD",
		PaymentMethod: entities.GatewayID,
		TransactionID: "P1",
		PaidAt:        &now,
		Meta: map[string]string{
			entities.MetaPaymentID:     "P1",
			entities.MetaPaymentStatus: "completed",
		},
		Notes:     []entities.OrderNote{{ID: "n1", Content: "IPN payment completed", CreatedAt: now}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromOrder(o)
	if res.ID != "1007" || res.Status != "processing" || res.Total != "25.00" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PaymentID != "P1" || res.PaymentStatus != "completed" || res.TransactionID != "P1" {
		t.Fatalf("unexpected payment fields: %+v", res)
	}
	if len(res.Notes) != 1 || res.Notes[0].Content != "IPN payment completed" {
		t.Fatalf("unexpected notes: %+v", res.Notes)
	}
	if res.PaidAt == nil || !res.PaidAt.Equal(now) {
		t.Fatalf("unexpected paid at: %+v", res.PaidAt)
	}

	empty := FromOrder(entities.Order{ID: "1"})
	if empty.Meta == nil || empty.Notes == nil {
		t.Fatalf("expected empty collections, got %+v", empty)
	}
}

func TestFromGatewaySettings(t *testing.T) {
	res := FromGatewaySettings(entities.GatewaySettings{Enabled: true, Title: "Bransfer", StoreCurrency: "EUR", ApplicationID: "a", APIToken: "t"})
	if res.ID != entities.GatewayID || res.Title != "Bransfer" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if !res.Enabled || res.Available || res.NeedsSetup {
		t.Fatalf("unexpected flags: %+v", res)
	}
}

func TestNewCheckoutResponse(t *testing.T) {
	res := NewCheckoutResponse("https://pay/x")
	if res.Result != "success" || res.Redirect != "https://pay/x" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
