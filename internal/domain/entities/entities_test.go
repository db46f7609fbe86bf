package entities

import "testing"

func TestAmountsMatch(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want bool
	}{
		{name: "equal", a: 10, b: 10.00, want: true},
		{name: "third decimal rounds away", a: 10.00, b: 10.001, want: true},
		{name: "one cent short", a: 10.00, b: 9.99, want: false},
		{name: "negated refund", a: 25, b: -25, want: false},
		{name: "zero and negative zero", a: 0, b: -0.0001, want: true},
		{name: "half cent rounds up from decimal text", a: 1.01, b: 1.005, want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AmountsMatch(tc.a, tc.b); got != tc.want {
				t.Fatalf("AmountsMatch(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[float64]string{
		1234.5: "1234.50",
		-25:    "-25.00",
		-0.001: "0.00",
		10.004: "10.00",
		99.999: "100.00",
		1.005:  "1.01",
		2.675:  "2.68",
		-1.005: "-1.01",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestRoundAmount(t *testing.T) {
	cases := map[float64]float64{
		19.999: 20,
		1.005:  1.01,
		0.125:  0.13,
		-0.004: 0,
		42:     42,
	}
	for in, want := range cases {
		if got := RoundAmount(in); got != want {
			t.Fatalf("RoundAmount(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestOrderStatus_IsPaid(t *testing.T) {
	paid := []OrderStatus{OrderStatusProcessing, OrderStatusCompleted}
	for _, s := range paid {
		if !s.IsPaid() {
			t.Fatalf("%s should be paid", s)
		}
	}
	unpaid := []OrderStatus{OrderStatusPending, OrderStatusOnHold, OrderStatusCancelled, OrderStatusRefunded, OrderStatusFailed}
	for _, s := range unpaid {
		if s.IsPaid() {
			t.Fatalf("%s should not be paid", s)
		}
	}
}

func TestOrder_MetaValue(t *testing.T) {
	var o Order
	if o.MetaValue(MetaPaymentID) != "" {
		t.Fatalf("expected empty value on nil meta")
	}
	o.Meta = map[string]string{MetaPaymentID: "P1"}
	if o.MetaValue(MetaPaymentID) != "P1" {
		t.Fatalf("expected P1")
	}
	if o.HasStatus() {
		t.Fatalf("HasStatus with no arguments must be false")
	}
}

func TestNormalizeNotificationStatus(t *testing.T) {
	if got := NormalizeNotificationStatus("  COMPLETED "); got != NotificationStatusCompleted {
		t.Fatalf("expected completed, got %q", got)
	}
	if got := NormalizeNotificationStatus("Canceled_Reversal"); got != NotificationStatusCanceledReversal {
		t.Fatalf("expected canceled_reversal, got %q", got)
	}
}

func TestGatewaySettings(t *testing.T) {
	s := GatewaySettings{Enabled: true, StoreCurrency: "usd", ApplicationID: "app", APIToken: "tok"}
	if !s.IsValidForUse() || !s.IsAvailable() || s.NeedsSetup() {
		t.Fatalf("expected configured usd gateway to be available: %+v", s)
	}

	s.StoreCurrency = "EUR"
	if s.IsValidForUse() || s.IsAvailable() {
		t.Fatalf("expected EUR store to disable the gateway")
	}

	s = GatewaySettings{Enabled: false, StoreCurrency: "USD"}
	if s.IsAvailable() {
		t.Fatalf("disabled gateway must not be available")
	}
	if !s.NeedsSetup() {
		t.Fatalf("missing credentials must need setup")
	}
}
