package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"bransfer_gateway/internal/domain/entities"
	"bransfer_gateway/internal/usecase/interfaces"
	mock_interfaces "bransfer_gateway/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var orderSettings = entities.GatewaySettings{Enabled: true, StoreCurrency: "USD"}

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, orderSettings)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "  ", Total: 10})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("invalid total", func(t *testing.T) {
		uc := NewOrderUseCase(nil, orderSettings)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 0})
		if !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})

	t.Run("total rounds to zero", func(t *testing.T) {
		uc := NewOrderUseCase(nil, orderSettings)
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 0.004})
		if !errors.Is(err, ErrInvalidOrderTotal) {
			t.Fatalf("expected ErrInvalidOrderTotal, got %v", err)
		}
	})

	t.Run("total stored in cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{}, nil)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Total != 20 {
					t.Fatalf("expected total 20, got %v", o.Total)
				}
				return o, nil
			},
		)

		if _, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 19.999}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store get error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 25})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{ID: "1007"}, nil)

		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 25})
		if !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("duplicate detected by store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{}, nil)
		store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrDuplicateOrder)

		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: "1007", Total: 25})
		if !errors.Is(err, ErrOrderAlreadyExists) {
			t.Fatalf("expected ErrOrderAlreadyExists, got %v", err)
		}
	})

	t.Run("create success with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{}, nil)
		store.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID != "1007" || o.Total != 25 || o.Status != entities.OrderStatusPending {
					t.Fatalf("unexpected order: %+v", o)
				}
				if o.Currency != "USD" || o.PaymentMethod != entities.GatewayID || o.CartID != "cart-1" {
					t.Fatalf("unexpected defaults: %+v", o)
				}
				if !strings.HasPrefix(o.Key, "wc_order_") || len(o.Key) != len("wc_order_")+13 {
					t.Fatalf("unexpected order key %q", o.Key)
				}
				if o.Meta == nil || o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected meta and timestamps: %+v", o)
				}
				return o, nil
			},
		)

		res, err := uc.CreateOrder(context.Background(), CreateOrderInput{ID: " 1007 ", Total: 25, CartID: "cart-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "1007" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil, orderSettings)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "1007")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIOrderStore(ctrl)
		uc := NewOrderUseCase(store, orderSettings)

		store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{ID: "1007"}, nil)

		o, err := uc.GetByID(context.Background(), "1007")
		if err != nil || o.ID != "1007" {
			t.Fatalf("unexpected result: %+v %v", o, err)
		}
	})
}

func TestOrderUseCase_OrderReceivedText(t *testing.T) {
	cases := []struct {
		name     string
		settings entities.GatewaySettings
		method   string
		want     string
	}{
		{name: "bransfer order", settings: orderSettings, method: entities.GatewayID, want: bransferReceivedText},
		{name: "other method", settings: orderSettings, method: "cod", want: defaultReceivedText},
		{name: "gateway disabled", settings: entities.GatewaySettings{StoreCurrency: "USD"}, method: entities.GatewayID, want: defaultReceivedText},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			store := mock_interfaces.NewMockIOrderStore(ctrl)
			uc := NewOrderUseCase(store, tc.settings)

			store.EXPECT().Get(gomock.Any(), "1007").Return(entities.Order{ID: "1007", PaymentMethod: tc.method}, nil)

			got, err := uc.OrderReceivedText(context.Background(), "1007")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
