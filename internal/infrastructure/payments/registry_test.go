package payments

import (
	"testing"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/infrastructure/config"
	mock_interfaces "splitpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewRegistry(t *testing.T) {
	t.Run("all instruments with balances", func(t *testing.T) {
		balances := mock_interfaces.NewMockIBalanceRepository(gomock.NewController(t))
		gws, err := NewRegistry(config.Config{GatewayMock: true, GatewayTimeout: time.Second}, balances)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, typ := range entities.InstrumentTypes {
			if _, ok := gws[typ]; !ok {
				t.Fatalf("missing gateway for %s", typ)
			}
		}
		if _, ok := gws[entities.InstrumentCash].(*DeadlineGateway); !ok {
			t.Fatalf("gateways should carry the deadline decorator")
		}
	})

	t.Run("stored value disabled without balances", func(t *testing.T) {
		gws, err := NewRegistry(config.Config{GatewayMock: true}, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := gws[entities.InstrumentGiftCard]; ok {
			t.Fatalf("giftcard should not be registered")
		}
		if _, ok := gws[entities.InstrumentCash].(*OfflineGateway); !ok {
			t.Fatalf("zero timeout should leave gateways unwrapped")
		}
	})

	t.Run("credit card requires credentials", func(t *testing.T) {
		if _, err := NewRegistry(config.Config{}, nil); err == nil {
			t.Fatalf("expected missing token error")
		}
	})
}
