package payments

import (
	"context"
	"testing"
	"time"

	"splitpay/internal/domain/entities"
	mock_interfaces "splitpay/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestWithDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mock_interfaces.NewMockIPaymentGateway(ctrl)

	if got := WithDeadline(next, 0); got != next {
		t.Fatalf("zero timeout should not wrap")
	}

	g := WithDeadline(next, time.Minute)
	next.EXPECT().Authorize(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ entities.GatewayRequest) (entities.GatewayResult, error) {
			deadline, ok := ctx.Deadline()
			if !ok || time.Until(deadline) > time.Minute {
				t.Fatalf("expected a deadline within a minute, got %v ok=%v", deadline, ok)
			}
			return entities.GatewayResult{Approved: true}, nil
		},
	)
	next.EXPECT().Rollback(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ entities.GatewayResponse) error {
			if _, ok := ctx.Deadline(); !ok {
				t.Fatalf("expected a deadline")
			}
			return nil
		},
	)

	res, err := g.Authorize(context.Background(), entities.GatewayRequest{})
	if err != nil || !res.Approved {
		t.Fatalf("unexpected result: %+v err=%v", res, err)
	}
	if err := g.Rollback(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
