package payments

import (
	"context"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"
)

// DeadlineGateway bounds every call to the wrapped gateway with a timeout.
// The orchestrator sees an expired call as a transport error.
type DeadlineGateway struct {
	next    interfaces.IPaymentGateway
	timeout time.Duration
}

var _ interfaces.IPaymentGateway = (*DeadlineGateway)(nil)

// WithDeadline returns next unchanged when timeout is not positive.
func WithDeadline(next interfaces.IPaymentGateway, timeout time.Duration) interfaces.IPaymentGateway {
	if timeout <= 0 {
		return next
	}
	return &DeadlineGateway{next: next, timeout: timeout}
}

func (g *DeadlineGateway) Authorize(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Authorize(ctx, req)
}

func (g *DeadlineGateway) Charge(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Charge(ctx, req)
}

func (g *DeadlineGateway) Rollback(ctx context.Context, resp entities.GatewayResponse) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Rollback(ctx, resp)
}

func (g *DeadlineGateway) Refund(ctx context.Context, req entities.RefundRequest) (entities.GatewayResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	return g.next.Refund(ctx, req)
}
