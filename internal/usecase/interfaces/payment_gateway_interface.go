package interfaces

import (
	"context"

	"splitpay/internal/domain/entities"
)

// IPaymentGateway abstracts the backend servicing one instrument type
// (card processor, cash drawer, gift card ledger...).
//
// Authorize reserves funds, Charge captures them. Rollback releases whatever
// the given response describes: an authorize-only reservation or a captured
// charge. The gateway must tell them apart from the payload it produced.
// A non-nil error from Authorize, Charge or Refund means the call itself
// failed; the orchestrator treats it as a declined attempt.
type IPaymentGateway interface {
	Authorize(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error)
	Charge(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error)
	Rollback(ctx context.Context, response entities.GatewayResponse) error
	Refund(ctx context.Context, req entities.RefundRequest) (entities.GatewayResult, error)
}
