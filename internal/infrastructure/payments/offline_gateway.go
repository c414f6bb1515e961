package payments

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingCheckNumber = errors.New("missing check number")

// OfflineGateway settles tender handled at the counter (cash, checks). There
// is no provider to call: every step is recorded and approved locally.
type OfflineGateway struct {
	kind             entities.InstrumentType
	requireReference bool
}

var _ interfaces.IPaymentGateway = (*OfflineGateway)(nil)

func NewCashGateway() *OfflineGateway {
	return &OfflineGateway{kind: entities.InstrumentCash}
}

// NewCheckGateway requires the check number as the entry reference.
func NewCheckGateway() *OfflineGateway {
	return &OfflineGateway{kind: entities.InstrumentCheck, requireReference: true}
}

func (g *OfflineGateway) Authorize(_ context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	reference := strings.TrimSpace(req.Reference)
	if g.requireReference && reference == "" {
		log.Printf("[payment][gateway][%s] authorize declined order_id=%s reason=missing_reference", g.kind, req.OrderID)
		return entities.Declined(ErrMissingCheckNumber), nil
	}
	id := uuid.NewString()
	log.Printf("[payment][gateway][%s] authorize order_id=%s amount=%s offline_id=%s", g.kind, req.OrderID, req.Amount, id)
	return entities.GatewayResult{Approved: true, Response: g.response(StageAuthorized, id, reference, req.Amount.String())}, nil
}

func (g *OfflineGateway) Charge(_ context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	id := req.Authorization.String(entities.ResponseKeyGatewayTransactionID)
	if id == "" {
		id = uuid.NewString()
	}
	log.Printf("[payment][gateway][%s] charge order_id=%s amount=%s offline_id=%s", g.kind, req.OrderID, req.Amount, id)
	return entities.GatewayResult{Approved: true, Response: g.response(StageCharged, id, strings.TrimSpace(req.Reference), req.Amount.String())}, nil
}

// Rollback voids the tender. The drawer is reconciled from the log.
func (g *OfflineGateway) Rollback(_ context.Context, resp entities.GatewayResponse) error {
	log.Printf("[payment][gateway][%s] void offline_id=%s stage=%s amount=%s",
		g.kind, resp.String(entities.ResponseKeyGatewayTransactionID), resp.String(responseKeyStage), resp.String("amount"))
	return nil
}

func (g *OfflineGateway) Refund(_ context.Context, req entities.RefundRequest) (entities.GatewayResult, error) {
	id := uuid.NewString()
	log.Printf("[payment][gateway][%s] refund order_id=%s amount=%s offline_id=%s", g.kind, req.OrderID, req.Amount, id)
	return entities.GatewayResult{Approved: true, Response: g.response(StageRefunded, id, strings.TrimSpace(req.Reference), req.Amount.String())}, nil
}

func (g *OfflineGateway) response(stage, id, reference, amount string) entities.GatewayResponse {
	resp := entities.GatewayResponse{
		responseKeyStage:                         stage,
		"method":                                 string(g.kind),
		"amount":                                 amount,
		"processed_at":                           time.Now().UTC().Format(time.RFC3339Nano),
		entities.ResponseKeyGatewayTransactionID: id,
	}
	if reference != "" {
		resp["reference"] = reference
	}
	return resp
}
