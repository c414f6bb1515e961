package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrMissingAccountReference = errors.New("missing account reference")
var ErrAccountNotFound = errors.New("balance account not found")
var ErrAccountKindMismatch = interfaces.ErrAccountKindMismatch

const (
	responseKeyAccountID = "account_id"
	responseKeyAmount    = "amount"
	responseKeyBalance   = "balance"
)

// BalanceGateway pays from stored-value accounts (store credit, gift cards).
//
// Authorize only checks the available balance; the money moves on Charge with
// a conditional debit, so an authorization never needs to be released.
type BalanceGateway struct {
	kind     entities.InstrumentType
	balances interfaces.IBalanceRepository
}

var _ interfaces.IPaymentGateway = (*BalanceGateway)(nil)

func NewBalanceGateway(kind entities.InstrumentType, balances interfaces.IBalanceRepository) *BalanceGateway {
	return &BalanceGateway{kind: kind, balances: balances}
}

func (g *BalanceGateway) Authorize(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	accountID := strings.TrimSpace(req.Reference)
	if accountID == "" {
		return entities.Declined(ErrMissingAccountReference), nil
	}
	acc, err := g.balances.Get(ctx, accountID)
	if err != nil {
		log.Printf("[payment][gateway][%s] balance lookup failed account_id=%s err=%v", g.kind, accountID, err)
		return entities.GatewayResult{}, err
	}
	if acc.ID == "" {
		return entities.Declined(ErrAccountNotFound), nil
	}
	if acc.Kind != g.kind {
		return entities.Declined(ErrAccountKindMismatch), nil
	}
	if acc.Balance.LessThan(req.Amount) {
		log.Printf("[payment][gateway][%s] authorize declined account_id=%s balance=%s amount=%s", g.kind, accountID, acc.Balance, req.Amount)
		res := entities.Declined(interfaces.ErrInsufficientBalance)
		res.Response[responseKeyBalance] = acc.Balance.String()
		return res, nil
	}

	log.Printf("[payment][gateway][%s] authorize order_id=%s account_id=%s amount=%s", g.kind, req.OrderID, accountID, req.Amount)
	return entities.GatewayResult{Approved: true, Response: entities.GatewayResponse{
		responseKeyStage:     StageAuthorized,
		responseKeyAccountID: accountID,
		responseKeyAmount:    req.Amount.String(),
		responseKeyBalance:   acc.Balance.String(),
	}}, nil
}

func (g *BalanceGateway) Charge(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	accountID := strings.TrimSpace(req.Reference)
	if accountID == "" {
		return entities.Declined(ErrMissingAccountReference), nil
	}
	acc, err := g.balances.Debit(ctx, accountID, g.kind, req.Amount)
	if errors.Is(err, interfaces.ErrInsufficientBalance) || errors.Is(err, ErrAccountKindMismatch) {
		log.Printf("[payment][gateway][%s] charge declined account_id=%s amount=%s", g.kind, accountID, req.Amount)
		return entities.Declined(err), nil
	}
	if err != nil {
		log.Printf("[payment][gateway][%s] debit failed account_id=%s err=%v", g.kind, accountID, err)
		return entities.GatewayResult{}, err
	}

	id := uuid.NewString()
	log.Printf("[payment][gateway][%s] charge order_id=%s account_id=%s amount=%s balance=%s", g.kind, req.OrderID, accountID, req.Amount, acc.Balance)
	return entities.GatewayResult{Approved: true, Response: entities.GatewayResponse{
		responseKeyStage:                         StageCharged,
		responseKeyAccountID:                     accountID,
		responseKeyAmount:                        req.Amount.String(),
		responseKeyBalance:                       acc.Balance.String(),
		entities.ResponseKeyGatewayTransactionID: id,
	}}, nil
}

// Rollback credits back a captured debit. An authorize-only response moved no
// money and is left alone.
func (g *BalanceGateway) Rollback(ctx context.Context, resp entities.GatewayResponse) error {
	if resp.String(responseKeyStage) != StageCharged {
		return nil
	}
	accountID := resp.String(responseKeyAccountID)
	amount, ok := resp.Decimal(responseKeyAmount)
	if accountID == "" || !ok {
		return fmt.Errorf("%s rollback: incomplete charge response", g.kind)
	}
	if _, err := g.balances.Credit(ctx, accountID, g.kind, amount); err != nil {
		log.Printf("[payment][gateway][%s] rollback credit failed account_id=%s amount=%s err=%v", g.kind, accountID, amount, err)
		return err
	}
	log.Printf("[payment][gateway][%s] rollback credited account_id=%s amount=%s", g.kind, accountID, amount)
	return nil
}

// Refund credits the account named by the reference, or issues a new one when
// there is none. An existing account of another instrument is never credited.
func (g *BalanceGateway) Refund(ctx context.Context, req entities.RefundRequest) (entities.GatewayResult, error) {
	accountID := strings.TrimSpace(req.Reference)
	issued := accountID == ""
	if issued {
		accountID = uuid.NewString()
	} else {
		existing, err := g.balances.Get(ctx, accountID)
		if err != nil {
			log.Printf("[payment][gateway][%s] balance lookup failed account_id=%s err=%v", g.kind, accountID, err)
			return entities.GatewayResult{}, err
		}
		if existing.ID != "" && existing.Kind != g.kind {
			log.Printf("[payment][gateway][%s] refund declined account_id=%s account_kind=%s", g.kind, accountID, existing.Kind)
			return entities.Declined(ErrAccountKindMismatch), nil
		}
	}
	acc, err := g.balances.Credit(ctx, accountID, g.kind, req.Amount)
	if errors.Is(err, ErrAccountKindMismatch) {
		log.Printf("[payment][gateway][%s] refund declined account_id=%s reason=kind_mismatch", g.kind, accountID)
		return entities.Declined(err), nil
	}
	if err != nil {
		log.Printf("[payment][gateway][%s] refund credit failed account_id=%s err=%v", g.kind, accountID, err)
		return entities.GatewayResult{}, err
	}
	log.Printf("[payment][gateway][%s] refund order_id=%s account_id=%s amount=%s issued=%t", g.kind, req.OrderID, accountID, req.Amount, issued)

	resp := entities.GatewayResponse{
		responseKeyStage:                         StageRefunded,
		responseKeyAccountID:                     accountID,
		responseKeyAmount:                        req.Amount.String(),
		responseKeyBalance:                       acc.Balance.String(),
		"issued":                                 issued,
		entities.ResponseKeyGatewayTransactionID: uuid.NewString(),
	}
	switch g.kind {
	case entities.InstrumentGiftCard:
		resp[entities.ResponseKeyRefundGiftcardID] = accountID
	case entities.InstrumentStoreCredit:
		resp[entities.ResponseKeyRefundStorecreditID] = accountID
	}
	return entities.GatewayResult{Approved: true, Response: resp}, nil
}
