package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ISplitPaymentUseCase coordinates payments split across several instruments.
//
// Payment is all-or-nothing: either every entry is charged and recorded, or
// every instrument that succeeded in the failing phase is rolled back.
// Refund is a single gateway call followed by a ledger append.
type ISplitPaymentUseCase interface {
	Payment(ctx context.Context, order entities.OrderContext, entries []entities.PaymentMethodEntry, payment entities.PaymentInfo, billing entities.BillingInfo) (PaymentResult, error)
	Refund(ctx context.Context, order entities.OrderContext, in RefundInput) (entities.TransactionRecord, error)
	GetTransaction(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListTransactions(ctx context.Context, orderID string) ([]entities.TransactionRecord, error)
}

// PaymentResult is what the caller sees: a boolean outcome and, on failure,
// the response of the instrument that failed. Entries is the caller's slice
// after every phase ran; Records are the appended sale records.
type PaymentResult struct {
	Success  bool
	Response entities.GatewayResponse
	Entries  []entities.PaymentMethodEntry
	Records  []entities.TransactionRecord
}

type RefundInput struct {
	PaymentMethod        entities.InstrumentType
	RefundMethod         entities.InstrumentType
	Amount               decimal.Decimal
	GatewayTransactionID string
	Reference            string
}

type phase struct {
	name    string
	failed  error
	// chained phases receive the previous phase's response of each entry.
	chained bool
	call    func(ctx context.Context, gw interfaces.IPaymentGateway, req entities.GatewayRequest) (entities.GatewayResult, error)
}

var (
	authorizePhase = phase{
		name:   "authorize",
		failed: ErrAuthorizationFailed,
		call: func(ctx context.Context, gw interfaces.IPaymentGateway, req entities.GatewayRequest) (entities.GatewayResult, error) {
			return gw.Authorize(ctx, req)
		},
	}
	chargePhase = phase{
		name:    "charge",
		failed:  ErrChargeFailed,
		chained: true,
		call: func(ctx context.Context, gw interfaces.IPaymentGateway, req entities.GatewayRequest) (entities.GatewayResult, error) {
			return gw.Charge(ctx, req)
		},
	}
)

type SplitPaymentUseCase struct {
	ledger      interfaces.ILedgerRepository
	gateways    map[entities.InstrumentType]interfaces.IPaymentGateway
	compensator *Compensator
	alerts      interfaces.IAlertPublisher
	clock       interfaces.IClock
	ids         interfaces.IIDGenerator
}

var _ ISplitPaymentUseCase = (*SplitPaymentUseCase)(nil)

// NewSplitPaymentUseCase wires the orchestrator. The gateway map is copied;
// alerts, clock and ids may be nil.
func NewSplitPaymentUseCase(
	ledger interfaces.ILedgerRepository,
	gateways map[entities.InstrumentType]interfaces.IPaymentGateway,
	alerts interfaces.IAlertPublisher,
	clock interfaces.IClock,
	ids interfaces.IIDGenerator,
) *SplitPaymentUseCase {
	gws := make(map[entities.InstrumentType]interfaces.IPaymentGateway, len(gateways))
	for t, gw := range gateways {
		if gw != nil {
			gws[t] = gw
		}
	}
	if clock == nil {
		clock = systemClock{}
	}
	if ids == nil {
		ids = uuidGenerator{}
	}
	return &SplitPaymentUseCase{
		ledger:      ledger,
		gateways:    gws,
		compensator: NewCompensator(gws),
		alerts:      alerts,
		clock:       clock,
		ids:         ids,
	}
}

func (u *SplitPaymentUseCase) Payment(ctx context.Context, order entities.OrderContext, entries []entities.PaymentMethodEntry, payment entities.PaymentInfo, billing entities.BillingInfo) (PaymentResult, error) {
	order.OrderID = strings.TrimSpace(order.OrderID)
	log.Printf("[payment][usecase] payment start order_id=%q methods=%d", order.OrderID, len(entries))
	if order.OrderID == "" {
		return PaymentResult{}, ErrInvalidOrderID
	}
	if err := ValidateEntries(entries); err != nil {
		log.Printf("[payment][usecase] invalid input order_id=%s err=%v", order.OrderID, err)
		return PaymentResult{}, err
	}
	if err := u.ensureGateways(entries); err != nil {
		log.Printf("[payment][usecase] gateway missing order_id=%s err=%v", order.OrderID, err)
		return PaymentResult{}, err
	}

	base := entities.GatewayRequest{
		OrderID:     order.OrderID,
		Description: order.Description,
		Billing:     billing.WithDefaults(),
		Payment:     payment,
	}

	for _, p := range []phase{authorizePhase, chargePhase} {
		u.runPhase(ctx, p, base, entries)
		comp := u.compensator.Check(ctx, entries)
		if !comp.RolledBack {
			continue
		}
		failed := entries[comp.FailedIndex]
		log.Printf("[payment][usecase] %s failed order_id=%s index=%d type=%s", p.name, order.OrderID, comp.FailedIndex, failed.Type)
		return PaymentResult{Response: comp.Response, Entries: entries}, &PaymentFailureError{
			Kind:     p.failed,
			Index:    comp.FailedIndex,
			Type:     failed.Type,
			Response: comp.Response,
			Cause:    comp.Err,
		}
	}

	records, err := u.persistSales(ctx, order, entries)
	if err != nil {
		return PaymentResult{Response: err.Response, Entries: entries, Records: records}, err
	}
	log.Printf("[payment][usecase] payment success order_id=%s records=%d", order.OrderID, len(records))
	return PaymentResult{Success: true, Entries: entries, Records: records}, nil
}

func (u *SplitPaymentUseCase) ensureGateways(entries []entities.PaymentMethodEntry) error {
	for i, e := range entries {
		if _, ok := u.gateways[e.Type]; !ok {
			return &InvalidEntryError{Index: i, Type: e.Type, Reason: "no gateway for instrument", Kind: ErrGatewayNotConfigured}
		}
	}
	return nil
}

// runPhase attempts the entries strictly in order and stops at the first one
// that does not succeed. Every entry is reset first, so entries after the
// failing one are left unattempted rather than carrying an older result.
func (u *SplitPaymentUseCase) runPhase(ctx context.Context, p phase, base entities.GatewayRequest, entries []entities.PaymentMethodEntry) {
	previous := make([]entities.GatewayResponse, len(entries))
	for i := range entries {
		previous[i] = entries[i].Response
		entries[i].Reset()
	}
	for i := range entries {
		e := &entries[i]
		req := base
		req.Amount = e.Amount
		req.Reference = e.Reference
		if p.chained {
			req.Authorization = previous[i]
		}

		log.Printf("[payment][usecase] %s start order_id=%s index=%d type=%s amount=%s", p.name, base.OrderID, i, e.Type, e.Amount)
		res, err := p.call(ctx, u.gateways[e.Type], req)
		if err != nil {
			log.Printf("[payment][usecase] %s gateway error order_id=%s index=%d type=%s err=%v", p.name, base.OrderID, i, e.Type, err)
			res = mergeDeclined(res, err)
		}
		e.Response = res.Response
		if !res.Approved {
			e.Result = entities.PhaseFailed
			log.Printf("[payment][usecase] %s declined order_id=%s index=%d type=%s", p.name, base.OrderID, i, e.Type)
			return
		}
		e.Result = entities.PhaseSuccess
	}
}

func (u *SplitPaymentUseCase) persistSales(ctx context.Context, order entities.OrderContext, entries []entities.PaymentMethodEntry) ([]entities.TransactionRecord, *PaymentFailureError) {
	records := make([]entities.TransactionRecord, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		rec := entities.TransactionRecord{
			ID:                   u.ids.NewID(),
			PaymentMethod:        e.Type,
			TransactionType:      entities.TransactionTypeSale,
			Amount:               e.Amount,
			Revenue:              revenueOrAmount(e.Response, e.Amount),
			GatewayTransactionID: e.Response.String(entities.ResponseKeyGatewayTransactionID),
			Response:             e.Response.Clone(),
			CreatedAt:            u.clock.Now(),
		}
		rec.ApplyOrder(order)

		created, err := u.ledger.Append(ctx, rec)
		if err != nil {
			u.raisePersistenceAlert(ctx, i, rec, err)
			return records, &PaymentFailureError{Kind: ErrPersistenceFailed, Index: i, Type: e.Type, Response: e.Response, Cause: err}
		}
		e.TransactionID = created.ID
		records = append(records, created)
	}
	return records, nil
}

func (u *SplitPaymentUseCase) Refund(ctx context.Context, order entities.OrderContext, in RefundInput) (entities.TransactionRecord, error) {
	order.OrderID = strings.TrimSpace(order.OrderID)
	log.Printf("[payment][usecase] refund start order_id=%q refund_method=%s amount=%s", order.OrderID, in.RefundMethod, in.Amount)
	if order.OrderID == "" {
		return entities.TransactionRecord{}, ErrInvalidOrderID
	}
	if err := validateInstrument(-1, in.RefundMethod, in.Amount); err != nil {
		return entities.TransactionRecord{}, err
	}
	if !in.PaymentMethod.IsValid() {
		return entities.TransactionRecord{}, &InvalidEntryError{Index: -1, Type: in.PaymentMethod, Reason: "unknown original payment method"}
	}
	gw, ok := u.gateways[in.RefundMethod]
	if !ok {
		return entities.TransactionRecord{}, &InvalidEntryError{Index: -1, Type: in.RefundMethod, Reason: "no gateway for instrument", Kind: ErrGatewayNotConfigured}
	}

	res, err := gw.Refund(ctx, entities.RefundRequest{
		OrderID:              order.OrderID,
		Description:          order.Description,
		Amount:               in.Amount,
		GatewayTransactionID: in.GatewayTransactionID,
		Reference:            in.Reference,
	})
	if err != nil {
		log.Printf("[payment][usecase] refund gateway error order_id=%s refund_method=%s err=%v", order.OrderID, in.RefundMethod, err)
		res = mergeDeclined(res, err)
	}
	if !res.Approved {
		log.Printf("[payment][usecase] refund declined order_id=%s refund_method=%s", order.OrderID, in.RefundMethod)
		return entities.TransactionRecord{}, &PaymentFailureError{Kind: ErrRefundFailed, Index: -1, Type: in.RefundMethod, Response: res.Response}
	}

	rec := entities.TransactionRecord{
		ID:                   u.ids.NewID(),
		PaymentMethod:        in.PaymentMethod,
		TransactionType:      entities.TransactionTypeRefund,
		Amount:               in.Amount,
		Revenue:              revenueOrAmount(res.Response, in.Amount),
		GatewayTransactionID: res.Response.String(entities.ResponseKeyGatewayTransactionID),
		Response:             res.Response.Clone(),
		RefundMethod:         in.RefundMethod,
		RefundGiftcardID:     res.Response.String(entities.ResponseKeyRefundGiftcardID),
		RefundStorecreditID:  res.Response.String(entities.ResponseKeyRefundStorecreditID),
		CreatedAt:            u.clock.Now(),
	}
	rec.ApplyOrder(order)

	created, err := u.ledger.Append(ctx, rec)
	if err != nil {
		u.raisePersistenceAlert(ctx, -1, rec, err)
		return entities.TransactionRecord{}, &PaymentFailureError{Kind: ErrPersistenceFailed, Index: -1, Type: in.RefundMethod, Response: res.Response, Cause: err}
	}
	log.Printf("[payment][usecase] refund success order_id=%s transaction_id=%s", order.OrderID, created.ID)
	return created, nil
}

// raisePersistenceAlert reports money moved without a ledger record. The
// append itself is never retried: after an ambiguous failure a retry could
// write the record twice.
func (u *SplitPaymentUseCase) raisePersistenceAlert(ctx context.Context, index int, rec entities.TransactionRecord, cause error) {
	log.Printf("[payment][usecase] CRITICAL ledger append failed after gateway success order_id=%s index=%d transaction_id=%s type=%s amount=%s err=%v",
		rec.OrderID, index, rec.ID, rec.TransactionType, rec.Amount, cause)
	if u.alerts == nil {
		return
	}
	alert := interfaces.PersistenceAlert{
		OrderID:  rec.OrderID,
		Index:    index,
		Record:   rec,
		Error:    cause.Error(),
		RaisedAt: u.clock.Now(),
	}
	if err := u.alerts.PublishPersistenceFailure(ctx, alert); err != nil {
		log.Printf("[payment][usecase] CRITICAL alert publish failed order_id=%s transaction_id=%s err=%v", rec.OrderID, rec.ID, err)
	}
}

func (u *SplitPaymentUseCase) GetTransaction(ctx context.Context, id string) (entities.TransactionRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TransactionRecord{}, ErrInvalidTransactionID
	}

	rec, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.TransactionRecord{}, err
	}
	if rec.ID == "" {
		return entities.TransactionRecord{}, ErrTransactionNotFound
	}
	return rec, nil
}

func (u *SplitPaymentUseCase) ListTransactions(ctx context.Context, orderID string) ([]entities.TransactionRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.ledger.ListByOrderID(ctx, orderID)
}

func revenueOrAmount(resp entities.GatewayResponse, amount decimal.Decimal) decimal.Decimal {
	if rev, ok := resp.Decimal(entities.ResponseKeyRevenue); ok {
		return rev
	}
	return amount
}

// mergeDeclined turns a failed gateway call into a declined result, keeping
// whatever payload the gateway still returned.
func mergeDeclined(res entities.GatewayResult, err error) entities.GatewayResult {
	resp := res.Response.Clone()
	if resp == nil {
		resp = entities.GatewayResponse{}
	}
	resp[entities.ResponseKeyError] = fmt.Sprintf("%v", err)
	return entities.GatewayResult{Approved: false, Response: resp}
}
