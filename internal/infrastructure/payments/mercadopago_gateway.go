package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/spf13/cast"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrMissingCardToken = errors.New("missing creditcard_token")
var ErrMissingGatewayTransactionID = errors.New("missing gateway transaction id")

// Mercado Pago payment statuses the gateway reacts to.
const (
	mpStatusAuthorized = "authorized"
	mpStatusApproved   = "approved"
)

// Stages reported in every gateway response under the "stage" key.
const (
	StageAuthorized = "authorized"
	StageCharged    = "charged"
	StageRefunded   = "refunded"

	responseKeyStage = "stage"
)

type mpPaymentsAPI interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Capture(ctx context.Context, id int) (*payment.Response, error)
	Cancel(ctx context.Context, id int) (*payment.Response, error)
}

type mpRefundsAPI interface {
	Create(ctx context.Context, paymentID int) (*refund.Response, error)
	CreatePartialRefund(ctx context.Context, paymentID int, amount float64) (*refund.Response, error)
}

// MercadoPagoGateway serves credit card entries. Authorize creates a payment
// with capture disabled, Charge captures it.
type MercadoPagoGateway struct {
	payments mpPaymentsAPI
	refunds  mpRefundsAPI
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][gateway][creditcard] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway][creditcard] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway][creditcard] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway][creditcard] Mercado Pago client initialized")

	return &MercadoPagoGateway{payments: payment.NewClient(cfg), refunds: refund.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Authorize(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	if g != nil && g.mockMode {
		id := mockID()
		log.Printf("[payment][gateway][creditcard] mock authorize order_id=%s provider_payment_id=%s", req.OrderID, id)
		return entities.GatewayResult{Approved: true, Response: entities.GatewayResponse{
			"id":                                     id,
			"status":                                 mpStatusAuthorized,
			"status_detail":                          "pending_capture",
			"transaction_amount":                     req.Amount.String(),
			"date_created":                           time.Now().UTC().Format(time.RFC3339Nano),
			responseKeyStage:                         StageAuthorized,
			entities.ResponseKeyGatewayTransactionID: id,
		}}, nil
	}
	if g == nil || g.payments == nil {
		return entities.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	if strings.TrimSpace(req.Payment.CreditcardToken) == "" {
		return entities.Declined(ErrMissingCardToken), nil
	}

	b, err := json.Marshal(paymentPayload(req))
	if err != nil {
		return entities.GatewayResult{}, err
	}
	var mpReq payment.Request
	if err := json.Unmarshal(b, &mpReq); err != nil {
		log.Printf("[payment][gateway][creditcard] payload unmarshal failed err=%v", err)
		return entities.GatewayResult{}, err
	}

	log.Printf("[payment][gateway][creditcard] authorize start order_id=%s amount=%s card=%s", req.OrderID, req.Amount, req.Payment.Secured().CreditcardNumber)
	resp, err := g.payments.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway][creditcard] sdk create failed order_id=%s err=%v", req.OrderID, err)
		return entities.GatewayResult{}, err
	}
	// The provider may capture on create regardless of the capture flag. An
	// approved payment is reported as charged so Rollback refunds it and
	// Charge does not capture it twice.
	stage := StageAuthorized
	if resp.Status == mpStatusApproved {
		stage = StageCharged
	}
	out, err := sdkResponse(resp, resp.ID, stage)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	log.Printf("[payment][gateway][creditcard] authorize done provider_payment_id=%d provider_status=%s stage=%s", resp.ID, resp.Status, stage)
	approved := resp.Status == mpStatusAuthorized || resp.Status == mpStatusApproved
	return entities.GatewayResult{Approved: approved, Response: out}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req entities.GatewayRequest) (entities.GatewayResult, error) {
	id, err := providerPaymentID(req.Authorization.String(entities.ResponseKeyGatewayTransactionID))
	if err != nil {
		return entities.Declined(err), nil
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway][creditcard] mock capture provider_payment_id=%d", id)
		out := req.Authorization.Clone()
		out["status"] = mpStatusApproved
		out["status_detail"] = "accredited"
		out["date_approved"] = time.Now().UTC().Format(time.RFC3339Nano)
		out[responseKeyStage] = StageCharged
		return entities.GatewayResult{Approved: true, Response: out}, nil
	}
	if g == nil || g.payments == nil {
		return entities.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}
	if req.Authorization.String("status") == mpStatusApproved {
		log.Printf("[payment][gateway][creditcard] already captured on create provider_payment_id=%d", id)
		out := req.Authorization.Clone()
		out[responseKeyStage] = StageCharged
		if net := netReceivedAmount(out); net > 0 {
			out[entities.ResponseKeyRevenue] = strconv.FormatFloat(net, 'f', -1, 64)
		}
		return entities.GatewayResult{Approved: true, Response: out}, nil
	}

	resp, err := g.payments.Capture(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway][creditcard] sdk capture failed provider_payment_id=%d err=%v", id, err)
		return entities.GatewayResult{}, err
	}
	out, err := sdkResponse(resp, resp.ID, StageCharged)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	if net := netReceivedAmount(out); net > 0 {
		out[entities.ResponseKeyRevenue] = strconv.FormatFloat(net, 'f', -1, 64)
	}
	log.Printf("[payment][gateway][creditcard] capture done provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return entities.GatewayResult{Approved: resp.Status == mpStatusApproved, Response: out}, nil
}

// Rollback cancels a payment that is only authorized and refunds one that
// was already captured.
func (g *MercadoPagoGateway) Rollback(ctx context.Context, resp entities.GatewayResponse) error {
	id, err := providerPaymentID(resp.String(entities.ResponseKeyGatewayTransactionID))
	if err != nil {
		return err
	}
	status := resp.String("status")

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway][creditcard] mock rollback provider_payment_id=%d provider_status=%s", id, status)
		return nil
	}
	if g == nil || g.payments == nil || g.refunds == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	switch status {
	case mpStatusAuthorized:
		log.Printf("[payment][gateway][creditcard] cancel start provider_payment_id=%d", id)
		_, err = g.payments.Cancel(ctx, id)
	case mpStatusApproved:
		log.Printf("[payment][gateway][creditcard] refund start provider_payment_id=%d", id)
		_, err = g.refunds.Create(ctx, id)
	default:
		log.Printf("[payment][gateway][creditcard] nothing to roll back provider_payment_id=%d provider_status=%s", id, status)
		return nil
	}
	if err != nil {
		log.Printf("[payment][gateway][creditcard] rollback failed provider_payment_id=%d err=%v", id, err)
	}
	return err
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, req entities.RefundRequest) (entities.GatewayResult, error) {
	id, err := providerPaymentID(req.GatewayTransactionID)
	if err != nil {
		return entities.Declined(err), nil
	}

	if g != nil && g.mockMode {
		refundID := mockID()
		log.Printf("[payment][gateway][creditcard] mock refund provider_payment_id=%d amount=%s", id, req.Amount)
		return entities.GatewayResult{Approved: true, Response: entities.GatewayResponse{
			"id":                                     refundID,
			"payment_id":                             strconv.Itoa(id),
			"status":                                 mpStatusApproved,
			"amount":                                 req.Amount.String(),
			responseKeyStage:                         StageRefunded,
			entities.ResponseKeyGatewayTransactionID: refundID,
		}}, nil
	}
	if g == nil || g.refunds == nil {
		return entities.GatewayResult{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.refunds.CreatePartialRefund(ctx, id, req.Amount.InexactFloat64())
	if err != nil {
		log.Printf("[payment][gateway][creditcard] sdk refund failed provider_payment_id=%d err=%v", id, err)
		return entities.GatewayResult{}, err
	}
	out, err := sdkResponse(resp, resp.ID, StageRefunded)
	if err != nil {
		return entities.GatewayResult{}, err
	}
	out["payment_id"] = strconv.Itoa(id)
	log.Printf("[payment][gateway][creditcard] refund done provider_payment_id=%d refund_id=%d status=%s", id, resp.ID, resp.Status)
	return entities.GatewayResult{Approved: resp.Status == mpStatusApproved, Response: out}, nil
}

// paymentPayload builds the create-payment body as a JSON object; it is
// decoded into the SDK request afterwards.
func paymentPayload(req entities.GatewayRequest) map[string]any {
	methodID := req.Payment.PaymentMethod
	if methodID == "" {
		methodID = strings.ToLower(req.Payment.CreditcardType)
	}
	payer := map[string]any{}
	if req.Billing.Email != "" {
		payer["email"] = req.Billing.Email
	}
	if req.Billing.FirstName != "" {
		payer["first_name"] = req.Billing.FirstName
	}
	if req.Billing.LastName != "" {
		payer["last_name"] = req.Billing.LastName
	}

	payload := map[string]any{
		"transaction_amount": req.Amount.InexactFloat64(),
		"description":        req.Description,
		"external_reference": req.OrderID,
		"installments":       1,
		"capture":            false,
		"token":              req.Payment.CreditcardToken,
	}
	if methodID != "" {
		payload["payment_method_id"] = methodID
	}
	if len(payer) > 0 {
		payload["payer"] = payer
	}
	return payload
}

func sdkResponse(v any, id int, stage string) (entities.GatewayResponse, error) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[payment][gateway][creditcard] response marshal failed err=%v", err)
		return nil, err
	}
	out := entities.GatewayResponse{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	out[entities.ResponseKeyGatewayTransactionID] = strconv.Itoa(id)
	out[responseKeyStage] = stage
	return out, nil
}

func netReceivedAmount(resp entities.GatewayResponse) float64 {
	details, ok := resp["transaction_details"].(map[string]any)
	if !ok {
		return 0
	}
	return cast.ToFloat64(details["net_received_amount"])
}

func providerPaymentID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrMissingGatewayTransactionID
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid gateway transaction id %q: %w", raw, err)
	}
	return id, nil
}

func mockID() string {
	return strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
}
