package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"splitpay/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"github.com/shopspring/decimal"
)

type fakeMPPayments struct {
	created   []payment.Request
	captured  []int
	cancelled []int
	status    string
	err       error
}

func (f *fakeMPPayments) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.created = append(f.created, req)
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Response{ID: 101, Status: f.status}, nil
}

func (f *fakeMPPayments) Capture(_ context.Context, id int) (*payment.Response, error) {
	f.captured = append(f.captured, id)
	if f.err != nil {
		return nil, f.err
	}
	return &payment.Response{ID: id, Status: f.status}, nil
}

func (f *fakeMPPayments) Cancel(_ context.Context, id int) (*payment.Response, error) {
	f.cancelled = append(f.cancelled, id)
	return &payment.Response{ID: id, Status: "cancelled"}, f.err
}

type fakeMPRefunds struct {
	full    []int
	partial []float64
	status  string
}

func (f *fakeMPRefunds) Create(_ context.Context, paymentID int) (*refund.Response, error) {
	f.full = append(f.full, paymentID)
	return &refund.Response{ID: 900, Status: f.status}, nil
}

func (f *fakeMPRefunds) CreatePartialRefund(_ context.Context, paymentID int, amount float64) (*refund.Response, error) {
	f.partial = append(f.partial, amount)
	return &refund.Response{ID: 901, Status: f.status}, nil
}

func cardRequest() entities.GatewayRequest {
	return entities.GatewayRequest{
		OrderID:     "ord-1",
		Description: "Order 1",
		Amount:      decimal.RequireFromString("50.25"),
		Payment:     entities.PaymentInfo{CreditcardToken: "tok_1", CreditcardType: "VISA"},
		Billing:     entities.BillingInfo{Email: "buyer@example.com", FirstName: "Ana"},
	}
}

func TestNewMercadoPagoGateway(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true)
	if err != nil || !g.mockMode {
		t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
	}
}

func TestMercadoPagoGateway_Authorize(t *testing.T) {
	t.Run("creates an uncaptured payment", func(t *testing.T) {
		api := &fakeMPPayments{status: "authorized"}
		g := &MercadoPagoGateway{payments: api, refunds: &fakeMPRefunds{}}

		res, err := g.Authorize(context.Background(), cardRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Approved || res.Response.String(entities.ResponseKeyGatewayTransactionID) != "101" || res.Response.String("stage") != StageAuthorized {
			t.Fatalf("unexpected result: %+v", res)
		}
		if len(api.created) != 1 {
			t.Fatalf("expected one create call, got %d", len(api.created))
		}
		sent := api.created[0]
		if sent.TransactionAmount != 50.25 || sent.Token != "tok_1" || sent.ExternalReference != "ord-1" || sent.PaymentMethodID != "visa" {
			t.Fatalf("unexpected sdk request: %+v", sent)
		}
	})

	t.Run("wire body never asks for capture", func(t *testing.T) {
		api := &fakeMPPayments{status: "authorized"}
		g := &MercadoPagoGateway{payments: api, refunds: &fakeMPRefunds{}}
		if _, err := g.Authorize(context.Background(), cardRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		b, err := json.Marshal(api.created[0])
		if err != nil {
			t.Fatal(err)
		}
		var body map[string]any
		if err := json.Unmarshal(b, &body); err != nil {
			t.Fatal(err)
		}
		if capture, ok := body["capture"]; ok && capture != false {
			t.Fatalf("create body requests capture: %s", b)
		}
		if body["external_reference"] != "ord-1" || body["token"] != "tok_1" || body["transaction_amount"] != 50.25 {
			t.Fatalf("unexpected create body: %s", b)
		}
	})

	t.Run("provider capturing on create is reported as charged", func(t *testing.T) {
		api := &fakeMPPayments{status: "approved"}
		refunds := &fakeMPRefunds{status: "approved"}
		g := &MercadoPagoGateway{payments: api, refunds: refunds}

		res, err := g.Authorize(context.Background(), cardRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Approved || res.Response.String("stage") != StageCharged {
			t.Fatalf("approved payment must count as a charged success, got %+v", res)
		}

		// A sibling failure rolls it back with a refund, never a cancel.
		if err := g.Rollback(context.Background(), res.Response); err != nil {
			t.Fatalf("unexpected rollback error: %v", err)
		}
		if len(refunds.full) != 1 || refunds.full[0] != 101 || len(api.cancelled) != 0 {
			t.Fatalf("expected refund of 101, refunded=%v cancelled=%v", refunds.full, api.cancelled)
		}
	})

	t.Run("rejected status is a decline", func(t *testing.T) {
		g := &MercadoPagoGateway{payments: &fakeMPPayments{status: "rejected"}, refunds: &fakeMPRefunds{}}
		res, err := g.Authorize(context.Background(), cardRequest())
		if err != nil || res.Approved {
			t.Fatalf("expected decline, got %+v err=%v", res, err)
		}
	})

	t.Run("missing token never reaches the provider", func(t *testing.T) {
		api := &fakeMPPayments{status: "authorized"}
		g := &MercadoPagoGateway{payments: api, refunds: &fakeMPRefunds{}}
		req := cardRequest()
		req.Payment.CreditcardToken = ""

		res, err := g.Authorize(context.Background(), req)
		if err != nil || res.Approved || res.Response.String("error") == "" {
			t.Fatalf("expected decline with error, got %+v err=%v", res, err)
		}
		if len(api.created) != 0 {
			t.Fatalf("provider should not be called")
		}
	})

	t.Run("transport error is returned", func(t *testing.T) {
		g := &MercadoPagoGateway{payments: &fakeMPPayments{err: errors.New("boom")}, refunds: &fakeMPRefunds{}}
		if _, err := g.Authorize(context.Background(), cardRequest()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestMercadoPagoGateway_Charge(t *testing.T) {
	api := &fakeMPPayments{status: "approved"}
	g := &MercadoPagoGateway{payments: api, refunds: &fakeMPRefunds{}}

	req := cardRequest()
	req.Authorization = entities.GatewayResponse{entities.ResponseKeyGatewayTransactionID: "101", "status": "authorized"}
	res, err := g.Charge(context.Background(), req)
	if err != nil || !res.Approved {
		t.Fatalf("expected approval, got %+v err=%v", res, err)
	}
	if len(api.captured) != 1 || api.captured[0] != 101 {
		t.Fatalf("expected capture of 101, got %v", api.captured)
	}
	if res.Response.String("stage") != StageCharged {
		t.Fatalf("unexpected stage: %+v", res.Response)
	}

	res, err = g.Charge(context.Background(), cardRequest())
	if err != nil || res.Approved {
		t.Fatalf("charge without authorization must decline, got %+v err=%v", res, err)
	}

	t.Run("already captured authorization is not captured again", func(t *testing.T) {
		api := &fakeMPPayments{status: "approved"}
		g := &MercadoPagoGateway{payments: api, refunds: &fakeMPRefunds{}}

		req := cardRequest()
		req.Authorization = entities.GatewayResponse{entities.ResponseKeyGatewayTransactionID: "101", "status": "approved", "stage": StageCharged}
		res, err := g.Charge(context.Background(), req)
		if err != nil || !res.Approved || res.Response.String("stage") != StageCharged {
			t.Fatalf("expected approval, got %+v err=%v", res, err)
		}
		if len(api.captured) != 0 {
			t.Fatalf("unexpected capture calls: %v", api.captured)
		}
	})
}

func TestMercadoPagoGateway_Rollback(t *testing.T) {
	cases := []struct {
		name          string
		status        string
		wantCancelled int
		wantRefunded  int
	}{
		{name: "authorized is cancelled", status: "authorized", wantCancelled: 1},
		{name: "approved is refunded", status: "approved", wantRefunded: 1},
		{name: "rejected needs nothing", status: "rejected"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeMPPayments{}
			refunds := &fakeMPRefunds{status: "approved"}
			g := &MercadoPagoGateway{payments: api, refunds: refunds}

			err := g.Rollback(context.Background(), entities.GatewayResponse{entities.ResponseKeyGatewayTransactionID: "101", "status": tc.status})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(api.cancelled) != tc.wantCancelled || len(refunds.full) != tc.wantRefunded {
				t.Fatalf("cancelled=%v refunded=%v", api.cancelled, refunds.full)
			}
		})
	}
}

func TestMercadoPagoGateway_Refund(t *testing.T) {
	refunds := &fakeMPRefunds{status: "approved"}
	g := &MercadoPagoGateway{payments: &fakeMPPayments{}, refunds: refunds}

	res, err := g.Refund(context.Background(), entities.RefundRequest{OrderID: "ord-1", Amount: decimal.NewFromInt(10), GatewayTransactionID: "101"})
	if err != nil || !res.Approved {
		t.Fatalf("expected approval, got %+v err=%v", res, err)
	}
	if len(refunds.partial) != 1 || refunds.partial[0] != 10 {
		t.Fatalf("unexpected partial refunds: %v", refunds.partial)
	}
	if res.Response.String(entities.ResponseKeyGatewayTransactionID) != "901" || res.Response.String("payment_id") != "101" {
		t.Fatalf("unexpected response: %+v", res.Response)
	}

	res, err = g.Refund(context.Background(), entities.RefundRequest{OrderID: "ord-1", Amount: decimal.NewFromInt(10)})
	if err != nil || res.Approved {
		t.Fatalf("refund without original payment must decline, got %+v err=%v", res, err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g := &MercadoPagoGateway{mockMode: true}
	ctx := context.Background()

	auth, err := g.Authorize(ctx, cardRequest())
	if err != nil || !auth.Approved || auth.Response.String("status") != "authorized" {
		t.Fatalf("unexpected authorize: %+v err=%v", auth, err)
	}

	req := cardRequest()
	req.Authorization = auth.Response
	charge, err := g.Charge(ctx, req)
	if err != nil || !charge.Approved || charge.Response.String("status") != "approved" {
		t.Fatalf("unexpected charge: %+v err=%v", charge, err)
	}
	if auth.Response.String("status") != "authorized" {
		t.Fatalf("charge must not mutate the authorization response")
	}
	if err := g.Rollback(ctx, charge.Response); err != nil {
		t.Fatalf("unexpected rollback error: %v", err)
	}
}
