package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"splitpay/internal/adapter/http/handlers/mocks"
	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newSplitPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockISplitPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISplitPaymentUseCase(ctrl)
	h := NewSplitPaymentHandler(uc)

	r := gin.New()
	r.POST("/v1/orders/:order_id/payments", h.CreatePayment)
	r.POST("/v1/orders/:order_id/refunds", h.CreateRefund)
	r.GET("/v1/orders/:order_id/transactions", h.ListTransactions)
	r.GET("/v1/orders/:order_id/transactions/export", h.ExportTransactions)
	r.GET("/v1/transactions/:id", h.GetTransaction)
	return r, uc
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestSplitPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newSplitPaymentRouter(t)
		w := serve(r, http.MethodPost, "/v1/orders/ord-1/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().Payment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order entities.OrderContext, entries []entities.PaymentMethodEntry, payment entities.PaymentInfo, billing entities.BillingInfo) (usecase.PaymentResult, error) {
				if order.OrderID != "ord-1" || order.Description != "Order 1" {
					t.Fatalf("unexpected order: %+v", order)
				}
				if len(entries) != 2 || entries[0].Type != entities.InstrumentCreditCard || entries[1].Reference != "gc-1" {
					t.Fatalf("unexpected entries: %+v", entries)
				}
				if payment.CreditcardToken != "tok" || billing.Country != "US" {
					t.Fatalf("unexpected payment/billing: %+v %+v", payment, billing)
				}
				for i := range entries {
					entries[i].Result = entities.PhaseSuccess
					entries[i].TransactionID = fmt.Sprintf("tx-%d", i+1)
				}
				return usecase.PaymentResult{
					Success: true,
					Entries: entries,
					Records: []entities.TransactionRecord{{ID: "tx-1"}, {ID: "tx-2"}},
				}, nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/payments", `{
			"description":  "Order 1",
			"methods":      [{"type": "creditcard", "amount": 50}, {"type": "giftcard", "amount": "20", "reference": "gc-1"}],
			"payment_info": {"creditcard_token": "tok"}
		}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["success"] != true || len(body["transactions"].([]any)) != 2 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("charge failure carries the gateway response", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		resp := entities.GatewayResponse{"error": "card declined"}
		uc.EXPECT().Payment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(
			usecase.PaymentResult{Response: resp},
			&usecase.PaymentFailureError{Kind: usecase.ErrChargeFailed, Index: 1, Type: entities.InstrumentCreditCard, Response: resp},
		)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/payments", `{"methods":[{"type":"cash","amount":1},{"type":"creditcard","amount":2}]}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		body := decodeBody(t, w)
		details, _ := body["details"].(map[string]any)
		response, _ := details["response"].(map[string]any)
		if body["code"] != "CHARGE_FAILED" || details["index"] != float64(1) || response["error"] != "card declined" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestSplitPaymentHandler_CreateRefund(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order entities.OrderContext, in usecase.RefundInput) (entities.TransactionRecord, error) {
				if order.OrderID != "ord-1" || in.PaymentMethod != entities.InstrumentCreditCard || in.RefundMethod != entities.InstrumentGiftCard {
					t.Fatalf("unexpected refund input: %+v %+v", order, in)
				}
				if !in.Amount.Equal(decimal.RequireFromString("12.5")) {
					t.Fatalf("unexpected amount: %s", in.Amount)
				}
				return entities.TransactionRecord{ID: "tx-9", TransactionType: entities.TransactionTypeRefund, RefundGiftcardID: "gc-new", Amount: in.Amount, Revenue: in.Amount}, nil
			},
		)

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/refunds", `{"payment_method":"creditcard","refund_method":"giftcard","amount":"12.5"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["id"] != "tx-9" || body["refund_giftcard_id"] != "gc-new" || body["amount"] != "12.50" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().Refund(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.TransactionRecord{}, &usecase.InvalidEntryError{Index: -1, Reason: "amount must be positive"})

		w := serve(r, http.MethodPost, "/v1/orders/ord-1/refunds", `{"payment_method":"cash","refund_method":"cash","amount":0}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSplitPaymentHandler_Transactions(t *testing.T) {
	records := []entities.TransactionRecord{
		{ID: "tx-1", OrderID: "ord-1", TransactionType: entities.TransactionTypeSale, Amount: decimal.NewFromInt(5), Revenue: decimal.NewFromInt(5), CreatedAt: time.Now().UTC()},
	}

	t.Run("list", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().ListTransactions(gomock.Any(), "ord-1").Return(records, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ord-1/transactions", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0]["id"] != "tx-1" {
			t.Fatalf("unexpected body %s err=%v", w.Body.String(), err)
		}
	})

	t.Run("export", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().ListTransactions(gomock.Any(), "ord-1").Return(records, nil)

		w := serve(r, http.MethodGet, "/v1/orders/ord-1/transactions/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Content-Type") != xlsxContentType || w.Body.Len() == 0 {
			t.Fatalf("unexpected export response: %v len=%d", w.Header(), w.Body.Len())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().GetTransaction(gomock.Any(), "tx-404").Return(entities.TransactionRecord{}, usecase.ErrTransactionNotFound)

		w := serve(r, http.MethodGet, "/v1/transactions/tx-404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get", func(t *testing.T) {
		r, uc := newSplitPaymentRouter(t)
		uc.EXPECT().GetTransaction(gomock.Any(), "tx-1").Return(records[0], nil)

		w := serve(r, http.MethodGet, "/v1/transactions/tx-1", "")
		if w.Code != http.StatusOK || decodeBody(t, w)["id"] != "tx-1" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestMapSplitPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidOrderID, http.StatusBadRequest},
		{&usecase.InvalidEntryError{Index: 0, Reason: "unknown instrument type"}, http.StatusBadRequest},
		{&usecase.InvalidEntryError{Index: 0, Kind: usecase.ErrGatewayNotConfigured}, http.StatusBadRequest},
		{usecase.ErrInvalidTransactionID, http.StatusBadRequest},
		{&usecase.PaymentFailureError{Kind: usecase.ErrAuthorizationFailed, Index: 0}, http.StatusPaymentRequired},
		{&usecase.PaymentFailureError{Kind: usecase.ErrChargeFailed, Index: 0, Cause: usecase.ErrGatewayNotConfigured}, http.StatusPaymentRequired},
		{&usecase.PaymentFailureError{Kind: usecase.ErrRefundFailed, Index: -1}, http.StatusPaymentRequired},
		{&usecase.PaymentFailureError{Kind: usecase.ErrPersistenceFailed, Index: 1, Cause: errors.New("ddb down")}, http.StatusInternalServerError},
		{usecase.ErrTransactionNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSplitPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}

	persistence := mapSplitPaymentError(&usecase.PaymentFailureError{Kind: usecase.ErrPersistenceFailed, Index: 1, Cause: errors.New("ddb down")})
	if persistence.Code != "LEDGER_PERSISTENCE_FAILED" {
		t.Fatalf("unexpected code %s", persistence.Code)
	}
}
