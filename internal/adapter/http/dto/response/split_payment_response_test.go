package response

import (
	"testing"
	"time"

	"splitpay/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromTransaction(t *testing.T) {
	now := time.Now().UTC()
	r := FromTransaction(entities.TransactionRecord{
		ID:                  "tx-1",
		OrderID:             "ord-1",
		PaymentMethod:       entities.InstrumentCreditCard,
		TransactionType:     entities.TransactionTypeRefund,
		Amount:              decimal.RequireFromString("12.5"),
		Revenue:             decimal.NewFromInt(12),
		RefundMethod:        entities.InstrumentStoreCredit,
		RefundStorecreditID: "sc-1",
		CreatedAt:           now,
	})

	if r.ID != "tx-1" || r.Type != "refund" || r.PaymentMethod != "creditcard" || r.RefundMethod != "storecredit" {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.Amount != "12.50" || r.Revenue != "12.00" || r.RefundStorecreditID != "sc-1" || !r.CreatedAt.Equal(now) {
		t.Fatalf("unexpected amounts: %+v", r)
	}
}

func TestFromPaymentResult(t *testing.T) {
	entries := []entities.PaymentMethodEntry{{
		Type:          entities.InstrumentCash,
		Amount:        decimal.NewFromInt(10),
		Result:        entities.PhaseSuccess,
		TransactionID: "tx-1",
	}}
	records := []entities.TransactionRecord{{ID: "tx-1", Amount: decimal.NewFromInt(10), Revenue: decimal.NewFromInt(10)}}

	r := FromPaymentResult("ord-1", true, entries, records)
	if !r.Success || r.OrderID != "ord-1" || len(r.Methods) != 1 || len(r.Transactions) != 1 {
		t.Fatalf("unexpected response: %+v", r)
	}
	if r.Methods[0].Result != "success" || r.Methods[0].Amount != "10.00" || r.Methods[0].TransactionID != "tx-1" {
		t.Fatalf("unexpected method: %+v", r.Methods[0])
	}
}
