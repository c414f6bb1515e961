package entities

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Well known keys a gateway may report in its response payload.
const (
	ResponseKeyRevenue              = "revenue"
	ResponseKeyGatewayTransactionID = "gateway_transaction_id"
	ResponseKeyRefundGiftcardID     = "refund_giftcard_id"
	ResponseKeyRefundStorecreditID  = "refund_storecredit_id"
	ResponseKeyError                = "error"
)

// GatewayResponse is the opaque payload returned by a gateway. The
// orchestrator only reads the well known keys above; the rest is stored as a
// snapshot on the ledger record.
type GatewayResponse map[string]any

// String returns the value under key rendered as a string, or "" when absent.
func (r GatewayResponse) String(key string) string {
	v, ok := r[key]
	if !ok || v == nil {
		return ""
	}
	return cast.ToString(v)
}

// Decimal returns the value under key as a decimal. ok is false when the key
// is absent or the value is not numeric.
func (r GatewayResponse) Decimal(key string) (decimal.Decimal, bool) {
	raw := r.String(key)
	if raw == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Clone returns a shallow copy so snapshots are not mutated afterwards.
func (r GatewayResponse) Clone() GatewayResponse {
	if r == nil {
		return nil
	}
	out := make(GatewayResponse, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// GatewayRequest is the input of authorize and charge. On charge,
// Authorization holds the response the same gateway returned when it
// authorized the entry.
type GatewayRequest struct {
	OrderID       string
	Description   string
	Amount        decimal.Decimal
	Reference     string
	Billing       BillingInfo
	Payment       PaymentInfo
	Authorization GatewayResponse
}

// RefundRequest is the input of a gateway refund. GatewayTransactionID and
// Reference are optional and only meaningful for some gateways.
type RefundRequest struct {
	OrderID              string
	Description          string
	Amount               decimal.Decimal
	GatewayTransactionID string
	Reference            string
}

// GatewayResult is the explicit outcome of a gateway call.
type GatewayResult struct {
	Approved bool
	Response GatewayResponse
}

// Declined builds a failed result carrying err as the diagnostic payload.
func Declined(err error) GatewayResult {
	return GatewayResult{Approved: false, Response: GatewayResponse{ResponseKeyError: err.Error()}}
}
