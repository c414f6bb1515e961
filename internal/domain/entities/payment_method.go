package entities

import "github.com/shopspring/decimal"

// PhaseResult is the outcome of one phase attempt for a single entry.
type PhaseResult string

const (
	PhaseUnattempted PhaseResult = "unattempted"
	PhaseSuccess     PhaseResult = "success"
	PhaseFailed      PhaseResult = "failed"
)

// PaymentMethodEntry is one line item of a split payment.
//
// Response and Result are overwritten by every phase attempt (authorize, then
// charge). TransactionID is only set once the sale record was appended to the
// ledger.
type PaymentMethodEntry struct {
	Type   InstrumentType  `json:"type"`
	Amount decimal.Decimal `json:"amount"`

	// Reference identifies the instrument at its gateway when the payment info
	// does not: gift card number, store credit account, check number.
	Reference string `json:"reference,omitempty"`

	Response      GatewayResponse `json:"response,omitempty"`
	Result        PhaseResult     `json:"result"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// Reset puts the entry back to the state expected before a phase attempt.
func (e *PaymentMethodEntry) Reset() {
	e.Response = nil
	e.Result = PhaseUnattempted
}

func (e PaymentMethodEntry) Succeeded() bool { return e.Result == PhaseSuccess }

// OrderContext carries the order fields copied onto every ledger record.
type OrderContext struct {
	OrderID     string `json:"order_id"`
	Description string `json:"description"`
	LocationID  string `json:"location_id"`
	CustomerID  string `json:"customer_id"`
	OperatorID  string `json:"operator_id,omitempty"`
}
