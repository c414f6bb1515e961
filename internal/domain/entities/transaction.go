package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeSale   TransactionType = "sale"
	TransactionTypeRefund TransactionType = "refund"
)

// TransactionRecord is one append-only ledger entry.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// Revenue defaults to Amount unless the gateway reported its own figure.
// Refund records additionally carry RefundMethod and, depending on the
// instrument refunded to, the id of the gift card or store credit account.
type TransactionRecord struct {
	ID string `json:"id"`

	OrderID     string `json:"order_id"`
	Description string `json:"description"`
	LocationID  string `json:"location_id"`
	CustomerID  string `json:"customer_id"`
	OperatorID  string `json:"operator_id,omitempty"`

	PaymentMethod        InstrumentType  `json:"payment_method"`
	TransactionType      TransactionType `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	Revenue              decimal.Decimal `json:"revenue"`
	GatewayTransactionID string          `json:"gateway_transaction_id,omitempty"`
	Response             GatewayResponse `json:"response,omitempty"`

	RefundMethod        InstrumentType `json:"refund_method,omitempty"`
	RefundGiftcardID    string         `json:"refund_giftcard_id,omitempty"`
	RefundStorecreditID string         `json:"refund_storecredit_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ApplyOrder copies the order fields onto the record.
func (r *TransactionRecord) ApplyOrder(o OrderContext) {
	r.OrderID = o.OrderID
	r.Description = o.Description
	r.LocationID = o.LocationID
	r.CustomerID = o.CustomerID
	r.OperatorID = o.OperatorID
}
